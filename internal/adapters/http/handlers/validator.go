// Package handlers contains the gin HTTP handlers. Handlers bind and
// structurally validate requests, delegate to use cases, and render results
// through the common envelope; they hold no business rules.
package handlers

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/clubarena/rosterhub/internal/adapters/http/common"
)

var validate = newValidator()

// newValidator builds the structural validator used on bound requests.
// Field names in violation reports come from the json tag, so clients see
// the wire name, not the Go identifier.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	// Closed-set filter values. Mutating payloads go through the domain
	// pipeline instead, which also folds legacy aliases.
	_ = v.RegisterValidation("person_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "ATHLETE", "TRAINER", "PARTICIPANT":
			return true
		}
		return false
	})
	_ = v.RegisterValidation("record_status", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "ACTIVE" || s == "INACTIVE"
	})

	return v
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "person_type":
		return "must be one of ATHLETE, TRAINER, PARTICIPANT"
	case "record_status":
		return "must be one of ACTIVE, INACTIVE"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

func respondBindingViolations(c *gin.Context, err error) {
	var fieldErrors []common.FieldError
	if violations, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range violations {
			fieldErrors = append(fieldErrors, common.FieldError{
				Field:   fe.Field(),
				Message: violationMessage(fe),
				Value:   fe.Value(),
			})
		}
	}
	common.RespondError(c, http.StatusBadRequest, "Validation failed", fieldErrors)
}

// BindJSON binds the request body into T and runs the structural validator.
// On failure it writes the error envelope and returns false.
func BindJSON[T any](c *gin.Context) (T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, "Invalid request body", nil)
		return req, false
	}
	if err := validate.Struct(&req); err != nil {
		respondBindingViolations(c, err)
		return req, false
	}
	return req, true
}

// BindQuery binds query parameters into T and runs the structural validator.
func BindQuery[T any](c *gin.Context) (T, bool) {
	var req T
	if err := c.ShouldBindQuery(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, "Invalid query parameters", nil)
		return req, false
	}
	if err := validate.Struct(&req); err != nil {
		respondBindingViolations(c, err)
		return req, false
	}
	return req, true
}

// ParsePagination reads page and limit, tolerating absence and garbage; the
// use cases apply the defaults and the upper bound.
func ParsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}
