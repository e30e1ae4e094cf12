// Package validation implements the rule engine applied to mutable roster
// records: syntactic field rules, cross-field business rules and the
// normalizer that folds historical input shapes into the canonical one.
//
// Field rules are explicit rule objects (a pure predicate plus a message)
// composed into an ordered list and evaluated without short-circuiting, so
// every violation in a request is reported in one batch.
package validation

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/clubarena/rosterhub/internal/domain/entities"
	"github.com/clubarena/rosterhub/internal/domain/errors"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Age bounds applied to both supplied and derived ages.
const (
	MinValidAge = 5
	MaxValidAge = 120
)

var (
	nameRe          = regexp.MustCompile(`^[\p{L} ]+$`)
	identRe         = regexp.MustCompile(`^[A-Za-z0-9.\-]{6,50}$`)
	emailRe         = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRe         = regexp.MustCompile(`^[0-9+\-() ]{7,20}$`)
	categoryNameRe  = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} \-]*$`)
)

// FieldRule is one syntactic rule for one field: a pure predicate over the
// raw string value plus the message reported when it fails. Rules never have
// side effects.
type FieldRule struct {
	Field    string
	Required bool
	Check    func(value string) bool
	Message  string
}

// evaluate runs every rule in order against the values returned by get,
// collecting all violations. A missing optional value skips its rule; a
// missing required value is its own violation.
func evaluate(rules []FieldRule, get func(field string) string) errors.ValidationErrors {
	var violations errors.ValidationErrors
	for _, r := range rules {
		value := get(r.Field)
		if value == "" {
			if r.Required {
				violations.Add(r.Field, "is required", value)
			}
			continue
		}
		if r.Check != nil && !r.Check(value) {
			violations.Add(r.Field, r.Message, value)
		}
	}
	return violations
}

func validPersonName(v string) bool {
	n := utf8.RuneCountInString(v)
	return n >= 2 && n <= 100 && nameRe.MatchString(v)
}

func validIdentification(v string) bool {
	return identRe.MatchString(v)
}

func validEmail(v string) bool {
	return len(v) <= 150 && emailRe.MatchString(v)
}

func validPhone(v string) bool {
	return phoneRe.MatchString(v)
}

func validCategoryName(v string) bool {
	n := utf8.RuneCountInString(v)
	return n >= 2 && n <= 100 && categoryNameRe.MatchString(v)
}

// personFieldRules is the ordered rule list for the string-typed fields of a
// temporary person. Typed fields (birthDate, age, documentTypeId) are coerced
// and checked in ValidatePersonFields after this list runs.
var personFieldRules = []FieldRule{
	{Field: "firstName", Required: true, Check: validPersonName,
		Message: "must be 2-100 characters of letters and spaces"},
	{Field: "lastName", Required: true, Check: validPersonName,
		Message: "must be 2-100 characters of letters and spaces"},
	{Field: "identification", Check: validIdentification,
		Message: "must be 6-50 characters of letters, digits, hyphens or periods"},
	{Field: "email", Check: validEmail,
		Message: "must be a valid email address of at most 150 characters"},
	{Field: "phone", Check: validPhone,
		Message: "must be 7-20 characters of digits, spaces, '+', '-' or parentheses"},
	{Field: "personType", Required: true,
		Check:   func(v string) bool { return entities.PersonType(v).IsValid() },
		Message: "must be one of ATHLETE, TRAINER, PARTICIPANT"},
	{Field: "status",
		Check:   func(v string) bool { return entities.PersonStatus(v).IsValid() },
		Message: "must be one of ACTIVE, INACTIVE"},
}

// PersonFields is the normalized, typed value set produced by field
// validation. Optional fields stay nil when absent.
type PersonFields struct {
	FirstName      string
	LastName       string
	Identification *string
	Email          *string
	Phone          *string
	PersonType     entities.PersonType
	BirthDate      *time.Time
	Age            *int
	Team           *string
	Category       *string
	Status         entities.PersonStatus
	DocumentTypeID *uuid.UUID
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ValidatePersonFields applies the syntactic rules to a normalized input and
// returns either the typed value set or the full batch of violations. It is
// a pure function of its input.
func ValidatePersonFields(in PersonInput) (PersonFields, errors.ValidationErrors) {
	values := map[string]string{
		"firstName":      in.FirstName,
		"lastName":       in.LastName,
		"identification": deref(in.Identification),
		"email":          deref(in.Email),
		"phone":          deref(in.Phone),
		"personType":     in.PersonType,
		"status":         in.Status,
	}
	violations := evaluate(personFieldRules, func(f string) string { return values[f] })

	out := PersonFields{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Identification: in.Identification,
		Email:          in.Email,
		Phone:          in.Phone,
		PersonType:     entities.PersonType(in.PersonType),
		Team:           in.Team,
		Category:       in.Category,
	}

	if in.Status == "" {
		out.Status = entities.PersonStatusActive
	} else {
		out.Status = entities.PersonStatus(in.Status)
	}

	if bd := deref(in.BirthDate); bd != "" {
		parsed, err := time.Parse(DateLayout, bd)
		if err != nil {
			violations.Add("birthDate", "must be a valid date in YYYY-MM-DD format", bd)
		} else {
			derived := DeriveAge(parsed, time.Now())
			if derived < MinValidAge || derived > MaxValidAge {
				violations.Add("birthDate", "must place the age between 5 and 120 years", bd)
			} else {
				out.BirthDate = &parsed
			}
		}
	}

	if in.Age != nil {
		if *in.Age < MinValidAge || *in.Age > MaxValidAge {
			violations.Add("age", "must be between 5 and 120", *in.Age)
		} else {
			out.Age = in.Age
		}
	}

	if dt := deref(in.DocumentTypeID); dt != "" {
		id, err := uuid.Parse(dt)
		if err != nil {
			violations.Add("documentTypeId", "must be a valid UUID", dt)
		} else {
			out.DocumentTypeID = &id
		}
	}

	if violations.HasErrors() {
		return PersonFields{}, violations
	}
	return out, nil
}

// categoryFieldRules is the ordered rule list for the string-typed fields of
// a sports category.
var categoryFieldRules = []FieldRule{
	{Field: "name", Required: true, Check: validCategoryName,
		Message: "must be 2-100 characters of letters, digits, spaces or hyphens"},
	{Field: "status",
		Check:   func(v string) bool { return entities.CategoryStatus(v).IsValid() },
		Message: "must be one of ACTIVE, INACTIVE"},
	{Field: "imageUrl", Check: func(v string) bool { return len(v) <= 300 },
		Message: "must be at most 300 characters"},
	{Field: "description", Check: func(v string) bool { return utf8.RuneCountInString(v) <= 500 },
		Message: "must be at most 500 characters"},
}

// CategoryFields is the normalized, typed value set for a sports category.
type CategoryFields struct {
	Name        string
	MinAge      int
	MaxAge      int
	Status      entities.CategoryStatus
	Published   bool
	ImageURL    *string
	Description *string
}

// ValidateCategoryFields applies the syntactic rules to a normalized category
// input. The minAge < maxAge invariant is a cross-field rule and lives in
// ValidateCategoryRules.
func ValidateCategoryFields(in CategoryInput) (CategoryFields, errors.ValidationErrors) {
	values := map[string]string{
		"name":        in.Name,
		"status":      in.Status,
		"imageUrl":    deref(in.ImageURL),
		"description": deref(in.Description),
	}
	violations := evaluate(categoryFieldRules, func(f string) string { return values[f] })

	out := CategoryFields{
		Name:        in.Name,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	}
	if in.Published != nil {
		out.Published = *in.Published
	}
	if in.Status == "" {
		out.Status = entities.CategoryStatusActive
	} else {
		out.Status = entities.CategoryStatus(in.Status)
	}

	if in.MinAge == nil {
		violations.Add("minAge", "is required", nil)
	} else if *in.MinAge < 0 || *in.MinAge > MaxValidAge {
		violations.Add("minAge", "must be between 0 and 120", *in.MinAge)
	} else {
		out.MinAge = *in.MinAge
	}

	if in.MaxAge == nil {
		violations.Add("maxAge", "is required", nil)
	} else if *in.MaxAge < 0 || *in.MaxAge > MaxValidAge {
		violations.Add("maxAge", "must be between 0 and 120", *in.MaxAge)
	} else {
		out.MaxAge = *in.MaxAge
	}

	if violations.HasErrors() {
		return CategoryFields{}, violations
	}
	return out, nil
}

// DeriveAge returns the age in full calendar years at ref for the given
// birth date: the year difference, decremented while ref's month/day still
// precedes the birth month/day. A birthday falling exactly on ref does not
// decrement.
func DeriveAge(birth, ref time.Time) int {
	years := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() ||
		(ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		years--
	}
	return years
}
