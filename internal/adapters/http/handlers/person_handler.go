package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubarena/rosterhub/internal/adapters/http/common"
	"github.com/clubarena/rosterhub/internal/application/dtos"
)

// Use case contracts the person handler depends on. Declared here so handler
// tests can substitute mocks without touching the application layer.
type (
	CreatePersonExecutor interface {
		Execute(ctx context.Context, cmd dtos.CreatePersonCommand) (*dtos.PersonCreatedDTO, error)
	}
	UpdatePersonExecutor interface {
		Execute(ctx context.Context, cmd dtos.UpdatePersonCommand) (*dtos.PersonUpdatedDTO, error)
	}
	GetPersonExecutor interface {
		Execute(ctx context.Context, query dtos.GetPersonQuery) (*dtos.PersonDTO, error)
	}
	ListPersonsExecutor interface {
		Execute(ctx context.Context, query dtos.ListPersonsQuery) (*dtos.PersonListDTO, error)
	}
	DeletePersonExecutor interface {
		Execute(ctx context.Context, cmd dtos.DeletePersonCommand) (*dtos.PersonDeletedDTO, error)
	}
	PersonStatsExecutor interface {
		Execute(ctx context.Context) (*dtos.PersonStatsDTO, error)
	}
	AvailabilityExecutor interface {
		Execute(ctx context.Context, query dtos.CheckAvailabilityQuery) (*dtos.AvailabilityDTO, error)
	}
	ListDocumentTypesExecutor interface {
		Execute(ctx context.Context) ([]dtos.DocumentTypeDTO, error)
	}
)

// PersonHandler serves the temporary person endpoints.
type PersonHandler struct {
	create              CreatePersonExecutor
	update              UpdatePersonExecutor
	get                 GetPersonExecutor
	list                ListPersonsExecutor
	delete              DeletePersonExecutor
	stats               PersonStatsExecutor
	checkIdentification AvailabilityExecutor
	checkEmail          AvailabilityExecutor
	documentTypes       ListDocumentTypesExecutor
}

// NewPersonHandler wires the handler with its use cases.
func NewPersonHandler(
	create CreatePersonExecutor,
	update UpdatePersonExecutor,
	get GetPersonExecutor,
	list ListPersonsExecutor,
	del DeletePersonExecutor,
	stats PersonStatsExecutor,
	checkIdentification AvailabilityExecutor,
	checkEmail AvailabilityExecutor,
	documentTypes ListDocumentTypesExecutor,
) *PersonHandler {
	return &PersonHandler{
		create:              create,
		update:              update,
		get:                 get,
		list:                list,
		delete:              del,
		stats:               stats,
		checkIdentification: checkIdentification,
		checkEmail:          checkEmail,
		documentTypes:       documentTypes,
	}
}

// RegisterRoutes mounts the person routes on the given group. Static paths
// register before the :id parameter so gin routes them correctly.
func (h *PersonHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/stats", h.Stats)
	rg.GET("/check-identification", h.CheckIdentification)
	rg.GET("/check-email", h.CheckEmail)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

type listPersonsRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status" validate:"omitempty,record_status"`
	PersonType string `form:"personType" validate:"omitempty,person_type"`
}

// List serves GET /persons.
func (h *PersonHandler) List(c *gin.Context) {
	req, ok := BindQuery[listPersonsRequest](c)
	if !ok {
		return
	}
	page, limit := ParsePagination(c)

	result, err := h.list.Execute(c.Request.Context(), dtos.ListPersonsQuery{
		Page:       page,
		Limit:      limit,
		Search:     req.Search,
		Status:     req.Status,
		PersonType: req.PersonType,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}

// Stats serves GET /persons/stats.
func (h *PersonHandler) Stats(c *gin.Context) {
	result, err := h.stats.Execute(c.Request.Context())
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}

// Get serves GET /persons/:id.
func (h *PersonHandler) Get(c *gin.Context) {
	result, err := h.get.Execute(c.Request.Context(), dtos.GetPersonQuery{ID: c.Param("id")})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}

// Create serves POST /persons. The body is accepted in any of the historical
// shapes; the pipeline normalizes before validating.
func (h *PersonHandler) Create(c *gin.Context) {
	cmd, ok := BindJSON[dtos.CreatePersonCommand](c)
	if !ok {
		return
	}

	result, err := h.create.Execute(c.Request.Context(), cmd)
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusCreated, result)
}

type updatePersonRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Identification *string `json:"identification"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	PersonType     *string `json:"personType"`
	BirthDate      *string `json:"birthDate"`
	Age            *int    `json:"age"`
	Team           *string `json:"team"`
	Category       *string `json:"category"`
	Status         *string `json:"status"`
	DocumentTypeID *string `json:"documentTypeId"`

	FullName    string `json:"fullName"`
	Estado      string `json:"estado"`
	TipoPersona string `json:"tipoPersona"`
}

// Update serves PUT /persons/:id. Absent fields keep their stored values.
func (h *PersonHandler) Update(c *gin.Context) {
	req, ok := BindJSON[updatePersonRequest](c)
	if !ok {
		return
	}

	result, err := h.update.Execute(c.Request.Context(), dtos.UpdatePersonCommand{
		ID:             c.Param("id"),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Identification: req.Identification,
		Email:          req.Email,
		Phone:          req.Phone,
		PersonType:     req.PersonType,
		BirthDate:      req.BirthDate,
		Age:            req.Age,
		Team:           req.Team,
		Category:       req.Category,
		Status:         req.Status,
		DocumentTypeID: req.DocumentTypeID,
		FullName:       req.FullName,
		Estado:         req.Estado,
		TipoPersona:    req.TipoPersona,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccessWithWarnings(c, http.StatusOK, result, result.Warnings)
}

// Delete serves DELETE /persons/:id. The lifecycle guard inside the use case
// decides whether the delete may proceed.
func (h *PersonHandler) Delete(c *gin.Context) {
	result, err := h.delete.Execute(c.Request.Context(), dtos.DeletePersonCommand{ID: c.Param("id")})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}

type availabilityRequest struct {
	Value     string `form:"value"`
	ExcludeID string `form:"excludeId"`
}

// CheckIdentification serves GET /persons/check-identification.
func (h *PersonHandler) CheckIdentification(c *gin.Context) {
	req, ok := BindQuery[availabilityRequest](c)
	if !ok {
		return
	}
	result, err := h.checkIdentification.Execute(c.Request.Context(), dtos.CheckAvailabilityQuery{
		Value:     req.Value,
		ExcludeID: req.ExcludeID,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}

// CheckEmail serves GET /persons/check-email.
func (h *PersonHandler) CheckEmail(c *gin.Context) {
	req, ok := BindQuery[availabilityRequest](c)
	if !ok {
		return
	}
	result, err := h.checkEmail.Execute(c.Request.Context(), dtos.CheckAvailabilityQuery{
		Value:     req.Value,
		ExcludeID: req.ExcludeID,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}

// DocumentTypes serves GET /document-types.
func (h *PersonHandler) DocumentTypes(c *gin.Context) {
	result, err := h.documentTypes.Execute(c.Request.Context())
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}
