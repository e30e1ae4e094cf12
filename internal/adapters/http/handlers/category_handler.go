package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubarena/rosterhub/internal/adapters/http/common"
	"github.com/clubarena/rosterhub/internal/application/dtos"
)

// Use case contracts the category handler depends on.
type (
	CreateCategoryExecutor interface {
		Execute(ctx context.Context, cmd dtos.CreateCategoryCommand) (*dtos.CategoryCreatedDTO, error)
	}
	UpdateCategoryExecutor interface {
		Execute(ctx context.Context, cmd dtos.UpdateCategoryCommand) (*dtos.CategoryUpdatedDTO, error)
	}
	GetCategoryExecutor interface {
		Execute(ctx context.Context, query dtos.GetCategoryQuery) (*dtos.CategoryDTO, error)
	}
	ListCategoriesExecutor interface {
		Execute(ctx context.Context, query dtos.ListCategoriesQuery) (*dtos.CategoryListDTO, error)
	}
	DeleteCategoryExecutor interface {
		Execute(ctx context.Context, cmd dtos.DeleteCategoryCommand) (*dtos.CategoryDeletedDTO, error)
	}
)

// CategoryHandler serves the sports category endpoints.
type CategoryHandler struct {
	create    CreateCategoryExecutor
	update    UpdateCategoryExecutor
	get       GetCategoryExecutor
	list      ListCategoriesExecutor
	delete    DeleteCategoryExecutor
	checkName AvailabilityExecutor
}

// NewCategoryHandler wires the handler with its use cases.
func NewCategoryHandler(
	create CreateCategoryExecutor,
	update UpdateCategoryExecutor,
	get GetCategoryExecutor,
	list ListCategoriesExecutor,
	del DeleteCategoryExecutor,
	checkName AvailabilityExecutor,
) *CategoryHandler {
	return &CategoryHandler{
		create:    create,
		update:    update,
		get:       get,
		list:      list,
		delete:    del,
		checkName: checkName,
	}
}

// RegisterRoutes mounts the category routes on the given group.
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/check-name", h.CheckName)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

type listCategoriesRequest struct {
	Search string `form:"search"`
	Status string `form:"status" validate:"omitempty,record_status"`
}

// List serves GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	req, ok := BindQuery[listCategoriesRequest](c)
	if !ok {
		return
	}
	page, limit := ParsePagination(c)

	result, err := h.list.Execute(c.Request.Context(), dtos.ListCategoriesQuery{
		Page:   page,
		Limit:  limit,
		Search: req.Search,
		Status: req.Status,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}

// Get serves GET /categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	result, err := h.get.Execute(c.Request.Context(), dtos.GetCategoryQuery{ID: c.Param("id")})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}

// Create serves POST /categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	cmd, ok := BindJSON[dtos.CreateCategoryCommand](c)
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

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	MinAge      *int    `json:"minAge"`
	MaxAge      *int    `json:"maxAge"`
	Status      *string `json:"status"`
	Published   *bool   `json:"published"`
	ImageURL    *string `json:"imageUrl"`
	Description *string `json:"description"`

	Estado string `json:"estado"`
}

// Update serves PUT /categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	req, ok := BindJSON[updateCategoryRequest](c)
	if !ok {
		return
	}

	result, err := h.update.Execute(c.Request.Context(), dtos.UpdateCategoryCommand{
		ID:          c.Param("id"),
		Name:        req.Name,
		MinAge:      req.MinAge,
		MaxAge:      req.MaxAge,
		Status:      req.Status,
		Published:   req.Published,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Estado:      req.Estado,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccessWithWarnings(c, http.StatusOK, result, result.Warnings)
}

// Delete serves DELETE /categories/:id. Rejections name the blocking
// condition: active status or linked records.
func (h *CategoryHandler) Delete(c *gin.Context) {
	result, err := h.delete.Execute(c.Request.Context(), dtos.DeleteCategoryCommand{ID: c.Param("id")})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}

// CheckName serves GET /categories/check-name.
func (h *CategoryHandler) CheckName(c *gin.Context) {
	req, ok := BindQuery[availabilityRequest](c)
	if !ok {
		return
	}
	result, err := h.checkName.Execute(c.Request.Context(), dtos.CheckAvailabilityQuery{
		Value:     req.Value,
		ExcludeID: req.ExcludeID,
	})
	if err != nil {
		common.HandleDomainError(c, err)
		return
	}
	common.RespondSuccess(c, http.StatusOK, result)
}
