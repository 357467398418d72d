package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/walleto/internal/core/ports/services"
	"github.com/SscSPs/walleto/internal/dto"
	"github.com/SscSPs/walleto/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories and subcategories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(svc portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{
		categoryService: svc,
	}
}

// RegisterCategoryRoutes registers routes related to categories.
func RegisterCategoryRoutes(rg *gin.RouterGroup, svc portssvc.CategorySvcFacade) {
	registerValidators()
	h := newCategoryHandler(svc)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.POST("/:id/activate", h.activateCategory)
		categories.POST("/:id/deactivate", h.deactivateCategory)

		subs := categories.Group("/:id/subcategories")
		subs.POST("", h.addSubCategory)
		subs.PUT("/:subId", h.updateSubCategory)
		subs.POST("/:subId/activate", h.activateSubCategory)
		subs.POST("/:subId/deactivate", h.deactivateSubCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Category already exists"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce  json
// @Param   type query string false "INCOME or EXPENSE"
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListCategories", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), params, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// getCategory godoc
// @Summary Get a category with its subcategories
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), categoryID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "New details"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// activateCategory godoc
// @Summary Reactivate a category
// @Description Subcategories stay as they are
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 422 {object} map[string]string "Category already active"
// @Security BearerAuth
// @Router /categories/{id}/activate [post]
func (h *categoryHandler) activateCategory(c *gin.Context) {
	h.toggleCategory(c, true)
}

// deactivateCategory godoc
// @Summary Deactivate a category
// @Description Also deactivates every active subcategory
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 422 {object} map[string]string "Category already inactive"
// @Security BearerAuth
// @Router /categories/{id}/deactivate [post]
func (h *categoryHandler) deactivateCategory(c *gin.Context) {
	h.toggleCategory(c, false)
}

func (h *categoryHandler) toggleCategory(c *gin.Context, activate bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}

	op := h.categoryService.DeactivateCategory
	if activate {
		op = h.categoryService.ActivateCategory
	}
	category, err := op(c.Request.Context(), categoryID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to change category status")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// addSubCategory godoc
// @Summary Add a subcategory
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   subcategory body dto.SubCategoryRequest true "Subcategory details"
// @Success 201 {object} dto.SubCategoryResponse
// @Failure 409 {object} map[string]string "Name already used in this category"
// @Failure 422 {object} map[string]string "Category is inactive"
// @Security BearerAuth
// @Router /categories/{id}/subcategories [post]
func (h *categoryHandler) addSubCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	var req dto.SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddSubCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sub, err := h.categoryService.AddSubCategory(c.Request.Context(), categoryID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to add subcategory")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubCategoryResponse(*sub))
}

// updateSubCategory godoc
// @Summary Rename a subcategory
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   subId path string true "Subcategory ID"
// @Param   subcategory body dto.SubCategoryRequest true "New details"
// @Success 200 {object} dto.SubCategoryResponse
// @Failure 404 {object} map[string]string "Category or subcategory not found"
// @Failure 409 {object} map[string]string "Name already used in this category"
// @Security BearerAuth
// @Router /categories/{id}/subcategories/{subId} [put]
func (h *categoryHandler) updateSubCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	subID, ok := pathID(c, logger, "subId")
	if !ok {
		return
	}
	var req dto.SubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSubCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sub, err := h.categoryService.UpdateSubCategory(c.Request.Context(), categoryID, subID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update subcategory")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubCategoryResponse(*sub))
}

// activateSubCategory godoc
// @Summary Reactivate a subcategory
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   subId path string true "Subcategory ID"
// @Success 200 {object} dto.SubCategoryResponse
// @Security BearerAuth
// @Router /categories/{id}/subcategories/{subId}/activate [post]
func (h *categoryHandler) activateSubCategory(c *gin.Context) {
	h.toggleSubCategory(c, true)
}

// deactivateSubCategory godoc
// @Summary Deactivate a subcategory
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Param   subId path string true "Subcategory ID"
// @Success 200 {object} dto.SubCategoryResponse
// @Security BearerAuth
// @Router /categories/{id}/subcategories/{subId}/deactivate [post]
func (h *categoryHandler) deactivateSubCategory(c *gin.Context) {
	h.toggleSubCategory(c, false)
}

func (h *categoryHandler) toggleSubCategory(c *gin.Context, activate bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, logger, "id")
	if !ok {
		return
	}
	subID, ok := pathID(c, logger, "subId")
	if !ok {
		return
	}

	op := h.categoryService.DeactivateSubCategory
	if activate {
		op = h.categoryService.ActivateSubCategory
	}
	sub, err := op(c.Request.Context(), categoryID, subID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to change subcategory status")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubCategoryResponse(*sub))
}
