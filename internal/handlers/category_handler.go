package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "crimemap/internal/errors"
	"crimemap/internal/services"
)

// CategoryHandler handles category taxonomy requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Slug        string `json:"slug" binding:"required,slug,max=255"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"max=10"`
	Color       string `json:"color" binding:"omitempty,hex_color"`
	SortOrder   int    `json:"sort_order"`
}

// UpdateCategoryRequest represents the request payload for updating a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"max=255"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"max=10"`
	Color       string `json:"color" binding:"omitempty,hex_color"`
	IsActive    *bool  `json:"is_active"`
	SortOrder   *int   `json:"sort_order"`
}

// CreateSubCategoryRequest represents the request payload for creating a sub-category
type CreateSubCategoryRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Slug        string  `json:"slug" binding:"required,slug,max=255"`
	Description string  `json:"description"`
	Icon        string  `json:"icon" binding:"max=10"`
	Color       *string `json:"color" binding:"omitempty,hex_color"`
	SortOrder   int     `json:"sort_order"`
}

// GetCategories handles the retrieval of all categories
// @Summary     Get all categories
// @Description Get all incident categories in menu order
// @Tags        categories
// @Produce     json
// @Success     200 {array} models.Category "List of categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryByID handles the retrieval of a specific category
// @Summary     Get category by ID
// @Description Get a category with its sub-categories
// @Tags        categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {object} models.Category "Category details"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a new incident category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate slug"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Slug, req.Description, req.Icon, req.Color, req.SortOrder)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory handles updating a category
// @Summary     Update category
// @Description Update an existing incident category (the slug is immutable)
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Param       request body UpdateCategoryRequest true "Updated category details"
// @Success     200 {object} models.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input or category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(categoryID, req.Name, req.Description, req.Icon, req.Color, req.IsActive, req.SortOrder)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// DeleteCategory handles deleting a category
// @Summary     Delete category
// @Description Delete a category and its sub-categories
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// GetSubCategories handles the retrieval of a category's sub-categories
// @Summary     Get sub-categories
// @Description Get the sub-categories of a category in display order
// @Tags        categories
// @Produce     json
// @Param       id path int true "Category ID"
// @Success     200 {array} models.SubCategory "List of sub-categories"
// @Failure     400 {object} ErrorResponse "Invalid category ID"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id}/sub-categories [get]
func (h *CategoryHandler) GetSubCategories(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	subCategories, err := h.categoryService.GetSubCategories(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sub_categories": subCategories})
}

// CreateSubCategory handles the creation of a new sub-category
// @Summary     Create a sub-category
// @Description Create a new sub-category under a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Param       request body CreateSubCategoryRequest true "Sub-category details"
// @Success     201 {object} models.SubCategory "Sub-category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Duplicate slug"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id}/sub-categories [post]
func (h *CategoryHandler) CreateSubCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	subCategory, err := h.categoryService.CreateSubCategory(categoryID, req.Name, req.Slug, req.Description, req.Icon, req.Color, req.SortOrder)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sub_category": subCategory})
}

// DeleteSubCategory handles deleting a sub-category
// @Summary     Delete sub-category
// @Description Delete a sub-category of a category
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Param       subId path int true "Sub-category ID"
// @Success     200 {object} MessageResponse "Sub-category deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Sub-category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id}/sub-categories/{subId} [delete]
func (h *CategoryHandler) DeleteSubCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}
	subCategoryID, err := parsePathID(c, "subId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteSubCategory(categoryID, subCategoryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sub-category deleted successfully"})
}
