package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "crimemap/internal/errors"
	"crimemap/internal/models"
)

// categoryService handles the two-level incident taxonomy.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// GetCategories returns all categories ordered for menu display.
func (s *categoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("sort_order, id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// CountCategories returns the total number of category rows.
func (s *categoryService) CountCategories() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

// FindCategoryBySlug looks up a category by exact slug equality. A slug that
// matches no category returns (nil, nil): the dashboard treats an unknown
// filter as "no filter", not as an error.
func (s *categoryService) FindCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// GetCategoryByID retrieves a category with its sub-categories.
func (s *categoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.Preload("SubCategories").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// CreateCategory creates a new category.
func (s *categoryService) CreateCategory(name, slug, description, icon, color string, sortOrder int) (*models.Category, error) {
	if name == "" || slug == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name and slug are required")
	}

	if err := s.checkSlugFree(slug); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        name,
		Slug:        slug,
		Description: description,
		Icon:        icon,
		Color:       color,
		IsActive:    true,
		SortOrder:   sortOrder,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return category, nil
}

// UpdateCategory updates an existing category. Only provided fields change;
// the slug is immutable because it is the external filter key.
func (s *categoryService) UpdateCategory(id uint, name, description, icon, color string, isActive *bool, sortOrder *int) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if icon != "" {
		updates["icon"] = icon
	}
	if color != "" {
		updates["color"] = color
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	if sortOrder != nil {
		updates["sort_order"] = *sortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return category, nil
}

// DeleteCategory deletes a category and, via the FK cascade, its sub-categories.
// Monitoring records keep their dangling category_id; the aggregation engine
// groups those under "Unknown".
func (s *categoryService) DeleteCategory(id uint) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Select("SubCategories").Delete(&category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetSubCategories returns the sub-categories of a category in display order.
func (s *categoryService) GetSubCategories(categoryID uint) ([]models.SubCategory, error) {
	if _, err := s.GetCategoryByID(categoryID); err != nil {
		return nil, err
	}

	var subCategories []models.SubCategory
	if err := s.db.Where("category_id = ?", categoryID).Order("sort_order, id").Find(&subCategories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return subCategories, nil
}

// CreateSubCategory creates a sub-category under the given category. A nil
// color inherits the parent category's color at render time.
func (s *categoryService) CreateSubCategory(categoryID uint, name, slug, description, icon string, color *string, sortOrder int) (*models.SubCategory, error) {
	if name == "" || slug == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "sub-category name and slug are required")
	}

	if _, err := s.GetCategoryByID(categoryID); err != nil {
		return nil, err
	}
	if err := s.checkSlugFree(slug); err != nil {
		return nil, err
	}

	subCategory := &models.SubCategory{
		CategoryID:  categoryID,
		Name:        name,
		Slug:        slug,
		Description: description,
		Icon:        icon,
		Color:       color,
		IsActive:    true,
		SortOrder:   sortOrder,
	}

	if err := s.db.Create(subCategory).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return subCategory, nil
}

// DeleteSubCategory deletes a sub-category of the given category.
func (s *categoryService) DeleteSubCategory(categoryID, subCategoryID uint) error {
	var subCategory models.SubCategory
	if err := s.db.Where("id = ? AND category_id = ?", subCategoryID, categoryID).First(&subCategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&subCategory).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// checkSlugFree enforces global slug uniqueness across categories and
// sub-categories, since both share the slug namespace used for filtering.
func (s *categoryService) checkSlugFree(slug string) error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count == 0 {
		if err := s.db.Model(&models.SubCategory{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	if count > 0 {
		return apperrors.ErrDuplicateSlug
	}
	return nil
}
