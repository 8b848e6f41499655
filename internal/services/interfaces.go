package services

import (
	"crimemap/internal/models"
	"crimemap/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	AttemptLogin(email, password string) (*models.User, error)
}

// CategoryServicer defines the contract for category reference data.
type CategoryServicer interface {
	GetCategories() ([]models.Category, error)
	CountCategories() (int64, error)
	FindCategoryBySlug(slug string) (*models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	CreateCategory(name, slug, description, icon, color string, sortOrder int) (*models.Category, error)
	UpdateCategory(id uint, name, description, icon, color string, isActive *bool, sortOrder *int) (*models.Category, error)
	DeleteCategory(id uint) error
	GetSubCategories(categoryID uint) ([]models.SubCategory, error)
	CreateSubCategory(categoryID uint, name, slug, description, icon string, color *string, sortOrder int) (*models.SubCategory, error)
	DeleteSubCategory(categoryID, subCategoryID uint) error
}

// RegionServicer defines the contract for the administrative region hierarchy.
type RegionServicer interface {
	GetProvinsi() ([]models.Provinsi, error)
	GetKabupatenKota(provinsiID uint) ([]models.KabupatenKota, error)
	GetKecamatan(kabupatenKotaID uint) ([]models.Kecamatan, error)
}

// CreateMonitoringDataInput holds the fields for a new monitoring record.
type CreateMonitoringDataInput struct {
	ProvinsiID      uint
	KabupatenKotaID *uint
	KecamatanID     *uint
	CategoryID      uint
	SubCategoryID   *uint
	SeverityLevel   models.SeverityLevel
	Status          models.MonitoringStatus
	Description     string
	SumberBerita    *string
}

// MonitoringServicer defines the contract for the monitoring record store.
type MonitoringServicer interface {
	CreateMonitoringData(input CreateMonitoringDataInput) (*models.MonitoringData, error)
	// FetchWithRelations returns records in storage order with all five owning
	// relations resolved, optionally restricted to one category.
	FetchWithRelations(categoryID *uint) ([]models.MonitoringData, error)
	GetMonitoringDataByID(id uint) (*models.MonitoringData, error)
	ListMonitoringData(page pagination.PageRequest) (*pagination.PageResponse[models.MonitoringData], error)
	DeleteMonitoringData(id uint) error
}

// DashboardServicer defines the contract for the dashboard payload.
type DashboardServicer interface {
	GetDashboard(categorySlug string) (*DashboardData, error)
}
