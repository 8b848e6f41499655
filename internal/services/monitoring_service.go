package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "crimemap/internal/errors"
	"crimemap/internal/models"
	"crimemap/internal/pagination"
)

// monitoringService handles the monitoring record store.
type monitoringService struct {
	db *gorm.DB
}

// NewMonitoringService creates a new MonitoringServicer.
func NewMonitoringService(db *gorm.DB) MonitoringServicer {
	return &monitoringService{db: db}
}

// CreateMonitoringData creates a monitoring record. The region and taxonomy
// cross-references are enforced here at write time: the schema only requires
// that each foreign key points at an existing row, not that the rows agree
// with each other.
func (s *monitoringService) CreateMonitoringData(input CreateMonitoringDataInput) (*models.MonitoringData, error) {
	if input.SeverityLevel == "" || input.Status == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "severity level and status are required")
	}

	if err := s.validateRegion(input); err != nil {
		return nil, err
	}
	if err := s.validateTaxonomy(input); err != nil {
		return nil, err
	}

	record := &models.MonitoringData{
		ProvinsiID:      input.ProvinsiID,
		KabupatenKotaID: input.KabupatenKotaID,
		KecamatanID:     input.KecamatanID,
		CategoryID:      input.CategoryID,
		SubCategoryID:   input.SubCategoryID,
		SeverityLevel:   input.SeverityLevel,
		Status:          input.Status,
		Description:     input.Description,
		SumberBerita:    input.SumberBerita,
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

// FetchWithRelations returns records in storage order with provinsi,
// kabupaten/kota, kecamatan, category, and sub-category resolved. When
// categoryID is non-nil the set is restricted to that category; any ordering
// beyond storage order (e.g. recency) is the caller's concern.
func (s *monitoringService) FetchWithRelations(categoryID *uint) ([]models.MonitoringData, error) {
	query := s.db.
		Preload("Provinsi").
		Preload("KabupatenKota").
		Preload("Kecamatan").
		Preload("Category").
		Preload("SubCategory")

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var records []models.MonitoringData
	if err := query.Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return records, nil
}

// GetMonitoringDataByID retrieves one record with its relations resolved.
func (s *monitoringService) GetMonitoringDataByID(id uint) (*models.MonitoringData, error) {
	var record models.MonitoringData
	err := s.db.
		Preload("Provinsi").
		Preload("KabupatenKota").
		Preload("Kecamatan").
		Preload("Category").
		Preload("SubCategory").
		First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMonitoringDataNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// ListMonitoringData returns a paginated page of records, newest first.
func (s *monitoringService) ListMonitoringData(page pagination.PageRequest) (*pagination.PageResponse[models.MonitoringData], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.MonitoringData{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var records []models.MonitoringData
	err := s.db.
		Preload("Provinsi").
		Preload("KabupatenKota").
		Preload("Kecamatan").
		Preload("Category").
		Preload("SubCategory").
		Order("created_at DESC, id DESC").
		Scopes(pagination.Paginate(page)).
		Find(&records).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(records, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteMonitoringData deletes a record.
func (s *monitoringService) DeleteMonitoringData(id uint) error {
	var record models.MonitoringData
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMonitoringDataNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&record).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// validateRegion checks that the provinsi exists, the kabupaten/kota (when
// given) belongs to the provinsi, and the kecamatan (when given) belongs to
// the kabupaten/kota. A kecamatan without a kabupaten/kota is rejected.
func (s *monitoringService) validateRegion(input CreateMonitoringDataInput) error {
	var provinsi models.Provinsi
	if err := s.db.First(&provinsi, input.ProvinsiID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProvinsiNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if input.KabupatenKotaID != nil {
		var kabupatenKota models.KabupatenKota
		if err := s.db.First(&kabupatenKota, *input.KabupatenKotaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrKabupatenKotaNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if kabupatenKota.ProvinsiID != input.ProvinsiID {
			return apperrors.WithMessage(apperrors.ErrRegionMismatch, "kabupaten/kota does not belong to the given provinsi")
		}
	}

	if input.KecamatanID != nil {
		if input.KabupatenKotaID == nil {
			return apperrors.WithMessage(apperrors.ErrRegionMismatch, "kecamatan requires a kabupaten/kota")
		}
		var kecamatan models.Kecamatan
		if err := s.db.First(&kecamatan, *input.KecamatanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrKecamatanNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if kecamatan.KabupatenKotaID != *input.KabupatenKotaID {
			return apperrors.WithMessage(apperrors.ErrRegionMismatch, "kecamatan does not belong to the given kabupaten/kota")
		}
	}

	return nil
}

// validateTaxonomy checks that the category exists and that the sub-category,
// when given, belongs to it.
func (s *monitoringService) validateTaxonomy(input CreateMonitoringDataInput) error {
	var category models.Category
	if err := s.db.First(&category, input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if input.SubCategoryID != nil {
		var subCategory models.SubCategory
		if err := s.db.First(&subCategory, *input.SubCategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSubCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if subCategory.CategoryID != input.CategoryID {
			return apperrors.ErrSubCategoryMismatch
		}
	}

	return nil
}
