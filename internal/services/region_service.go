package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "crimemap/internal/errors"
	"crimemap/internal/models"
)

// regionService serves the read-only administrative region hierarchy used by
// the data-entry dropdowns. Region rows are seeded out of band.
type regionService struct {
	db *gorm.DB
}

// NewRegionService creates a new RegionServicer.
func NewRegionService(db *gorm.DB) RegionServicer {
	return &regionService{db: db}
}

// GetProvinsi returns all provinces.
func (s *regionService) GetProvinsi() ([]models.Provinsi, error) {
	var provinsi []models.Provinsi
	if err := s.db.Order("nama").Find(&provinsi).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return provinsi, nil
}

// GetKabupatenKota returns the regencies/cities of a province.
func (s *regionService) GetKabupatenKota(provinsiID uint) ([]models.KabupatenKota, error) {
	if err := s.exists(&models.Provinsi{}, provinsiID, apperrors.ErrProvinsiNotFound); err != nil {
		return nil, err
	}

	var kabupatenKota []models.KabupatenKota
	if err := s.db.Where("provinsi_id = ?", provinsiID).Order("nama").Find(&kabupatenKota).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return kabupatenKota, nil
}

// GetKecamatan returns the districts of a regency/city.
func (s *regionService) GetKecamatan(kabupatenKotaID uint) ([]models.Kecamatan, error) {
	if err := s.exists(&models.KabupatenKota{}, kabupatenKotaID, apperrors.ErrKabupatenKotaNotFound); err != nil {
		return nil, err
	}

	var kecamatan []models.Kecamatan
	if err := s.db.Where("kabupaten_kota_id = ?", kabupatenKotaID).Order("nama").Find(&kecamatan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return kecamatan, nil
}

func (s *regionService) exists(model interface{}, id uint, notFound *apperrors.AppError) error {
	if err := s.db.First(model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
