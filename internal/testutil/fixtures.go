package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"crimemap/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an active user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    fmt.Sprintf("operator%d@test.com", nextID()),
		Password: string(hash),
		Name:     "Test Operator",
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProvinsi creates a province with a unique name.
func CreateTestProvinsi(t *testing.T, db *gorm.DB) *models.Provinsi {
	t.Helper()

	provinsi := &models.Provinsi{Nama: fmt.Sprintf("Provinsi %d", nextID())}
	if err := db.Create(provinsi).Error; err != nil {
		t.Fatalf("failed to create test provinsi: %v", err)
	}
	return provinsi
}

// CreateTestKabupatenKota creates a regency/city under the given province.
func CreateTestKabupatenKota(t *testing.T, db *gorm.DB, provinsiID uint) *models.KabupatenKota {
	t.Helper()

	kabupatenKota := &models.KabupatenKota{
		ProvinsiID: provinsiID,
		Nama:       fmt.Sprintf("Kabupaten %d", nextID()),
	}
	if err := db.Create(kabupatenKota).Error; err != nil {
		t.Fatalf("failed to create test kabupaten/kota: %v", err)
	}
	return kabupatenKota
}

// CreateTestKecamatan creates a district under the given regency/city.
func CreateTestKecamatan(t *testing.T, db *gorm.DB, kabupatenKotaID uint) *models.Kecamatan {
	t.Helper()

	kecamatan := &models.Kecamatan{
		KabupatenKotaID: kabupatenKotaID,
		Nama:            fmt.Sprintf("Kecamatan %d", nextID()),
	}
	if err := db.Create(kecamatan).Error; err != nil {
		t.Fatalf("failed to create test kecamatan: %v", err)
	}
	return kecamatan
}

// CreateTestCategory creates a category with a unique name and slug.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()

	n := nextID()
	category := &models.Category{
		Name:     fmt.Sprintf("Test Category %d", n),
		Slug:     fmt.Sprintf("test-category-%d", n),
		IsActive: true,
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestSubCategory creates a sub-category under the given category.
func CreateTestSubCategory(t *testing.T, db *gorm.DB, categoryID uint) *models.SubCategory {
	t.Helper()

	n := nextID()
	subCategory := &models.SubCategory{
		CategoryID: categoryID,
		Name:       fmt.Sprintf("Test Sub Category %d", n),
		Slug:       fmt.Sprintf("test-sub-category-%d", n),
		IsActive:   true,
	}
	if err := db.Create(subCategory).Error; err != nil {
		t.Fatalf("failed to create test sub-category: %v", err)
	}
	return subCategory
}

// CreateTestMonitoringData creates an open, low-severity monitoring record.
func CreateTestMonitoringData(t *testing.T, db *gorm.DB, provinsiID, categoryID uint) *models.MonitoringData {
	t.Helper()
	return CreateTestMonitoringDataAt(t, db, provinsiID, categoryID, time.Time{})
}

// CreateTestMonitoringDataAt creates a monitoring record with an explicit
// creation time, for recency-ordering tests. A zero createdAt lets GORM
// stamp the current time.
func CreateTestMonitoringDataAt(t *testing.T, db *gorm.DB, provinsiID, categoryID uint, createdAt time.Time) *models.MonitoringData {
	t.Helper()

	record := &models.MonitoringData{
		Base:          models.Base{CreatedAt: createdAt},
		ProvinsiID:    provinsiID,
		CategoryID:    categoryID,
		SeverityLevel: models.SeverityLow,
		Status:        models.StatusOpen,
		Description:   fmt.Sprintf("Test record %d", nextID()),
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test monitoring data: %v", err)
	}
	return record
}
