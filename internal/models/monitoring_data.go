package models

// SeverityLevel is the ordinal incident severity classification.
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "low"
	SeverityMedium   SeverityLevel = "medium"
	SeverityHigh     SeverityLevel = "high"
	SeverityCritical SeverityLevel = "critical"
)

// MonitoringStatus is the workflow state of a monitoring record.
type MonitoringStatus string

const (
	StatusOpen     MonitoringStatus = "open"
	StatusVerified MonitoringStatus = "verified"
	StatusResolved MonitoringStatus = "resolved"
)

// MonitoringData is the fact table: one incident/monitoring record, geolocated
// by a region hierarchy node and classified by a category/sub-category pair.
// KabupatenKotaID and KecamatanID are nullable because not every record
// resolves below province granularity.
type MonitoringData struct {
	Base
	ProvinsiID      uint             `gorm:"not null;index" json:"provinsi_id"`
	KabupatenKotaID *uint            `gorm:"index" json:"kabupaten_kota_id"`
	KecamatanID     *uint            `gorm:"index" json:"kecamatan_id"`
	CategoryID      uint             `gorm:"not null;index" json:"category_id"`
	SubCategoryID   *uint            `gorm:"index" json:"sub_category_id"`
	SeverityLevel   SeverityLevel    `gorm:"not null" json:"severity_level"`
	Status          MonitoringStatus `gorm:"not null;default:'open'" json:"status"`
	Description     string           `gorm:"type:text" json:"description"`
	SumberBerita    *string          `json:"sumber_berita"`

	Provinsi      *Provinsi      `gorm:"foreignKey:ProvinsiID" json:"provinsi,omitempty"`
	KabupatenKota *KabupatenKota `gorm:"foreignKey:KabupatenKotaID" json:"kabupaten_kota,omitempty"`
	Kecamatan     *Kecamatan     `gorm:"foreignKey:KecamatanID" json:"kecamatan,omitempty"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubCategory   *SubCategory   `gorm:"foreignKey:SubCategoryID" json:"sub_category,omitempty"`
}

// TableName overrides the pluralized default.
func (MonitoringData) TableName() string { return "monitoring_data" }
