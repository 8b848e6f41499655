package models

// Provinsi is the top level of the administrative region hierarchy.
// Region rows are reference data, seeded out of band and treated as read-only.
type Provinsi struct {
	Base
	Nama string `gorm:"not null" json:"nama"`

	KabupatenKota []KabupatenKota `gorm:"foreignKey:ProvinsiID" json:"kabupaten_kota,omitempty"`
}

// KabupatenKota is a regency or city within a province.
type KabupatenKota struct {
	Base
	ProvinsiID uint   `gorm:"not null;index" json:"provinsi_id"`
	Nama       string `gorm:"not null" json:"nama"`

	Provinsi  *Provinsi   `gorm:"foreignKey:ProvinsiID" json:"provinsi,omitempty"`
	Kecamatan []Kecamatan `gorm:"foreignKey:KabupatenKotaID" json:"kecamatan,omitempty"`
}

// Kecamatan is a district within a regency/city.
type Kecamatan struct {
	Base
	KabupatenKotaID uint   `gorm:"not null;index" json:"kabupaten_kota_id"`
	Nama            string `gorm:"not null" json:"nama"`

	KabupatenKota *KabupatenKota `gorm:"foreignKey:KabupatenKotaID" json:"kabupaten_kota,omitempty"`
}

// TableName overrides the pluralized default; the table holds a list of provinces.
func (Provinsi) TableName() string { return "provinsi" }

// TableName overrides the pluralized default.
func (KabupatenKota) TableName() string { return "kabupaten_kota" }

// TableName overrides the pluralized default.
func (Kecamatan) TableName() string { return "kecamatan" }
