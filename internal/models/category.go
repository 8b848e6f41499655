package models

// Category is the top level of the two-level incident taxonomy.
// Slug is the external filter key used by the dashboard; the numeric ID
// never leaves the API surface for filtering purposes.
type Category struct {
	Base
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	Icon        string `gorm:"size:10" json:"icon"`
	Color       string `json:"color"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	SubCategories []SubCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"sub_categories,omitempty"`
}

// SubCategory belongs to exactly one Category. Deleting the parent cascades.
// Color is nullable; a nil color inherits the parent category's color in the UI.
type SubCategory struct {
	Base
	CategoryID  uint    `gorm:"not null;index" json:"category_id"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description string  `json:"description"`
	Icon        string  `gorm:"size:10" json:"icon"`
	Color       *string `json:"color"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`
	SortOrder   int     `gorm:"default:0" json:"sort_order"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
