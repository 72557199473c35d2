package models

// Service is a cleaning service shown on the public site. DisplayOrder
// drives listing order; the featured subset appears on the home page.
type Service struct {
	BaseModel
	Title           string `gorm:"size:200;not null" json:"title"`
	Description     string `gorm:"type:text;not null" json:"description"`
	LongDescription string `gorm:"type:text" json:"long_description"`
	Icon            string `gorm:"size:50;default:'sparkles'" json:"icon"`
	Image           string `gorm:"size:255;default:'default.jpg'" json:"image"`
	Featured        bool   `gorm:"default:false" json:"featured"`
	DisplayOrder    int    `gorm:"default:0" json:"display_order"`
	SEOTitle        string `gorm:"size:200" json:"seo_title"`
	SEODescription  string `gorm:"size:500" json:"seo_description"`
	SEOKeywords     string `gorm:"size:500" json:"seo_keywords"`
}
