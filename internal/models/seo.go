package models

// SEOSettings holds per-page SEO metadata keyed by the logical page name.
// Rows are created lazily the first time a page key is edited or rendered.
type SEOSettings struct {
	BaseModel
	PageName       string `gorm:"uniqueIndex;size:100" json:"page_name"`
	Title          string `gorm:"size:200" json:"title"`
	Description    string `gorm:"size:500" json:"description"`
	Keywords       string `gorm:"size:500" json:"keywords"`
	MetaImage      string `gorm:"size:255" json:"meta_image"`
	CanonicalURL   string `gorm:"size:255" json:"canonical_url"`
	Robots         string `gorm:"size:100;default:'index, follow'" json:"robots"`
	OGType         string `gorm:"size:50;default:'website'" json:"og_type"`
	TwitterCard    string `gorm:"size:50;default:'summary_large_image'" json:"twitter_card"`
	StructuredData string `gorm:"type:text" json:"structured_data"`
	CustomHeadCode string `gorm:"type:text" json:"custom_head_code"`
}

// NewSEOSettings returns an SEO row for the given page key with defaults
// applied.
func NewSEOSettings(page string) SEOSettings {
	return SEOSettings{
		PageName:    page,
		Robots:      "index, follow",
		OGType:      "website",
		TwitterCard: "summary_large_image",
	}
}
