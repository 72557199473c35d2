package models

import "time"

// SiteImage references an uploaded file in the images directory. Filename is
// the generated name on disk, never the client-supplied one.
type SiteImage struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	Category   string    `gorm:"size:50;default:'general'" json:"category"`
	AltText    string    `gorm:"size:200" json:"alt_text"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}
