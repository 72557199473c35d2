package models

// Admin represents the back-office credential set. The application expects
// exactly one row, seeded at bootstrap and rotated out-of-band.
type Admin struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:80;not null" json:"username"`
	PasswordHash string `gorm:"size:256;not null" json:"-"`
}
