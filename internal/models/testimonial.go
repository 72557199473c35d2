package models

// Testimonial is a customer quote. Only approved rows are shown publicly.
// Rating is expected in 1..5 but not enforced at this layer.
type Testimonial struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Rating   int    `gorm:"default:5" json:"rating"`
	Image    string `gorm:"size:255" json:"image"`
	Approved bool   `gorm:"default:false" json:"approved"`
}
