package models

// SiteSettings stores site-wide identity, contact channels and branding
// managed via the admin panel. There should be only one row (singleton
// pattern); it is seeded at startup and lazily re-created if missing.
type SiteSettings struct {
	BaseModel
	CompanyName string `gorm:"size:200;default:'Bellari Propreté Services'" json:"company_name"`
	Phone       string `gorm:"size:30;default:'+212 6 80 76 03 52'" json:"phone"`
	Email       string `gorm:"size:120;default:'bellari.groupe@gmail.com'" json:"email"`
	Whatsapp    string `gorm:"size:30;default:'+212680760352'" json:"whatsapp"`
	Facebook    string `gorm:"size:200" json:"facebook"`
	Instagram   string `gorm:"size:200" json:"instagram"`
	Address     string `gorm:"type:text;default:'Maroc'" json:"address"`

	// Branding
	LogoText       string `gorm:"size:100;default:'Bellari'" json:"logo_text"`
	PrimaryColor   string `gorm:"size:10;default:'1B4D3D'" json:"primary_color"`
	SecondaryColor string `gorm:"size:10;default:'7CB342'" json:"secondary_color"`
	HeroImage      string `gorm:"size:255;default:'cleaning_team_at_work.png'" json:"hero_image"`
	AboutImage     string `gorm:"size:255;default:'clean_office_space.png'" json:"about_image"`
	LogoImage      string `gorm:"size:255" json:"logo_image"`
	Favicon        string `gorm:"size:255" json:"favicon"`

	// Tracking snippets
	HeaderCode       string `gorm:"type:text" json:"header_code"`
	FooterCode       string `gorm:"type:text" json:"footer_code"`
	GoogleAnalytics  string `gorm:"size:50" json:"google_analytics"`
	GoogleTagManager string `gorm:"size:50" json:"google_tag_manager"`
	FacebookPixel    string `gorm:"size:50" json:"facebook_pixel"`

	WhatsappDefaultMessage string `gorm:"type:text;default:'Bonjour, je souhaite demander un devis pour vos services de nettoyage.'" json:"whatsapp_default_message"`
	OpeningHours           string `gorm:"size:200;default:'Lun-Sam: 8h-18h'" json:"opening_hours"`
	MapEmbed               string `gorm:"type:text" json:"map_embed"`
}

// NewSiteSettings returns a settings row populated with the documented
// defaults, matching what the column defaults would produce.
func NewSiteSettings() SiteSettings {
	return SiteSettings{
		CompanyName:            "Bellari Propreté Services",
		Phone:                  "+212 6 80 76 03 52",
		Email:                  "bellari.groupe@gmail.com",
		Whatsapp:               "+212680760352",
		Address:                "Maroc",
		LogoText:               "Bellari",
		PrimaryColor:           "1B4D3D",
		SecondaryColor:         "7CB342",
		HeroImage:              "cleaning_team_at_work.png",
		AboutImage:             "clean_office_space.png",
		WhatsappDefaultMessage: "Bonjour, je souhaite demander un devis pour vos services de nettoyage.",
		OpeningHours:           "Lun-Sam: 8h-18h",
	}
}
