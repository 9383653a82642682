package models

// SiteContent is the site_content/main singleton: marketing copy plus the
// operational settings the deposit flow needs.
type SiteContent struct {
	SiteName       string `json:"site_name" bson:"site_name"`
	HeroTitle      string `json:"hero_title" bson:"hero_title"`
	HeroSubtitle   string `json:"hero_subtitle" bson:"hero_subtitle"`
	AboutStory     string `json:"about_story" bson:"about_story"`
	DepositAddress string `json:"deposit_address" bson:"deposit_address"`
	ContactEmail   string `json:"contact_email" bson:"contact_email"`
	ContactPhone   string `json:"contact_phone" bson:"contact_phone"`
}

// ThemeSettings is the site_content/theme singleton.
type ThemeSettings struct {
	Mode           string `json:"mode" bson:"mode"`
	PrimaryColor   string `json:"primary_color" bson:"primary_color"`
	SecondaryColor string `json:"secondary_color" bson:"secondary_color"`
}

// SiteStatus is the site_status/main singleton.
type SiteStatus struct {
	IsMaintenance bool `json:"is_maintenance" bson:"is_maintenance"`
}
