package model

import "time"

// SiteConfigID is the fixed identifier of the singleton configuration row.
// Writes always target this key, so saving is an idempotent upsert.
const SiteConfigID = "main"

// SiteConfig holds every piece of site-wide copy, the color theme, contact
// channels and logo metadata. All text fields are nullable; absence is
// rendered as an empty string or a hardcoded fallback at the presentation
// layer, never substituted at the data layer.
type SiteConfig struct {
	ID string `json:"id" gorm:"primaryKey;type:varchar(32)"`

	// Hero section
	HeroTitle           *string `json:"heroTitle"`
	HeroSubtitle        *string `json:"heroSubtitle"`
	HeroDescription     *string `json:"heroDescription"`
	HeroButton1Text     *string `json:"heroButton1Text"`
	HeroButton2Text     *string `json:"heroButton2Text"`
	HeroBackgroundImage *string `json:"heroBackgroundImage"`

	// Logo
	LogoName   *string `json:"logoName"`
	LogoSvg    *string `json:"logoSvg"`
	LogoWidth  *int    `json:"logoWidth"`
	LogoHeight *int    `json:"logoHeight"`

	// Before/after section
	BeforeAfterTitle       *string `json:"beforeAfterTitle"`
	BeforeAfterDescription *string `json:"beforeAfterDescription"`
	BeforeImage            *string `json:"beforeImage"`
	AfterImage             *string `json:"afterImage"`

	// Section copy
	ServicesTitle       *string `json:"servicesTitle"`
	ServicesDescription *string `json:"servicesDescription"`
	ProjectsTitle       *string `json:"projectsTitle"`
	ProjectsDescription *string `json:"projectsDescription"`
	ContactTitle        *string `json:"contactTitle"`
	ContactDescription  *string `json:"contactDescription"`
	ContactFormTitle    *string `json:"contactFormTitle"`
	TeamTitle           *string `json:"teamTitle"`
	TeamSubtitle        *string `json:"teamSubtitle"`
	TeamDescription     *string `json:"teamDescription"`

	// Contact channels
	ContactEmail   *string `json:"contactEmail"`
	ContactPhone   *string `json:"contactPhone"`
	ContactAddress *string `json:"contactAddress"`
	WhatsappLink   *string `json:"whatsappLink"`
	InstagramLink  *string `json:"instagramLink"`

	// Color theme
	PrimaryColor     *string `json:"primaryColor"`
	SecondaryColor   *string `json:"secondaryColor"`
	AccentColor      *string `json:"accentColor"`
	AlternativeColor *string `json:"alternativeColor"`
	GradientFrom     *string `json:"gradientFrom"`
	GradientTo       *string `json:"gradientTo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentFields maps content payload keys to their database columns. The
// config write handler only touches columns listed for the requested type,
// which keeps the two write variants ("content" and "colors") disjoint.
var ContentFields = map[string]string{
	"heroTitle":              "hero_title",
	"heroSubtitle":           "hero_subtitle",
	"heroDescription":        "hero_description",
	"heroButton1Text":        "hero_button1_text",
	"heroButton2Text":        "hero_button2_text",
	"heroBackgroundImage":    "hero_background_image",
	"logoName":               "logo_name",
	"logoSvg":                "logo_svg",
	"logoWidth":              "logo_width",
	"logoHeight":             "logo_height",
	"beforeAfterTitle":       "before_after_title",
	"beforeAfterDescription": "before_after_description",
	"beforeImage":            "before_image",
	"afterImage":             "after_image",
	"servicesTitle":          "services_title",
	"servicesDescription":    "services_description",
	"projectsTitle":          "projects_title",
	"projectsDescription":    "projects_description",
	"contactTitle":           "contact_title",
	"contactDescription":     "contact_description",
	"contactFormTitle":       "contact_form_title",
	"teamTitle":              "team_title",
	"teamSubtitle":           "team_subtitle",
	"teamDescription":        "team_description",
	"contactEmail":           "contact_email",
	"contactPhone":           "contact_phone",
	"contactAddress":         "contact_address",
	"whatsappLink":           "whatsapp_link",
	"instagramLink":          "instagram_link",
}

// IntFields marks payload keys whose values are integers rather than strings.
var IntFields = map[string]bool{
	"logoWidth":  true,
	"logoHeight": true,
}

// ColorFields maps color payload keys to their database columns.
var ColorFields = map[string]string{
	"primary":      "primary_color",
	"secondary":    "secondary_color",
	"accent":       "accent_color",
	"alternative":  "alternative_color",
	"gradientFrom": "gradient_from",
	"gradientTo":   "gradient_to",
}

// DefaultSiteConfig returns the configuration served when no row exists.
// Every field is populated so clients never see a missing key.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		ID:                     SiteConfigID,
		HeroTitle:              strPtr("Architectural Excellence"),
		HeroSubtitle:           strPtr("Creating spaces that inspire and endure"),
		HeroDescription:        strPtr("Transform your vision into reality with our innovative architectural solutions."),
		HeroButton1Text:        strPtr("View Projects"),
		HeroButton2Text:        strPtr("Contact Us"),
		HeroBackgroundImage:    strPtr(""),
		LogoName:               strPtr(""),
		LogoSvg:                strPtr(""),
		LogoWidth:              intPtr(8),
		LogoHeight:             intPtr(8),
		BeforeAfterTitle:       strPtr("Before & After"),
		BeforeAfterDescription: strPtr(""),
		BeforeImage:            strPtr(""),
		AfterImage:             strPtr(""),
		ServicesTitle:          strPtr("Our Services"),
		ServicesDescription:    strPtr(""),
		ProjectsTitle:          strPtr("Our Projects"),
		ProjectsDescription:    strPtr(""),
		ContactTitle:           strPtr("Get in Touch"),
		ContactDescription:     strPtr(""),
		ContactFormTitle:       strPtr("Send us a message"),
		TeamTitle:              strPtr("Our Team"),
		TeamSubtitle:           strPtr(""),
		TeamDescription:        strPtr(""),
		ContactEmail:           strPtr(""),
		ContactPhone:           strPtr(""),
		ContactAddress:         strPtr(""),
		WhatsappLink:           strPtr(""),
		InstagramLink:          strPtr(""),
		PrimaryColor:           strPtr("#000000"),
		SecondaryColor:         strPtr("#ffffff"),
		AccentColor:            strPtr("#6366f1"),
		AlternativeColor:       strPtr("#f5f5f4"),
		GradientFrom:           strPtr("#6366f1"),
		GradientTo:             strPtr("#8b5cf6"),
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
