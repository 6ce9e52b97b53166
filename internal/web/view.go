package web

import (
	"html/template"

	"gorm.io/gorm"

	"github.com/MarloFC/ArchProj/internal/model"
)

// View models project the stored entities into themed markup inputs. All
// fallbacks for absent copy live here, at the presentation boundary; the data
// layer stores nulls as-is.

// Theme carries the resolved color palette.
type Theme struct {
	Primary      string
	Secondary    string
	Accent       string
	Alternative  string
	GradientFrom string
	GradientTo   string
}

// Logo carries the resolved logo presentation.
type Logo struct {
	Name   string
	Svg    template.HTML
	Width  int
	Height int
}

// ContactInfo feeds the footer and the contact section.
type ContactInfo struct {
	Title        string
	Description  string
	FormTitle    string
	Email        string
	Phone        string
	Address      string
	WhatsappLink string
	InstagramURL string
}

// Base is shared by every page view.
type Base struct {
	PageTitle string
	Theme     Theme
	Logo      Logo
	Contact   ContactInfo
}

// HeroView is the home hero section.
type HeroView struct {
	Title           string
	Subtitle        string
	Description     string
	Button1Text     string
	Button2Text     string
	BackgroundImage string
}

// BeforeAfterView is the comparison section.
type BeforeAfterView struct {
	Title       string
	Description string
	BeforeImage string
	AfterImage  string
}

// ServiceView is a single rendered offering. Description fields are
// producer-trusted rich HTML and render unescaped.
type ServiceView struct {
	Title               string
	Description         template.HTML
	DetailedDescription template.HTML
	Icon                model.Icon
}

// ProjectView is a single rendered portfolio entry.
type ProjectView struct {
	ID          uint
	Title       string
	Description template.HTML
	Details     template.HTML
	Category    string
	Gallery     []string
	Featured    bool
}

// TeamMemberView is a single rendered profile.
type TeamMemberView struct {
	Name      string
	Role      string
	ImageUrl  string
	Linkedin  string
	Instagram string
	Email     string
}

// HomeView is the full home page.
type HomeView struct {
	Base
	Hero                HeroView
	BeforeAfter         BeforeAfterView
	ServicesTitle       string
	ServicesDescription string
	Services            []ServiceView
	ProjectsTitle       string
	ProjectsDescription string
	Projects            []ProjectView
}

// TeamView is the team page.
type TeamView struct {
	Base
	Title       string
	Subtitle    string
	Description string
	Members     []TeamMemberView
}

// ProjectsView is the portfolio index page.
type ProjectsView struct {
	Base
	Title       string
	Description string
	Projects    []ProjectView
}

// ProjectDetailView is a single portfolio entry page.
type ProjectDetailView struct {
	Base
	Project ProjectView
}

func str(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

// Rich text stored by the admin panel is producer-trusted markup.
func rich(p *string) template.HTML {
	if p == nil {
		return ""
	}
	return template.HTML(*p)
}

func num(p *int, fallback int) int {
	if p == nil || *p == 0 {
		return fallback
	}
	return *p
}

// loadConfig fetches the singleton, degrading to defaults when the row is
// absent or the store is unreachable. Public pages never surface a read error.
func loadConfig(db *gorm.DB) *model.SiteConfig {
	var cfg model.SiteConfig
	if err := db.Where("id = ?", model.SiteConfigID).First(&cfg).Error; err != nil {
		return model.DefaultSiteConfig()
	}
	return &cfg
}

func buildBase(cfg *model.SiteConfig, pageTitle string) Base {
	return Base{
		PageTitle: pageTitle,
		Theme: Theme{
			Primary:      str(cfg.PrimaryColor, "#000000"),
			Secondary:    str(cfg.SecondaryColor, "#ffffff"),
			Accent:       str(cfg.AccentColor, "#6366f1"),
			Alternative:  str(cfg.AlternativeColor, "#f5f5f4"),
			GradientFrom: str(cfg.GradientFrom, "#6366f1"),
			GradientTo:   str(cfg.GradientTo, "#8b5cf6"),
		},
		Logo: Logo{
			Name:   str(cfg.LogoName, ""),
			Svg:    rich(cfg.LogoSvg),
			Width:  num(cfg.LogoWidth, 8),
			Height: num(cfg.LogoHeight, 8),
		},
		Contact: ContactInfo{
			Title:        str(cfg.ContactTitle, "Get in Touch"),
			Description:  str(cfg.ContactDescription, ""),
			FormTitle:    str(cfg.ContactFormTitle, "Send us a message"),
			Email:        str(cfg.ContactEmail, ""),
			Phone:        str(cfg.ContactPhone, ""),
			Address:      str(cfg.ContactAddress, ""),
			WhatsappLink: str(cfg.WhatsappLink, ""),
			InstagramURL: str(cfg.InstagramLink, ""),
		},
	}
}

func serviceViews(services []model.Service) []ServiceView {
	views := make([]ServiceView, 0, len(services))
	for i := range services {
		s := &services[i]
		views = append(views, ServiceView{
			Title:               str(s.Title, ""),
			Description:         rich(s.Description),
			DetailedDescription: rich(s.DetailedDescription),
			Icon:                s.ResolveIcon(),
		})
	}
	return views
}

func projectViews(projects []model.Project) []ProjectView {
	views := make([]ProjectView, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		views = append(views, ProjectView{
			ID:          p.ID,
			Title:       p.Title,
			Description: rich(p.Description),
			Details:     rich(p.Details),
			Category:    p.Category,
			Gallery:     p.Gallery(),
			Featured:    p.Featured,
		})
	}
	return views
}

func teamMemberViews(members []model.TeamMember) []TeamMemberView {
	views := make([]TeamMemberView, 0, len(members))
	for i := range members {
		m := &members[i]
		views = append(views, TeamMemberView{
			Name:      m.Name,
			Role:      m.Role,
			ImageUrl:  str(m.ImageUrl, ""),
			Linkedin:  str(m.Linkedin, ""),
			Instagram: str(m.Instagram, ""),
			Email:     str(m.Email, ""),
		})
	}
	return views
}

func buildHomeView(db *gorm.DB) *HomeView {
	cfg := loadConfig(db)

	var services []model.Service
	db.Order("display_order asc").Find(&services)

	var projects []model.Project
	db.Where("featured = ?", true).Order("display_order asc").Find(&projects)

	return &HomeView{
		Base: buildBase(cfg, str(cfg.HeroTitle, "Architectural Excellence")),
		Hero: HeroView{
			Title:           str(cfg.HeroTitle, "Architectural Excellence"),
			Subtitle:        str(cfg.HeroSubtitle, "Creating spaces that inspire and endure"),
			Description:     str(cfg.HeroDescription, "Transform your vision into reality with our innovative architectural solutions."),
			Button1Text:     str(cfg.HeroButton1Text, "View Projects"),
			Button2Text:     str(cfg.HeroButton2Text, "Contact Us"),
			BackgroundImage: str(cfg.HeroBackgroundImage, ""),
		},
		BeforeAfter: BeforeAfterView{
			Title:       str(cfg.BeforeAfterTitle, "Before & After"),
			Description: str(cfg.BeforeAfterDescription, ""),
			BeforeImage: str(cfg.BeforeImage, ""),
			AfterImage:  str(cfg.AfterImage, ""),
		},
		ServicesTitle:       str(cfg.ServicesTitle, "Our Services"),
		ServicesDescription: str(cfg.ServicesDescription, ""),
		Services:            serviceViews(services),
		ProjectsTitle:       str(cfg.ProjectsTitle, "Our Projects"),
		ProjectsDescription: str(cfg.ProjectsDescription, ""),
		Projects:            projectViews(projects),
	}
}

func buildTeamView(db *gorm.DB) *TeamView {
	cfg := loadConfig(db)

	var members []model.TeamMember
	db.Order("display_order asc").Find(&members)

	return &TeamView{
		Base:        buildBase(cfg, str(cfg.TeamTitle, "Our Team")),
		Title:       str(cfg.TeamTitle, "Our Team"),
		Subtitle:    str(cfg.TeamSubtitle, ""),
		Description: str(cfg.TeamDescription, ""),
		Members:     teamMemberViews(members),
	}
}

func buildProjectsView(db *gorm.DB) *ProjectsView {
	cfg := loadConfig(db)

	var projects []model.Project
	db.Order("display_order asc").Find(&projects)

	return &ProjectsView{
		Base:        buildBase(cfg, str(cfg.ProjectsTitle, "Our Projects")),
		Title:       str(cfg.ProjectsTitle, "Our Projects"),
		Description: str(cfg.ProjectsDescription, ""),
		Projects:    projectViews(projects),
	}
}

func buildProjectDetailView(db *gorm.DB, id string) (*ProjectDetailView, error) {
	var project model.Project
	if err := db.First(&project, id).Error; err != nil {
		return nil, err
	}

	cfg := loadConfig(db)
	views := projectViews([]model.Project{project})

	return &ProjectDetailView{
		Base:    buildBase(cfg, project.Title),
		Project: views[0],
	}, nil
}
