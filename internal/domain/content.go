package domain

import (
	"context"
	"errors"

	"cavaltron-backend/pkg/icon"
)

var ErrNotFound = errors.New("resource not found")

// Known site_content sections
const (
	SectionHero  = "hero"
	SectionAbout = "about"
)

// SiteContent is a row of site_content. Editors may leave any column null.
type SiteContent struct {
	Section string  `json:"section"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
	CTAText *string `json:"cta_text"`
}

// ContactInfo is a row of contact_info
type ContactInfo struct {
	ID    string  `json:"id"`
	Icon  *string `json:"icon"`
	Label *string `json:"label"`
	Value *string `json:"value"`
	Type  *string `json:"type"`
}

// Skill is a row of skills
type Skill struct {
	ID           string  `json:"id"`
	Icon         *string `json:"icon"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
}

// Project is a row of projects
type Project struct {
	ID           string  `json:"id"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"image_url"`
	ExternalLink *string `json:"external_link"`
	IframeURL    *string `json:"iframe_url"`
	DisplayOrder int     `json:"display_order"`
}

// ContentRepository is the read side of the content store
type ContentRepository interface {
	GetSection(ctx context.Context, section string) (*SiteContent, error)
	ListContactInfo(ctx context.Context) ([]ContactInfo, error)
	ListSkills(ctx context.Context) ([]Skill, error)
	ListProjects(ctx context.Context) ([]Project, error)
}

// SectionView is a site_content section with defaults applied
type SectionView struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	Content string `json:"content"`
	CTAText string `json:"cta_text,omitempty"`
}

// ContactChannelView is one card of the contact grid
type ContactChannelView struct {
	ID      string     `json:"id"`
	Icon    icon.Glyph `json:"icon"`
	Label   string     `json:"label"`
	Value   string     `json:"value"`
	Type    string     `json:"type"`
	Display string     `json:"display"`
}

// SkillView is one card of the skills grid
type SkillView struct {
	ID           string     `json:"id"`
	Icon         icon.Glyph `json:"icon"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DisplayOrder int        `json:"display_order"`
}

// ProjectView is one card of the project showcase. ActionURL is where the
// "details" button leads: the embed when present, else the external link.
type ProjectView struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url,omitempty"`
	ExternalLink string `json:"external_link,omitempty"`
	IframeURL    string `json:"iframe_url,omitempty"`
	ActionURL    string `json:"action_url,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// Page is everything the single page renders
type Page struct {
	Hero     SectionView          `json:"hero"`
	About    SectionView          `json:"about"`
	Skills   []SkillView          `json:"skills"`
	Projects []ProjectView        `json:"projects"`
	Contact  []ContactChannelView `json:"contact"`
}

// ContentUsecase serves page content with fallbacks applied
type ContentUsecase interface {
	GetSection(ctx context.Context, section string) (*SectionView, error)
	ListContactChannels(ctx context.Context) ([]ContactChannelView, error)
	ListSkills(ctx context.Context) ([]SkillView, error)
	ListProjects(ctx context.Context) ([]ProjectView, error)
	GetPage(ctx context.Context) (*Page, error)
}
