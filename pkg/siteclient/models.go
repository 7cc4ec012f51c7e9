package siteclient

import (
	"encoding/json"

	"cavaltron-backend/pkg/icon"
)

// ContactReceipt is the email provider's id for an accepted submission
type ContactReceipt struct {
	ID string `json:"id"`
}

type Section struct {
	Section string `json:"section"`
	Title   string `json:"title"`
	Content string `json:"content"`
	CTAText string `json:"cta_text,omitempty"`
}

type ContactChannel struct {
	ID      string     `json:"id"`
	Icon    icon.Glyph `json:"icon"`
	Label   string     `json:"label"`
	Value   string     `json:"value"`
	Type    string     `json:"type"`
	Display string     `json:"display"`
}

type Skill struct {
	ID           string     `json:"id"`
	Icon         icon.Glyph `json:"icon"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DisplayOrder int        `json:"display_order"`
}

type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url,omitempty"`
	ExternalLink string `json:"external_link,omitempty"`
	IframeURL    string `json:"iframe_url,omitempty"`
	ActionURL    string `json:"action_url,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// Page is the whole site in one document
type Page struct {
	Hero     Section          `json:"hero"`
	About    Section          `json:"about"`
	Skills   []Skill          `json:"skills"`
	Projects []Project        `json:"projects"`
	Contact  []ContactChannel `json:"contact"`
}

// envelope is the API's standard wrapper for content responses
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
}
