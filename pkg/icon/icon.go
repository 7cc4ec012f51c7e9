// Package icon maps the icon names stored next to site content onto a fixed
// set of glyphs the front end knows how to draw.
package icon

// Name identifies a known glyph. The values match the lucide icon
// component names editors type into the content tables.
type Name string

const (
	Mail          Name = "Mail"
	Phone         Name = "Phone"
	MessageCircle Name = "MessageCircle"
	Linkedin      Name = "Linkedin"
	Instagram     Name = "Instagram"
	Facebook      Name = "Facebook"
	Github        Name = "Github"
	Globe         Name = "Globe"
	MapPin        Name = "MapPin"
	Link          Name = "Link"
	Box           Name = "Box"
	Cpu           Name = "Cpu"
	Zap           Name = "Zap"
	Settings      Name = "Settings"
	Wrench        Name = "Wrench"
	Factory       Name = "Factory"
	CircuitBoard  Name = "CircuitBoard"
	Gauge         Name = "Gauge"
	Bot           Name = "Bot"
	Lightbulb     Name = "Lightbulb"
	Cog           Name = "Cog"
	Wifi          Name = "Wifi"
)

// Defaults used when a row names an icon outside the known set
const (
	DefaultContact = Link
	DefaultSkill   = Box
)

// Glyph is the renderable handle sent to clients
type Glyph struct {
	Name Name   `json:"name"`
	Slug string `json:"slug"`
}

var glyphs = map[Name]Glyph{
	Mail:          {Name: Mail, Slug: "mail"},
	Phone:         {Name: Phone, Slug: "phone"},
	MessageCircle: {Name: MessageCircle, Slug: "message-circle"},
	Linkedin:      {Name: Linkedin, Slug: "linkedin"},
	Instagram:     {Name: Instagram, Slug: "instagram"},
	Facebook:      {Name: Facebook, Slug: "facebook"},
	Github:        {Name: Github, Slug: "github"},
	Globe:         {Name: Globe, Slug: "globe"},
	MapPin:        {Name: MapPin, Slug: "map-pin"},
	Link:          {Name: Link, Slug: "link"},
	Box:           {Name: Box, Slug: "box"},
	Cpu:           {Name: Cpu, Slug: "cpu"},
	Zap:           {Name: Zap, Slug: "zap"},
	Settings:      {Name: Settings, Slug: "settings"},
	Wrench:        {Name: Wrench, Slug: "wrench"},
	Factory:       {Name: Factory, Slug: "factory"},
	CircuitBoard:  {Name: CircuitBoard, Slug: "circuit-board"},
	Gauge:         {Name: Gauge, Slug: "gauge"},
	Bot:           {Name: Bot, Slug: "bot"},
	Lightbulb:     {Name: Lightbulb, Slug: "lightbulb"},
	Cog:           {Name: Cog, Slug: "cog"},
	Wifi:          {Name: Wifi, Slug: "wifi"},
}

// Known reports whether name is in the set
func Known(name string) bool {
	_, ok := glyphs[Name(name)]
	return ok
}

// Resolve returns the glyph for name, or the glyph for fallback when name is
// unknown. An unknown fallback resolves to Link.
func Resolve(name string, fallback Name) Glyph {
	if g, ok := glyphs[Name(name)]; ok {
		return g
	}
	if g, ok := glyphs[fallback]; ok {
		return g
	}
	return glyphs[Link]
}

// ForContact resolves an icon shown on a contact channel card
func ForContact(name string) Glyph {
	return Resolve(name, DefaultContact)
}

// ForSkill resolves an icon shown on a skill card
func ForSkill(name string) Glyph {
	return Resolve(name, DefaultSkill)
}
