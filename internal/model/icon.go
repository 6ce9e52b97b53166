package model

// IconKind discriminates how a service icon should be rendered.
type IconKind string

const (
	IconImage IconKind = "image" // Value is an image URL
	IconSvg   IconKind = "svg"   // Value is inline SVG markup
	IconNamed IconKind = "named" // Value is a name from the fixed icon set
)

// Icon is the resolved icon variant for a service.
type Icon struct {
	Kind  IconKind
	Value string
}

// namedIcons is the fixed set of icon names the public site can draw.
var namedIcons = map[string]bool{
	"building":   true,
	"home":       true,
	"paintbrush": true,
	"ruler":      true,
	"compass":    true,
	"landmark":   true,
	"factory":    true,
	"wrench":     true,
	"trees":      true,
	"lightbulb":  true,
}

// ValidIconName reports whether name belongs to the fixed icon set.
func ValidIconName(name string) bool {
	return namedIcons[name]
}

// ResolveIcon applies the three-tier fallback once: an image URL wins, then
// inline SVG markup, then a named icon (unknown names fall back to the
// default). View code renders the resolved variant and never re-checks the
// underlying nullable fields.
func (s *Service) ResolveIcon() Icon {
	if s.IconImageUrl != nil && *s.IconImageUrl != "" {
		return Icon{Kind: IconImage, Value: *s.IconImageUrl}
	}
	if s.IconSvg != nil && *s.IconSvg != "" {
		return Icon{Kind: IconSvg, Value: *s.IconSvg}
	}
	if ValidIconName(s.Icon) {
		return Icon{Kind: IconNamed, Value: s.Icon}
	}
	return Icon{Kind: IconNamed, Value: DefaultIconName}
}
