// Package icon resolves the symbolic icon names stored in content entries
// to renderable glyphs.
package icon

// FallbackGlyph is rendered when a name is not in the catalog.
const FallbackGlyph = "✨"

// glyphs maps the lucide-style names used by the content editor to glyphs.
var glyphs = map[string]string{
	"Globe":         "🌐",
	"ShoppingCart":  "🛒",
	"Megaphone":     "📣",
	"Layout":        "🗂️",
	"Smartphone":    "📱",
	"TrendingUp":    "📈",
	"Code":          "💻",
	"Palette":       "🎨",
	"FileText":      "📄",
	"Star":          "⭐",
	"Rocket":        "🚀",
	"Sparkles":      "✨",
	"MessageCircle": "💬",
	"Send":          "📨",
	"UserCircle":    "👤",
	"Mail":          "✉️",
	"Phone":         "📞",
	"MapPin":        "📍",
	"Lock":          "🔒",
	"Settings":      "⚙️",
	"ArrowRight":    "➡️",
	"Award":         "🏆",
	"Zap":           "⚡",
	"Users":         "👥",
	"Target":        "🎯",
	"Search":        "🔍",
	"CheckCircle":   "✅",
	"Calendar":      "📅",
}

// Glyph returns the renderable glyph for a symbolic name, or FallbackGlyph
// when the name is unrecognized.
func Glyph(name string) string {
	if g, ok := glyphs[name]; ok {
		return g
	}

	return FallbackGlyph
}

// Known reports whether the name is in the catalog.
func Known(name string) bool {
	_, ok := glyphs[name]
	return ok
}
