package users

// DefaultAvatar is assigned when a registration carries no avatar choice.
const DefaultAvatar = "👨‍💼"

// Avatars is the symbolic avatar catalog offered at registration. An avatar
// value is either one of these glyphs or an embedded data-URI image payload.
var Avatars = map[string][]string{
	"male": {
		"👨‍💼", "👨‍🔧", "👨‍🎨", "👨‍💻", "👨‍🚀", "👨‍⚕️", "👨‍🏫", "👨‍🎤",
		"🧑‍💼", "🧑‍🔧", "🧑‍🎨", "🧑‍💻", "🧑‍🚀", "🧑‍⚕️", "🧑‍🏫", "🧑‍🎤",
	},
	"female": {
		"👩‍💼", "👩‍🔧", "👩‍🎨", "👩‍💻", "👩‍🚀", "👩‍⚕️", "👩‍🏫", "👩‍🎤",
		"👱‍♀️", "👩‍🦰", "👩‍🦱", "👩‍🦳", "👩", "🧕", "👸", "👰‍♀️",
	},
}
