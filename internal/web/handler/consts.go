package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// RouterRootPath is the root path within a fiber route group.
	RouterRootPath = ""

	// ErrNilACDFatalLogMsg is used if app or cfg or deps var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or deps is nil"
)
