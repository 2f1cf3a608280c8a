// Package web wires the fiber application: templates, static files,
// middlewares and the page handlers.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/icon"
	fiberlogger "github.com/life-promo/studio-site/internal/logger/adapter/fiber"
	"github.com/life-promo/studio-site/internal/upload"
	"github.com/life-promo/studio-site/internal/web/handler"
	"github.com/life-promo/studio-site/internal/web/handler/account"
	"github.com/life-promo/studio-site/internal/web/handler/admin/contentpanel"
	adminlogin "github.com/life-promo/studio-site/internal/web/handler/admin/login"
	adminlogout "github.com/life-promo/studio-site/internal/web/handler/admin/logout"
	"github.com/life-promo/studio-site/internal/web/handler/admin/password"
	"github.com/life-promo/studio-site/internal/web/handler/admin/transferpanel"
	"github.com/life-promo/studio-site/internal/web/handler/chatpanel"
	"github.com/life-promo/studio-site/internal/web/handler/home"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for graceful shutdown of the web service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: mark not-alive first so a load
	// balancer can remove this instance from active targets.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: waiting %d seconds before stopping",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration and repositories.
func New(cfg *config.Config, deps *handler.Deps) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if deps == nil {
		panic("deps cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// Add template helper functions
	templateEngine.AddFunc("glyph", icon.Glyph)
	templateEngine.AddFunc("isDataURI", upload.IsDataURI)
	templateEngine.AddFunc("iterate", func(count int) []int {
		result := make([]int, count)
		for i := range result {
			result[i] = i
		}

		return result
	})
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	templateEngine.AddFunc("sub", func(a, b int) int {
		return a - b
	})

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "studio-site",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{Config: cfg.Log}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	// admin auth middleware
	app.Use(AuthMiddleware(deps))

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
	}

	// init handlers (they register their own routes)
	initHandlers(app, cfg, deps)

	return service
}

func initHandlers(app *fiber.App, cfg *config.Config, deps *handler.Deps) {
	for _, h := range []handler.Service{
		&home.Handler,
		&adminlogin.Handler,
		&adminlogout.Handler,
		&contentpanel.Handler,
		&password.Handler,
		&transferpanel.Handler,
		&account.Handler,
		&chatpanel.Handler,
	} {
		if err := h.Init(app, cfg, deps); err != nil {
			log.Fatal().Err(err).Msg("failed to init handler")
		}
	}
}
