// Package daemon assembles the persistence layer, the repositories and the
// web service into one runnable unit.
package daemon

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/life-promo/studio-site/internal/chat"
	"github.com/life-promo/studio-site/internal/config"
	"github.com/life-promo/studio-site/internal/content"
	"github.com/life-promo/studio-site/internal/credential"
	"github.com/life-promo/studio-site/internal/db/models"
	"github.com/life-promo/studio-site/internal/logger"
	"github.com/life-promo/studio-site/internal/session"
	"github.com/life-promo/studio-site/internal/store"
	"github.com/life-promo/studio-site/internal/users"
	"github.com/life-promo/studio-site/internal/web"
	"github.com/life-promo/studio-site/internal/web/handler"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the Daemon's web service and blocks until shutdown.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) *Daemon {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		log.Warn().Err(err).Msg("failed to init logger, using defaults")
	}

	db, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("failed to open database")
	}

	if err = db.AutoMigrate(&models.Entry{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	kv := store.NewGorm(db)

	seed(kv)

	deps := &handler.Deps{
		Store:      kv,
		Content:    content.NewRepository(kv),
		Users:      users.NewRepository(kv),
		Chat:       chat.NewRepository(kv),
		Credential: credential.NewRepository(kv),
		Session:    session.NewManager(kv),
	}

	return &Daemon{
		cfg:        cfg,
		webService: web.New(cfg, deps),
	}
}
