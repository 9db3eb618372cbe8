package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"creator-studio/pkg/datemath"
	"creator-studio/pkg/log"
	"creator-studio/pkg/notify"
	"creator-studio/pkg/slotstore"
	"creator-studio/pkg/youtube"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure
	store  *slotstore.Store
	nc     *notify.Center
	parser *datemath.Parser
	loc    *time.Location
	yt     *youtube.Client

	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Shared infrastructure
	Store    *slotstore.Store
	Notifier *notify.Center
	Parser   *datemath.Parser
	Location *time.Location

	// Optional. Without it pillar suggestions come from the starter
	// library instead of channel analysis.
	YouTube *youtube.Client

	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		store:           cfg.Store,
		nc:              cfg.Notifier,
		parser:          cfg.Parser,
		loc:             loc,
		yt:              cfg.YouTube,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("slot store is required")
	}
	if srv.nc == nil {
		return errors.New("notification center is required")
	}
	if srv.parser == nil {
		return errors.New("date parser is required")
	}
	return nil
}
