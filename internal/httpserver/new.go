package httpserver

import (
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"verdant-agenda/config"
	"verdant-agenda/internal/model"
	"verdant-agenda/internal/schedule"
	"verdant-agenda/pkg/llmprovider"
	"verdant-agenda/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	firestoreClient *firestore.Client
	llmManager      *llmprovider.Manager

	bounds      schedule.Bounds
	temperature float64
	maxTokens   int

	authCfg config.AuthConfig
	rlCfg   config.RateLimitConfig
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	FirestoreClient *firestore.Client
	LLMManager      *llmprovider.Manager

	Bounds      schedule.Bounds
	Temperature float64
	MaxTokens   int

	Auth      config.AuthConfig
	RateLimit config.RateLimitConfig
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		firestoreClient: cfg.FirestoreClient,
		llmManager:      cfg.LLMManager,
		bounds:          cfg.Bounds,
		temperature:     cfg.Temperature,
		maxTokens:       cfg.MaxTokens,
		authCfg:         cfg.Auth,
		rlCfg:           cfg.RateLimit,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.firestoreClient == nil {
		return errors.New("firestore client is required")
	}
	if srv.llmManager == nil {
		return errors.New("llm manager is required")
	}
	return nil
}
