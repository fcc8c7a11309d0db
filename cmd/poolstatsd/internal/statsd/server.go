package statsd

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ecloudclub/threadpool/httpx"
	"github.com/ecloudclub/threadpool/pool"
)

// Config configures a Server.
type Config struct {
	Capacity int
	Webhook  string
	Logger   *zap.Logger
}

// Server exposes pool occupancy over HTTP and, when configured with a
// Webhook, pushes periodic JSON snapshots of the same stats to it.
type Server struct {
	cfg    Config
	pool   *pool.Pool
	router *gin.Engine
	stop   chan struct{}
}

// Stats is the JSON shape returned by GET /stats and posted to the webhook.
type Stats struct {
	Capacity       int       `json:"capacity"`
	CurrentWorkers int       `json:"current_workers"`
	SampledAt      time.Time `json:"sampled_at"`
}

// New builds a Server backed by a pool.Pool of the configured capacity.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	p, err := pool.New(cfg.Capacity, pool.WithLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:  cfg,
		pool: p,
		stop: make(chan struct{}),
	}
	s.router = s.buildRouter()

	if cfg.Webhook != "" {
		go s.pushStatsLoop()
	}

	return s, nil
}

// Close drains the pool and stops the webhook loop.
func (s *Server) Close() error {
	close(s.stop)
	return s.pool.Close()
}

// ListenAndServe starts the HTTP listener. Every request is dispatched as a
// single thunk onto the pool so in-flight work never exceeds its capacity.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/stats", func(c *gin.Context) {
		s.dispatch(c, func(c *gin.Context) {
			c.JSON(http.StatusOK, s.snapshot())
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		s.dispatch(c, func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})
	})

	return r
}

// dispatch schedules handler onto the pool and blocks the HTTP goroutine
// until it's been run, preserving gin's normal per-request response flow
// while routing the actual work through the bounded worker pool.
func (s *Server) dispatch(c *gin.Context, handler func(*gin.Context)) {
	done := make(chan struct{})
	err := s.pool.Schedule(func() {
		defer close(done)
		handler(c)
	})
	if err != nil {
		c.String(http.StatusServiceUnavailable, "pool closed")
		return
	}
	<-done
}

func (s *Server) snapshot() Stats {
	return Stats{
		Capacity:       s.pool.Capacity(),
		CurrentWorkers: s.pool.CurrentWorkers(),
		SampledAt:      time.Now(),
	}
}

func (s *Server) pushStatsLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.pushStats()
		}
	}
}

func (s *Server) pushStats() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp := httpx.NewRequest(ctx, http.MethodPost, s.cfg.Webhook).
		JSONBody(s.snapshot()).
		Do()
	if _, err := resp.Bytes(); err != nil {
		s.cfg.Logger.Warn("failed to push stats snapshot", zap.Error(err))
	}
}
