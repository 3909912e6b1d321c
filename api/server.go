package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthReporter reports whether a service has completed at least one
// successful upstream fetch
type HealthReporter interface {
	Healthy() bool
}

// CacheStats exposes cache occupancy for the health payload
type CacheStats interface {
	ItemCount() int
}

// Server is the operational HTTP surface: health and metrics. The MCP
// surface runs separately over stdio
type Server struct {
	port       int
	prices     HealthReporter
	yields     HealthReporter
	protocols  HealthReporter
	cacheStats CacheStats
	server     *http.Server
}

func New(port int, prices, yields, protocols HealthReporter, cacheStats CacheStats) *Server {
	return &Server{
		port:       port,
		prices:     prices,
		yields:     yields,
		protocols:  protocols,
		cacheStats: cacheStats,
	}
}

func (s *Server) Start(ctx context.Context) error {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: router,
	}

	log.Printf("Ops server starting at http://localhost:%d", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Ops server error: %v", err)
		}
	}()

	return nil
}
