package config

import (
	"net/http"
	"time"
)

// ListenAddr is fixed: the process takes no flags, environment
// variables, or config files.
const ListenAddr = "0.0.0.0:8080"

// NewServer builds the HTTP server for the given handler.
func NewServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
