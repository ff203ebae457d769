package httpserver

import (
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// New builds an HTTP server with sane defaults for this project.
// The write timeout leaves headroom over the request timeout middleware so
// handlers can still answer 503 before the connection is cut.
func New(addr string, handler http.Handler, requestTimeout time.Duration) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
	if requestTimeout > 0 {
		srv.WriteTimeout = requestTimeout + readHeaderTimeout
	}
	return srv
}
