package server

import (
	"context"
	"github.com/clambin/gotools/metrics"
	"github.com/clambin/ledsweep/strip"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"net/http"
	"sync"
	"time"
)

// Server runs the REST API: it reports the strip's frames and changes the strip's effect and parameters.
// It also streams every frame it is shown to its websocket clients.
type Server struct {
	Strip      *strip.Strip
	HTTPServer *metrics.Server
	upgrader   websocket.Upgrader
	clients    map[*websocket.Conn]chan []byte
	lock       sync.Mutex
}

// New creates a new Server
func New(port int, s *strip.Strip) (server *Server) {
	server = &Server{
		Strip:   s,
		clients: make(map[*websocket.Conn]chan []byte),
	}
	server.HTTPServer = metrics.NewServerWithHandlers(port, []metrics.Handler{
		{
			Path:    "/frame",
			Handler: http.HandlerFunc(server.handleFrame),
			Methods: []string{http.MethodGet},
		},
		{
			Path:    "/effects",
			Handler: http.HandlerFunc(server.handleEffects),
			Methods: []string{http.MethodGet},
		},
		{
			Path:    "/effect",
			Handler: http.HandlerFunc(server.handleEffect),
			Methods: []string{http.MethodGet, http.MethodPost},
		},
		{
			Path:    "/stream",
			Handler: http.HandlerFunc(server.handleStream),
			Methods: []string{http.MethodGet},
		},
	})
	return
}

// Run the Server instance, until the context is canceled
func (server *Server) Run(ctx context.Context) (err error) {
	log.WithField("port", server.HTTPServer.Port).Info("server started")
	go func() {
		if err2 := server.HTTPServer.Run(); err2 != http.ErrServerClosed {
			log.WithError(err2).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()

	err = server.HTTPServer.Shutdown(30 * time.Second)
	server.closeClients()
	log.Info("server stopped")
	return
}
