package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"openmat-server/util"
)

type OpenMatHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	addr            string
	shutdownTimeout time.Duration
	log             *slog.Logger
}

func NewOpenMatHttpServer(router *Router, muxRouter *mux.Router, addr string, shutdownTimeout time.Duration) *OpenMatHttpServer {
	router.RegisterRoutes()
	return &OpenMatHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		log:             util.Logger("OpenMatHttpServer"),
	}
}

// Handler returns the routed handler, for tests and embedding.
func (s *OpenMatHttpServer) Handler() http.Handler {
	return s.muxRouter
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *OpenMatHttpServer) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("Shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("Server exiting")
	return nil
}
