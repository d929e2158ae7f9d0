// Package webapp serves the Mini App static front end. Any extensionless
// path other than the root falls back to the root document so client-side
// routing keeps working after a refresh.
package webapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"log/slog"

	coreconfig "restobot/internal/config"
	"restobot/internal/logger"
)

const component = "webapp"

// Handler serves files from dir with the SPA fallback convention.
func Handler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" && !strings.Contains(r.URL.Path, ".") {
			r.URL.Path = "/"
		}
		fs.ServeHTTP(w, r)
	})
}

// Run serves the configured directory until the context is cancelled.
func Run(ctx context.Context, cfg coreconfig.WebappConfig) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: Handler(cfg.Dir),
	}

	logger.Info(ctx, component, "webapp.start",
		slog.Int("port", cfg.Port),
		slog.String("dir", cfg.Dir),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("webapp: serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("webapp: shutdown: %w", err)
	}
	logger.Info(ctx, component, "webapp.stop")
	return nil
}
