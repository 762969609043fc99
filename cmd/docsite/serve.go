package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	vango "github.com/vango-dev/vango/v2"
	"github.com/vango-dev/vango/v2/pkg/middleware"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/app/routes"
	"github.com/nephio-oran/docsite/internal/i18n"
)

func serveCmd() *cobra.Command {
	var (
		addr      string
		staticDir string
		trace     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the documentation site",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Local overrides only; absence is the normal case.
			_ = godotenv.Load()

			if !cmd.Flags().Changed("addr") {
				addr = addrFromEnv(addr)
			}

			logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			if trace {
				shutdown, err := setupTracing()
				if err != nil {
					return fmt.Errorf("setting up tracing: %w", err)
				}
				defer shutdown()
			}

			app := vango.New(vango.Config{
				Logger:  logger,
				DevMode: os.Getenv("DOCSITE_DEV") == "1",
				Static:  vango.StaticConfig{Dir: staticDir},
			})
			app.Use(
				middleware.Prometheus(middleware.WithNamespace("docsite")),
				middleware.OpenTelemetry(middleware.WithTracerName("docsite")),
			)
			routes.Register(app)

			mux := chi.NewRouter()
			mux.Use(chimw.RealIP, chimw.Recoverer, localeRedirect)
			mux.Handle("/metrics", promhttp.Handler())
			mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprintln(w, "ok")
			})
			mux.Mount("/", app.Handler())

			srv := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address (defaults to :$PORT when set)")
	cmd.Flags().StringVar(&staticDir, "static", "public", "Static assets directory")
	cmd.Flags().BoolVar(&trace, "trace", false, "Emit OpenTelemetry spans to stdout")

	return cmd
}

// addrFromEnv applies the PORT convention when --addr was not given.
func addrFromEnv(addr string) string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return addr
}

// localeRedirect sends visitors landing on the site root to their
// preferred locale. Only "/" redirects: deep links stay put, and the
// locale switch in the navbar always wins.
func localeRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" && i18n.Match(preferredLocale(r)) == language.TraditionalChinese {
			http.Redirect(w, r, i18n.PathPrefix(language.TraditionalChinese), http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// preferredLocale reads the visitor's locale: an explicit cookie first,
// then the highest-ranked Accept-Language entry.
func preferredLocale(r *http.Request) string {
	if c, err := r.Cookie("locale"); err == nil && c.Value != "" {
		return c.Value
	}
	accept := r.Header.Get("Accept-Language")
	if i := strings.IndexAny(accept, ",;"); i >= 0 {
		accept = accept[:i]
	}
	return strings.TrimSpace(accept)
}

func setupTracing() (func(), error) {
	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, err
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}, nil
}
