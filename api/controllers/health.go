package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Arman11r/Catalog-web/api/responses"
	"github.com/Arman11r/Catalog-web/pkg/config"
	"github.com/Arman11r/Catalog-web/pkg/logger"
)

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CafeCanvas-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady pings the wired dependencies. Nil pingers (memory store mode,
// no redis) are skipped.
func HealthReady(cfg *config.Config, logg *logger.Logger, db Pinger, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		w.Header().Set("X-CafeCanvas-Env", cfg.App.Env)

		checks := map[string]string{}
		healthy := true

		check := func(name string, p Pinger) {
			if p == nil {
				checks[name] = "skipped"
				return
			}
			if err := p.Ping(ctx); err != nil {
				checks[name] = "down"
				healthy = false
				if logg != nil {
					logg.Error(logg.WithField(ctx, "dependency", name), "health.check_failed", err)
				}
				return
			}
			checks[name] = "ok"
		}

		check("database", db)
		check("redis", cache)

		status := http.StatusOK
		state := "ready"
		if !healthy {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}

		responses.WriteJSON(w, status, map[string]any{
			"status": state,
			"checks": checks,
		})
	}
}
