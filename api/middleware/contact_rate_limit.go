package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Arman11r/Catalog-web/api/responses"
	"github.com/Arman11r/Catalog-web/pkg/config"
	pkgerrors "github.com/Arman11r/Catalog-web/pkg/errors"
	"github.com/Arman11r/Catalog-web/pkg/logger"
)

// RateLimiterStore applies a fixed-window counter to a scope and reports
// whether the request falls within the limit.
type RateLimiterStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// ContactRateLimitPolicy defines the throttling parameters for the contact
// form: a fixed window with separate per-IP and per-email counters.
type ContactRateLimitPolicy struct {
	window     time.Duration
	ipLimit    int
	emailLimit int
}

// NewContactRateLimitPolicy builds a policy from configuration.
func NewContactRateLimitPolicy(cfg config.ContactRateLimitConfig) ContactRateLimitPolicy {
	return ContactRateLimitPolicy{
		window:     cfg.Window,
		ipLimit:    cfg.IPLimit,
		emailLimit: cfg.EmailLimit,
	}
}

func (p ContactRateLimitPolicy) enabled() bool {
	return p.window > 0 && (p.ipLimit > 0 || p.emailLimit > 0)
}

func (p ContactRateLimitPolicy) ipScope(ip string) string {
	if ip == "" {
		return ""
	}
	return fmt.Sprintf("ip:contact:%s", ip)
}

func (p ContactRateLimitPolicy) emailScope(hash string) string {
	if hash == "" {
		return ""
	}
	return fmt.Sprintf("email:contact:%s", hash)
}

// ContactRateLimit enforces per-IP and per-email counters on the contact
// form. A limiter infrastructure failure fails open: the submission goes
// through and the failure is logged.
func ContactRateLimit(policy ContactRateLimitPolicy, store RateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			if policy.ipLimit > 0 {
				if scope := policy.ipScope(ip); scope != "" {
					allowed, count, err := store.FixedWindowAllow(ctx, scope, int64(policy.ipLimit), policy.window)
					if err != nil {
						warnLimiterUnavailable(ctx, logg, err)
					} else if !allowed {
						respondRateLimited(ctx, logg, w, "ip", ip, "", count, policy.ipLimit, policy.window)
						return
					}
				}
			}

			if policy.emailLimit > 0 {
				body, err := io.ReadAll(r.Body)
				if err != nil {
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read request"))
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))

				email := normalizeEmail(extractEmail(body))
				if email != "" {
					hash := hashValue(email)
					if scope := policy.emailScope(hash); scope != "" {
						allowed, count, err := store.FixedWindowAllow(ctx, scope, int64(policy.emailLimit), policy.window)
						if err != nil {
							warnLimiterUnavailable(ctx, logg, err)
						} else if !allowed {
							respondRateLimited(ctx, logg, w, "email", "", hash, count, policy.emailLimit, policy.window)
							return
						}
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func warnLimiterUnavailable(ctx context.Context, logg *logger.Logger, err error) {
	if logg == nil {
		return
	}
	ctx = logg.WithField(ctx, "error", err.Error())
	logg.Warn(ctx, "contact.rate_limit.unavailable")
}

func respondRateLimited(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, scope, ip, emailHash string, count int64, limit int, window time.Duration) {
	if logg != nil {
		fields := map[string]any{
			"scope":          scope,
			"attempts":       count,
			"limit":          limit,
			"window_seconds": int(window.Seconds()),
		}
		if ip != "" {
			fields["ip"] = ip
		}
		if emailHash != "" {
			fields["email_hash"] = emailHash
		}
		logCtx := logg.WithFields(ctx, fields)
		logg.Warn(logCtx, "contact.rate_limit.blocked")
	}
	err := pkgerrors.New(pkgerrors.CodeRateLimit, "Too many submissions. Please try again later.")
	responses.WriteError(ctx, nil, w, err)
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

func extractEmail(payload []byte) string {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return ""
	}
	return body.Email
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func hashValue(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
