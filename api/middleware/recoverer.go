package middleware

import (
	"fmt"
	"net/http"

	"github.com/Arman11r/Catalog-web/api/responses"
	pkgerrors "github.com/Arman11r/Catalog-web/pkg/errors"
	"github.com/Arman11r/Catalog-web/pkg/logger"
)

// Recoverer turns a panicking handler into a 500 response so a single bad
// request never takes the quote API down.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := fmt.Errorf("panic: %v", rec)
					ctx := r.Context()
					if logg != nil {
						ctx = logg.WithFields(ctx, map[string]any{
							"panic":  rec,
							"method": r.Method,
							"path":   r.URL.Path,
						})
						logg.Error(ctx, "request.panic_recovered", err)
					}
					responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recovering request handler"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
