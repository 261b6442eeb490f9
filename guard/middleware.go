package guard

import (
	"net/http"
)

// Middleware adapts the gate to net/http. Pending answers 503 with a
// Retry-After so clients poll rather than seeing the wrong page, Authorized
// passes through, Redirect answers 303 See Other.
func (g *Gate) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if g == nil || g.state == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			switch v := g.Evaluate(); v.Decision {
			case Authorized:
				next.ServeHTTP(w, r)
			case Redirect:
				http.Redirect(w, r, v.Target, http.StatusSeeOther)
			default:
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session restore in progress", http.StatusServiceUnavailable)
			}
		})
	}
}
