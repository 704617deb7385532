package middleware

import (
	"net"
	"net/http"
)

// WithSubnet guards internal endpoints: only requests whose X-Real-IP
// falls inside the trusted CIDR pass. An empty subnet closes the
// endpoint entirely.
func WithSubnet(subnet string) func(next http.Handler) http.Handler {
	_, trusted, err := net.ParseCIDR(subnet)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err != nil || trusted == nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			ip := net.ParseIP(r.Header.Get("X-Real-IP"))
			if ip == nil || !trusted.Contains(ip) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
