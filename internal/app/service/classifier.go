package service

import (
	"net/http"
	"strings"
)

// fallbackIP is recorded when no client address can be derived from the
// proxy headers.
const fallbackIP = "127.0.0.1"

// RequestInfo is the immutable slice of an incoming request the
// classifier and recorder need. Handlers build it once per request so
// the core stays testable with constructed values.
type RequestInfo struct {
	UserAgent    string
	Referer      string
	ForwardedFor string
	RealIP       string
}

// RequestInfoFromHTTP extracts the classification inputs from a request.
func RequestInfoFromHTTP(r *http.Request) RequestInfo {
	return RequestInfo{
		UserAgent:    r.Header.Get("User-Agent"),
		Referer:      r.Header.Get("Referer"),
		ForwardedFor: r.Header.Get("X-Forwarded-For"),
		RealIP:       r.Header.Get("X-Real-IP"),
	}
}

// ClickInfo is the derived classification of one click.
type ClickInfo struct {
	Browser    string
	DeviceType string
	IPAddress  string
}

// uaRule maps a user-agent substring to a label. Rules are evaluated in
// order, first match wins, so priority lives in the table, not in code.
type uaRule struct {
	pattern string
	label   string
}

// Chrome before Safari is load-bearing: Chrome agents also contain
// "Safari". The order still misclassifies Edge, whose agents contain
// "Chrome", a known limitation of the heuristic.
var browserRules = []uaRule{
	{"Chrome", "Chrome"},
	{"Firefox", "Firefox"},
	{"Safari", "Safari"},
	{"Edge", "Edge"},
}

var deviceRules = []uaRule{
	{"Mobile", "Mobile"},
	{"Tablet", "Tablet"},
}

func matchRules(ua string, rules []uaRule, fallback string) string {
	for _, rule := range rules {
		if strings.Contains(ua, rule.pattern) {
			return rule.label
		}
	}
	return fallback
}

// Classify derives browser family, device class and client IP from the
// request info.
func Classify(info RequestInfo) ClickInfo {
	return ClickInfo{
		Browser:    matchRules(info.UserAgent, browserRules, "Unknown"),
		DeviceType: matchRules(info.UserAgent, deviceRules, "Desktop"),
		IPAddress:  clientIP(info),
	}
}

// clientIP picks the client address with a fixed precedence: first entry
// of X-Forwarded-For, then X-Real-IP, then a loopback placeholder. This
// trusts the reverse proxy in front of the service; the headers are
// spoofable when the service is exposed directly.
func clientIP(info RequestInfo) string {
	if info.ForwardedFor != "" {
		first := strings.TrimSpace(strings.Split(info.ForwardedFor, ",")[0])
		if first != "" {
			return first
		}
	}

	if info.RealIP != "" {
		return info.RealIP
	}

	return fallbackIP
}
