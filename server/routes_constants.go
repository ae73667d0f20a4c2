package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - CAS
	RouteCasCallback = "/api/auth/cas/callback"
	RouteCasSlo      = "/api/auth/cas/slo"
	RouteAuthLogout  = "/api/auth/logout"

	// API Routes
	RouteAPIMe = "/api/me"

	// Observability
	RouteMetrics = "/metrics"
)

// gateBypassPrefixes lists path prefixes that must stay reachable without a
// session: the auth subsystem's own endpoints (they are how authentication is
// established), static assets, and the metrics scrape target.
var gateBypassPrefixes = []string{
	"/api/auth/",
	"/static/",
	"/favicon.ico",
	RouteMetrics,
}
