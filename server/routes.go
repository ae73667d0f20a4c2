package server

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) initRoutes() {
	// CAS endpoints; reachable unauthenticated by construction (see gate bypass)
	s.RegisterRouteFunc("GET "+RouteCasCallback, s.CasCallbackHandler())
	s.RegisterRouteFunc("POST "+RouteCasSlo, s.SloHandler())
	s.RegisterRouteFunc("GET "+RouteCasSlo, s.SloProbeHandler())
	s.RegisterRouteFunc("GET "+RouteAuthLogout, s.LogoutHandler())

	// Observability
	s.RegisterRouteHandler("GET "+RouteMetrics, promhttp.Handler())

	// Gated portal surface
	s.RegisterRouteHandler("GET "+RouteAPIMe, ChainMiddleware(s.MeHandler(), s.GatedMiddleware()...))
	s.RegisterRouteHandler("GET /", ChainMiddleware(s.IndexHandler(), s.GatedMiddleware()...))
}

// IndexHandler stands in for the portal shell, which is not part of this
// service's scope beyond proving the gate lets an authenticated caller in.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := s.config.GetAppName()
		greeting := name
		if session, ok := SessionFromContext(r.Context()); ok && session.User.DisplayName != "" {
			greeting = fmt.Sprintf("%s - %s", name, session.User.DisplayName)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, "<!DOCTYPE html><html><body><h1>%s</h1></body></html>", greeting)
	}
}
