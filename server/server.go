package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/campushub/portal/cas"
	"github.com/campushub/portal/cookiesig"
	"github.com/campushub/portal/internal/config"
	"github.com/campushub/portal/sessions"
)

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	store     sessions.Store
	codec     *cookiesig.Codec
	validator *cas.Validator
}

// New wires the authentication subsystem together. The session store is owned
// by the caller (the composition root) and passed in explicitly so it can be
// swapped for a test double or a future shared store.
func New(config config.Config, store sessions.Store, codec *cookiesig.Codec, validator *cas.Validator) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		config:    config,
		store:     store,
		codec:     codec,
		validator: validator,
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Debug().Msgf("[%-19s] %s", displayMethod, path)
}

// serviceURL builds the callback ("service") URL presented to CAS, carrying
// the post-login destination. CAS requires the exact same string at login and
// at validation time, so this is the single place it is assembled.
func (s *Server) serviceURL(redirectTo string) string {
	return s.config.GetBaseURL() + RouteCasCallback + "?redirect=" + url.QueryEscape(redirectTo)
}
