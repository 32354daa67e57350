package http

import (
	"github.com/gorilla/mux"
)

type (
	Router = mux.Router
	Route  = mux.Route
)

// NewRouter returns a router mounted under c.Prefix which answers
// unknown paths and methods in plain text like the transcoding handlers.
func NewRouter(c *Config) *Router {
	r := mux.NewRouter()
	if c.Prefix != "" {
		r = r.PathPrefix(c.Prefix).Subrouter()
	}
	r.NotFoundHandler = HandlerFunc(func(w ResponseWriter, req *Request) {
		writeText(w, StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = HandlerFunc(func(w ResponseWriter, req *Request) {
		writeText(w, StatusMethodNotAllowed, "method "+req.Method+" is not allowed")
	})
	return r
}
