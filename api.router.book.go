package main

import (
	"github.com/julienschmidt/httprouter"
)

// SetupBookRoutes injects book related api endpoints under the
// configured prefix.
func (api *APIHandler) SetupBookRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	prefix := api.config.Server.APIPrefix
	router.RedirectTrailingSlash = true
	router.GET("/", m.public(api.Index))
	router.GET("/status", m.public(api.Status))
	router.POST(prefix+"/add", m.public(api.CreateBook))
	router.GET(prefix+"/books", m.public(api.GetAllBooks))
	router.GET(prefix+"/books/:id", m.public(api.GetOneBook))
	router.PUT(prefix+"/books/:id", m.public(api.UpdateBook))
	router.DELETE(prefix+"/books/:id", m.public(api.DeleteOneBook))
	return router
}
