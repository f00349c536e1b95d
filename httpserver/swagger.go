package httpserver

import (
	_ "moviehub/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterSwaggerRoutes serves the UI and doc.json for the OpenAPI document
// in package docs. Regenerate it with `swag init -g cmd/httpserver/main.go`
// after changing handler annotations.
func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DocExpansion("none"),
	))
}
