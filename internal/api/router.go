package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "policy-survey-api/docs"
	"policy-survey-api/internal/api/handler"
	"policy-survey-api/pkg/router"
)

// RegisterRoutes wires the survey endpoints, and the API docs when enabled
func RegisterRoutes(r *router.Router, h *handler.SurveyHandler, docsEnabled bool) {
	r.GET("/support", h.Support)
	r.GET("/support_by", h.SupportBy)
	r.GET("/grouped", h.Grouped)

	if docsEnabled {
		r.GET("/docs/*", router.HandlerFunc(httpSwagger.Handler(httpSwagger.URL("/docs/doc.json"))))
	}
}
