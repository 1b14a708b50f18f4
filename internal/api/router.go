package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	_ "github.com/smartfit/fitness-api/docs"
	"github.com/smartfit/fitness-api/internal/api/handler"
	"github.com/smartfit/fitness-api/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	estimateHandler  *handler.EstimateHandler
	archetypeHandler *handler.ArchetypeHandler
	planHandler      *handler.PlanHandler
	explorerHandler  *handler.ExplorerHandler
	insightsHandler  *handler.InsightsHandler
	allowedOrigins   []string
}

func NewRouter(
	estimateHandler *handler.EstimateHandler,
	archetypeHandler *handler.ArchetypeHandler,
	planHandler *handler.PlanHandler,
	explorerHandler *handler.ExplorerHandler,
	insightsHandler *handler.InsightsHandler,
	allowedOrigins []string,
) *Router {
	return &Router{
		estimateHandler:  estimateHandler,
		archetypeHandler: archetypeHandler,
		planHandler:      planHandler,
		explorerHandler:  explorerHandler,
		insightsHandler:  insightsHandler,
		allowedOrigins:   allowedOrigins,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/estimates", func(r chi.Router) {
			r.Post("/calories", rt.estimateHandler.EstimateCalories)
			r.Post("/body-composition", rt.estimateHandler.EstimateBodyComposition)
			r.Post("/weight-projection", rt.estimateHandler.ProjectWeight)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Post("/classify", rt.archetypeHandler.Classify)
		})

		r.Route("/archetypes", func(r chi.Router) {
			r.Get("/", rt.archetypeHandler.List)
			r.Get("/{archetypeId}", rt.archetypeHandler.GetByID)
		})

		r.Route("/plans", func(r chi.Router) {
			r.Post("/diet", rt.planHandler.BuildDietPlan)
			r.Post("/workout", rt.planHandler.BuildWorkoutPlan)
		})

		r.Route("/explorer", func(r chi.Router) {
			r.Get("/dataset", rt.explorerHandler.Dataset)
			r.Get("/summary", rt.explorerHandler.Summary)
			r.Get("/correlations", rt.explorerHandler.Correlations)
			r.Get("/clusters", rt.explorerHandler.Clusters)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/overview", rt.explorerHandler.Overview)
		})

		r.Route("/insights", func(r chi.Router) {
			r.Post("/coach", rt.insightsHandler.Coach)
			r.Post("/feedback", rt.insightsHandler.Feedback)
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: rt.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
	})

	return c.Handler(r)
}
