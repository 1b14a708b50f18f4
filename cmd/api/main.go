// SmartFit API
//
// REST API for rule-based fitness estimation, planning and coaching.
//
//	@title			SmartFit API
//	@version		1.0
//	@description	Estimate calorie burn and body composition, project weight over time, classify fitness archetypes, build diet and workout plans, and explore synthetic fitness data.
//
//	@BasePath	/v1
//
//	@tag.name			estimates
//	@tag.description	Calorie, body composition and weight projection estimates
//
//	@tag.name			profiles
//	@tag.description	Fitness archetype classification
//
//	@tag.name			archetypes
//	@tag.description	Fitness archetype catalog
//
//	@tag.name			plans
//	@tag.description	Diet and workout plan generation
//
//	@tag.name			explorer
//	@tag.description	Synthetic dataset generation and analysis
//
//	@tag.name			dashboard
//	@tag.description	Dashboard overview figures
//
//	@tag.name			insights
//	@tag.description	LLM-powered coaching advice and feedback
package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/smartfit/fitness-api/internal/api"
	"github.com/smartfit/fitness-api/internal/api/handler"
	"github.com/smartfit/fitness-api/internal/config"
	"github.com/smartfit/fitness-api/internal/langfuse"
	"github.com/smartfit/fitness-api/internal/llm"
	"github.com/smartfit/fitness-api/internal/service"
	"github.com/smartfit/fitness-api/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Configure logging
	if cfg.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	// Initialize tracing (no-op when Langfuse is not configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "fitness-api")
	if err != nil {
		logrus.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logrus.Warnf("Tracer shutdown failed: %v", err)
		}
	}()

	// Initialize services
	calorieService := service.NewCalorieService()
	bodyService := service.NewBodyCompositionService()
	projectionService := service.NewProjectionService()
	archetypeService := service.NewArchetypeService()
	workoutService := service.NewWorkoutPlanService()
	dietService := service.NewDietPlanService()
	explorerService := service.NewExplorerService()

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel)
	if openaiClient == nil {
		logrus.Warn("OpenAI API key not configured, coach endpoint will be unavailable")
	}

	coachService := service.NewCoachService(calorieService, bodyService, archetypeService, projectionService, openaiClient)

	// Initialize Langfuse client (disabled when not configured)
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize handlers
	estimateHandler := handler.NewEstimateHandler(calorieService, bodyService, projectionService)
	archetypeHandler := handler.NewArchetypeHandler(archetypeService)
	planHandler := handler.NewPlanHandler(dietService, workoutService)
	explorerHandler := handler.NewExplorerHandler(explorerService)
	insightsHandler := handler.NewInsightsHandler(coachService, langfuseClient)

	// Setup router
	router := api.NewRouter(
		estimateHandler,
		archetypeHandler,
		planHandler,
		explorerHandler,
		insightsHandler,
		strings.Split(cfg.AllowedOrigins, ","),
	)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	logrus.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		logrus.Fatalf("Server failed: %v", err)
	}
}
