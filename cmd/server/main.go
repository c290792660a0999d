package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/backend/internal/api"
	"fittrack/backend/internal/config"
	"fittrack/backend/internal/recommend"
	"fittrack/backend/internal/repository/mongo"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title FitTrack API
// @version 1.0
// @description Backend for the fitness tracking app: recommendations, chat history, exercise plans, calorie logs, reviews and goal estimation.
// @host localhost:8080
// @BasePath /
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	// --- Logger ---
	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("FATAL: Could not build logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("starting fittrack server", zap.String("address", cfg.Server.Address))

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logger.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		logger.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Info("database connection established", zap.String("database", cfg.Database.Name))

	// --- Ensure Indexes ---
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureProfileIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureQuestionnaireIndexes(ctx, appDB.Collection("questions"))
		mongo.EnsureChatIndexes(ctx, appDB.Collection("chat_history"))
		mongo.EnsurePlanIndexes(ctx, appDB.Collection("recommended_exercise"))
		mongo.EnsureProgressIndexes(ctx, appDB.Collection("Progress"))
		logger.Info("index creation process completed")
	}()

	// --- Initialize Repositories ---
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	questionnaireRepo := mongo.NewMongoQuestionnaireRepository(appDB)
	chatRepo := mongo.NewMongoChatRepository(appDB)
	planRepo := mongo.NewMongoPlanRepository(appDB)
	progressRepo := mongo.NewMongoProgressRepository(appDB)
	reviewRepo := mongo.NewMongoReviewRepository(appDB)

	// --- Initialize Services ---
	engine := recommend.NewEngine()
	recommendationService := service.NewRecommendationService(profileRepo, engine, engine)
	chatService := service.NewChatService(chatRepo)
	planService := service.NewPlanService(planRepo, questionnaireRepo, engine, logger)
	progressService := service.NewProgressService(progressRepo, questionnaireRepo)
	reviewService := service.NewReviewService(reviewRepo)

	// --- Initialize Gin Engine ---
	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, recommendationService, chatService, planService, progressService, reviewService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// In-flight requests get 5 seconds to finish.
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
