package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"earthwords/internal/audio"
	"earthwords/internal/catalog"
	"earthwords/internal/config"
	"earthwords/internal/database"
	"earthwords/internal/handlers"
	"earthwords/internal/notify"
	"earthwords/internal/repository"
	"earthwords/internal/scheduler"
	"earthwords/internal/security"
	"earthwords/internal/service"
	"earthwords/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	mux := http.NewServeMux()
	mux.Handle("GET /healthz", handlers.Startup())

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Serve /healthz while the rest starts up
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Initialize database with config (supports sqlite, postgres, mysql)
	handlers.SetCurrentStep(handlers.StepDatabase)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()
	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)
	handlers.CompleteStep(handlers.StepDatabase)

	handlers.SetCurrentStep(handlers.StepMigrations)
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")
	handlers.CompleteStep(handlers.StepMigrations)

	handlers.SetCurrentStep(handlers.StepCatalog)
	cat := catalog.Default()
	if cfg.WordsWorkbookPath != "" {
		result, err := catalog.ImportWorkbook(cat, cfg.WordsWorkbookPath)
		if err != nil {
			log.Printf("Warning: Failed to import words from %s: %v", cfg.WordsWorkbookPath, err)
		} else {
			log.Printf("Imported %d of %d words from %s", result.Imported, result.TotalProcessed, cfg.WordsWorkbookPath)
			for _, e := range result.Errors {
				log.Printf("Word import: %s", e)
			}
		}
	}
	handlers.CompleteStep(handlers.StepCatalog)

	// Initialize services
	handlers.SetCurrentStep(handlers.StepServices)
	blobRepo := repository.NewBlobRepository(db)
	workspaces := service.NewWorkspaces(cat, func(learnerID string) storage.Store {
		return storage.NewLearnerStore(blobRepo, learnerID)
	}, notify.LogSink{Enabled: cfg.Debug})

	pronunciations := audio.NewPronunciationService(cfg.PronunciationBaseURL, cfg.SpeechBaseURL, cfg.AudioPath)
	mediaService := service.NewMediaService(cat, pronunciations,
		audio.NewImageGenerator(audio.ImageDelay),
		audio.NewSpeechRecognizer(audio.SpeechDelay),
	)

	tokens := security.NewTokenIssuer(cfg.TokenSecret, cfg.TokenDuration)
	limiter := security.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	middleware := handlers.NewMiddleware(tokens, limiter)

	handlers.RegisterAPI(mux, middleware, handlers.Handlers{
		Scenes:   handlers.NewSceneHandler(service.NewSceneService(workspaces)),
		Lessons:  handlers.NewLessonHandler(service.NewLessonService(workspaces)),
		Quizzes:  handlers.NewQuizHandler(service.NewQuizService(workspaces)),
		Profiles: handlers.NewProfileHandler(service.NewProfileService(workspaces, cat)),
		Media:    handlers.NewMediaHandler(mediaService),
	})
	mux.Handle("GET /audio/", http.StripPrefix("/audio/", http.FileServer(http.Dir(cfg.AudioPath))))
	handlers.CompleteStep(handlers.StepServices)

	handlers.SetCurrentStep(handlers.StepScheduler)
	sched := scheduler.New(workspaces, mediaService, limiter, cfg.WorkspaceIdleTTL, scheduler.DefaultInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer sched.Stop()
	handlers.CompleteStep(handlers.StepScheduler)

	handlers.MarkReady()
	log.Println("Server ready")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
