package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"quiz-app/internal/auth"
	"quiz-app/internal/models"
	"quiz-app/internal/quiz"
	"quiz-app/pkg/cache"
	"quiz-app/pkg/database"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize database
	dbConfig := &database.Config{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		DBName:   os.Getenv("DB_NAME"),
	}

	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(os.Getenv("REDIS_ADDR"))

	// Initialize repositories
	authRepo := auth.NewRepository(db)
	quizRepo := quiz.NewRepository(db)

	// Initialize services
	jwtSecret := os.Getenv("JWT_SECRET")
	authService := auth.NewService(authRepo, jwtSecret)
	quizService := quiz.NewService(quizRepo, redisCache)

	// Initialize handlers
	authHandler := auth.NewHandler(authService)
	quizHandler := quiz.NewHandler(quizService)

	// Setup router
	router := mux.NewRouter()

	// CORS middleware configuration
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	handler := corsMiddleware.Handler(router)

	protected := auth.JWTMiddleware(jwtSecret)

	// Public routes - no bearer token required
	router.HandleFunc("/api/register", authHandler.Register).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/login", authHandler.Login).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/submit", quizHandler.Submit).Methods("POST", "OPTIONS")

	// Creator-scoped routes - bearer token required.
	// /quiz/admin must be registered ahead of /quiz/{id}.
	router.Handle("/api/quiz/admin", protected(http.HandlerFunc(quizHandler.GetMyQuizzes))).Methods("GET")
	router.Handle("/api/quiz", protected(http.HandlerFunc(quizHandler.CreateQuiz))).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/quiz/{id}", quizHandler.GetQuiz).Methods("GET", "OPTIONS")
	router.Handle("/api/quiz/{id}", protected(http.HandlerFunc(quizHandler.UpdateQuiz))).Methods("PUT")
	router.Handle("/api/quiz/{id}", protected(http.HandlerFunc(quizHandler.DeleteQuiz))).Methods("DELETE")

	// Setup server with CORS handler
	srv := &http.Server{
		Addr:         ":8080",
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port 8080")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown setup
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server shutdown gracefully")
}
