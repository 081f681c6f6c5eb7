package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"training-service/internal/content"
	"training-service/internal/db"
	"training-service/internal/event"
	"training-service/internal/handlers"
	"training-service/internal/middleware"
	"training-service/internal/repository"
	"training-service/internal/service"
	"training-service/internal/taskgen"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	db.InitMongo(mongoURI)

	// RabbitMQ event publisher
	rabbitURL := os.Getenv("RABBITMQ_URI")
	eventExchange := os.Getenv("RABBITMQ_EXCHANGE")
	var publisher *event.EventPublisher
	if rabbitURL != "" && eventExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(rabbitURL, eventExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, activity events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database("training_service")

	userRepo := repository.NewUserRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	scoreRepo := repository.NewTestScoreRepository(database)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := progressRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create progress indexes: %v", err)
	}
	if err := scoreRepo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create test score indexes: %v", err)
	}
	cancel()

	contentDir := os.Getenv("CONTENT_DIR")
	if contentDir == "" {
		contentDir = "data"
	}
	bank := content.Load(contentDir)
	generator := taskgen.NewGenerator(bank)

	authService := service.NewAuthService(userRepo, progressRepo, jwtSecret)
	gameService := service.NewGameService(progressRepo, generator)
	testService := service.NewTestService(scoreRepo, userRepo)
	adminService := service.NewAdminService(userRepo, progressRepo, scoreRepo)

	authHandler := handlers.NewAuthHandler(authService)
	gameHandler := handlers.NewGameHandler(gameService)
	testHandler := handlers.NewTestHandler(testService)
	adminHandler := handlers.NewAdminHandler(adminService)

	protect := middleware.Protect(userRepo, jwtSecret)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", func(c *gin.Context) {
			authHandler.Register(c)
			if publisher != nil {
				publisher.Publish("training.user.registered", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		auth.POST("/login", func(c *gin.Context) {
			authHandler.Login(c)
			if publisher != nil {
				publisher.Publish("training.user.logged_in", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		auth.GET("/me", protect, authHandler.Me)
	}

	game := r.Group("/api/game", protect, middleware.ExperimentalOnly())
	{
		game.GET("/daily-tasks", gameHandler.GetDailyTasks)
		game.GET("/task/:taskId", gameHandler.GetTask)
		game.POST("/submit-task", func(c *gin.Context) {
			gameHandler.SubmitTask(c)
			if publisher != nil {
				publisher.Publish("training.task.submitted", gin.H{
					"user_id":   middleware.CurrentUser(c).ID,
					"timestamp": time.Now(),
				})
			}
		})
		game.GET("/progress", gameHandler.GetProgress)
	}

	test := r.Group("/api/test", protect)
	{
		test.POST("/submit", middleware.AdminOnly(), func(c *gin.Context) {
			testHandler.SubmitScore(c)
			if publisher != nil {
				publisher.Publish("training.test.scored", gin.H{
					"timestamp": time.Now(),
				})
			}
		})
		test.GET("/my-scores", testHandler.GetMyScores)
		test.GET("/scores/:userId", testHandler.GetScoresByUser)
	}

	admin := r.Group("/api/admin")
	{
		admin.POST("/setup", adminHandler.CreateAdmin)

		authed := admin.Group("", protect, middleware.AdminOnly())
		authed.GET("/students", adminHandler.ListStudents)
		authed.GET("/students/:id", adminHandler.GetStudentDetail)
		authed.GET("/export/csv", adminHandler.ExportCSV)
		authed.GET("/export/excel", adminHandler.ExportExcel)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	r.Run(":" + port)
}
