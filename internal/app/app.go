package app

import (
	"database/sql"
	"fmt"
	"log"

	"teamboard/internal/config"
	"teamboard/internal/handlers"
	"teamboard/internal/middleware"
	"teamboard/internal/realtime"
	"teamboard/internal/repositories"
	"teamboard/internal/routes"
	"teamboard/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "teamboard/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	if cfg.Auth.JWTSecret != "" {
		middleware.JWTKey = []byte(cfg.Auth.JWTSecret)
	}

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	roleRepo := repositories.NewRoleRepository(db)
	subTaskRepo := repositories.NewSubTaskRepository(db)
	progressRepo := repositories.NewProgressRepository(db)
	evaluationRepo := repositories.NewEvaluationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// === Services ===
	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, roleRepo)
	roleService := services.NewRoleService(roleRepo)
	subTaskService := services.NewSubTaskService(subTaskRepo)
	progressService := services.NewProgressService(progressRepo)
	evaluationService := services.NewEvaluationService(evaluationRepo)
	messageService := services.NewMessageService(messageRepo)

	hub := realtime.NewBoardHub()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService, cfg.Files.RootDir)
	taskHandler := handlers.NewTaskHandler(taskService)
	roleHandler := handlers.NewRoleHandler(roleService)
	subTaskHandler := handlers.NewSubTaskHandler(subTaskService)
	progressHandler := handlers.NewProgressHandler(progressService)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationService)
	messageHandler := handlers.NewMessageHandler(messageService, hub)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded avatars
	router.Static("/static", cfg.Files.RootDir)

	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		taskHandler,
		roleHandler,
		subTaskHandler,
		progressHandler,
		evaluationHandler,
		messageHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
