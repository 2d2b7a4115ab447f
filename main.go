package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"REDIS_URL",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	if os.Getenv("GO_ENV") != "test" {
		utils.InitMongoClient(config.LoadDatabaseConfig().ClientOptions())
	}
}

func setupRouter(planner *usecase.Planner) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	tasksHandler := handler.NewTasksHandler(planner)
	entriesHandler := handler.NewEntriesHandler(planner)
	scheduleHandler := handler.NewScheduleHandler(planner)
	statsHandler := handler.NewStatsHandler(planner)
	notificationsHandler := handler.NewNotificationsHandler(planner)

	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("/", tasksHandler.ListTasks)
			tasks.POST("/", tasksHandler.CreateTask)
			tasks.PUT("/:id", tasksHandler.UpdateTask)
			tasks.DELETE("/:id", tasksHandler.DeleteTask)
		}

		entries := api.Group("/entries")
		{
			entries.GET("/", entriesHandler.ListEntries)
			entries.GET("/today", entriesHandler.TodayEntries)
			entries.POST("/", entriesHandler.CreateEntry)
			entries.POST("/:id/complete", entriesHandler.CompleteEntry)
			entries.POST("/:id/skip", entriesHandler.SkipEntry)
			entries.POST("/:id/undo", entriesHandler.UndoEntry)
		}

		schedule := api.Group("/schedule")
		{
			schedule.GET("/current", scheduleHandler.CurrentSchedule)
			schedule.POST("/toggle", scheduleHandler.ToggleTask)
			schedule.PUT("/", scheduleHandler.SaveSchedule)
		}

		api.GET("/stats", statsHandler.GetStats)

		notifications := api.Group("/notifications")
		{
			notifications.GET("/config", notificationsHandler.GetConfig)
			notifications.PUT("/config", notificationsHandler.UpdateConfig)
			notifications.POST("/test", notificationsHandler.TestReminder)
		}
	}

	return router
}

func main() {
	redisCfg := config.LoadRedisConfig()

	statsCache, err := services.NewStatsCache(redisCfg.URL, redisCfg.StatsTTL, redisCfg.DialTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize stats cache: %v", err)
	}
	reminders, err := services.NewReminderScheduler(redisCfg.URL, redisCfg.DialTimeout)
	if err != nil {
		log.Fatalf("Failed to initialize reminder scheduler: %v", err)
	}

	planner := usecase.NewPlanner(usecase.PlannerDeps{
		Tasks:     repository.GetTasksRepo(utils.MongoClient),
		Entries:   repository.GetEntriesRepo(utils.MongoClient),
		Schedules: repository.GetSchedulesRepo(utils.MongoClient),
		Config:    repository.GetNotificationConfigRepo(utils.MongoClient),
		Notifier:  reminders,
		Clock:     usecase.SystemClock{},
		Cache:     statsCache,
	})

	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	planner.LoadAll(loadCtx)
	cancel()

	router := setupRouter(planner)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
