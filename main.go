package main

import (
	"log"
	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	checkRequiredEnvVars()

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()

	initRedis()

	cfg := config.LoadDatabaseConfig()
	if err := repository.SetupIndexes(utils.MongoClient.Database(cfg.DatabaseName)); err != nil {
		log.Printf("Warning: failed to set up indexes: %v", err)
	}

	router := setupRouter()

	port := utils.GetEnvAsString("PORT", "8080")
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func checkRequiredEnvVars() {
	required := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"TODOS_COLLECTION",
		"WORKOUTS_COLLECTION",
		"MEALS_COLLECTION",
		"TRANSACTIONS_COLLECTION",
		"CATEGORIES_COLLECTION",
		"USERS_COLLECTION",
		"SESSIONS_COLLECTION",
	}
	for _, key := range required {
		if os.Getenv(key) == "" {
			log.Fatalf("Required environment variable %s is not set", key)
		}
	}
}

// initRedis wires the token blacklist and session cache. Both are optional
// at startup; when Redis is down the app still serves, minus revocation
// and cache acceleration.
func initRedis() {
	redisURL := utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379")

	blacklist, err := services.NewTokenBlacklist(redisURL)
	if err != nil {
		log.Printf("Warning: token blacklist unavailable: %v", err)
	} else {
		services.TokenBlacklist = blacklist
	}

	cacheTTL := utils.GetEnvAsDuration("SESSION_CACHE_TTL", 24*time.Hour)
	cache, err := services.NewSessionCache(redisURL, cacheTTL)
	if err != nil {
		log.Printf("Warning: session cache unavailable: %v", err)
	} else {
		services.GlobalSessionCache = cache
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()

	maxRequestSize := utils.GetEnvAsInt("MAX_REQUEST_SIZE_MB", 5)

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(int64(maxRequestSize) << 20))

	todosRepo := repository.GetTodosRepo(utils.MongoClient)
	workoutsRepo := repository.GetWorkoutsRepo(utils.MongoClient)
	mealsRepo := repository.GetMealsRepo(utils.MongoClient)
	transactionsRepo := repository.GetTransactionsRepo(utils.MongoClient)
	categoriesRepo := repository.GetCategoriesRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)

	router.Use(middleware.SessionMiddleware(sessionRepo))

	todosService := usecase.NewTodosService(todosRepo)
	workoutsService := usecase.NewWorkoutsService(workoutsRepo)
	mealsService := usecase.NewMealsService(mealsRepo)
	financeService := usecase.NewFinanceService(transactionsRepo, categoriesRepo)
	usersService := usecase.NewUsersService(usersRepo)
	insightsService := usecase.NewInsightsService(todosRepo, workoutsRepo, mealsRepo, transactionsRepo)

	todosHandler := handler.NewTodosHandler(todosService)
	workoutsHandler := handler.NewWorkoutsHandler(workoutsService)
	mealsHandler := handler.NewMealsHandler(mealsService)
	financeHandler := handler.NewFinanceHandler(financeService)
	insightsHandler := handler.NewInsightsHandler(insightsService)
	registrationHandler := handler.NewRegistrationHandler(usersService)
	loginHandler := handler.NewLoginHandler(usersService, sessionRepo)
	logoutHandler := handler.NewLogoutHandler(sessionRepo)
	profileHandler := handler.NewProfileHandler(usersRepo)
	sessionHandler := handler.NewSessionHandler(sessionRepo)

	router.GET("/api/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", registrationHandler.Register)
		auth.POST("/login", loginHandler.Login)
	}

	todos := router.Group("/api/todos")
	todos.Use(middleware.AuthMiddleware())
	{
		todos.GET("", todosHandler.GetUserTodos)
		todos.POST("", todosHandler.CreateTodo)
		todos.PUT("/:id", todosHandler.UpdateTodo)
		todos.PATCH("/:id/toggle", todosHandler.ToggleTodo)
		todos.DELETE("/:id", todosHandler.DeleteTodo)
	}

	workouts := router.Group("/api/workouts")
	workouts.Use(middleware.AuthMiddleware())
	{
		workouts.GET("", workoutsHandler.GetUserWorkouts)
		workouts.POST("", workoutsHandler.CreateWorkout)
		workouts.PATCH("/:id", workoutsHandler.UpdateWorkout)
		workouts.DELETE("/:id", workoutsHandler.DeleteWorkout)
	}

	meals := router.Group("/api/diet/meals")
	meals.Use(middleware.AuthMiddleware())
	{
		meals.GET("", mealsHandler.GetUserMeals)
		meals.POST("", mealsHandler.CreateMeal)
		meals.PATCH("/:id", mealsHandler.UpdateMeal)
		meals.DELETE("/:id", mealsHandler.DeleteMeal)
	}

	transactions := router.Group("/api/finance/transactions")
	transactions.Use(middleware.AuthMiddleware())
	{
		transactions.GET("", financeHandler.GetUserTransactions)
		transactions.POST("", financeHandler.CreateTransaction)
		transactions.PATCH("/:id", financeHandler.UpdateTransaction)
		transactions.DELETE("/:id", financeHandler.DeleteTransaction)
	}

	categories := router.Group("/api/finance/categories")
	categories.Use(middleware.AuthMiddleware())
	{
		categories.GET("", financeHandler.GetUserCategories)
		categories.POST("", financeHandler.CreateCategory)
		categories.PATCH("/:id", financeHandler.UpdateCategory)
		categories.DELETE("/:id", financeHandler.DeleteCategory)
	}

	insights := router.Group("/api/insights")
	insights.Use(middleware.AuthMiddleware())
	{
		insights.GET("/monthly", insightsHandler.GetMonthlyInsights)
	}

	user := router.Group("/api/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/profile", middleware.CacheControlMiddleware("60"), profileHandler.GetProfile)
		user.POST("/logout", logoutHandler.Logout)
	}

	sessions := router.Group("/api/sessions")
	sessions.Use(middleware.AuthMiddleware())
	{
		sessions.GET("/active", sessionHandler.GetActiveSessions)
		sessions.POST("/logout-all", sessionHandler.LogoutAllSessions)
	}

	return router
}
