package main

import (
	"log"
	"os"
	"time"

	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/auth"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/cart"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/catalog"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/dashboard"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/db"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/mealplan"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/middleware"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/order"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/recommend"
	"github.com/KishoreS200/Climate-Smart-Cafeteria/internal/waste"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ Missing env var: JWT_SECRET")
	}

	// ───────────────────────── REPOS ─────────────────────────
	// With DATABASE_URL set the API persists to Postgres; without it
	// everything runs from seeded in-memory repositories.
	var (
		userRepo  auth.UserRepository
		wasteRepo waste.Repository
		orderRepo order.Repository
	)

	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		userRepo = auth.NewPostgresUserRepository(pgDB)
		wasteRepo = waste.NewPostgresRepository(pgDB)
		orderRepo = order.NewPostgresRepository(pgDB)
	} else {
		log.Println("DATABASE_URL not set, running with in-memory storage")
		userRepo = auth.NewInMemoryUserRepository()
		wasteRepo = waste.NewInMemoryRepository(waste.Seed())
		orderRepo = order.NewInMemoryRepository()
	}

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── SERVICES ─────────────────────────
	menu := catalog.New(catalog.Seed())
	carts := cart.NewStore()
	plans := mealplan.NewStore()

	authService := auth.NewService(userRepo)
	wasteService := waste.NewService(wasteRepo)
	orderService := order.NewService(orderRepo, carts)
	dashboardService := dashboard.NewService(dashboard.SeedLocations(), dashboard.SeedFarms())

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	catalogHandler := catalog.NewHandler(menu)
	cartHandler := cart.NewHandler(carts, menu, plans)
	planHandler := mealplan.NewHandler(plans, menu)
	orderHandler := order.NewHandler(orderService)
	wasteHandler := waste.NewHandler(wasteService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	recommendHandler := recommend.NewHandler(menu)

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), authHandler.Me)
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	dishes := r.Group("/dishes")
	{
		dishes.GET("", catalogHandler.List)
		dishes.GET("/tags", catalogHandler.Tags)
		dishes.GET("/:id", catalogHandler.GetByID)
	}

	// ───────────────────────── CART ROUTES ─────────────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.AuthMiddleware())
	{
		cartGroup.GET("", cartHandler.Get)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PATCH("/items/:dishId", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:dishId", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.Clear)
		cartGroup.POST("/plan", cartHandler.LoadPlan)
	}

	// ───────────────────────── MEAL PLAN ROUTES ─────────────────────────
	plansGroup := r.Group("/meal-plans")
	plansGroup.Use(middleware.AuthMiddleware())
	{
		plansGroup.POST("", planHandler.Save)
	}

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", orderHandler.Place)
		orders.GET("", orderHandler.History)
		orders.GET("/quote", orderHandler.Quote)
	}

	// ───────────────────────── WASTE ROUTES ─────────────────────────
	wasteGroup := r.Group("/waste")
	wasteGroup.Use(middleware.AuthMiddleware())
	{
		wasteGroup.GET("/entries", wasteHandler.ListEntries)
		wasteGroup.GET("/analytics", wasteHandler.GetAnalytics)
		wasteGroup.GET("/suggestions", wasteHandler.GetSuggestions)

		staff := wasteGroup.Group("")
		staff.Use(middleware.RequireRole(auth.RoleStaff, auth.RoleAdmin))
		{
			staff.POST("/entries", wasteHandler.LogEntry)
		}
	}

	// ───────────────────────── DASHBOARD ROUTES ─────────────────────────
	dashboardGroup := r.Group("/dashboard")
	{
		dashboardGroup.GET("/leaderboard", dashboardHandler.Leaderboard)
		dashboardGroup.GET("/farms", dashboardHandler.Farms)
	}

	// ───────────────────────── RECOMMENDATION ROUTES ─────────────────────────
	recommendations := r.Group("/recommendations")
	recommendations.Use(middleware.AuthMiddleware())
	{
		recommendations.POST("", recommendHandler.Recommend)
		recommendations.POST("/tips", recommendHandler.Tips)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8080")
	r.Run(":8080")
}
