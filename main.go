package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/danuartha/warung-pos/config"
	"github.com/danuartha/warung-pos/middlewares"
	"github.com/danuartha/warung-pos/router"
	"github.com/danuartha/warung-pos/utils"
)

func init() {
	// Load .env di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	// Initialize DB; gagal di sini fatal, beda dengan error I/O runtime
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	utils.InitDB(db)

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps := router.NewDeps(db)

	if err := deps.Store.AutoMigrate(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	// Katalog bawaan saat first run
	if err := deps.Menu.SeedIfEmpty(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed default catalog: %v", err)
	}

	// Rollover harian: cek sekali saat startup (semantik catch-up),
	// lalu pantau jam tutup di background
	if _, err := deps.Rollover.MaybeDailyReset(); err != nil {
		utils.ErrorLogger.Errorf("Startup daily reset check failed: %v", err)
	}
	deps.Rollover.Start()
	defer deps.Rollover.Stop()

	// Setup rate limiter (50 requests per second per IP)
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(deps)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
