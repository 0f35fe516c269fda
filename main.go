package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/dbos-inc/dbos-transact-golang/dbos"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"travel-assistant/handlers"
	"travel-assistant/services"
	"travel-assistant/workflows"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// Get database URL from environment
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	// Connect to PostgreSQL for booking data
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test the connection
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Connected to PostgreSQL database")

	// Initialize the Gemini model
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required")
	}
	llm, err := services.NewGeminiModel(context.Background(), services.GeminiConfig{
		APIKey: apiKey,
		Model:  os.Getenv("GEMINI_MODEL"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize Gemini model: %v", err)
	}

	// Initialize the SMTP mailer
	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	mailer, err := services.NewMailer(services.MailerConfig{
		Host:     envOr("SMTP_SERVER", "smtp.gmail.com"),
		Port:     smtpPort,
		Username: os.Getenv("EMAIL_USER"),
		Password: os.Getenv("EMAIL_PASS"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	// Initialize workflows
	bookingWorkflows := workflows.NewBookingWorkflows(db, mailer)

	// Initialize DBOS context for durable workflows
	dbosCtx, err := dbos.NewDBOSContext(context.Background(), dbos.Config{
		DatabaseURL: dbURL,
		AppName:     "travel-assistant",
	})
	if err != nil {
		log.Fatalf("Failed to initialize DBOS: %v", err)
	}

	// Register workflows with DBOS (MUST be before Launch)
	dbos.RegisterWorkflow(dbosCtx, bookingWorkflows.CreateBookingWorkflow)

	// Launch DBOS (starts workflow recovery)
	if err := dbos.Launch(dbosCtx); err != nil {
		log.Fatalf("Failed to launch DBOS: %v", err)
	}
	defer dbos.Shutdown(dbosCtx, 5*time.Second)
	log.Println("DBOS initialized - durable workflows enabled")

	port := envOr("PORT", "8080")

	// The chat agent submits bookings through the gateway endpoint, which
	// this process also serves unless pointed elsewhere.
	gatewayURL := envOr("BOOKING_API_URL", fmt.Sprintf("http://localhost:%s", port))
	gateway := services.NewBookingClient(gatewayURL)

	// Initialize handlers
	chatHandler := handlers.NewChatHandler(llm, gateway)
	bookingHandler := handlers.NewBookingHandler(db, dbosCtx, bookingWorkflows)
	voiceHandler := handlers.NewVoiceHandler(apiKey, envOr("GEMINI_LIVE_MODEL", "gemini-2.0-flash-exp"), chatHandler)

	// Setup Gin router
	router := gin.Default()

	// Enable CORS for local development
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// API routes
	api := router.Group("/api")
	{
		// Booking gateway
		api.POST("/create-booking", bookingHandler.CreateBooking)
		api.GET("/bookings", bookingHandler.ListBookings)

		// Destination catalog
		api.GET("/destinations", handlers.ListDestinations)

		// Conversation routes
		api.POST("/chat/start", chatHandler.StartChat)
		api.POST("/chat/:id/messages", chatHandler.SendMessage)
		api.POST("/chat/:id/form", chatHandler.SubmitForm)
		api.GET("/chat/:id/messages", chatHandler.GetMessages)
		api.DELETE("/chat/:id", chatHandler.DeleteConversation)

		// Voice duplex bridge
		api.GET("/chat/:id/voice", voiceHandler.Stream)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "dbos": "enabled"})
	})

	// Serve static files
	router.Static("/static", "./static")
	router.GET("/", func(c *gin.Context) {
		c.File("./static/index.html")
	})

	// Start server
	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
