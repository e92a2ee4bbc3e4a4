// main.go - Entry point for the Tool Express backend server

package main // Declares the package name

import ( // Import required packages
	"log" // Logging

	"tool-express-backend/config"     // Project config management
	"tool-express-backend/database"   // Database connection and repositories
	"tool-express-backend/events"     // MQTT event publication
	"tool-express-backend/handlers"   // HTTP handlers for API endpoints
	"tool-express-backend/middleware" // Access-control middleware
	"tool-express-backend/payment"    // Payment provider client

	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/joho/godotenv" // .env file loading
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and establish connections
	_ = godotenv.Load() // Load .env if present (ignored in production)
	cfg := config.Load()

	db, err := database.Connect(cfg) // Connect to the database, migrate, seed admin
	if err != nil {
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}

	var pub *events.Publisher // nil publisher = event publishing disabled
	if cfg.MQTTBroker != "" {
		pub, err = events.Connect(cfg.MQTTBroker) // Connect to the MQTT broker
		if err != nil {
			log.Fatal("MQTT connection error: ", err)
		}
		defer pub.Close()
	}

	// STEP 2: Build repositories, guards and handlers (explicit injection,
	// no package-level state)
	tools := handlers.NewToolHandler(database.NewToolRepo(db))
	reviews := handlers.NewReviewHandler(database.NewReviewRepo(db))
	orders := handlers.NewOrderHandler(database.NewOrderRepo(db), pub)
	userRepo := database.NewUserRepo(db)
	users := handlers.NewUserHandler(userRepo, cfg.JWTSecret)
	payments := handlers.NewPaymentHandler(database.NewPaymentRepo(db), payment.NewStripe(cfg.StripeKey))
	gate := middleware.NewGate(cfg.JWTSecret, userRepo)

	// STEP 3: Create Gin router and configure routes
	r := gin.Default() // Create a new Gin router (web server)

	r.GET("/", func(c *gin.Context) { // Hello route (liveness)
		c.JSON(200, gin.H{"message": "Tool Express server is running"})
	})

	// Tools
	r.GET("/tools", tools.List)                       // Public: list tools
	r.GET("/tools/:id", gate.Auth(), tools.Get)       // Auth: tool by id
	r.POST("/tools", gate.Admin(), tools.Create)      // Admin: add tool
	r.PUT("/tools/:id", gate.Admin(), tools.Upsert)   // Admin: upsert tool
	r.DELETE("/tools/:id", gate.Admin(), tools.Delete) // Admin: delete tool

	// Reviews
	r.GET("/reviews", reviews.List)                       // Public: list reviews
	r.POST("/reviews", gate.NonAdmin(), reviews.Create)   // Non-admin: add review

	// Orders
	r.GET("/orders", gate.Admin(), orders.List)                 // Admin: list all orders
	r.GET("/orders/:id", orders.Get)                            // Public: order by id
	r.GET("/order/:email", orders.ListByEmail)                  // Public: orders by owner
	r.POST("/payOrders", gate.Auth(), orders.Place)             // Auth: place order
	r.PUT("/order/:id", gate.Admin(), orders.Upsert)            // Admin: upsert order
	r.PATCH("/orders/:id", gate.Auth(), orders.CompletePayment) // Auth: mark paid
	r.DELETE("/orders/:id", gate.Auth(), orders.Delete)         // Auth: delete order

	// Users
	r.GET("/users", gate.Admin(), users.List)           // Admin: list users
	r.GET("/admin/:email", gate.Auth(), users.IsAdmin)  // Auth: admin check
	r.GET("/user/:email", gate.Auth(), users.Get)       // Auth: user by email
	r.PUT("/user/:id", gate.Auth(), users.UpsertByID)   // Auth: upsert user by id
	r.PUT("/users/:email", users.Login)                 // Public: upsert + issue token
	r.DELETE("/user/:id", gate.Admin(), users.Delete)   // Admin: delete user

	// Payments
	r.GET("/payments", gate.Admin(), payments.List)                     // Admin: payment log
	r.POST("/create-payment-intent", gate.Auth(), payments.CreateIntent) // Auth: Stripe intent

	// STEP 4: Start the web server
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
