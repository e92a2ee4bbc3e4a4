// setup_test.go - Shared helpers for the handler tests
// Each test gets a fresh throwaway SQLite DB and a router wired exactly like
// main.go, except the payment provider is a stub and event publishing is off.

package handlers

import (
	"bytes"          // For building request bodies
	"encoding/json"  // For encoding/decoding JSON
	"net/http"       // HTTP requests
	"net/http/httptest" // HTTP test helpers
	"os"             // For file operations
	"time"           // Token expiration

	"tool-express-backend/config"     // Project config
	"tool-express-backend/database"   // Database connection and repositories
	"tool-express-backend/middleware" // Access-control middleware
	"tool-express-backend/models"     // Data models

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"gorm.io/gorm"                 // GORM ORM
)

const testSecret = "testsecret" // JWT secret used by every test

// fakeIntents - Stub payment provider recording the requested amount
type fakeIntents struct {
	amount int64 // Last amount passed to CreateIntent
	err    error // Error to return, if any
}

func (f *fakeIntents) CreateIntent(amount int64) (string, error) {
	f.amount = amount
	if f.err != nil {
		return "", f.err
	}
	return "cs_test_secret", nil
}

// setupTestDB removes any existing test DB and creates a new one
func setupTestDB() *gorm.DB {
	_ = os.Remove("test.db") // Remove old test DB if exists
	cfg := &config.Config{DBPath: "test.db", JWTSecret: testSecret}
	db, err := database.Connect(cfg) // Connect and migrate
	if err != nil {
		panic(err)
	}
	return db
}

// setupRouter wires the full route table the way main.go does
func setupRouter(db *gorm.DB, intents *fakeIntents) *gin.Engine {
	tools := NewToolHandler(database.NewToolRepo(db))
	reviews := NewReviewHandler(database.NewReviewRepo(db))
	orders := NewOrderHandler(database.NewOrderRepo(db), nil) // No event broker in tests
	userRepo := database.NewUserRepo(db)
	users := NewUserHandler(userRepo, testSecret)
	payments := NewPaymentHandler(database.NewPaymentRepo(db), intents)
	gate := middleware.NewGate(testSecret, userRepo)

	r := gin.Default()
	r.GET("/tools", tools.List)
	r.GET("/tools/:id", gate.Auth(), tools.Get)
	r.POST("/tools", gate.Admin(), tools.Create)
	r.PUT("/tools/:id", gate.Admin(), tools.Upsert)
	r.DELETE("/tools/:id", gate.Admin(), tools.Delete)
	r.GET("/reviews", reviews.List)
	r.POST("/reviews", gate.NonAdmin(), reviews.Create)
	r.GET("/orders", gate.Admin(), orders.List)
	r.GET("/orders/:id", orders.Get)
	r.GET("/order/:email", orders.ListByEmail)
	r.POST("/payOrders", gate.Auth(), orders.Place)
	r.PUT("/order/:id", gate.Admin(), orders.Upsert)
	r.PATCH("/orders/:id", gate.Auth(), orders.CompletePayment)
	r.DELETE("/orders/:id", gate.Auth(), orders.Delete)
	r.GET("/users", gate.Admin(), users.List)
	r.GET("/admin/:email", gate.Auth(), users.IsAdmin)
	r.GET("/user/:email", gate.Auth(), users.Get)
	r.PUT("/user/:id", gate.Auth(), users.UpsertByID)
	r.PUT("/users/:email", users.Login)
	r.DELETE("/user/:id", gate.Admin(), users.Delete)
	r.GET("/payments", gate.Admin(), payments.List)
	r.POST("/create-payment-intent", gate.Auth(), payments.CreateIntent)
	return r
}

// makeToken signs a valid 1h credential for the given email
func makeToken(email string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte(testSecret))
	return signed
}

// createAdminUser stores an admin user and returns a credential for it
func createAdminUser(db *gorm.DB) string {
	admin := models.User{Email: "admin@test.com", Role: models.RoleAdmin}
	db.Create(&admin)
	return makeToken(admin.Email)
}

// createStandardUser stores a regular user and returns a credential for it
func createStandardUser(db *gorm.DB) string {
	user := models.User{Email: "user@test.com"}
	db.Create(&user)
	return makeToken(user.Email)
}

// doJSON performs one request with an optional JSON body and bearer token
func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		buf = bytes.NewBuffer(data)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}
