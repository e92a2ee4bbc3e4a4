// user.go - Handlers for the users resource and credential issuance
// There are no passwords: PUT /users/:email upserts the user record and
// hands back a fresh 24h JWT for that email. Role is deliberately absent
// from every request contract; it can only be granted by the admin seed.

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // Sentinel error checks
	"io"       // For tolerating empty request bodies on login
	"net/http" // HTTP status codes
	"time"     // Token expiration

	"tool-express-backend/database" // User repository
	"tool-express-backend/models"   // User model

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT library
	"gorm.io/gorm"                 // For gorm.ErrRecordNotFound
)

// TokenTTL is how long an issued credential stays valid.
const TokenTTL = 24 * time.Hour

type UserInput struct { // Validated request contract for user upserts
	Name string `json:"name"` // Display name; role is intentionally not accepted
}

type UserHandler struct { // UserHandler bundles the user endpoints
	Users  *database.UserRepo // Injected repository
	Secret string             // JWT signing secret
}

func NewUserHandler(users *database.UserRepo, secret string) *UserHandler { // Constructor
	return &UserHandler{Users: users, Secret: secret}
}

// List - GET /users (admin): all users, newest first
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get - GET /user/:email (auth): one user by email, 404 if missing
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.Users.GetByEmail(c.Param("email"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// IsAdmin - GET /admin/:email (auth): {"admin": bool} for the given email
func (h *UserHandler) IsAdmin(c *gin.Context) {
	admin, err := h.Users.IsAdmin(c.Param("email"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// UpsertByID - PUT /user/:id (auth): update or create under the given id
func (h *UserHandler) UpsertByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var input struct { // Email is part of the body here since the key is the id
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	user := models.User{Email: input.Email, Name: input.Name}
	result, err := h.Users.UpsertByID(id, &user)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Login - PUT /users/:email (public): upsert by email, issue a 24h credential
func (h *UserHandler) Login(c *gin.Context) {
	email := c.Param("email")
	var input UserInput
	// Body may carry a display name; an empty body is a plain login
	if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	user := models.User{Name: input.Name}
	result, err := h.Users.UpsertByEmail(email, &user)
	if err != nil {
		storeError(c, err)
		return
	}

	// JWT generation: {email, iat, exp}, HS256, valid exactly 24h
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,                    // Identity claim
		"iat":   now.Unix(),               // Issued at
		"exp":   now.Add(TokenTTL).Unix(), // Expiry (1 day)
	})
	tokenString, err := token.SignedString([]byte(h.Secret)) // Sign token
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token signing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "token": tokenString})
}

// Delete - DELETE /user/:id (admin): delete, zero count for a missing id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	result, err := h.Users.Delete(id)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
