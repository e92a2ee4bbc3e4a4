// auth.go - JWT authentication and role-gating middleware
//
// Authentication Flow:
// 1. Extract JWT token from Authorization header
// 2. Validate token signature and expiration
// 3. Extract the email claim from the token
// 4. Store the email in context for handlers
//
// Authorization Flow (role gates):
// 1. Run the authentication middleware first
// 2. Extract the email from context
// 3. Resolve the stored role for that email
// 4. Allow/deny access based on role

package middleware // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes (401, 403, etc.)
	"strings"  // String operations (for header parsing)

	"tool-express-backend/database" // UserRepo (for role resolution)

	"github.com/gin-gonic/gin"     // Gin web framework (for middleware)
	"github.com/golang-jwt/jwt/v5" // JWT library (for token validation)
)

// EmailKey is the gin context key the verified email claim is stored under.
const EmailKey = "email"

// Gate bundles the dependencies of the access-control middleware: the JWT
// secret for the token verifier and the user repository for role resolution.
// Constructed once at startup and shared by every guarded route.
type Gate struct {
	Secret string             // Process-wide JWT secret
	Users  *database.UserRepo // Role lookups
}

func NewGate(secret string, users *database.UserRepo) *Gate { // Constructor
	return &Gate{Secret: secret, Users: users}
}

// authenticate verifies the bearer token and stores the email claim in the
// context. It reports success WITHOUT advancing the handler chain: each gate
// owns its single c.Next(), so role checks always run before the handler.
// A missing/malformed header is 401; a token that fails signature, format or
// expiry checks is 403.
func (g *Gate) authenticate(c *gin.Context) bool {
	// STEP 1: Extract Authorization header
	header := c.GetHeader("Authorization")                     // Get Authorization header
	if header == "" || !strings.HasPrefix(header, "Bearer ") { // If missing or invalid format
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return false
	}

	// STEP 2: Parse and validate the JWT token
	tokenStr := strings.TrimPrefix(header, "Bearer ") // Remove 'Bearer ' prefix
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(g.Secret), nil // Provide secret key for validation
	})
	if err != nil || !token.Valid { // Invalid signature, malformed, or expired
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return false
	}

	// STEP 3: Extract the email claim and store it for later handlers
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if email, exists := claims["email"]; exists {
			c.Set(EmailKey, email) // Store email in Gin context
		}
	}

	return true // Authentication successful
}

// Auth - Returns a Gin middleware that verifies the bearer token and, on
// success, attaches the email claim and lets the request proceed.
func (g *Gate) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.authenticate(c) {
			return // Request already aborted with 401/403
		}
		c.Next() // Continue to next handler (authentication successful)
	}
}

// Admin - Returns a Gin middleware admitting only users stored with the
// admin role. Authenticates first; an unknown email counts as non-admin.
// The downstream handler never runs unless both checks pass.
func (g *Gate) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		// STEP 1: Verify the credential (aborts with 401/403 on failure)
		if !g.authenticate(c) {
			return
		}

		// STEP 2: Resolve the role for the verified email
		admin, err := g.isAdmin(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "role lookup failed"})
			return
		}

		// STEP 3: Admit only the admin role
		if !admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next() // Continue to next handler (admin access granted)
	}
}

// NonAdmin - Mirror of Admin: admits only users WITHOUT the admin role.
// Used for endpoints reserved for customers, e.g. posting reviews.
func (g *Gate) NonAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.authenticate(c) { // Authenticate first
			return
		}

		admin, err := g.isAdmin(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "role lookup failed"})
			return
		}

		if admin { // Admins are rejected here
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Next()
	}
}

// isAdmin resolves the stored role for the email the Auth middleware put in
// the context. A token without an email claim is treated as non-admin.
func (g *Gate) isAdmin(c *gin.Context) (bool, error) {
	emailValue, exists := c.Get(EmailKey)
	if !exists {
		return false, nil
	}
	email, ok := emailValue.(string)
	if !ok {
		return false, nil
	}
	return g.Users.IsAdmin(email)
}
