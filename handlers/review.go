// review.go - Handlers for the reviews resource

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes

	"tool-express-backend/database" // Review repository
	"tool-express-backend/models"   // Review model

	"github.com/gin-gonic/gin" // Gin web framework
)

type ReviewInput struct { // Validated request contract for review creation
	AuthorEmail string `json:"authorEmail" binding:"required,email"`  // Reviewer (required)
	Text        string `json:"text" binding:"required"`               // Review body (required)
	Rating      int    `json:"rating" binding:"omitempty,min=1,max=5"`// 1-5, optional
}

type ReviewHandler struct { // ReviewHandler bundles the review endpoints
	Reviews *database.ReviewRepo // Injected repository
}

func NewReviewHandler(reviews *database.ReviewRepo) *ReviewHandler { // Constructor
	return &ReviewHandler{Reviews: reviews}
}

// List - GET /reviews (public): all reviews, newest first
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.Reviews.List()
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Create - POST /reviews (non-admin): insert a review
func (h *ReviewHandler) Create(c *gin.Context) {
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse and validate JSON input
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	review := models.Review{
		AuthorEmail: input.AuthorEmail,
		Text:        input.Text,
		Rating:      input.Rating,
	}
	result, err := h.Reviews.Insert(&review)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
