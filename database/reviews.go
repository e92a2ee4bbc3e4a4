// reviews.go - Repository for the reviews collection
// Reviews are created and listed only; there is no update or delete surface.

package database // Declares the package name

import ( // Import required packages
	"tool-express-backend/models" // Review model

	"gorm.io/gorm" // GORM ORM
)

type ReviewRepo struct { // ReviewRepo wraps all review store operations
	db *gorm.DB // Injected connection handle
}

func NewReviewRepo(db *gorm.DB) *ReviewRepo { // Constructor
	return &ReviewRepo{db: db}
}

// List returns all reviews, newest first.
func (r *ReviewRepo) List() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Order("id DESC").Find(&reviews).Error
	return reviews, err
}

// Insert stores a new review and reports the generated id.
func (r *ReviewRepo) Insert(review *models.Review) (InsertResult, error) {
	if err := r.db.Create(review).Error; err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: review.ID}, nil
}
