// users.go - Repository for the users collection
// Email is the stable identity key: token claims, ownership queries and the
// login upsert all address users by email, never by id.

package database // Declares the package name

import ( // Import required packages
	"errors" // For sentinel error checks

	"tool-express-backend/models" // User model

	"gorm.io/gorm" // GORM ORM
)

type UserRepo struct { // UserRepo wraps all user store operations
	db *gorm.DB // Injected connection handle
}

func NewUserRepo(db *gorm.DB) *UserRepo { // Constructor
	return &UserRepo{db: db}
}

// List returns all users, newest first.
func (r *UserRepo) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id DESC").Find(&users).Error
	return users, err
}

// GetByEmail looks up one user by email. Returns gorm.ErrRecordNotFound on a miss.
func (r *UserRepo) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// IsAdmin resolves the role stored for the given email. An unknown email is
// a standard user, not an error: guards must deny, never crash.
func (r *UserRepo) IsAdmin(email string) (bool, error) {
	user, err := r.GetByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// UpsertByEmail updates the user stored under the given email, or creates one
// on first login. The role column is never written here.
func (r *UserRepo) UpsertByEmail(email string, user *models.User) (UpdateResult, error) {
	var result UpdateResult
	err := r.db.Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&models.User{}).Where("email = ?", email).Updates(map[string]interface{}{
			"name": user.Name,
		})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 { // First login: create the user
			user.Email = email
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			result.UpsertedCount = 1
			return nil
		}
		result.MatchedCount = update.RowsAffected
		result.ModifiedCount = update.RowsAffected
		return nil
	})
	return result, err
}

// UpsertByID updates the user with the given id, or creates one with that id
// if none matches. The role column is never written here either.
func (r *UserRepo) UpsertByID(id uint, user *models.User) (UpdateResult, error) {
	var result UpdateResult
	err := r.db.Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
			"email": user.Email,
			"name":  user.Name,
		})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			user.ID = id
			if err := tx.Create(user).Error; err != nil {
				return err
			}
			result.UpsertedCount = 1
			return nil
		}
		result.MatchedCount = update.RowsAffected
		result.ModifiedCount = update.RowsAffected
		return nil
	})
	return result, err
}

// Delete removes the user with the given id. A missing id deletes zero rows.
func (r *UserRepo) Delete(id uint) (DeleteResult, error) {
	del := r.db.Delete(&models.User{}, id)
	if del.Error != nil {
		return DeleteResult{}, del.Error
	}
	return DeleteResult{DeletedCount: del.RowsAffected}, nil
}
