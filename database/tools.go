// tools.go - Repository for the tools collection

package database // Declares the package name

import ( // Import required packages
	"tool-express-backend/models" // Tool model

	"gorm.io/gorm" // GORM ORM
)

type ToolRepo struct { // ToolRepo wraps all tool store operations
	db *gorm.DB // Injected connection handle
}

func NewToolRepo(db *gorm.DB) *ToolRepo { // Constructor
	return &ToolRepo{db: db}
}

// List returns all tools, newest first.
func (r *ToolRepo) List() ([]models.Tool, error) {
	var tools []models.Tool
	err := r.db.Order("id DESC").Find(&tools).Error
	return tools, err
}

// Get looks up one tool by id. Returns gorm.ErrRecordNotFound on a miss.
func (r *ToolRepo) Get(id uint) (*models.Tool, error) {
	var tool models.Tool
	if err := r.db.First(&tool, id).Error; err != nil {
		return nil, err
	}
	return &tool, nil
}

// Insert stores a new tool and reports the generated id.
func (r *ToolRepo) Insert(tool *models.Tool) (InsertResult, error) {
	if err := r.db.Create(tool).Error; err != nil {
		return InsertResult{}, err
	}
	return InsertResult{InsertedID: tool.ID}, nil
}

// Upsert updates the tool with the given id, or creates one with that id
// if none matches (client-supplied key, by documented policy).
func (r *ToolRepo) Upsert(id uint, tool *models.Tool) (UpdateResult, error) {
	var result UpdateResult
	err := r.db.Transaction(func(tx *gorm.DB) error {
		update := tx.Model(&models.Tool{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":        tool.Name,
			"quantity":    tool.Quantity,
			"price":       tool.Price,
			"description": tool.Description,
			"image_url":   tool.ImageURL,
		})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 { // Filter matched nothing: insert instead
			tool.ID = id
			if err := tx.Create(tool).Error; err != nil {
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

// Delete removes the tool with the given id. A missing id deletes zero rows.
func (r *ToolRepo) Delete(id uint) (DeleteResult, error) {
	del := r.db.Delete(&models.Tool{}, id)
	if del.Error != nil {
		return DeleteResult{}, del.Error
	}
	return DeleteResult{DeletedCount: del.RowsAffected}, nil
}
