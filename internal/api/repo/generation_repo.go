package repo

import (
	"blockgen"
	"blockgen/internal/api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GenerationRepository struct {
	Db *gorm.DB
}

func NewGenerationRepository() *GenerationRepository {
	return &GenerationRepository{Db: blockgen.DB}
}

func (slf *GenerationRepository) Create(generation *models.Generation) error {
	return slf.Db.Create(generation).Error
}

// FindLatestByProject returns the newest generations first
func (slf *GenerationRepository) FindLatestByProject(projectID uuid.UUID, limit int) ([]models.Generation, error) {
	var generations []models.Generation
	err := slf.Db.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Find(&generations).Error
	return generations, err
}
