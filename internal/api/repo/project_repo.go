package repo

import (
	"blockgen"
	"blockgen/internal/api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	Db *gorm.DB
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{Db: blockgen.DB}
}

// FindByID retrieves a project owned by ownerID
func (slf *ProjectRepository) FindByID(id uuid.UUID, ownerID string) (models.Project, error) {
	var project models.Project
	err := slf.Db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&project).Error
	return project, err
}

// FindAllByOwner lists projects without their workspace documents
func (slf *ProjectRepository) FindAllByOwner(ownerID string) ([]models.Project, error) {
	var projects []models.Project
	err := slf.Db.
		Omit("workspace").
		Where("owner_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&projects).Error
	return projects, err
}

func (slf *ProjectRepository) Create(project *models.Project) error {
	return slf.Db.Create(project).Error
}

func (slf *ProjectRepository) Update(project *models.Project) error {
	return slf.Db.Save(project).Error
}

// UpdateWorkspace replaces only the stored document
func (slf *ProjectRepository) UpdateWorkspace(id uuid.UUID, workspace models.WorkspaceData) error {
	return slf.Db.Model(&models.Project{}).
		Where("id = ?", id).
		Update("workspace", workspace).Error
}

// Delete soft-deletes a project
func (slf *ProjectRepository) Delete(id uuid.UUID, ownerID string) (bool, error) {
	res := slf.Db.
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&models.Project{})
	return res.RowsAffected > 0, res.Error
}
