package service

import (
	"blockgen"
	"blockgen/internal/api/models"
	"blockgen/internal/api/repo"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectService struct {
	projectRepo *repo.ProjectRepository
	logger      zerolog.Logger
}

func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repo.NewProjectRepository(),
		logger:      blockgen.Logger,
	}
}

func (slf *ProjectService) FindAllForOwner(ownerID string) ([]models.Project, error) {
	projects, err := slf.projectRepo.FindAllByOwner(ownerID)
	if err != nil {
		slf.logger.Error().Err(err).Str("ownerId", ownerID).Msg("Error listing projects")
		return nil, err
	}
	return projects, nil
}

func (slf *ProjectService) FindByID(id uuid.UUID, ownerID string) (models.Project, error) {
	project, err := slf.projectRepo.FindByID(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		slf.logger.Error().Err(err).Str("projectId", id.String()).Msg("Error finding project")
		return models.Project{}, err
	}
	return project, nil
}

// Create stores a project after checking its workspace decodes.
func (slf *ProjectService) Create(project models.Project) (models.Project, error) {
	if _, err := project.Workspace.Decode(); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidWorkspace, err)
	}
	if err := slf.projectRepo.Create(&project); err != nil {
		slf.logger.Error().Err(err).Msg("Error creating project")
		return models.Project{}, err
	}
	slf.logger.Info().Str("projectId", project.ID.String()).Msg("Project created")
	return project, nil
}

// Update applies the non-nil fields of patch.
func (slf *ProjectService) Update(id uuid.UUID, ownerID string, name, description *string, workspace models.WorkspaceData) (models.Project, error) {
	project, err := slf.FindByID(id, ownerID)
	if err != nil {
		return models.Project{}, err
	}
	if name != nil {
		project.Name = *name
	}
	if description != nil {
		project.Description = *description
	}
	if workspace != nil {
		if _, err := workspace.Decode(); err != nil {
			return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidWorkspace, err)
		}
		project.Workspace = workspace
	}
	if err := slf.projectRepo.Update(&project); err != nil {
		slf.logger.Error().Err(err).Str("projectId", id.String()).Msg("Error updating project")
		return models.Project{}, err
	}
	return project, nil
}

// SaveWorkspace stores the document pushed by a live session.
func (slf *ProjectService) SaveWorkspace(id uuid.UUID, workspace models.WorkspaceData) error {
	if err := slf.projectRepo.UpdateWorkspace(id, workspace); err != nil {
		slf.logger.Error().Err(err).Str("projectId", id.String()).Msg("Error saving workspace")
		return err
	}
	return nil
}

func (slf *ProjectService) Delete(id uuid.UUID, ownerID string) error {
	deleted, err := slf.projectRepo.Delete(id, ownerID)
	if err != nil {
		slf.logger.Error().Err(err).Str("projectId", id.String()).Msg("Error deleting project")
		return err
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}
