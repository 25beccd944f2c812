package mapper

import (
	"blockgen/internal/api/handler/request"
	"blockgen/internal/api/handler/response"
	"blockgen/internal/api/models"
	"blockgen/internal/blocks"
)

func CreateProject(req request.CreateProject, ownerID string) models.Project {
	return models.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
		Workspace:   models.WorkspaceData(req.Workspace),
	}
}

func ToProjectResponse(p models.Project) response.Project {
	return response.Project{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Workspace:   p.Workspace,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProjectResponses(entities []models.Project) []response.Project {
	out := make([]response.Project, len(entities))
	for i, p := range entities {
		out[i] = ToProjectResponse(p)
	}
	return out
}

func ToGenerationResponse(g models.Generation) response.Generation {
	return response.Generation{
		ID:         g.ID,
		Checksum:   g.Checksum,
		Code:       g.Code,
		Error:      g.Error,
		DurationMs: g.DurationMs,
		CreatedAt:  g.CreatedAt,
	}
}

func ToGenerationResponses(entities []models.Generation) []response.Generation {
	out := make([]response.Generation, len(entities))
	for i, g := range entities {
		out[i] = ToGenerationResponse(g)
	}
	return out
}

func ToBlockDefinitions(defs []blocks.Definition) []response.BlockDefinition {
	out := make([]response.BlockDefinition, len(defs))
	for i, d := range defs {
		out[i] = response.BlockDefinition{Name: d.Name, Shape: d.Build()}
	}
	return out
}
