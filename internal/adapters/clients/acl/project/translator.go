package project

import (
	"github.com/trackboard/trackboard/internal/adapters/clients/acl/wire"
	"github.com/trackboard/trackboard/internal/domain/project"
)

// ToDomain converts a tracker API ProjectDTO to a domain Project entity.
func ToDomain(dto *ProjectDTO) project.Project {
	return project.Project{
		ID:            dto.ID,
		Name:          dto.Name,
		ParentProject: dto.ParentProject,
		CreatedAt:     wire.ParseTime(dto.CreatedAt),
	}
}

// ToDomainList converts a ListResponseDTO to a slice of domain Project
// entities, preserving server order (createdAt ascending).
func ToDomainList(dto ListResponseDTO) []project.Project {
	projects := make([]project.Project, len(dto.Projects))
	for i := range dto.Projects {
		projects[i] = ToDomain(&dto.Projects[i])
	}
	return projects
}

// ToCreateRequest converts a domain Project entity to a CreateRequestDTO.
// The server assigns ID and CreatedAt.
func ToCreateRequest(p *project.Project) CreateRequestDTO {
	return CreateRequestDTO{
		Name:          p.Name,
		ParentProject: p.ParentProject,
	}
}
