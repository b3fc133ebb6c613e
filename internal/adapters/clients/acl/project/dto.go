// Package project implements the Anti-Corruption Layer translators for the
// tracker API's project resources.
package project

// ProjectDTO matches the tracker API's project schema. Keys are camelCase on
// the wire.
type ProjectDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ParentProject string `json:"parentProject"`
	CreatedAt     string `json:"createdAt"`
}

// ListResponseDTO matches the GET /api/projects/{parent} envelope.
type ListResponseDTO struct {
	Success  bool         `json:"success"`
	Projects []ProjectDTO `json:"projects"`
}

// CreateRequestDTO matches the POST /api/projects request body.
type CreateRequestDTO struct {
	Name          string `json:"name"`
	ParentProject string `json:"parentProject"`
}

// CreateResponseDTO matches the POST /api/projects response envelope.
type CreateResponseDTO struct {
	Success bool       `json:"success"`
	Project ProjectDTO `json:"project"`
}
