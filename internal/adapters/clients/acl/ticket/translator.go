package ticket

import (
	"github.com/trackboard/trackboard/internal/adapters/clients/acl/wire"
	"github.com/trackboard/trackboard/internal/domain/ticket"
)

// ToDomain converts a tracker API TicketDTO to a domain Ticket entity.
func ToDomain(dto *TicketDTO) ticket.Ticket {
	return ticket.Ticket{
		ID:           dto.ID,
		ProjectID:    dto.ProjectID,
		Title:        dto.Title,
		Description:  dto.Description,
		Priority:     ticket.Priority(dto.Priority),
		Status:       ticket.Status(dto.Status),
		Reporter:     dto.Reporter,
		CommentCount: int(dto.CommentCount),
		CreatedAt:    wire.ParseTime(dto.CreatedAt),
		UpdatedAt:    wire.ParseTime(dto.UpdatedAt),
	}
}

// ToDomainList converts a ListResponseDTO to a slice of domain Ticket
// entities, preserving server order (updatedAt descending).
func ToDomainList(dto ListResponseDTO) []ticket.Ticket {
	tickets := make([]ticket.Ticket, len(dto.Items))
	for i := range dto.Items {
		tickets[i] = ToDomain(&dto.Items[i])
	}
	return tickets
}

// ToCreateRequest converts a domain Ticket entity to a CreateRequestDTO.
// The server assigns ID, timestamps, and the initial OPEN status.
func ToCreateRequest(t *ticket.Ticket) CreateRequestDTO {
	return CreateRequestDTO{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Reporter:    t.Reporter,
		ProjectID:   t.ProjectID,
	}
}

// ToUpdateRequest converts a domain Patch to an UpdateRequestDTO. Only set
// fields are carried; nil fields are omitted from the wire payload.
func ToUpdateRequest(p *ticket.Patch) UpdateRequestDTO {
	dto := UpdateRequestDTO{
		Title:       p.Title,
		Description: p.Description,
		Reporter:    p.Reporter,
	}
	if p.Priority != nil {
		s := p.Priority.String()
		dto.Priority = &s
	}
	if p.Status != nil {
		s := p.Status.String()
		dto.Status = &s
	}
	return dto
}
