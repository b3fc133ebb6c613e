package comment

import (
	"github.com/trackboard/trackboard/internal/adapters/clients/acl/wire"
	"github.com/trackboard/trackboard/internal/domain/comment"
)

// ToDomain converts a tracker API CommentDTO to a domain Comment entity.
func ToDomain(dto *CommentDTO) comment.Comment {
	return comment.Comment{
		ID:        dto.ID,
		TicketID:  dto.TicketID,
		Author:    dto.Author,
		Body:      dto.Body,
		CreatedAt: wire.ParseTime(dto.CreatedAt),
	}
}

// ToDomainList converts a wire comment array to a slice of domain Comment
// entities, preserving server order (createdAt ascending).
func ToDomainList(dtos []CommentDTO) []comment.Comment {
	comments := make([]comment.Comment, len(dtos))
	for i := range dtos {
		comments[i] = ToDomain(&dtos[i])
	}
	return comments
}

// ToCreateRequest converts a domain Comment entity to a CreateRequestDTO.
// The server assigns ID and CreatedAt; TicketID rides in the URL path.
func ToCreateRequest(c *comment.Comment) CreateRequestDTO {
	return CreateRequestDTO{
		Author: c.Author,
		Body:   c.Body,
	}
}
