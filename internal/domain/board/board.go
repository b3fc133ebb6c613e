// Package board derives the three-column view from a ticket snapshot.
//
// Partition is a pure projection: it holds no state of its own and must be
// recomputed whenever the ticket snapshot changes. Column contents preserve
// the snapshot's relative order.
package board

import "github.com/trackboard/trackboard/internal/domain/ticket"

// Column titles as shown on the board.
const (
	TitleBacklog    = "Backlog"
	TitleInProgress = "In Progress"
	TitleDone       = "Done"
)

// Columns holds the three-way split of a ticket snapshot by status.
type Columns struct {
	Backlog    []ticket.Ticket // StatusOpen
	InProgress []ticket.Ticket // StatusInProgress
	Done       []ticket.Ticket // StatusClosed
}

// Total returns the number of tickets across all columns.
func (c Columns) Total() int {
	return len(c.Backlog) + len(c.InProgress) + len(c.Done)
}

// Partition splits tickets into the three workflow columns. Every ticket
// lands in exactly one column; tickets carrying an undefined status are
// treated as OPEN so the split stays total. Input order is preserved within
// each column and the input slice is never mutated.
func Partition(tickets []ticket.Ticket) Columns {
	var c Columns
	for _, t := range tickets {
		switch t.Status {
		case ticket.StatusInProgress:
			c.InProgress = append(c.InProgress, t)
		case ticket.StatusClosed:
			c.Done = append(c.Done, t)
		default:
			c.Backlog = append(c.Backlog, t)
		}
	}
	return c
}
