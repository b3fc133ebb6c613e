package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trackboard/trackboard/internal/domain/board"
	"github.com/trackboard/trackboard/internal/domain/comment"
	"github.com/trackboard/trackboard/internal/domain/project"
	"github.com/trackboard/trackboard/internal/domain/ticket"
	"github.com/trackboard/trackboard/internal/ports"
)

// Plain-text rendering. Styling is deliberately out of scope; the board is
// three labeled lists.

func renderProjects(w io.Writer, parent string, projects []project.Project) {
	fmt.Fprintf(w, "Projects under %s (%d)\n", parent, len(projects))
	for _, p := range projects {
		fmt.Fprintf(w, "  %-24s %s\n", p.ID, p.Name)
	}
}

func renderBoard(w io.Writer, cols board.Columns) {
	renderColumn(w, board.TitleBacklog, cols.Backlog)
	renderColumn(w, board.TitleInProgress, cols.InProgress)
	renderColumn(w, board.TitleDone, cols.Done)
}

func renderColumn(w io.Writer, title string, tickets []ticket.Ticket) {
	fmt.Fprintf(w, "%s (%d)\n", title, len(tickets))
	for _, t := range tickets {
		fmt.Fprintf(w, "  [%s] %-8s %s", t.ID, t.Priority, t.Title)
		if t.Reporter != "" {
			fmt.Fprintf(w, "  @%s", t.Reporter)
		}
		if t.CommentCount > 0 {
			fmt.Fprintf(w, "  (%d comments)", t.CommentCount)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func renderComments(w io.Writer, ticketID string, comments []comment.Comment) {
	fmt.Fprintf(w, "Comments on %s (%d)\n", ticketID, len(comments))
	for _, c := range comments {
		fmt.Fprintf(w, "  %s  %s\n", c.Author, c.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(w, "    %s\n", c.Body)
	}
}

// terminalConfirmer prompts on stderr and reads a y/N answer from stdin.
// Anything but an explicit yes declines.
func terminalConfirmer() ports.Confirmer {
	return ports.ConfirmerFunc(func(prompt string) bool {
		fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)

		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}

// promptLine prints a prompt on stderr and reads one trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
