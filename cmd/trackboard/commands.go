package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/pflag"

	"github.com/trackboard/trackboard/internal/app"
	"github.com/trackboard/trackboard/internal/app/session"
	"github.com/trackboard/trackboard/internal/domain/ticket"
	"github.com/trackboard/trackboard/internal/ports"
)

// dispatch routes a parsed command line to its subcommand handler.
func dispatch(ctx context.Context, injector do.Injector, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "login":
		return cmdLogin(ctx, injector)
	case "signup":
		return cmdSignup(ctx, injector)
	case "logout":
		return cmdLogout(injector)
	case "projects":
		return cmdProjects(ctx, injector)
	case "project":
		return cmdProject(ctx, injector, rest)
	case "board":
		return cmdBoard(ctx, injector, rest)
	case "ticket":
		return cmdTicket(ctx, injector, rest)
	case "comments":
		return cmdComments(ctx, injector, rest)
	case "comment":
		return cmdComment(ctx, injector, rest)
	case "health":
		return cmdHealth(ctx, injector)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdLogin(ctx context.Context, injector do.Injector) error {
	email, err := promptLine("Email: ")
	if err != nil {
		return err
	}
	password, err := promptLine("Password: ")
	if err != nil {
		return err
	}

	sess := do.MustInvoke[*session.Session](injector)
	user, err := sess.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func cmdSignup(ctx context.Context, injector do.Injector) error {
	name, err := promptLine("Name: ")
	if err != nil {
		return err
	}
	email, err := promptLine("Email: ")
	if err != nil {
		return err
	}
	password, err := promptLine("Password: ")
	if err != nil {
		return err
	}

	sess := do.MustInvoke[*session.Session](injector)
	user, err := sess.Signup(ctx, name, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("Account created for %s <%s>\n", user.Name, user.Email)
	return nil
}

func cmdLogout(injector do.Injector) error {
	sess := do.MustInvoke[*session.Session](injector)
	if err := sess.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func cmdProjects(ctx context.Context, injector do.Injector) error {
	projects := do.MustInvoke[*app.ProjectStore](injector)
	if err := projects.Refresh(ctx); err != nil {
		return err
	}
	renderProjects(os.Stdout, projects.Parent(), projects.Snapshot())
	return nil
}

func cmdProject(ctx context.Context, injector do.Injector, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: trackboard project create <name> | project rm <id>")
	}

	projects := do.MustInvoke[*app.ProjectStore](injector)

	switch args[0] {
	case "create":
		created, err := projects.Create(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Created project %q (%s)\n", created.Name, created.ID)
		return nil
	case "rm":
		if err := projects.Delete(ctx, args[1]); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown project subcommand %q", args[0])
	}
}

func cmdBoard(ctx context.Context, injector do.Injector, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: trackboard board <project-id>")
	}

	projects := do.MustInvoke[*app.ProjectStore](injector)
	tickets := do.MustInvoke[*app.TicketStore](injector)

	if err := app.OpenBoard(ctx, projects, tickets, args[0]); err != nil {
		return err
	}

	renderBoard(os.Stdout, tickets.Board())
	return nil
}

func cmdTicket(ctx context.Context, injector do.Injector, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: trackboard ticket new|move|rm ...")
	}

	tickets := do.MustInvoke[*app.TicketStore](injector)

	switch args[0] {
	case "new":
		return cmdTicketNew(ctx, injector, tickets, args[1:])
	case "move":
		if len(args) != 2 {
			return errors.New("usage: trackboard ticket move <id>")
		}
		return cmdTicketMove(ctx, tickets, args[1])
	case "rm":
		if len(args) != 2 {
			return errors.New("usage: trackboard ticket rm <id>")
		}
		return cmdTicketRm(ctx, tickets, args[1])
	default:
		return fmt.Errorf("unknown ticket subcommand %q", args[0])
	}
}

func cmdTicketNew(ctx context.Context, injector do.Injector, tickets *app.TicketStore, args []string) error {
	flags := pflag.NewFlagSet("ticket new", pflag.ContinueOnError)
	projectID := flags.String("project", "", "project the ticket belongs to")
	title := flags.String("title", "", "ticket title (4-100 characters)")
	description := flags.String("description", "", "ticket description (at least 10 characters)")
	priority := flags.String("priority", "", "LOW, MEDIUM, or HIGH (default MEDIUM)")
	reporter := flags.String("reporter", "", "reporter name (defaults to the signed-in user)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *projectID == "" {
		return errors.New("--project is required")
	}

	if *reporter == "" {
		sess := do.MustInvoke[*session.Session](injector)
		*reporter = sess.DisplayName()
	}

	if err := tickets.Open(ctx, *projectID); err != nil {
		return err
	}

	t := &ticket.Ticket{
		Title:       *title,
		Description: *description,
		Priority:    ticket.Priority(*priority),
		Reporter:    *reporter,
	}
	if err := tickets.Create(ctx, t); err != nil {
		return err
	}

	renderBoard(os.Stdout, tickets.Board())
	return nil
}

func cmdTicketMove(ctx context.Context, tickets *app.TicketStore, id string) error {
	projectID, err := scopeProject(tickets)
	if err != nil {
		return err
	}
	if err := tickets.Open(ctx, projectID); err != nil {
		return err
	}

	next, err := tickets.Move(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("Ticket %s is now %s\n", id, next)
	renderBoard(os.Stdout, tickets.Board())
	return nil
}

func cmdTicketRm(ctx context.Context, tickets *app.TicketStore, id string) error {
	projectID, err := scopeProject(tickets)
	if err != nil {
		return err
	}
	if err := tickets.Open(ctx, projectID); err != nil {
		return err
	}
	return tickets.Delete(ctx, id)
}

// scopeProject resolves the project to scope the ticket store to. The stores
// are project-scoped, but move/rm take a bare ticket ID, so the CLI asks
// which project the ticket lives in.
func scopeProject(tickets *app.TicketStore) (string, error) {
	if id := tickets.ProjectID(); id != "" {
		return id, nil
	}
	return promptLine("Project ID: ")
}

func cmdComments(ctx context.Context, injector do.Injector, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: trackboard comments <ticket-id>")
	}

	comments := do.MustInvoke[*app.CommentStore](injector)
	if err := comments.OpenDetail(ctx, args[0]); err != nil {
		return err
	}

	renderComments(os.Stdout, args[0], comments.Snapshot())
	return comments.CloseDetail(ctx)
}

func cmdComment(ctx context.Context, injector do.Injector, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: trackboard comment <ticket-id> --body B [--author A]")
	}
	ticketID := args[0]

	flags := pflag.NewFlagSet("comment", pflag.ContinueOnError)
	body := flags.String("body", "", "comment text (2-500 characters)")
	author := flags.String("author", "", "author name (defaults to the signed-in user)")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if *author == "" {
		sess := do.MustInvoke[*session.Session](injector)
		*author = sess.DisplayName()
	}

	comments := do.MustInvoke[*app.CommentStore](injector)
	if err := comments.OpenDetail(ctx, ticketID); err != nil {
		return err
	}
	if err := comments.Add(ctx, *author, *body); err != nil {
		return err
	}

	renderComments(os.Stdout, ticketID, comments.Snapshot())
	return comments.CloseDetail(ctx)
}

func cmdHealth(ctx context.Context, injector do.Injector) error {
	// Probe GET /api/health so the breaker state reflects reality, then
	// report every registered checker.
	client := do.MustInvoke[ports.TrackerClient](injector)
	probeErr := client.Health(ctx)

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	healthy := true
	for name, err := range registry.CheckAll(ctx) {
		if err != nil {
			healthy = false
			fmt.Printf("%-12s unhealthy: %v\n", name, err)
			continue
		}
		fmt.Printf("%-12s ok\n", name)
	}

	if probeErr != nil {
		return fmt.Errorf("tracker API probe failed: %w", probeErr)
	}
	if !healthy {
		return errors.New("one or more components unhealthy")
	}
	return nil
}
