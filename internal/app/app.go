// Package app is the session and view controller: it owns the single active
// view, translates typed commands into API calls, and renders the responses.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"learnsmart/internal/api"
	"learnsmart/internal/session"
)

type App struct {
	api      *api.Client
	state    *session.State
	store    session.CredentialStore
	log      *slog.Logger
	out      io.Writer
	validate *validator.Validate

	lines chan string
	view  View

	// Overridable in tests.
	now  func() time.Time
	tick func() (<-chan time.Time, func())
}

func New(client *api.Client, store session.CredentialStore, logger *slog.Logger, out io.Writer) *App {
	return &App{
		api:      client,
		state:    session.NewState(),
		store:    store,
		log:      logger,
		out:      out,
		validate: validator.New(),
		now:      time.Now,
		tick: func() (<-chan time.Time, func()) {
			ticker := time.NewTicker(time.Second)
			return ticker.C, ticker.Stop
		},
	}
}

// View returns the currently active view.
func (a *App) View() View { return a.view }

// Run restores any stored session, then serves the command loop until EOF,
// an exit command, or context cancellation.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	a.lines = make(chan string)
	go readLines(in, a.lines)

	a.restoreSession(ctx)
	a.navigate(ctx, ViewHome)
	printHelp(a.out)

	for {
		fmt.Fprint(a.out, "\n> ")
		line, ok := a.readLine(ctx)
		if !ok {
			fmt.Fprintln(a.out)
			return nil
		}
		if line == "" {
			continue
		}
		if done := a.dispatch(ctx, line); done {
			return nil
		}
	}
}

func readLines(in io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines <- strings.TrimSpace(scanner.Text())
	}
}

func (a *App) readLine(ctx context.Context) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-a.lines:
		return line, ok
	}
}

func (a *App) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(a.out, label)
	return a.readLine(ctx)
}

func (a *App) promptYesNo(ctx context.Context, label string) (bool, bool) {
	for {
		answer, ok := a.prompt(ctx, label)
		if !ok {
			return false, false
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		default:
			fmt.Fprintln(a.out, "Please answer yes or no.")
		}
	}
}

func (a *App) dispatch(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	command := strings.ToLower(args[0])

	switch command {
	case "help":
		printHelp(a.out)
	case "exit", "quit":
		return true
	case "home":
		a.navigate(ctx, ViewHome)
	case "login":
		a.navigate(ctx, ViewLogin)
	case "register":
		a.navigate(ctx, ViewRegister)
	case "courses":
		a.navigate(ctx, ViewCourses)
	case "dashboard":
		a.navigate(ctx, ViewDashboard)
	case "admin":
		a.navigate(ctx, ViewAdmin)
	case "course":
		courseID, ok := parseID(args, 1)
		if !ok {
			fmt.Fprintln(a.out, "usage: course <id>")
			break
		}
		a.showCourseDetail(ctx, courseID)
	case "enroll":
		a.enroll(ctx)
	case "quiz":
		quizID, ok := parseID(args, 1)
		if !ok {
			fmt.Fprintln(a.out, "usage: quiz <id>")
			break
		}
		a.showQuiz(ctx, quizID)
	case "create-course":
		a.createCourse(ctx)
	case "edit-course":
		a.editCourse()
	case "delete-course":
		courseID, ok := parseID(args, 1)
		if !ok {
			fmt.Fprintln(a.out, "usage: delete-course <id>")
			break
		}
		a.deleteCourse(ctx, courseID)
	case "logout":
		a.logout(ctx)
	default:
		fmt.Fprintln(a.out, "unknown command. type 'help' for usage.")
	}
	return false
}

// navigate switches the single active view. Entering a view performs that
// view's load; guarded views refuse the transition instead.
func (a *App) navigate(ctx context.Context, view View) {
	switch view {
	case ViewDashboard:
		if !a.state.LoggedIn() {
			a.notify(levelWarning, "Please login to see your dashboard")
			view = ViewLogin
		}
	case ViewAdmin:
		if !a.state.IsAdmin() {
			a.notify(levelDanger, "Access denied. Admin privileges required.")
			return
		}
	}

	a.view = view
	renderViewHeader(a.out, view)

	switch view {
	case ViewHome:
		renderHome(a.out, a.state.User())
	case ViewLogin:
		a.runLogin(ctx)
	case ViewRegister:
		a.runRegister(ctx)
	case ViewCourses:
		a.loadCourses(ctx)
	case ViewDashboard:
		a.loadDashboard(ctx)
	case ViewAdmin:
		a.loadAdmin(ctx)
	}
}

// token reads the stored bearer token, "" when absent.
func (a *App) token(ctx context.Context) string {
	token, err := a.store.Token(ctx)
	if err != nil {
		a.log.Warn("credential store read failed", "error", err)
		return ""
	}
	return token
}

func parseID(args []string, index int) (int, bool) {
	if len(args) <= index {
		return 0, false
	}
	id, err := strconv.Atoi(args[index])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
