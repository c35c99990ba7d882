package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/dmitrijs2005/edublog/internal/navigation"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it;
// tests can provide a lightweight stub.
type execIface interface {
	current(ctx context.Context) *models.Identity

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	List(ctx context.Context, query string) error
	Show(ctx context.Context, id string) error
	Post(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Comment(ctx context.Context, id string) error

	Roster(ctx context.Context, role models.Role) error
	AddMember(ctx context.Context, role models.Role) error
	EditMember(ctx context.Context, role models.Role, id string) error
	RemoveMember(ctx context.Context, role models.Role, id string) error
}

type command struct {
	usage string
	// routes lists the screens that unlock the command. Empty means the
	// command is always offered.
	routes []navigation.Route
	// needsSession hides the command from anonymous users.
	needsSession bool
	// needsID makes the REPL print usage when no argument is given.
	needsID bool
	run     func(ctx context.Context, a execIface, arg string) error
}

var commands = map[string]command{
	"login": {usage: "login", routes: []navigation.Route{navigation.RouteLogin},
		run: func(ctx context.Context, a execIface, _ string) error { return a.Login(ctx) }},
	"logout": {usage: "logout", needsSession: true,
		run: func(ctx context.Context, a execIface, _ string) error { return a.Logout(ctx) }},
	"whoami": {usage: "whoami", needsSession: true,
		run: func(ctx context.Context, a execIface, _ string) error { return a.WhoAmI(ctx) }},

	"list": {usage: "list [query]", routes: []navigation.Route{navigation.RoutePosts},
		run: func(ctx context.Context, a execIface, q string) error { return a.List(ctx, q) }},
	"show": {usage: "show <id>", routes: []navigation.Route{navigation.RoutePosts}, needsID: true,
		run: func(ctx context.Context, a execIface, id string) error { return a.Show(ctx, id) }},
	"comment": {usage: "comment <id>", routes: []navigation.Route{navigation.RoutePosts}, needsID: true,
		run: func(ctx context.Context, a execIface, id string) error { return a.Comment(ctx, id) }},
	"post": {usage: "post", routes: []navigation.Route{navigation.RouteCreatePost, navigation.RouteAdmin},
		run: func(ctx context.Context, a execIface, _ string) error { return a.Post(ctx) }},
	"edit": {usage: "edit <id>", routes: []navigation.Route{navigation.RouteAdmin}, needsID: true,
		run: func(ctx context.Context, a execIface, id string) error { return a.Edit(ctx, id) }},
	"delete": {usage: "delete <id>", routes: []navigation.Route{navigation.RouteAdmin}, needsID: true,
		run: func(ctx context.Context, a execIface, id string) error { return a.Delete(ctx, id) }},

	"teachers":    rosterCommand("teachers", models.RoleTeacher, navigation.RouteTeachers, false, listRoster),
	"addteacher":  rosterCommand("addteacher", models.RoleTeacher, navigation.RouteTeachers, false, addMember),
	"editteacher": rosterCommand("editteacher <id>", models.RoleTeacher, navigation.RouteTeachers, true, editMember),
	"rmteacher":   rosterCommand("rmteacher <id>", models.RoleTeacher, navigation.RouteTeachers, true, removeMember),
	"students":    rosterCommand("students", models.RoleStudent, navigation.RouteStudents, false, listRoster),
	"addstudent":  rosterCommand("addstudent", models.RoleStudent, navigation.RouteStudents, false, addMember),
	"editstudent": rosterCommand("editstudent <id>", models.RoleStudent, navigation.RouteStudents, true, editMember),
	"rmstudent":   rosterCommand("rmstudent <id>", models.RoleStudent, navigation.RouteStudents, true, removeMember),
}

// helpOrder is the order commands are listed in by help.
var helpOrder = []string{
	"login", "list", "show", "post", "edit", "delete", "comment",
	"teachers", "addteacher", "editteacher", "rmteacher",
	"students", "addstudent", "editstudent", "rmstudent",
	"whoami", "logout",
}

type rosterFn func(ctx context.Context, a execIface, role models.Role, id string) error

func listRoster(ctx context.Context, a execIface, role models.Role, _ string) error {
	return a.Roster(ctx, role)
}

func addMember(ctx context.Context, a execIface, role models.Role, _ string) error {
	return a.AddMember(ctx, role)
}

func editMember(ctx context.Context, a execIface, role models.Role, id string) error {
	return a.EditMember(ctx, role, id)
}

func removeMember(ctx context.Context, a execIface, role models.Role, id string) error {
	return a.RemoveMember(ctx, role, id)
}

func rosterCommand(usage string, role models.Role, route navigation.Route, needsID bool, fn rosterFn) command {
	return command{
		usage:   usage,
		routes:  []navigation.Route{route},
		needsID: needsID,
		run: func(ctx context.Context, a execIface, arg string) error {
			return fn(ctx, a, role, arg)
		},
	}
}

func (c command) availableTo(who *models.Identity) bool {
	if c.needsSession && who == nil {
		return false
	}
	if len(c.routes) == 0 {
		return true
	}
	for _, r := range c.routes {
		if navigation.Allowed(who, r) {
			return true
		}
	}
	return false
}

func helpText(who *models.Identity) string {
	var usages []string
	for _, name := range helpOrder {
		if c := commands[name]; c.availableTo(who) {
			usages = append(usages, c.usage)
		}
	}
	usages = append(usages, "help", "exit")
	return "Available commands: " + strings.Join(usages, ", ")
}

// describeError turns a command failure into a message for the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, common.ErrUnauthorized):
		return "You are not allowed to do that"
	case errors.Is(err, common.ErrNotFound):
		return "Not found"
	case errors.Is(err, common.ErrDuplicateEmail):
		return "That email is already in use"
	case errors.Is(err, context.Canceled):
		return "Cancelled"
	}
	var verr validationError
	if errors.As(err, &verr) {
		return string(verr)
	}
	return "Error: " + err.Error()
}

// runREPL reads commands from reader, one per line, and dispatches them
// to a. The first token is the command; the rest of the line is its
// argument. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands outside the current identity's routes are refused before they
// reach a. Handler errors are reported and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func(ctx context.Context) string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("edublog%s> ", prefixSpace(statusFn(ctx))))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		name, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if name == "" {
			continue
		}

		switch name {
		case "help":
			printlnFn(helpText(a.current(ctx)))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd, ok := commands[name]
		switch {
		case !ok:
			printlnFn("Unknown command:", name)
		case !cmd.availableTo(a.current(ctx)):
			printlnFn("Command not available here, type 'help'")
		case cmd.needsID && arg == "":
			printlnFn("Usage:", cmd.usage)
		default:
			if err := cmd.run(ctx, a, arg); err != nil {
				printlnFn(describeError(err))
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
