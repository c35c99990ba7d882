package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/edublog/internal/common"
	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	who   *models.Identity
	calls []string
	err   error
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeExec) current(context.Context) *models.Identity { return f.who }

func (f *fakeExec) Login(context.Context) error {
	f.who = &models.Identity{ID: "1", Role: models.RoleTeacher}
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.who = nil
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error            { return f.record("whoami") }
func (f *fakeExec) List(_ context.Context, q string) error  { return f.record("list:" + q) }
func (f *fakeExec) Show(_ context.Context, id string) error { return f.record("show:" + id) }
func (f *fakeExec) Post(context.Context) error              { return f.record("post") }
func (f *fakeExec) Edit(_ context.Context, id string) error { return f.record("edit:" + id) }
func (f *fakeExec) Delete(_ context.Context, id string) error {
	return f.record("delete:" + id)
}
func (f *fakeExec) Comment(_ context.Context, id string) error {
	return f.record("comment:" + id)
}
func (f *fakeExec) Roster(_ context.Context, r models.Role) error {
	return f.record("roster:" + string(r))
}
func (f *fakeExec) AddMember(_ context.Context, r models.Role) error {
	return f.record("add:" + string(r))
}
func (f *fakeExec) EditMember(_ context.Context, r models.Role, id string) error {
	return f.record("edit:" + string(r) + ":" + id)
}
func (f *fakeExec) RemoveMember(_ context.Context, r models.Role, id string) error {
	return f.record("remove:" + string(r) + ":" + id)
}

// captureOutput swaps printlnFn for a recorder and returns the printed lines.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func run(exec execIface, input string) {
	runREPL(context.Background(), exec, func(context.Context) string { return "" },
		bufio.NewReader(strings.NewReader(input)))
}

func TestRunREPL_TeacherFlow(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	run(exec, strings.Join([]string{
		"login",
		"list",
		"list react hooks",
		"show 1",
		"post",
		"edit 2",
		"delete 3",
		"comment 1",
		"teachers",
		"addteacher",
		"editteacher 2",
		"rmteacher 3",
		"students",
		"addstudent",
		"editstudent 5",
		"rmstudent 6",
		"whoami",
		"logout",
		"exit",
		"list",
	}, "\n"))

	assert.Equal(t, []string{
		"login", "list:", "list:react hooks", "show:1", "post", "edit:2", "delete:3", "comment:1",
		"roster:teacher", "add:teacher", "edit:teacher:2", "remove:teacher:3",
		"roster:student", "add:student", "edit:student:5", "remove:student:6",
		"whoami", "logout",
	}, exec.calls)
}

func TestRunREPL_AnonymousOnlyLogsIn(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	run(exec, "help\nlist\npost\nteachers\nlogout\n")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Available commands: login, help, exit")
	assert.Contains(t, *out, "Command not available here, type 'help'")
}

func TestRunREPL_StudentCannotAdminister(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{who: &models.Identity{ID: "4", Role: models.RoleStudent}}
	run(exec, "help\npost\nedit 1\ndelete 1\nstudents\nrmteacher 1\ncomment 1\n")

	assert.Equal(t, []string{"post", "comment:1"}, exec.calls)
	assert.Contains(t, *out, "Available commands: list [query], show <id>, post, comment <id>, whoami, logout, help, exit")
}

func TestRunREPL_UsageUnknownAndErrors(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{who: &models.Identity{ID: "1", Role: models.RoleTeacher}, err: fmt.Errorf("delete post 9: %w", common.ErrNotFound)}
	run(exec, "show\nfoobar\n\ndelete 9\nquit\n")

	require.Equal(t, []string{"delete:9"}, exec.calls)
	assert.Contains(t, *out, "Usage: show <id>")
	assert.Contains(t, *out, "Unknown command: foobar")
	assert.Contains(t, *out, "Not found")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{who: &models.Identity{ID: "1", Role: models.RoleTeacher}}
	run(exec, "show 7")

	assert.Equal(t, []string{"show:7"}, exec.calls)
}

func TestDescribeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("login: %w", common.ErrInvalidCredentials), "Invalid email or password"},
		{fmt.Errorf("x: %w", common.ErrUnauthorized), "You are not allowed to do that"},
		{fmt.Errorf("x: %w", common.ErrDuplicateEmail), "That email is already in use"},
		{validationError("Title must not be empty"), "Title must not be empty"},
		{context.Canceled, "Cancelled"},
		{fmt.Errorf("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, describeError(tt.err))
	}
}
