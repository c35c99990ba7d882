package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/edublog/internal/logging"
	"github.com/dmitrijs2005/edublog/internal/models"
	"github.com/dmitrijs2005/edublog/internal/services"
)

type App struct {
	api    services.BlogAPI
	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

func NewApp(api services.BlogAPI, in io.Reader, out io.Writer, log logging.Logger) *App {
	return &App{api: api, reader: bufio.NewReader(in), out: out, log: log.With("component", "cli")}
}

// Run starts the REPL and blocks until the user quits or input ends.
func (a *App) Run(ctx context.Context) {
	a.log.Info(ctx, "cli started")
	fmt.Fprintln(a.out, "Welcome to EduBlog CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	a.log.Info(ctx, "cli stopped")
}

func (a *App) current(ctx context.Context) *models.Identity {
	return a.api.CurrentIdentity(ctx)
}

func (a *App) getStatus(ctx context.Context) string {
	who := a.current(ctx)
	if who == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", who.Username, who.Role)
}
