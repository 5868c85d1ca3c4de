package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/config"
	"github.com/GlebRadaev/acordos/internal/console"
	"github.com/GlebRadaev/acordos/internal/console/ui"
	"github.com/GlebRadaev/acordos/internal/remote"
	"github.com/GlebRadaev/acordos/internal/repo"
	"github.com/GlebRadaev/acordos/internal/router"
	"github.com/GlebRadaev/acordos/internal/service"
	"github.com/GlebRadaev/acordos/internal/session"
	"github.com/GlebRadaev/acordos/pkg/clients"
	"github.com/GlebRadaev/acordos/pkg/logger"
)

var errNotStarted = errors.New("application not started")

type ApplicationI interface {
	Start(ctx context.Context) error
	Run(ctx context.Context) error
}

type Application struct {
	cfg     *config.Config
	console *console.Console
	srv     *service.Services
	repo    *repo.Repositories
	nav     *router.Navigator
	root    *cobra.Command

	args   []string
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func New(args []string, in io.Reader, out, errOut io.Writer) *Application {
	return &Application{
		args:   args,
		in:     in,
		out:    out,
		errOut: errOut,
	}
}

// Start wires the console: session, router, backend, repositories, services
// and the command tree. Nothing talks to the backend yet.
func (a *Application) Start(_ context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}
	if err := parseGlobalFlags(cfg, a.args); err != nil {
		return fmt.Errorf("can't parse flags: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	holder := session.New(session.NewFileStore(cfg.SessionFile))
	a.nav = router.NewNavigator(router.New(holder))
	backend := remote.New(cfg.APIURL, clients.NewHTTPClient(cfg.RequestTimeout), holder,
		remote.WithUnauthorizedHook(a.nav.Redirect),
	)

	a.cfg = cfg
	a.repo = repo.New(backend)
	a.srv = service.New(a.repo, holder, cfg)
	a.console = console.New(a.srv, ui.New(a.in, a.out, a.errOut), a.nav)

	root := &cobra.Command{
		Use:   "acordos",
		Short: "Terminal console for debt collection cases, agreements and receipts",
	}
	// Already applied by parseGlobalFlags; the copy only lets the command
	// tree accept and document them.
	shadow := *cfg
	shadow.BindFlags(root.PersistentFlags())
	root.SetArgs(a.args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	a.root = a.console.InitCommands(root)

	zap.L().Debug("console ready", zap.String("api", cfg.APIURL), zap.String("session_file", cfg.SessionFile))
	return nil
}

// Run executes the command line. Failures have already been shown to the
// user when an error comes back.
func (a *Application) Run(ctx context.Context) error {
	if a.root == nil {
		return errNotStarted
	}
	return a.console.Execute(ctx, a.root)
}

// parseGlobalFlags applies the connection flags before the backend is built.
// Everything else is left for the command tree.
func parseGlobalFlags(cfg *config.Config, args []string) error {
	fs := pflag.NewFlagSet("acordos", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.SetOutput(io.Discard)
	cfg.BindFlags(fs)

	if err := fs.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		return err
	}
	cfg.Normalize()
	return nil
}
