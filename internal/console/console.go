// Package console builds the command tree of the terminal client and guards
// every screen behind the session credential.
package console

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/console/alvaras"
	"github.com/GlebRadaev/acordos/internal/console/auth"
	"github.com/GlebRadaev/acordos/internal/console/cases"
	"github.com/GlebRadaev/acordos/internal/console/detail"
	"github.com/GlebRadaev/acordos/internal/console/imports"
	"github.com/GlebRadaev/acordos/internal/console/receipts"
	"github.com/GlebRadaev/acordos/internal/console/ui"
	"github.com/GlebRadaev/acordos/internal/remote"
	"github.com/GlebRadaev/acordos/internal/router"
	"github.com/GlebRadaev/acordos/internal/service"
)

// routeKey annotates a command with the screen it shows. Commands without it
// are reachable signed out.
const routeKey = "route"

type AuthHandler interface {
	Login(cmd *cobra.Command, args []string) error
	SignIn(ctx context.Context, email string) error
	Register(cmd *cobra.Command, args []string) error
	Logout(cmd *cobra.Command, args []string) error
	WhoAmI(cmd *cobra.Command, args []string) error
}

type CasesHandler interface {
	List(cmd *cobra.Command, args []string) error
	Create(cmd *cobra.Command, args []string) error
	Edit(cmd *cobra.Command, args []string) error
	Delete(cmd *cobra.Command, args []string) error
	BulkUpdate(cmd *cobra.Command, args []string) error
	BulkDelete(cmd *cobra.Command, args []string) error
}

type DetailHandler interface {
	Show(cmd *cobra.Command, args []string) error
	DeleteCase(cmd *cobra.Command, args []string) error
	CreateAgreement(cmd *cobra.Command, args []string) error
	EditAgreement(cmd *cobra.Command, args []string) error
	DeleteAgreement(cmd *cobra.Command, args []string) error
	PayInstallment(cmd *cobra.Command, args []string) error
	EditInstallment(cmd *cobra.Command, args []string) error
	CreateAlvara(cmd *cobra.Command, args []string) error
	EditAlvara(cmd *cobra.Command, args []string) error
	ToggleAlvara(cmd *cobra.Command, args []string) error
	DeleteAlvara(cmd *cobra.Command, args []string) error
}

type ReceiptsHandler interface {
	Show(cmd *cobra.Command, args []string) error
	Export(cmd *cobra.Command, args []string) error
}

type ImportHandler interface {
	Import(cmd *cobra.Command, args []string) error
	History(cmd *cobra.Command, args []string) error
}

type AlvarasHandler interface {
	List(cmd *cobra.Command, args []string) error
	Pay(cmd *cobra.Command, args []string) error
}

type Navigator interface {
	Navigate(path string) (router.Route, error)
	Current() router.Route
}

type Console struct {
	AuthHandler     AuthHandler
	CasesHandler    CasesHandler
	DetailHandler   DetailHandler
	ReceiptsHandler ReceiptsHandler
	ImportHandler   ImportHandler
	AlvarasHandler  AlvarasHandler

	nav  Navigator
	term *ui.Terminal
}

func New(s *service.Services, term *ui.Terminal, nav Navigator) *Console {
	return &Console{
		AuthHandler:     auth.New(s.AuthService, term),
		CasesHandler:    cases.New(s.CaseService, term),
		DetailHandler:   detail.New(s.DetailService, term),
		ReceiptsHandler: receipts.New(s.ReceiptService, term),
		ImportHandler:   imports.New(s.ImportWizard, term),
		AlvarasHandler:  alvaras.New(s.AlvaraService, term),
		nav:             nav,
		term:            term,
	}
}

func (c *Console) InitCommands(root *cobra.Command) *cobra.Command {
	root.SilenceErrors = true
	root.SilenceUsage = true
	root.PersistentPreRunE = c.guard

	login := &cobra.Command{Use: "login", Short: "Sign in", Args: cobra.NoArgs, RunE: c.AuthHandler.Login}
	login.Flags().StringP("email", "e", "", "account email")

	register := &cobra.Command{Use: "register", Short: "Create an account and sign in", Args: cobra.NoArgs, RunE: c.AuthHandler.Register}
	register.Flags().StringP("email", "e", "", "account email")
	register.Flags().StringP("name", "n", "", "full name")

	root.AddCommand(
		login,
		register,
		&cobra.Command{Use: "logout", Short: "Sign out", Args: cobra.NoArgs, RunE: c.AuthHandler.Logout},
		&cobra.Command{Use: "whoami", Short: "Show the signed in user", Args: cobra.NoArgs, RunE: c.AuthHandler.WhoAmI},
		c.casesCommand(),
		c.caseCommand(),
		c.agreementCommand(),
		c.installmentCommand(),
		c.alvaraCommand(),
		c.receiptsCommand(),
		c.importCommand(),
		c.alvarasCommand(),
		&cobra.Command{
			Use:   "open <path>",
			Short: "Open a screen by path, e.g. /cases/42 or /recebimentos",
			Args:  cobra.ExactArgs(1),
			RunE:  c.open,
		},
	)
	return root
}

func (c *Console) casesCommand() *cobra.Command {
	listFlags := func(cmd *cobra.Command) *cobra.Command {
		fs := cmd.Flags()
		fs.StringP("search", "s", "", "debtor name, CPF or process number")
		fs.String("status-acordo", "", "agreement status")
		fs.String("beneficiario", "", "beneficiary code (31, 14 or all)")
		fs.String("status-processo", "", "process status")
		fs.String("sort", "", "sort order")
		fs.Int("page", 0, "page number")
		fs.Int("limit", 0, "page size")
		return cmd
	}

	cmd := listFlags(routed(&cobra.Command{
		Use:   "cases",
		Short: "List and manage cases",
		Args:  cobra.NoArgs,
		RunE:  c.CasesHandler.List,
	}, router.Cases))

	bulkUpdate := routed(&cobra.Command{
		Use:   "bulk-update <id>...",
		Short: "Set the same fields on several cases",
		Args:  cobra.MinimumNArgs(1),
		RunE:  c.CasesHandler.BulkUpdate,
	}, router.Cases)
	bulkUpdate.Flags().String("status-processo", "", "process status")
	bulkUpdate.Flags().String("polo-ativo", "", "polo ativo")
	bulkUpdate.Flags().String("curso", "", "course")
	bulkUpdate.Flags().String("data-matricula", "", "enrollment date")

	cmd.AddCommand(
		listFlags(routed(&cobra.Command{Use: "list", Short: "List cases", Args: cobra.NoArgs, RunE: c.CasesHandler.List}, router.Cases)),
		routed(&cobra.Command{Use: "create", Short: "Create a case", Args: cobra.NoArgs, RunE: c.CasesHandler.Create}, router.Cases),
		routed(&cobra.Command{Use: "edit <id>", Short: "Edit a case", Args: cobra.ExactArgs(1), RunE: c.CasesHandler.Edit}, router.Cases),
		routed(&cobra.Command{Use: "delete <id>", Short: "Delete a case", Args: cobra.ExactArgs(1), RunE: c.CasesHandler.Delete}, router.Cases),
		bulkUpdate,
		routed(&cobra.Command{Use: "bulk-delete <id>...", Short: "Delete several cases", RunE: c.CasesHandler.BulkDelete}, router.Cases),
	)
	return cmd
}

func (c *Console) caseCommand() *cobra.Command {
	show := routed(&cobra.Command{
		Use:   "show <case-id>",
		Short: "Show a case with its agreement, installments and alvarás",
		Args:  cobra.ExactArgs(1),
		RunE:  c.DetailHandler.Show,
	}, router.CaseDetail)
	show.Flags().StringP("tab", "t", detail.TabAll, "summary, agreement, installments, alvaras or all")
	show.Flags().String("status", "", "only installments with this status")

	cmd := &cobra.Command{Use: "case", Short: "Work on one case"}
	cmd.AddCommand(
		show,
		routed(&cobra.Command{Use: "delete <case-id>", Short: "Delete the case", Args: cobra.ExactArgs(1), RunE: c.DetailHandler.DeleteCase}, router.CaseDetail),
	)
	return cmd
}

func (c *Console) agreementCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "agreement", Short: "Manage the agreement of a case"}
	cmd.AddCommand(
		routed(&cobra.Command{Use: "create <case-id>", Short: "Create the agreement", Args: cobra.ExactArgs(1), RunE: c.DetailHandler.CreateAgreement}, router.CaseDetail),
		routed(&cobra.Command{Use: "edit <case-id>", Short: "Edit the agreement", Args: cobra.ExactArgs(1), RunE: c.DetailHandler.EditAgreement}, router.CaseDetail),
		routed(&cobra.Command{Use: "delete <case-id>", Short: "Delete the agreement and its installments", Args: cobra.ExactArgs(1), RunE: c.DetailHandler.DeleteAgreement}, router.CaseDetail),
	)
	return cmd
}

func (c *Console) installmentCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "installment", Short: "Register installment payments"}
	cmd.AddCommand(
		routed(&cobra.Command{Use: "pay <case-id> <number>", Short: "Mark an installment as paid", Args: cobra.ExactArgs(2), RunE: c.DetailHandler.PayInstallment}, router.CaseDetail),
		routed(&cobra.Command{Use: "edit <case-id> <number>", Short: "Edit payment and due date", Args: cobra.ExactArgs(2), RunE: c.DetailHandler.EditInstallment}, router.CaseDetail),
	)
	return cmd
}

func (c *Console) alvaraCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "alvara", Short: "Manage the alvarás of a case"}
	cmd.AddCommand(
		routed(&cobra.Command{Use: "create <case-id>", Short: "Register an alvará", Args: cobra.ExactArgs(1), RunE: c.DetailHandler.CreateAlvara}, router.CaseDetail),
		routed(&cobra.Command{Use: "edit <case-id> <alvara-id>", Short: "Edit an alvará", Args: cobra.ExactArgs(2), RunE: c.DetailHandler.EditAlvara}, router.CaseDetail),
		routed(&cobra.Command{Use: "toggle <case-id> <alvara-id>", Short: "Switch between pending and paid", Args: cobra.ExactArgs(2), RunE: c.DetailHandler.ToggleAlvara}, router.CaseDetail),
		routed(&cobra.Command{Use: "delete <case-id> <alvara-id>", Short: "Delete an alvará", Args: cobra.ExactArgs(2), RunE: c.DetailHandler.DeleteAlvara}, router.CaseDetail),
	)
	return cmd
}

func (c *Console) receiptsCommand() *cobra.Command {
	filterFlags := func(cmd *cobra.Command) *cobra.Command {
		fs := cmd.Flags()
		fs.StringP("period", "p", "", "day, week, month, year or custom (default month)")
		fs.String("start", "", "custom period start")
		fs.String("end", "", "custom period end")
		fs.String("beneficiario", "", "31, 14 or all")
		fs.String("type", "", "parcelas, alvara, entrada or all")
		return cmd
	}

	cmd := filterFlags(routed(&cobra.Command{
		Use:   "receipts",
		Short: "Show what was received in a period",
		Args:  cobra.NoArgs,
		RunE:  c.ReceiptsHandler.Show,
	}, router.Receipts))

	export := filterFlags(routed(&cobra.Command{
		Use:   "export",
		Short: "Save the receipts as CSV and/or PDF",
		Args:  cobra.NoArgs,
		RunE:  c.ReceiptsHandler.Export,
	}, router.Receipts))
	export.Flags().StringP("format", "f", "csv", "csv, pdf or all")
	export.Flags().StringP("dir", "d", ".", "output directory")

	cmd.AddCommand(export)
	return cmd
}

func (c *Console) importCommand() *cobra.Command {
	cmd := routed(&cobra.Command{
		Use:   "import [file]",
		Short: "Import cases from a spreadsheet",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.ImportHandler.Import,
	}, router.Import)
	cmd.Flags().StringP("mapping", "m", "", "YAML or JSON mapping file")
	cmd.Flags().Bool("auto", false, "map fields whose name matches a column")
	cmd.Flags().BoolP("yes", "y", false, "skip the mapping step and every confirmation")

	cmd.AddCommand(routed(&cobra.Command{
		Use:   "history",
		Short: "List previous imports",
		Args:  cobra.NoArgs,
		RunE:  c.ImportHandler.History,
	}, router.Import))
	return cmd
}

func (c *Console) alvarasCommand() *cobra.Command {
	filterFlags := func(cmd *cobra.Command) *cobra.Command {
		fs := cmd.Flags()
		fs.String("debtor", "", "debtor name contains")
		fs.String("process", "", "process number contains")
		fs.String("beneficiario", "", "31, 14 or all")
		fs.String("order", "", "recent, alpha, min or max")
		return cmd
	}

	cmd := filterFlags(routed(&cobra.Command{
		Use:   "alvaras",
		Short: "List pending alvarás of every case",
		Args:  cobra.NoArgs,
		RunE:  c.AlvarasHandler.List,
	}, router.PendingAlvaras))

	cmd.AddCommand(filterFlags(routed(&cobra.Command{
		Use:   "pay <alvara-id>",
		Short: "Mark a pending alvará as paid",
		Args:  cobra.ExactArgs(1),
		RunE:  c.AlvarasHandler.Pay,
	}, router.PendingAlvaras)))
	return cmd
}

func routed(cmd *cobra.Command, screen router.Screen) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[routeKey] = string(screen)
	return cmd
}

// guard resolves the screen of the command about to run. A signed out user
// is sent through the login prompt first and then on to the screen.
func (c *Console) guard(cmd *cobra.Command, args []string) error {
	screen, ok := cmd.Annotations[routeKey]
	if !ok {
		return nil
	}
	path := screen
	if router.Screen(screen) == router.CaseDetail {
		path = router.CasePath(args[0])
	}
	_, err := c.enter(cmd.Context(), path)
	return err
}

// enter navigates to path, signing in when the guard asks for it.
func (c *Console) enter(ctx context.Context, path string) (router.Route, error) {
	route, err := c.nav.Navigate(path)
	if err != nil {
		return router.Route{}, err
	}
	if route.Screen != router.Login || route.From == "" {
		return route, nil
	}

	c.term.Warn("Sign in to continue")
	if err := c.AuthHandler.SignIn(ctx, ""); err != nil {
		return router.Route{}, err
	}
	return c.nav.Navigate(route.From)
}

// open shows a screen given its path.
func (c *Console) open(cmd *cobra.Command, args []string) error {
	route, err := c.enter(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return c.show(cmd, route)
}

func (c *Console) show(cmd *cobra.Command, route router.Route) error {
	switch route.Screen {
	case router.Login:
		return c.AuthHandler.SignIn(cmd.Context(), "")
	case router.Cases:
		return c.CasesHandler.List(cmd, nil)
	case router.CaseDetail:
		return c.DetailHandler.Show(cmd, []string{route.CaseID})
	case router.Receipts:
		return c.ReceiptsHandler.Show(cmd, nil)
	case router.Import:
		return c.ImportHandler.History(cmd, nil)
	case router.PendingAlvaras:
		return c.AlvarasHandler.List(cmd, nil)
	default:
		return router.ErrUnknownRoute
	}
}

// Execute runs the command line and reports any failure on the terminal.
// When the backend ends the session mid-command the user may sign in again
// and lands back on the screen that was open; the interrupted command still
// counts as failed.
func (c *Console) Execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ui.ErrCancelled):
		c.term.Error(err)
		return nil
	case errors.Is(err, remote.ErrUnauthorized):
		c.term.Error(err)
		if rerr := c.reauthenticate(ctx, root); rerr != nil {
			c.term.Error(rerr)
		}
		return err
	default:
		c.term.Error(err)
		return err
	}
}

func (c *Console) reauthenticate(ctx context.Context, root *cobra.Command) error {
	current := c.nav.Current()
	if current.Screen != router.Login {
		return remote.ErrUnauthorized
	}
	ok, err := c.term.Confirm("Sign in again?")
	if err != nil {
		return err
	}
	if !ok {
		return ui.ErrCancelled
	}
	if err := c.AuthHandler.SignIn(ctx, ""); err != nil {
		return err
	}
	if current.From == "" {
		return nil
	}

	route, err := c.nav.Navigate(current.From)
	if err != nil {
		return err
	}
	zap.L().Debug("back to screen", zap.String("path", route.Path))
	root.SetContext(ctx)
	return c.show(root, route)
}
