package imports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/console/ui"
	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/internal/remote"
	"github.com/GlebRadaev/acordos/internal/service/importservice"
	"github.com/GlebRadaev/acordos/pkg/format"
)

var ErrUnknownCommand = errors.New("unknown command, type help")

type Wizard interface {
	State() importservice.State
	History() []domain.ImportHistoryEntry
	LoadHistory(ctx context.Context) error
	Upload(ctx context.Context, filename string, size int64, content io.Reader) error
	Assign(sectionKey, field, column string) error
	ApplyMapping(mapping dto.Mapping) error
	AutoMap() (int, error)
	Validate(ctx context.Context) error
	Confirm() error
	Commit(ctx context.Context) error
	Back() error
	Reset() error
}

type ImportHandler struct {
	wizard Wizard
	term   *ui.Terminal
}

func New(wizard Wizard, term *ui.Terminal) *ImportHandler {
	return &ImportHandler{
		wizard: wizard,
		term:   term,
	}
}

type options struct {
	mappingFile string
	auto        bool
	yes         bool
}

// Import walks the wizard from upload to result. With --yes the mapping
// step is skipped and every confirmation is accepted, so a saved mapping or
// --auto must cover the sheet.
func (h *ImportHandler) Import(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	var opts options
	opts.mappingFile, _ = cmd.Flags().GetString("mapping")
	opts.auto, _ = cmd.Flags().GetBool("auto")
	opts.yes, _ = cmd.Flags().GetBool("yes")

	if err := h.wizard.LoadHistory(ctx); err != nil {
		if errors.Is(err, remote.ErrUnauthorized) {
			return err
		}
		zap.L().Warn("can't load import history", zap.Error(err))
	}
	if _, ok := h.wizard.State().(importservice.Result); ok {
		if err := h.wizard.Reset(); err != nil {
			return err
		}
	}

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	for {
		var err error
		switch s := h.wizard.State().(type) {
		case importservice.Upload:
			err = h.upload(ctx, path, opts)
			path = ""
		case importservice.Mapping:
			err = h.mapping(ctx, s, opts)
		case importservice.Validation:
			err = h.validation(s, opts)
		case importservice.Confirmation:
			err = h.confirmation(ctx, s, opts)
		case importservice.Result:
			return h.result(s)
		default:
			return fmt.Errorf("unexpected import step %s", s.Step())
		}
		if err == nil {
			continue
		}
		if opts.yes {
			return err
		}
		if err := h.recoverable(err); err != nil {
			return err
		}
	}
}

func (h *ImportHandler) upload(ctx context.Context, path string, opts options) error {
	if path == "" {
		if opts.yes {
			return ui.ErrCancelled
		}
		var err error
		if path, err = h.term.Ask("File to import (empty to quit)"); err != nil {
			return err
		}
		if path == "" {
			return ui.ErrCancelled
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := h.wizard.Upload(ctx, path, info.Size(), f); err != nil {
		return err
	}

	if opts.mappingFile != "" {
		if err := h.loadMapping(opts.mappingFile); err != nil {
			return err
		}
	}
	if opts.auto {
		if err := h.autoMap(); err != nil {
			return err
		}
	}

	m, ok := h.wizard.State().(importservice.Mapping)
	if !ok {
		return nil
	}
	h.term.Heading(fmt.Sprintf("%s: %d rows", m.Filename, m.TotalRows))
	if err := h.term.Frame(m.Columns, m.Preview); err != nil {
		return err
	}
	return h.renderMapping(m)
}

const mappingHelp = `Commands:
  set <section>.<field> <column>   map a field to a column
  unset <section>.<field>          leave a field unmapped
  auto                             map fields whose name matches a column
  load <file> | save <file>        read or write a YAML mapping file
  show | preview | columns         show mapping, sample rows or columns
  validate                         check the mapping against every row
  back                             choose another file
  quit                             stop the import`

// mapping reads one command and applies it.
func (h *ImportHandler) mapping(ctx context.Context, m importservice.Mapping, opts options) error {
	if opts.yes {
		return h.wizard.Validate(ctx)
	}

	line, err := h.term.Ask("mapping")
	if err != nil {
		return err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch cmd, rest := fields[0], fields[1:]; cmd {
	case "set", "unset":
		if len(rest) == 0 {
			err = ErrUnknownCommand
			break
		}
		column := importservice.Ignore
		if cmd == "set" {
			column = strings.Join(rest[1:], " ")
		}
		sectionKey, field, _ := strings.Cut(rest[0], ".")
		err = h.wizard.Assign(sectionKey, field, column)
	case "auto":
		err = h.autoMap()
	case "load", "save":
		if len(rest) == 0 {
			err = ErrUnknownCommand
			break
		}
		path := strings.Join(rest, " ")
		if cmd == "load" {
			err = h.loadMapping(path)
			break
		}
		if err = importservice.SaveMappingFile(path, m.Assigned); err == nil {
			h.term.Success("Mapping saved to " + path)
		}
	case "show":
		err = h.renderMapping(m)
	case "preview":
		err = h.term.Frame(m.Columns, m.Preview)
	case "columns":
		h.term.Println(strings.Join(m.Columns, ", "))
	case "validate", "next":
		err = h.wizard.Validate(ctx)
	case "back":
		err = h.wizard.Back()
	case "quit", "exit":
		return ui.ErrCancelled
	case "help", "?":
		h.term.Println(mappingHelp)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return err
}

func (h *ImportHandler) validation(v importservice.Validation, opts options) error {
	sum := v.Result.Summary
	h.term.Heading("Validation")
	err := h.term.Fields([]ui.Field{
		{Label: "Rows", Value: strconv.Itoa(sum.TotalRows)},
		{Label: "Valid", Value: strconv.Itoa(sum.ValidRows)},
		{Label: "Invalid", Value: strconv.Itoa(sum.InvalidRows)},
	})
	if err != nil {
		return err
	}
	if err := h.renderIssues("ERRORS", v.Result.Errors); err != nil {
		return err
	}
	if err := h.renderIssues("WARNINGS", v.Result.Warnings); err != nil {
		return err
	}

	if v.Blocking() {
		if opts.yes {
			return importservice.ErrValidationErrors
		}
		h.term.Warn(importservice.ErrValidationErrors.Error())
		return h.wizard.Back()
	}
	ok, err := h.proceed("Continue to import?", opts)
	if err != nil {
		return err
	}
	if !ok {
		return h.wizard.Back()
	}
	return h.wizard.Confirm()
}

func (h *ImportHandler) confirmation(ctx context.Context, c importservice.Confirmation, opts options) error {
	question := fmt.Sprintf("Import %d rows from %s?", c.Result.Summary.ValidRows, c.Filename)
	ok, err := h.proceed(question, opts)
	if err != nil {
		return err
	}
	if !ok {
		return h.wizard.Back()
	}
	return h.wizard.Commit(ctx)
}

func (h *ImportHandler) result(r importservice.Result) error {
	c := r.Commit
	if c.Message != "" {
		h.term.Success(c.Message)
	} else {
		h.term.Success(r.Filename + " imported")
	}
	err := h.term.Fields([]ui.Field{
		{Label: "Cases", Value: strconv.Itoa(c.Totals.Cases)},
		{Label: "Agreements", Value: strconv.Itoa(c.Totals.Agreements)},
		{Label: "Installments", Value: strconv.Itoa(c.Totals.Installments)},
		{Label: "Alvarás", Value: strconv.Itoa(c.Totals.Alvaras)},
	})
	if err != nil {
		return err
	}

	var failed [][]string
	for _, row := range c.Results {
		if row.Status != "success" {
			failed = append(failed, []string{strconv.Itoa(row.Row), row.Status, row.Message})
		}
	}
	if len(failed) > 0 {
		h.term.Heading("Rows not imported")
		return h.term.Table([]string{"ROW", "STATUS", "MESSAGE"}, failed)
	}
	return nil
}

func (h *ImportHandler) History(cmd *cobra.Command, _ []string) error {
	if err := h.wizard.LoadHistory(cmd.Context()); err != nil {
		return err
	}
	history := h.wizard.History()
	if len(history) == 0 {
		h.term.Println("No imports yet")
		return nil
	}
	rows := make([][]string, 0, len(history))
	for _, e := range history {
		rows = append(rows, []string{
			e.Filename, createdOn(e.CreatedAt),
			strconv.Itoa(e.Totals.Cases), strconv.Itoa(e.Totals.Agreements),
			strconv.Itoa(e.Totals.Installments), strconv.Itoa(e.Totals.Alvaras),
		})
	}
	return h.term.Table([]string{"FILE", "DATE", "CASES", "AGREEMENTS", "INSTALLMENTS", "ALVARÁS"}, rows)
}

// createdOn keeps the date part of a timestamp.
func createdOn(ts string) string {
	if len(ts) > len(format.ISODate) {
		ts = ts[:len(format.ISODate)]
	}
	return format.DateBR(ts)
}

func (h *ImportHandler) loadMapping(path string) error {
	m, err := importservice.LoadMappingFile(path)
	if err != nil {
		return err
	}
	if err := h.wizard.ApplyMapping(m); err != nil {
		return err
	}
	h.term.Success("Mapping loaded from " + path)
	return nil
}

func (h *ImportHandler) autoMap() error {
	n, err := h.wizard.AutoMap()
	if err != nil {
		return err
	}
	h.term.Success(fmt.Sprintf("%d fields mapped by name", n))
	return nil
}

func (h *ImportHandler) renderMapping(m importservice.Mapping) error {
	rows := make([][]string, 0)
	for _, s := range importservice.Sections {
		for _, f := range s.Fields {
			column := m.Assigned[s.Key][f]
			if column == "" {
				column = "-"
			}
			rows = append(rows, []string{s.Key + "." + f, column})
		}
	}
	return h.term.Table([]string{"FIELD", "COLUMN"}, rows)
}

func (h *ImportHandler) renderIssues(title string, issues []dto.RowIssue) error {
	if len(issues) == 0 {
		return nil
	}
	sorted := make([]dto.RowIssue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rowOf(sorted[i]) < rowOf(sorted[j])
	})

	rows := make([][]string, 0, len(sorted))
	for _, issue := range sorted {
		row := "-"
		if issue.Row != nil {
			row = strconv.Itoa(*issue.Row)
		}
		rows = append(rows, []string{row, issue.Message})
	}
	return h.term.Table([]string{"ROW", title}, rows)
}

func rowOf(issue dto.RowIssue) int {
	if issue.Row == nil {
		return -1
	}
	return *issue.Row
}

func (h *ImportHandler) proceed(question string, opts options) (bool, error) {
	if opts.yes {
		return true, nil
	}
	return h.term.Confirm(question)
}

// recoverable reports err and keeps the current step unless the user quit,
// input is closed or the session is gone.
func (h *ImportHandler) recoverable(err error) error {
	if errors.Is(err, ui.ErrCancelled) || errors.Is(err, io.EOF) ||
		errors.Is(err, remote.ErrUnauthorized) || errors.Is(err, context.Canceled) {
		return err
	}
	h.term.Error(err)
	return nil
}
