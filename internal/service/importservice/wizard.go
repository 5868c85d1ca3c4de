package importservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
)

const PreviewSampleSize = 10

var (
	ErrInvalidTransition = errors.New("action not available at this step")
	ErrFileTooLarge      = errors.New("file exceeds the upload limit")
	ErrUnsupportedFile   = errors.New("only .xlsx, .xls and .csv files are accepted")
	ErrUnknownSection    = errors.New("unknown mapping section")
	ErrUnknownField      = errors.New("unknown mapping field")
	ErrUnknownColumn     = errors.New("column not present in the spreadsheet")
	ErrValidationErrors  = errors.New("fix validation errors before importing")
)

var acceptedExtensions = []string{".xlsx", ".xls", ".csv"}

type Repo interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
	Preview(ctx context.Context, sessionID string, sampleSize int) (*dto.PreviewResponseDTO, error)
	Validate(ctx context.Context, sessionID string, mapping dto.Mapping) (*dto.ValidationResponseDTO, error)
	Commit(ctx context.Context, sessionID string, mapping dto.Mapping) (*dto.CommitResponseDTO, error)
	History(ctx context.Context) ([]domain.ImportHistoryEntry, error)
}

// Wizard drives one spreadsheet import. Every transition either returns the
// next state or an error, in which case the current state is kept.
type Wizard struct {
	importRepo Repo
	maxBytes   int64
	state      State
	history    []domain.ImportHistoryEntry
}

func New(repo Repo, maxBytes int64) *Wizard {
	return &Wizard{
		importRepo: repo,
		maxBytes:   maxBytes,
		state:      Upload{},
	}
}

func (w *Wizard) State() State {
	return w.state
}

func (w *Wizard) History() []domain.ImportHistoryEntry {
	return w.history
}

func (w *Wizard) LoadHistory(ctx context.Context) error {
	history, err := w.importRepo.History(ctx)
	if err != nil {
		return err
	}
	w.history = history
	return nil
}

// Upload checks size and extension locally, then sends the file and fetches
// its preview.
func (w *Wizard) Upload(ctx context.Context, filename string, size int64, content io.Reader) error {
	if _, ok := w.state.(Upload); !ok {
		return ErrInvalidTransition
	}
	if size > w.maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, size, w.maxBytes)
	}
	if !accepted(filename) {
		return ErrUnsupportedFile
	}

	name := filepath.Base(filename)
	sessionID, err := w.importRepo.Upload(ctx, name, content)
	if err != nil {
		return err
	}
	preview, err := w.importRepo.Preview(ctx, sessionID, PreviewSampleSize)
	if err != nil {
		return err
	}

	w.state = Mapping{
		SessionID: sessionID,
		Filename:  name,
		Columns:   preview.Columns,
		Preview:   preview.Preview,
		TotalRows: preview.TotalRows,
		Assigned:  emptyMapping(),
	}
	zap.L().Info("import uploaded", zap.String("session_id", sessionID), zap.Int("rows", preview.TotalRows))
	return nil
}

// Assign maps one target field to a spreadsheet column; "" or "ignore"
// clears it.
func (w *Wizard) Assign(sectionKey, field, column string) error {
	m, ok := w.state.(Mapping)
	if !ok {
		return ErrInvalidTransition
	}
	next := copyMapping(m.Assigned)
	if err := assign(next, m.Columns, sectionKey, field, column); err != nil {
		return err
	}
	m.Assigned = next
	w.state = m
	return nil
}

// ApplyMapping replaces every assignment at once, e.g. from a mapping file.
// Nothing changes unless all entries are valid.
func (w *Wizard) ApplyMapping(mapping dto.Mapping) error {
	m, ok := w.state.(Mapping)
	if !ok {
		return ErrInvalidTransition
	}
	next := emptyMapping()
	for sectionKey, fields := range mapping {
		for field, column := range fields {
			if err := assign(next, m.Columns, sectionKey, field, column); err != nil {
				return err
			}
		}
	}
	m.Assigned = next
	w.state = m
	return nil
}

// AutoMap assigns each still unmapped field to the column whose header
// matches its name, ignoring case, accents and separators. It returns the
// number of new assignments.
func (w *Wizard) AutoMap() (int, error) {
	m, ok := w.state.(Mapping)
	if !ok {
		return 0, ErrInvalidTransition
	}
	byName := make(map[string]string, len(m.Columns))
	for _, c := range m.Columns {
		byName[normalizeName(c)] = c
	}

	next := copyMapping(m.Assigned)
	count := 0
	for _, s := range Sections {
		for _, f := range s.Fields {
			if next[s.Key][f] != "" {
				continue
			}
			if column, ok := byName[normalizeName(f)]; ok {
				next[s.Key][f] = column
				count++
			}
		}
	}
	m.Assigned = next
	w.state = m
	return count, nil
}

func (w *Wizard) Validate(ctx context.Context) error {
	m, ok := w.state.(Mapping)
	if !ok {
		return ErrInvalidTransition
	}
	result, err := w.importRepo.Validate(ctx, m.SessionID, m.Assigned)
	if err != nil {
		return err
	}
	w.state = Validation{Mapping: m, Result: *result}
	return nil
}

func (w *Wizard) Confirm() error {
	v, ok := w.state.(Validation)
	if !ok {
		return ErrInvalidTransition
	}
	if v.Blocking() {
		return ErrValidationErrors
	}
	w.state = Confirmation{Validation: v}
	return nil
}

// Commit imports the rows and refreshes the history.
func (w *Wizard) Commit(ctx context.Context) error {
	c, ok := w.state.(Confirmation)
	if !ok {
		return ErrInvalidTransition
	}
	if c.Blocking() {
		return ErrValidationErrors
	}
	result, err := w.importRepo.Commit(ctx, c.SessionID, c.Assigned)
	if err != nil {
		return err
	}
	w.state = Result{Filename: c.Filename, Commit: *result}
	zap.L().Info("import committed",
		zap.String("session_id", c.SessionID),
		zap.Int("cases", result.Totals.Cases),
		zap.Int("agreements", result.Totals.Agreements),
	)

	if err := w.LoadHistory(ctx); err != nil {
		zap.L().Warn("can't refresh import history", zap.Error(err))
	}
	return nil
}

func (w *Wizard) Back() error {
	switch s := w.state.(type) {
	case Mapping:
		w.state = Upload{}
	case Validation:
		w.state = s.Mapping
	case Confirmation:
		w.state = s.Validation
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Reset starts a new import after a finished one.
func (w *Wizard) Reset() error {
	if _, ok := w.state.(Result); !ok {
		return ErrInvalidTransition
	}
	w.state = Upload{}
	return nil
}

func emptyMapping() dto.Mapping {
	m := make(dto.Mapping, len(Sections))
	for _, s := range Sections {
		fields := make(map[string]string, len(s.Fields))
		for _, f := range s.Fields {
			fields[f] = ""
		}
		m[s.Key] = fields
	}
	return m
}

func assign(m dto.Mapping, columns []string, sectionKey, field, column string) error {
	s, ok := section(sectionKey)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSection, sectionKey)
	}
	if !hasField(s, field) {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, sectionKey, field)
	}
	if column == Ignore {
		column = ""
	}
	if column != "" && !containsColumn(columns, column) {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	m[sectionKey][field] = column
	return nil
}

func containsColumn(columns []string, column string) bool {
	for _, c := range columns {
		if c == column {
			return true
		}
	}
	return false
}

func accepted(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range acceptedExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
