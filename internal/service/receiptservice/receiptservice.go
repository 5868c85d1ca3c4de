package receiptservice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/acordos/internal/domain"
	"github.com/GlebRadaev/acordos/internal/dto"
	"github.com/GlebRadaev/acordos/pkg/format"
)

var (
	ErrNothingToExport = errors.New("no receipts to export")
	ErrUnknownPreset   = errors.New("period must be day, week, month, year or custom")
	ErrRangeRequired   = errors.New("custom period needs start and end dates")
	ErrInvalidRange    = errors.New("start date is after end date")
	ErrUnknownFilter   = errors.New("unknown beneficiary or receipt type")
)

type Repo interface {
	Report(ctx context.Context, filter dto.ReceiptFilterDTO) (*domain.ReceiptReport, error)
	PDF(ctx context.Context, filter dto.ReceiptFilterDTO) ([]byte, error)
}

type Exported struct {
	CSV string
	PDF string
}

type Service struct {
	receiptRepo Repo
	now         func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		receiptRepo: repo,
		now:         time.Now,
	}
}

// Normalize validates the filter and rewrites custom dates as YYYY-MM-DD.
func Normalize(filter dto.ReceiptFilterDTO) (dto.ReceiptFilterDTO, error) {
	switch filter.Preset {
	case "":
		filter.Preset = "month"
	case "day", "week", "month", "year":
	case dto.PresetCustom:
		if filter.StartDate == "" || filter.EndDate == "" {
			return filter, ErrRangeRequired
		}
		start, err := format.ParseDate(filter.StartDate)
		if err != nil {
			return filter, fmt.Errorf("start date: %w", err)
		}
		end, err := format.ParseDate(filter.EndDate)
		if err != nil {
			return filter, fmt.Errorf("end date: %w", err)
		}
		if start.After(end) {
			return filter, ErrInvalidRange
		}
		filter.StartDate, filter.EndDate = start.Format(format.ISODate), end.Format(format.ISODate)
	default:
		return filter, ErrUnknownPreset
	}

	switch filter.Beneficiario {
	case "", "all", domain.Beneficiary31, domain.Beneficiary14:
	default:
		return filter, ErrUnknownFilter
	}
	switch filter.Type {
	case "", "all", "parcelas", "alvara", "entrada":
	default:
		return filter, ErrUnknownFilter
	}
	return filter, nil
}

func (s *Service) Load(ctx context.Context, filter dto.ReceiptFilterDTO) (*domain.ReceiptReport, error) {
	filter, err := Normalize(filter)
	if err != nil {
		return nil, err
	}
	return s.receiptRepo.Report(ctx, filter)
}

// ExportCSV writes the loaded rows into dir; the backend is not involved.
func (s *Service) ExportCSV(report *domain.ReceiptReport, dir string) (string, error) {
	content, err := CSV(report)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, CSVFilename(s.now()))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		zap.L().Error("can't write csv", zap.String("path", path), zap.Error(err))
		return "", err
	}
	return path, nil
}

// ExportPDF downloads the report rendered by the backend into dir.
func (s *Service) ExportPDF(ctx context.Context, filter dto.ReceiptFilterDTO, dir string) (string, error) {
	filter, err := Normalize(filter)
	if err != nil {
		return "", err
	}
	content, err := s.receiptRepo.PDF(ctx, filter)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, PDFFilename(s.now()))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		zap.L().Error("can't write pdf", zap.String("path", path), zap.Error(err))
		return "", err
	}
	return path, nil
}

// ExportAll writes the CSV and downloads the PDF at the same time.
func (s *Service) ExportAll(ctx context.Context, filter dto.ReceiptFilterDTO, report *domain.ReceiptReport, dir string) (Exported, error) {
	var out Exported
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		path, err := s.ExportCSV(report, dir)
		if err != nil {
			return fmt.Errorf("csv: %w", err)
		}
		out.CSV = path
		return nil
	})
	g.Go(func() error {
		path, err := s.ExportPDF(gctx, filter, dir)
		if err != nil {
			return fmt.Errorf("pdf: %w", err)
		}
		out.PDF = path
		return nil
	})

	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, nil
}
