package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/novalearn/student-portal/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportMarks builds an XLSX workbook with one row per recorded mark,
// newest first, matching the admin console ordering.
func (s *exportService) ExportMarks(ctx context.Context) ([]byte, error) {
	marks, err := s.repo.Mark().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load marks: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Marks"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Index Number", "Student", "Paper", "Score", "Date Recorded"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, mark := range marks {
		values := []interface{}{
			mark.User.IndexNumber,
			mark.User.Name,
			mark.PaperName,
			mark.Score,
			time.Time(mark.DateRecorded).Format("2006-01-02"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write mark row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	s.logger.Info("marks exported", "rows", len(marks))
	return buf.Bytes(), nil
}
