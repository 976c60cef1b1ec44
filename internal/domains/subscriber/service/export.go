package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"trendwatch-backend/internal/domains/subscriber/model"
)

// exportHeaders is shared by both export formats so column order
// never drifts between them
var exportHeaders = []string{"Email", "Subscribed Date", "Status", "Source"}

func (s *subscriberService) ExportCSV(ctx context.Context, q model.ListSubscribersQuery) ([]byte, error) {
	subs, err := s.List(ctx, q)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, sub := range subs {
		record := []string{
			sub.Email,
			sub.SubscribedAt.Format("2006-01-02"),
			string(sub.Status),
			sub.Source,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *subscriberService) ExportExcel(ctx context.Context, q model.ListSubscribersQuery) (*excelize.File, error) {
	subs, err := s.List(ctx, q)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheetName := "Subscribers"
	f.SetSheetName("Sheet1", sheetName)

	// Row 1: header
	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "D1", headerStyle)
	}

	// Data rows start at row 2
	for i, sub := range subs {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		f.SetCellValue(sheetName, cell(1), sub.Email)
		f.SetCellValue(sheetName, cell(2), sub.SubscribedAt.Format("2006-01-02"))
		f.SetCellValue(sheetName, cell(3), string(sub.Status))
		f.SetCellValue(sheetName, cell(4), sub.Source)
	}

	return f, nil
}
