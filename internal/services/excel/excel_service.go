package excel

import (
	"bytes"
	"fmt"
	"time"

	"github.com/onegreenvn/repurposer-ui/internal/models"
	"github.com/xuri/excelize/v2"
)

const clipSheetName = "Clips"

var clipColumns = []string{"index", "link", "caption"}

// Service builds spreadsheets from clip lists
type Service struct {
	now func() time.Time
}

// NewExcelService creates a new Excel service instance
func NewExcelService() *Service {
	return &Service{now: time.Now}
}

// ExportResult is a finished workbook ready to be sent
type ExportResult struct {
	Filename string
	Rows     int
	Data     *bytes.Buffer
}

// ExportClips writes one row per clip with its resolved link and caption
func (s *Service) ExportClips(clips []models.Clip) (*ExportResult, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, clipSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	for i, col := range clipColumns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		if err := f.SetCellValue(clipSheetName, cell, col); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(clipSheetName, "A1", fmt.Sprintf("%s1", columnToLetter(len(clipColumns))), headerStyle)
	}

	f.SetColWidth(clipSheetName, "A", "A", 8)
	f.SetColWidth(clipSheetName, "B", "B", 50)
	f.SetColWidth(clipSheetName, "C", "C", 80)

	for i, clip := range clips {
		row := i + 2
		values := []interface{}{i + 1, clip.Link(), clip.CaptionText()}
		for j, v := range values {
			cell := fmt.Sprintf("%s%d", columnToLetter(j+1), row)
			if err := f.SetCellValue(clipSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return &ExportResult{
		Filename: fmt.Sprintf("clips_%d.xlsx", s.now().Unix()),
		Rows:     len(clips),
		Data:     buf,
	}, nil
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
