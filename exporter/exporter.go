package exporter

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/ankoehn/ai-content-writer/errors"
	"github.com/ankoehn/ai-content-writer/logger"
	"github.com/ankoehn/ai-content-writer/models"
)

const sheetName = "Content"

var columns = []string{"Campaign", "Content Subject", "Target Audience", "LinkedIn", "X", "Blog"}

// maxColumnWidth caps column widths so long generated texts wrap instead of
// stretching the sheet.
const maxColumnWidth = 50

// ToExcel renders the history snapshot as a single-sheet xlsx workbook:
// one header row plus one row per record, wrapped cells, and row heights
// scaled to the line count. The collection itself is never mutated.
// An empty history is an error; an empty workbook is never produced.
func ToExcel(records []models.ContentRecord) ([]byte, string, error) {
	if len(records) == 0 {
		return nil, "", apperrors.NewExportEmpty()
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", err
	}

	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "top",
			WrapText:   true,
		},
	})
	if err != nil {
		return nil, "", err
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, "", err
		}
	}

	widths := make([]int, len(columns))
	for i, name := range columns {
		widths[i] = len(name)
	}

	for rowIdx, r := range records {
		values := rowValues(r)
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, "", err
			}
			if l := longestLine(v); l > widths[col] {
				widths[col] = l
			}
		}
		// ~15 points per text line
		lines := maxLineCount(values)
		if err := f.SetRowHeight(sheetName, rowIdx+2, float64(lines*15)); err != nil {
			return nil, "", err
		}
	}

	if err := f.SetRowHeight(sheetName, 1, 20); err != nil {
		return nil, "", err
	}

	for col := range columns {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, "", err
		}
		width := widths[col] + 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		if err := f.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return nil, "", err
		}
	}
	if err := f.SetColStyle(sheetName, "A:F", style); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := "content_export_" + time.Now().Format("20060102_150405") + ".xlsx"
	logger.Log.Infof("exported %d content items to %s", len(records), filename)
	return buf.Bytes(), filename, nil
}

func rowValues(r models.ContentRecord) []string {
	return []string{
		r.Campaign,
		r.ContentSubject,
		r.TargetAudience,
		r.LinkedInContent,
		r.XContent,
		r.BlogContent,
	}
}

func longestLine(s string) int {
	max := 0
	for _, line := range strings.Split(s, "\n") {
		if n := len([]rune(line)); n > max {
			max = n
		}
	}
	return max
}

func maxLineCount(values []string) int {
	max := 1
	for _, v := range values {
		if n := strings.Count(v, "\n") + 1; n > max {
			max = n
		}
	}
	return max
}
