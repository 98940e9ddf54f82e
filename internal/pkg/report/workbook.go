// internal/pkg/report/workbook.go
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/tealeg/xlsx/v3"

	"github.com/avdeev/autodealer-be/internal/core/domain"
)

// GenerateStockWorkbook renders warehouse entries into an xlsx workbook.
// Used by both the synchronous export endpoint and the background worker.
func GenerateStockWorkbook(entries []domain.WarehouseEntryWithPart) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Stock")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headers := []string{
		"Article", "Part Name", "Quantity", "Min Level", "Max Level",
		"Location", "Low Stock", "Updated At",
	}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for i := range entries {
		e := &entries[i]
		row := sheet.AddRow()
		for _, value := range []string{
			e.PartArticle,
			e.PartName,
			strconv.Itoa(int(e.Quantity)),
			strconv.Itoa(int(e.MinStockLevel)),
			strconv.Itoa(int(e.MaxStockLevel)),
			e.Location,
			yesNo(e.IsLowStock()),
			e.UpdatedAt.Format("2006-01-02 15:04:05"),
		} {
			row.AddCell().Value = value
		}
	}

	// Column indexes are 1-based in xlsx/v3.
	for i := 1; i <= len(headers); i++ {
		sheet.SetColWidth(i, i, 15)
	}

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write Excel file to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
