// Package report renders a month's income and spending into a spreadsheet.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yunz06/quan-li-chi-tieu/internal/common"
	"github.com/yunz06/quan-li-chi-tieu/internal/model"
	"github.com/yunz06/quan-li-chi-tieu/internal/service"
)

// Report palette.
const (
	titleFill  = "7A5C3E"
	headerFill = "C89F6D"
)

// Exporter writes monthly expense reports as .xlsx workbooks.
type Exporter struct {
	store service.Storage
	dir   string
}

// NewExporter creates an exporter that writes into dir.
func NewExporter(store service.Storage, dir string) *Exporter {
	return &Exporter{
		store: store,
		dir:   dir,
	}
}

// Export writes the report for a MM-YYYY month and returns the path of the
// written file. An empty month exports the current calendar month. A month
// with neither income nor expenses fails with common.ErrNoData, which is
// distinct from an I/O failure.
func (e *Exporter) Export(ctx context.Context, month string) (string, error) {
	month = strings.TrimSpace(month)
	if month == "" {
		month = model.CurrentMonth()
	}
	if _, err := model.ParseMonth(month); err != nil {
		return "", err
	}

	income, err := e.store.GetIncomeForMonth(ctx, month)
	if err != nil {
		return "", err
	}
	expenses, err := e.store.GetExpensesForMonth(ctx, month)
	if err != nil {
		return "", err
	}

	if income == 0 && len(expenses) == 0 {
		return "", fmt.Errorf("%w: %s", common.ErrNoData, month)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := "Month " + month
	f.SetSheetName("Sheet1", sheet)

	if err := e.writeSheet(f, sheet, month, income, expenses); err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	path := uniquePath(e.dir, fmt.Sprintf("chi-tieu-%s.xlsx", month))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	slog.Info("exported report", "month", month, "path", path)
	return path, nil
}

func (e *Exporter) writeSheet(f *excelize.File, sheet, month string, income float64, expenses []model.ExpenseDetail) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{titleFill}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: titleFill, Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create bold style: %w", err)
	}

	amountStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "right"},
		NumFmt:    4, // #,##0.00
	})
	if err != nil {
		return fmt.Errorf("failed to create amount style: %w", err)
	}

	// Title
	if err := f.MergeCell(sheet, "A1", "E1"); err != nil {
		return fmt.Errorf("failed to merge title cells: %w", err)
	}
	f.SetCellValue(sheet, "A1", "EXPENSE REPORT "+month)
	f.SetCellStyle(sheet, "A1", "E1", titleStyle)
	f.SetRowHeight(sheet, 1, 28)

	// Income
	f.SetCellValue(sheet, "A3", "Income:")
	f.SetCellStyle(sheet, "A3", "A3", boldStyle)
	f.SetCellValue(sheet, "B3", income)
	f.SetCellStyle(sheet, "B3", "B3", amountStyle)

	// Header
	headers := []string{"#", "Category", "Description", "Amount", "Date"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c5", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}
	f.SetCellStyle(sheet, "A5", "E5", headerStyle)

	// Expense rows, newest first as delivered by storage.
	var totalSpent float64
	row := 6
	for i, expense := range expenses {
		totalSpent += expense.Amount
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), expense.CategoryName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), expense.Description)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), expense.Amount)
		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), amountStyle)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), expense.Date)
		row++
	}

	// Footer
	row++
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "TOTAL SPENT")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), totalSpent)
	f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), boldStyle)
	row++
	f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "BALANCE")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row), income-totalSpent)
	f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("D%d", row), boldStyle)

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 35)
	f.SetColWidth(sheet, "D", "D", 18)
	f.SetColWidth(sheet, "E", "E", 14)

	return nil
}

// uniquePath appends (1), (2), ... before the extension until the name does
// not collide with an existing report for the same month.
func uniquePath(dir, base string) string {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	path := filepath.Join(dir, base)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, counter, ext))
	}
}
