// Package export renders reports as Excel workbooks.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/stats"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names
const (
	SheetPayroll  = "Payroll"
	SheetProducts = "Products"
	SheetLowStock = "Low Stock"
)

// ContentType of the workbooks produced by this package.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	payrollHeader = []any{"Employee ID", "Employee", "Department ID", "Month", "Allowances", "Deductions", "Net Pay", "Status", "Paid At"}
	productHeader = []any{"SKU", "Name", "Category", "Supplier ID", "Unit", "Unit Price", "Cost Price", "Current Stock", "Min Stock Level", "Stock Value", "Status"}
)

// Payroll writes one row per salary record of month followed by a totals row.
func Payroll(month string, records []*model.SalaryRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetPayroll); err != nil {
		return nil, err
	}
	w := &sheetWriter{f: f, sheet: SheetPayroll}
	if err := w.header(payrollHeader); err != nil {
		return nil, err
	}

	allowances, deductions, net := decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range records {
		if r.Month != month {
			continue
		}
		a, d, n := stats.SumPayItems(r.Allowances), stats.SumPayItems(r.Deductions), stats.NetPay(r)
		allowances, deductions, net = allowances.Add(a), deductions.Add(d), net.Add(n)

		paidAt := ""
		if r.PaidAt != nil {
			paidAt = r.PaidAt.Format("2006-01-02")
		}
		w.row([]any{r.EmployeeID, r.EmployeeName, r.DepartmentID, r.Month, money(a), money(d), money(n), r.StatusOrDefault(), paidAt})
	}
	w.row([]any{"Total", "", "", month, money(allowances), money(deductions), money(net)})

	return w.finish(f)
}

// Inventory writes every product to one sheet and the products at or below their
// minimum stock level to a second one.
func Inventory(products []*model.Product) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetProducts); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(SheetLowStock); err != nil {
		return nil, err
	}

	all := &sheetWriter{f: f, sheet: SheetProducts}
	if err := all.header(productHeader); err != nil {
		return nil, err
	}
	for _, p := range products {
		all.row(productRow(p))
	}
	if all.err != nil {
		return nil, all.err
	}

	low := &sheetWriter{f: f, sheet: SheetLowStock}
	if err := low.header(productHeader); err != nil {
		return nil, err
	}
	for _, p := range stats.LowStock(products) {
		low.row(productRow(p))
	}

	return low.finish(f)
}

func productRow(p *model.Product) []any {
	return []any{p.SKU, p.Name, p.CategoryOrDefault(), p.SupplierID, p.Unit, money(p.UnitPrice), money(p.CostPrice), p.CurrentStock, p.MinStockLevel, money(p.StockValue()), p.Status}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// FileName is the download name of a report, e.g. payroll-2026-10.xlsx.
func FileName(parts ...string) string {
	return strings.Join(parts, "-") + ".xlsx"
}

// sheetWriter appends rows to one sheet and keeps the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	next  int
	err   error
}

func (w *sheetWriter) header(values []any) error {
	w.next = 1
	w.row(values)
	if w.err != nil {
		return w.err
	}

	style, err := w.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), 1)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, "A1", last, style); err != nil {
		return err
	}
	return w.f.SetPanes(w.sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func (w *sheetWriter) row(values []any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, w.next)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(w.sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("write row %d of %s: %w", w.next, w.sheet, err)
		return
	}
	w.next++
}

func (w *sheetWriter) finish(f *excelize.File) (*bytes.Buffer, error) {
	if w.err != nil {
		return nil, w.err
	}
	f.SetActiveSheet(0)
	return f.WriteToBuffer()
}
