package report

import (
	"io"

	"go-pos-ledger/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// XLSXContentType is the media type of exported workbooks
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Kind string

const (
	KindSales    Kind = "sales"
	KindLoans    Kind = "loans"
	KindPayments Kind = "payments"
	KindUsers    Kind = "users"
)

var ErrUnknownReport = apperror.NotFound("Report not found")

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindSales, KindLoans, KindPayments, KindUsers:
		return k, nil
	}
	return "", ErrUnknownReport
}

// Section is one titled table inside a sheet
type Section struct {
	Title  string
	Header []string
	Rows   [][]any
}

// Sheet is the spreadsheet rendering of a report
type Sheet struct {
	Name     string
	Sections []Section
}

type Sheeter interface {
	Sheet() Sheet
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func (r SalesReport) Sheet() Sheet {
	s := r.Summary
	periods := Section{Title: "Sales by period", Header: []string{"Period", "Amount", "Count"}}
	for _, b := range r.SalesByPeriod {
		periods.Rows = append(periods.Rows, []any{b.Period, money(b.Amount), b.Count})
	}
	popular := Section{Title: "Popular products", Header: []string{"Product", "Quantity"}}
	for _, p := range r.PopularProducts {
		popular.Rows = append(popular.Rows, []any{p.Name, p.Quantity})
	}
	return Sheet{Name: "Sales", Sections: []Section{
		{Title: "Summary", Header: []string{"Total sales", "Total revenue", "Total items", "Average sale"},
			Rows: [][]any{{s.TotalSales, money(s.TotalRevenue), s.TotalItems, money(s.AverageSaleValue)}}},
		periods,
		popular,
		{Title: "Payment methods", Header: []string{"Cash", "Card", "Other"},
			Rows: [][]any{{r.PaymentMethods.Cash, r.PaymentMethods.Card, r.PaymentMethods.Other}}},
	}}
}

func (r LoansReport) Sheet() Sheet {
	s := r.Summary
	status := Section{Title: "Loans by status", Header: []string{"Status", "Count"}}
	for _, row := range r.LoansByStatus {
		status.Rows = append(status.Rows, []any{string(row.Status), row.Count})
	}
	return Sheet{Name: "Loans", Sections: []Section{
		{Title: "Summary", Header: []string{"Total loans", "Total amount", "Outstanding", "Repayment rate"},
			Rows: [][]any{{s.TotalLoans, money(s.TotalLoanAmount), money(s.OutstandingAmount), s.RepaymentRate}}},
		status,
	}}
}

func (r PaymentsReport) Sheet() Sheet {
	s := r.Summary
	methods := Section{Title: "Payments by method", Header: []string{"Method", "Count", "Amount", "Percentage"}}
	for _, m := range r.PaymentsByMethod {
		methods.Rows = append(methods.Rows, []any{m.Method, m.Count, money(m.Amount), m.Percentage})
	}
	types := Section{Title: "Payments by type", Header: []string{"Type", "Count", "Amount"}}
	for _, t := range r.PaymentsByType {
		types.Rows = append(types.Rows, []any{string(t.Type), t.Count, money(t.Amount)})
	}
	return Sheet{Name: "Payments", Sections: []Section{
		{Title: "Summary", Header: []string{"Total payments", "Total amount", "Average payment"},
			Rows: [][]any{{s.TotalPayments, money(s.TotalAmount), money(s.AveragePayment)}}},
		methods,
		types,
	}}
}

func (r UsersReport) Sheet() Sheet {
	s := r.Summary
	roles := Section{Title: "Role distribution", Header: []string{"Role", "Count", "Percentage"}}
	for _, role := range r.RoleDistribution {
		roles.Rows = append(roles.Rows, []any{role.Role, role.Count, role.Percentage})
	}
	activity := Section{Title: "User activity", Header: []string{"ID", "Name", "Role", "Status", "Last active", "Payments processed", "Amount processed"}}
	for _, a := range r.UserActivity {
		activity.Rows = append(activity.Rows, []any{a.ID, a.Name, a.Role, string(a.Status), a.LastActive, a.PaymentsProcessed, money(a.AmountProcessed)})
	}
	return Sheet{Name: "Users", Sections: []Section{
		{Title: "Summary", Header: []string{"Total users", "Active", "Inactive"},
			Rows: [][]any{{s.TotalUsers, s.ActiveUsers, s.InactiveUsers}}},
		roles,
		activity,
	}}
}

// Workbook renders one sheet per report, in the order given
func Workbook(reports ...Sheeter) (*excelize.File, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	for i, rep := range reports {
		sheet := rep.Sheet()
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSheet(f, sheet, bold); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	row := 1
	for _, sec := range sheet.Sections {
		title, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(sheet.Name, title, sec.Title); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet.Name, title, title, headerStyle); err != nil {
			return err
		}
		row++

		header, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet.Name, header, &sec.Header); err != nil {
			return err
		}
		last, _ := excelize.CoordinatesToCellName(len(sec.Header), row)
		if err := f.SetCellStyle(sheet.Name, header, last, headerStyle); err != nil {
			return err
		}
		row++

		for _, values := range sec.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				return err
			}
			row++
		}
		row++
	}
	return nil
}

// WriteXLSX renders the reports and streams the workbook to w
func WriteXLSX(w io.Writer, reports ...Sheeter) error {
	f, err := Workbook(reports...)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}
