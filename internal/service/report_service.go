package service

import (
	"bytes"

	"go-pos-ledger/internal/report"
	"go-pos-ledger/internal/repository"
)

type ReportService interface {
	SalesReport(period string) report.SalesReport
	LoansReport() report.LoansReport
	PaymentsReport(startDate, endDate string) (report.PaymentsReport, error)
	UsersReport() report.UsersReport
	Export(kind string, q ReportQuery) ([]byte, error)
}

// ReportQuery holds the optional report filters
type ReportQuery struct {
	Period    string `query:"period"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

type reportService struct {
	store *repository.Store
}

// NewReportService reads across every table of the store; it never writes
func NewReportService(store *repository.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) SalesReport(period string) report.SalesReport {
	return report.Sales(s.store.Sales.FindAll(), report.ParsePeriod(period))
}

func (s *reportService) LoansReport() report.LoansReport {
	return report.Loans(s.store.Loans.FindAll())
}

func (s *reportService) PaymentsReport(startDate, endDate string) (report.PaymentsReport, error) {
	window, err := report.ParseDateRange(startDate, endDate)
	if err != nil {
		return report.PaymentsReport{}, err
	}
	return report.Payments(s.store.Payments.FindAll(), window), nil
}

func (s *reportService) UsersReport() report.UsersReport {
	return report.Users(s.store.Users.FindAll(), s.store.Payments.FindAll())
}

// Export renders one report, or all four for "all", as an XLSX workbook
func (s *reportService) Export(kind string, q ReportQuery) ([]byte, error) {
	var sheets []report.Sheeter
	if kind == "all" {
		payments, err := s.PaymentsReport(q.StartDate, q.EndDate)
		if err != nil {
			return nil, err
		}
		sheets = []report.Sheeter{s.SalesReport(q.Period), s.LoansReport(), payments, s.UsersReport()}
	} else {
		k, err := report.ParseKind(kind)
		if err != nil {
			return nil, err
		}
		switch k {
		case report.KindSales:
			sheets = append(sheets, s.SalesReport(q.Period))
		case report.KindLoans:
			sheets = append(sheets, s.LoansReport())
		case report.KindPayments:
			payments, err := s.PaymentsReport(q.StartDate, q.EndDate)
			if err != nil {
				return nil, err
			}
			sheets = append(sheets, payments)
		case report.KindUsers:
			sheets = append(sheets, s.UsersReport())
		}
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, sheets...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
