// Package report derives read-only summaries from the entity stores.
// Every function here is pure: it never mutates its inputs.
package report

import (
	"fmt"
	"slices"

	"go-pos-ledger/internal/model"

	"github.com/shopspring/decimal"
)

const topProducts = 5

type SalesReport struct {
	Summary         SalesSummary     `json:"summary"`
	SalesByPeriod   []PeriodBucket   `json:"salesByPeriod"`
	PopularProducts []PopularProduct `json:"popularProducts"`
	PaymentMethods  MethodCounts     `json:"paymentMethods"`
}

type SalesSummary struct {
	TotalSales       int             `json:"totalSales"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalItems       int             `json:"totalItems"`
	AverageSaleValue decimal.Decimal `json:"averageSaleValue"`
}

type PeriodBucket struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

type PopularProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type MethodCounts struct {
	Cash  int `json:"cash"`
	Card  int `json:"card"`
	Other int `json:"other"`
}

func Sales(sales []model.Sale, period Period) SalesReport {
	rep := SalesReport{
		Summary: SalesSummary{
			TotalSales:       len(sales),
			TotalRevenue:     decimal.Zero,
			AverageSaleValue: decimal.Zero,
		},
		SalesByPeriod:   []PeriodBucket{},
		PopularProducts: []PopularProduct{},
	}

	bucketIdx := map[string]int{}
	productIdx := map[string]int{}

	for _, sale := range sales {
		rep.Summary.TotalRevenue = rep.Summary.TotalRevenue.Add(sale.Total)

		for _, item := range sale.Items {
			rep.Summary.TotalItems += item.Quantity
			if i, ok := productIdx[item.Name]; ok {
				rep.PopularProducts[i].Quantity += item.Quantity
			} else {
				productIdx[item.Name] = len(rep.PopularProducts)
				rep.PopularProducts = append(rep.PopularProducts, PopularProduct{Name: item.Name, Quantity: item.Quantity})
			}
		}

		key := period.Key(sale.Timestamp)
		if i, ok := bucketIdx[key]; ok {
			rep.SalesByPeriod[i].Amount = rep.SalesByPeriod[i].Amount.Add(sale.Total)
			rep.SalesByPeriod[i].Count++
		} else {
			bucketIdx[key] = len(rep.SalesByPeriod)
			rep.SalesByPeriod = append(rep.SalesByPeriod, PeriodBucket{Period: key, Amount: sale.Total, Count: 1})
		}

		switch sale.PaymentMethod {
		case model.MethodCash:
			rep.PaymentMethods.Cash++
		case model.MethodCard:
			rep.PaymentMethods.Card++
		default:
			rep.PaymentMethods.Other++
		}
	}

	slices.SortStableFunc(rep.PopularProducts, func(a, b PopularProduct) int {
		return b.Quantity - a.Quantity
	})
	if len(rep.PopularProducts) > topProducts {
		rep.PopularProducts = rep.PopularProducts[:topProducts]
	}

	if len(sales) > 0 {
		rep.Summary.AverageSaleValue = rep.Summary.TotalRevenue.Div(decimal.NewFromInt(int64(len(sales))))
	}
	return rep
}

type LoansReport struct {
	Summary        LoansSummary  `json:"summary"`
	LoansByStatus  []StatusCount `json:"loansByStatus"`
	ActiveLoans    Share         `json:"activeLoans"`
	OverdueLoans   Share         `json:"overdueLoans"`
	CompletedLoans Share         `json:"completedLoans"`
}

type LoansSummary struct {
	TotalLoans        int             `json:"totalLoans"`
	TotalLoanAmount   decimal.Decimal `json:"totalLoanAmount"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount"`
	RepaymentRate     string          `json:"repaymentRate"`
}

type StatusCount struct {
	Status model.LoanStatus `json:"status"`
	Count  int              `json:"count"`
}

type Share struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

func Loans(loans []model.Loan) LoansReport {
	counts := map[model.LoanStatus]int{}
	total := decimal.Zero
	outstanding := decimal.Zero
	expected, made := 0, 0

	for _, l := range loans {
		counts[l.Status]++
		total = total.Add(l.Amount)
		outstanding = outstanding.Add(l.Outstanding())
		expected += l.TotalPayments
		made += l.PaymentsMade
	}

	rate := 0.0
	if expected > 0 {
		rate = float64(made) / float64(expected) * 100
	}

	rep := LoansReport{
		Summary: LoansSummary{
			TotalLoans:        len(loans),
			TotalLoanAmount:   total,
			OutstandingAmount: outstanding,
			RepaymentRate:     fmt.Sprintf("%.2f%%", rate),
		},
		ActiveLoans:    share(counts[model.LoanActive], len(loans)),
		OverdueLoans:   share(counts[model.LoanOverdue], len(loans)),
		CompletedLoans: share(counts[model.LoanCompleted], len(loans)),
	}
	for _, status := range model.LoanStatuses {
		rep.LoansByStatus = append(rep.LoansByStatus, StatusCount{Status: status, Count: counts[status]})
	}
	return rep
}

type PaymentsReport struct {
	Summary          PaymentsSummary   `json:"summary"`
	PaymentsByMethod []MethodBreakdown `json:"paymentsByMethod"`
	PaymentsByType   []TypeBreakdown   `json:"paymentsByType"`
}

type PaymentsSummary struct {
	TotalPayments  int             `json:"totalPayments"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	AveragePayment decimal.Decimal `json:"averagePayment"`
}

type MethodBreakdown struct {
	Method     string          `json:"method"`
	Count      int             `json:"count"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

type TypeBreakdown struct {
	Type   model.RelatedKind `json:"type"`
	Count  int               `json:"count"`
	Amount decimal.Decimal   `json:"amount"`
}

// Payments summarises payments, restricted to window when it is non-nil
func Payments(payments []model.Payment, window *DateRange) PaymentsReport {
	if window != nil {
		payments = slices.DeleteFunc(slices.Clone(payments), func(p model.Payment) bool {
			return !p.InRange(window.Start, window.End)
		})
	}

	rep := PaymentsReport{
		Summary: PaymentsSummary{
			TotalPayments:  len(payments),
			TotalAmount:    decimal.Zero,
			AveragePayment: decimal.Zero,
		},
		PaymentsByMethod: []MethodBreakdown{},
		PaymentsByType: []TypeBreakdown{
			{Type: model.RelatedLoan, Amount: decimal.Zero},
			{Type: model.RelatedSale, Amount: decimal.Zero},
		},
	}

	methodIdx := map[string]int{}
	for _, p := range payments {
		rep.Summary.TotalAmount = rep.Summary.TotalAmount.Add(p.Amount)

		if i, ok := methodIdx[p.Method]; ok {
			rep.PaymentsByMethod[i].Count++
			rep.PaymentsByMethod[i].Amount = rep.PaymentsByMethod[i].Amount.Add(p.Amount)
		} else {
			methodIdx[p.Method] = len(rep.PaymentsByMethod)
			rep.PaymentsByMethod = append(rep.PaymentsByMethod, MethodBreakdown{Method: p.Method, Count: 1, Amount: p.Amount})
		}

		for i := range rep.PaymentsByType {
			if rep.PaymentsByType[i].Type == p.RelatedTo.Type {
				rep.PaymentsByType[i].Count++
				rep.PaymentsByType[i].Amount = rep.PaymentsByType[i].Amount.Add(p.Amount)
			}
		}
	}

	for i := range rep.PaymentsByMethod {
		rep.PaymentsByMethod[i].Percentage = percent(rep.PaymentsByMethod[i].Count, len(payments))
	}
	if len(payments) > 0 {
		rep.Summary.AveragePayment = rep.Summary.TotalAmount.Div(decimal.NewFromInt(int64(len(payments))))
	}
	return rep
}

type UsersReport struct {
	Summary          UsersSummary   `json:"summary"`
	RoleDistribution []RoleShare    `json:"roleDistribution"`
	UserActivity     []UserActivity `json:"userActivity"`
}

type UsersSummary struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	InactiveUsers int `json:"inactiveUsers"`
}

type RoleShare struct {
	Role       string  `json:"role"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type UserActivity struct {
	ID                int              `json:"id"`
	Name              string           `json:"name"`
	Role              string           `json:"role"`
	Status            model.UserStatus `json:"status"`
	LastActive        string           `json:"lastActive"`
	PaymentsProcessed int              `json:"paymentsProcessed"`
	AmountProcessed   decimal.Decimal  `json:"amountProcessed"`
}

func Users(users []model.User, payments []model.Payment) UsersReport {
	rep := UsersReport{
		Summary:          UsersSummary{TotalUsers: len(users)},
		RoleDistribution: []RoleShare{},
		UserActivity:     make([]UserActivity, 0, len(users)),
	}

	roleIdx := map[string]int{}
	for _, u := range users {
		switch u.Status {
		case model.UserActive:
			rep.Summary.ActiveUsers++
		case model.UserInactive:
			rep.Summary.InactiveUsers++
		}

		if i, ok := roleIdx[u.Role]; ok {
			rep.RoleDistribution[i].Count++
		} else {
			roleIdx[u.Role] = len(rep.RoleDistribution)
			rep.RoleDistribution = append(rep.RoleDistribution, RoleShare{Role: u.Role, Count: 1})
		}

		activity := UserActivity{
			ID:              u.ID,
			Name:            u.Name,
			Role:            u.Role,
			Status:          u.Status,
			LastActive:      u.LastActive,
			AmountProcessed: decimal.Zero,
		}
		for _, p := range payments {
			if p.ReceivedBy == u.ID {
				activity.PaymentsProcessed++
				activity.AmountProcessed = activity.AmountProcessed.Add(p.Amount)
			}
		}
		rep.UserActivity = append(rep.UserActivity, activity)
	}

	for i := range rep.RoleDistribution {
		rep.RoleDistribution[i].Percentage = percent(rep.RoleDistribution[i].Count, len(users))
	}
	slices.SortStableFunc(rep.UserActivity, func(a, b UserActivity) int {
		return b.PaymentsProcessed - a.PaymentsProcessed
	})
	return rep
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func share(count, total int) Share {
	return Share{Count: count, Percentage: percent(count, total)}
}
