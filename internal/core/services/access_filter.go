package services

import (
	"github.com/dukaan-apps/duka_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RedactSummary strips financial figures from a dashboard summary for roles
// that may not see them. Operational data (sales activity, stock, revenue,
// trend) stays visible; profitability, balances and liabilities are zeroed
// and the smart insight is replaced. Admin and manager summaries pass
// through untouched.
func RedactSummary(summary *domain.DashboardSummary, role domain.StoreRole) *domain.DashboardSummary {
	if summary == nil || role.SeesFinancials() {
		return summary
	}

	redacted := *summary
	redacted.TotalIncomes = decimal.Zero
	redacted.TotalExpenses = decimal.Zero
	redacted.NetProfit = decimal.Zero
	redacted.ProfitMargin = decimal.Zero
	redacted.OutstandingDebts = decimal.Zero
	redacted.Payables = decimal.Zero
	redacted.CashBalance = decimal.Zero
	redacted.AccountBalances = nil
	redacted.Expenses = nil
	redacted.Performance = domain.PerformanceComparison{}
	redacted.SmartInsight = RedactedInsight
	return &redacted
}

// Financial pieces stripped from tab reports. KPI values are zeroed in place
// so the tab keeps its shape; charts and tables are emptied under their key.
var (
	redactedKPITitles = map[string]struct{}{
		"Total Income":         {},
		"Total Expenses":       {},
		"Net Profit":           {},
		"Profit Margin":        {},
		"Outstanding Payables": {},
		"Outstanding":          {},
		"Total Payroll":        {},
	}
	redactedCharts = map[string]struct{}{
		"expenseBreakdown": {},
	}
	redactedTables = map[string]struct{}{
		"accountBalances": {},
		"payrollByUser":   {},
	}
)

// RedactTabReport is RedactSummary for the tab-shaped reports, cached slices
// included. Admin and manager reports pass through untouched.
func RedactTabReport(report *domain.TabReport, role domain.StoreRole) *domain.TabReport {
	if report == nil || role.SeesFinancials() {
		return report
	}

	redacted := *report
	redacted.KPIs = make([]domain.KPI, len(report.KPIs))
	for i, kpi := range report.KPIs {
		if _, sensitive := redactedKPITitles[kpi.Title]; sensitive {
			kpi.Value = decimal.Zero
		}
		redacted.KPIs[i] = kpi
	}

	if report.Charts != nil {
		redacted.Charts = make(map[string]any, len(report.Charts))
		for name, chart := range report.Charts {
			if _, sensitive := redactedCharts[name]; sensitive {
				chart = nil
			}
			redacted.Charts[name] = chart
		}
	}
	if report.Tables != nil {
		redacted.Tables = make(map[string]any, len(report.Tables))
		for name, table := range report.Tables {
			if _, sensitive := redactedTables[name]; sensitive {
				table = nil
			}
			redacted.Tables[name] = table
		}
	}
	return &redacted
}
