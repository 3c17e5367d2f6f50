package dto

import "github.com/shopspring/decimal"

// DashboardResponse vista agregada del inventario y del libro de un tenant.
type DashboardResponse struct {
	Items             []ItemResponse             `json:"items"`
	Categories        []string                   `json:"categories"`
	CategoryTotals    map[string]decimal.Decimal `json:"category_totals"`
	NetWorth          decimal.Decimal            `json:"net_worth"`
	NetWorthFormatted string                     `json:"net_worth_formatted"`
	LowStockCount     int                        `json:"low_stock_count"`
	LowStockItems     []ItemResponse             `json:"low_stock_items"`
	Ledger            LedgerSummary              `json:"ledger"`
}
