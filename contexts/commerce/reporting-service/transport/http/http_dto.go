package httptransport

import "github.com/shopspring/decimal"

// ErrorResponse is the module's wire error shape.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SalesReportResponse struct {
	TotalSales decimal.Decimal `json:"total_sales"`
	OrderCount int64           `json:"order_count"`
}

type InventoryValuationResponse struct {
	TotalValuation decimal.Decimal `json:"total_valuation"`
}
