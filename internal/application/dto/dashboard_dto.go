package dto

import "github.com/shopspring/decimal"

// DashboardResponse indicadores principales del CRM.
type DashboardResponse struct {
	PipelineValue decimal.Decimal `json:"pipeline_value"`
	ActiveDeals   int             `json:"active_deals"`
	TotalContacts int             `json:"total_contacts"`
	WonDeals      int             `json:"won_deals"`
	RecentDeals   []DealResponse  `json:"recent_deals"` // últimos 5 en orden de registro
}
