package dto

import "github.com/shopspring/decimal"

// CreateDealRequest alta de negocio. Stage por defecto: New.
type CreateDealRequest struct {
	Name      string          `json:"name"`
	Company   string          `json:"company"`
	Value     decimal.Decimal `json:"value"`
	Stage     string          `json:"stage"`
	CloseDate string          `json:"close_date"` // 2006-01-02
}

// UpdateDealRequest edición de negocio.
type UpdateDealRequest struct {
	Company   string          `json:"company"`
	Value     decimal.Decimal `json:"value"`
	Stage     string          `json:"stage"`
	CloseDate string          `json:"close_date"`
}

// DealResponse un negocio del pipeline.
type DealResponse struct {
	Name      string          `json:"name"`
	Company   string          `json:"company"`
	Value     decimal.Decimal `json:"value"`
	ValueText string          `json:"value_text"` // formateado: $25.000
	Stage     string          `json:"stage"`
	CloseDate string          `json:"close_date"`
}
