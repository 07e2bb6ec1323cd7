package dto

import "github.com/shopspring/decimal"

// SupplierResponse proveedor del catálogo tal como lo consume el secuenciador.
type SupplierResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Plate            string          `json:"plate"`
	Quota            int             `json:"quota"`
	QuotaWeight      decimal.Decimal `json:"quota_weight"`
	DefaultUnitLabel string          `json:"default_unit_label"`
	DefaultWeight    decimal.Decimal `json:"default_weight"`
}

// ProgressResponse avance de una entrega según el almacén (fuente de verdad).
type ProgressResponse struct {
	SupplierID int64 `json:"supplier_id"`
	Saved      int   `json:"saved"`
	Quota      int   `json:"quota"`
	Remaining  int   `json:"remaining"`
	Complete   bool  `json:"complete"`
}
