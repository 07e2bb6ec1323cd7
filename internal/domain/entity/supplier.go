package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier representa un proveedor con una entrega de Quota unidades esperadas.
// Solo se crea al sembrar el catálogo; no se edita.
type Supplier struct {
	ID               int64
	Name             string
	Plate            string          // placa del vehículo
	Quota            int             // unidades esperadas (> 0)
	QuotaWeight      decimal.Decimal // peso total informativo, no se valida
	DefaultUnitLabel string
	DefaultWeight    decimal.Decimal // peso sugerido para un borrador nuevo
	CreatedAt        time.Time
}
