package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
)

// AppendRecordRequest entrada para agregar un registro al log.
// SupplierID es puntero para distinguir un proveedor ausente (null) del ID 0.
type AppendRecordRequest struct {
	SupplierID     *int64                `json:"supplier_id"`
	SequenceLabel  string                `json:"sequence_label"`
	Weight         decimal.Decimal       `json:"weight"`
	Classification entity.Classification `json:"classification"`
	Attributes     entity.Attributes     `json:"attributes"`
	Defects        entity.Defects        `json:"defects"`
}

// AppendRecordResponse identidad durable asignada por el almacén.
type AppendRecordResponse struct {
	ID int64 `json:"id"`
}

// RecordResponse salida de un registro guardado.
type RecordResponse struct {
	ID             int64                 `json:"id"`
	SupplierID     int64                 `json:"supplier_id"`
	SequenceLabel  string                `json:"sequence_label"`
	Weight         decimal.Decimal       `json:"weight"`
	Classification entity.Classification `json:"classification"`
	Attributes     entity.Attributes     `json:"attributes"`
	Defects        entity.Defects        `json:"defects"`
	CreatedAt      time.Time             `json:"created_at"`
}

// RecordListResponse listado crudo y paginado de registros de un proveedor.
type RecordListResponse struct {
	Items []RecordResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
