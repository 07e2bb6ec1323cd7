package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Classification clase de calidad de una unidad.
type Classification string

const (
	ClassificationI  Classification = "I"
	ClassificationII Classification = "II"
)

// Valid indica si la clasificación pertenece al conjunto cerrado.
func (c Classification) Valid() bool {
	return c == ClassificationI || c == ClassificationII
}

// Attributes banderas de estado de la unidad (forma fija).
type Attributes struct {
	LargeEyes bool `json:"large_eyes"`
	Salted    bool `json:"salted"`
	Burnt     bool `json:"burnt"`
	Passed    bool `json:"passed"`
}

// DefaultAttributes valores iniciales de un borrador.
func DefaultAttributes() Attributes {
	return Attributes{LargeEyes: true}
}

// Defects banderas de merma de la unidad (forma fija).
type Defects struct {
	Loss10 bool `json:"loss_10"`
	Loss20 bool `json:"loss_20"`
}

// Record una unidad pesada y guardada. Solo se agrega; nunca se modifica ni se borra.
// SequenceLabel es informativo: la secuencia se deriva del conteo de guardados.
type Record struct {
	ID             int64
	SupplierID     int64
	SequenceLabel  string
	Weight         decimal.Decimal
	Classification Classification
	Attributes     Attributes
	Defects        Defects
	CreatedAt      time.Time
}
