// Package weighing implementa el controlador de estado de una sesión de pesaje:
// un borrador activo ligado a un proveedor activo, la secuencia visible y el
// predicado de cierre. El estado es explícito y pertenece a quien crea el Sequencer.
package weighing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
	"github.com/jhoicas/Pesaje-api/internal/domain"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	rules "github.com/jhoicas/Pesaje-api/internal/domain/weighing"
)

// Nombres de campo aceptados por UpdateDraftField.
const (
	FieldWeight         = "weight"
	FieldClassification = "classification"
	FieldAcknowledged   = "acknowledged"
	FieldAttributes     = "attributes" // attributes.<nombre>
	FieldDefects        = "defects"    // defects.<nombre>
)

// Draft borrador en edición, todavía no persistido.
type Draft struct {
	Weight         decimal.Decimal
	Classification entity.Classification
	Attributes     entity.Attributes
	Defects        entity.Defects
	Acknowledged   bool
}

func newDraft() Draft {
	return Draft{
		Classification: entity.ClassificationI,
		Attributes:     entity.DefaultAttributes(),
	}
}

// HasWeight indica si el borrador tiene un peso positivo.
func (d Draft) HasWeight() bool {
	return d.Weight.GreaterThan(decimal.Zero)
}

// Sequencer controlador de una sesión de un solo operador. No es seguro para uso
// concurrente: las operaciones de una sesión interactiva ya llegan serializadas.
//
// El conteo local de guardados puede divergir del almacén si otra sesión escribe
// sobre el mismo proveedor; no se reconcilia.
type Sequencer struct {
	store     RecordStore
	suppliers []dto.SupplierResponse
	supplier  *dto.SupplierResponse
	saved     int
	draft     Draft
}

// NewSequencer crea un controlador sin inicializar (sin proveedor activo).
func NewSequencer(store RecordStore) *Sequencer {
	return &Sequencer{store: store, draft: newDraft()}
}

// Load carga el catálogo y activa el primer proveedor con secuencia 1.
// Con catálogo vacío el controlador queda sin inicializar.
func (s *Sequencer) Load(ctx context.Context) error {
	list, err := s.store.ListSuppliers(ctx)
	if err != nil {
		return storeFailure("listar proveedores", err)
	}
	s.suppliers = list
	s.supplier = nil
	s.saved = 0
	if len(list) == 0 {
		return nil
	}
	s.bind(list[0])
	return nil
}

// Suppliers catálogo cargado.
func (s *Sequencer) Suppliers() []dto.SupplierResponse {
	return s.suppliers
}

// Active indica si hay un proveedor activo (estado Active).
func (s *Sequencer) Active() bool { return s.supplier != nil }

// Supplier proveedor activo.
func (s *Sequencer) Supplier() (dto.SupplierResponse, bool) {
	if s.supplier == nil {
		return dto.SupplierResponse{}, false
	}
	return *s.supplier, true
}

// SelectSupplier reinicia la secuencia a 1 para el proveedor indicado. Solo el peso
// se arrastra: si estaba vacío toma el peso por defecto del nuevo proveedor.
func (s *Sequencer) SelectSupplier(id int64) error {
	for _, sup := range s.suppliers {
		if sup.ID == id {
			s.bind(sup)
			return nil
		}
	}
	return &domain.ValidationError{Field: "supplier_id", Reason: fmt.Sprintf("proveedor %d no está en el catálogo", id), Err: domain.ErrNotFound}
}

func (s *Sequencer) bind(sup dto.SupplierResponse) {
	s.supplier = &sup
	s.saved = 0
	if s.draft.Weight.IsZero() {
		s.draft.Weight = sup.DefaultWeight
	}
}

// Saved unidades guardadas en esta sesión para el proveedor activo.
func (s *Sequencer) Saved() int { return s.saved }

// Sequence número del borrador actual; 0 sin proveedor activo.
func (s *Sequencer) Sequence() int {
	if s.supplier == nil {
		return 0
	}
	return rules.NextSequence(s.saved, s.supplier.Quota)
}

// Label secuencia con ceros a la izquierda según el ancho de la cuota.
func (s *Sequencer) Label() string {
	if s.supplier == nil {
		return ""
	}
	return rules.FormatLabel(s.Sequence(), s.supplier.Quota)
}

// Draft copia del borrador actual.
func (s *Sequencer) Draft() Draft { return s.draft }

// WeightMissing bandera de aviso: el borrador no tiene peso positivo.
func (s *Sequencer) WeightMissing() bool { return !s.draft.HasWeight() }

// Full indica que ya se guardaron todas las unidades de la cuota.
func (s *Sequencer) Full() bool {
	return s.supplier != nil && s.saved >= s.supplier.Quota
}

// State banderas derivadas para la capa de presentación.
type State struct {
	WeightMissing bool // el borrador no tiene peso positivo
	Full          bool // todas las unidades de la cuota guardadas
	Ready         bool // Finish tendría éxito
}

// State calcula las banderas sin modificar nada.
func (s *Sequencer) State() State {
	return State{
		WeightMissing: s.WeightMissing(),
		Full:          s.Full(),
		Ready:         s.supplier != nil && s.Finish() == nil,
	}
}

// Entered unidades guardadas más el borrador si tiene peso.
func (s *Sequencer) Entered() int {
	return rules.Entered(s.saved, s.draft.HasWeight())
}

// SetWeight fija el peso del borrador. Cero significa "vacío".
func (s *Sequencer) SetWeight(w decimal.Decimal) error {
	if err := s.requireActive(); err != nil {
		return err
	}
	s.draft.Weight = w
	return nil
}

// SetClassification fija la clase de la unidad.
func (s *Sequencer) SetClassification(c entity.Classification) error {
	if err := s.requireActive(); err != nil {
		return err
	}
	if !c.Valid() {
		return domain.NewValidationError(FieldClassification, "debe ser I o II")
	}
	s.draft.Classification = c
	return nil
}

// SetAcknowledged marca o desmarca la confirmación de cierre.
func (s *Sequencer) SetAcknowledged(v bool) error {
	if err := s.requireActive(); err != nil {
		return err
	}
	s.draft.Acknowledged = v
	return nil
}

// SetAttribute fija una bandera de estado por nombre.
func (s *Sequencer) SetAttribute(name string, v bool) error {
	if err := s.requireActive(); err != nil {
		return err
	}
	flag := attributeFlag(&s.draft.Attributes, name)
	if flag == nil {
		return domain.NewValidationError(FieldAttributes+"."+name, "atributo desconocido")
	}
	*flag = v
	return nil
}

// ToggleAttribute invierte una bandera de estado.
func (s *Sequencer) ToggleAttribute(name string) error {
	flag := attributeFlag(&s.draft.Attributes, name)
	if flag == nil {
		return s.SetAttribute(name, false)
	}
	return s.SetAttribute(name, !*flag)
}

// SetDefect fija una bandera de merma por nombre.
func (s *Sequencer) SetDefect(name string, v bool) error {
	if err := s.requireActive(); err != nil {
		return err
	}
	flag := defectFlag(&s.draft.Defects, name)
	if flag == nil {
		return domain.NewValidationError(FieldDefects+"."+name, "merma desconocida")
	}
	*flag = v
	return nil
}

// ToggleDefect invierte una bandera de merma.
func (s *Sequencer) ToggleDefect(name string) error {
	flag := defectFlag(&s.draft.Defects, name)
	if flag == nil {
		return s.SetDefect(name, false)
	}
	return s.SetDefect(name, !*flag)
}

// UpdateDraftField punto de entrada genérico de la capa de presentación.
// Nombres: weight, classification, acknowledged, attributes.<k>, defects.<k>.
func (s *Sequencer) UpdateDraftField(name string, value any) error {
	switch {
	case name == FieldWeight:
		w, err := toDecimal(value)
		if err != nil {
			return domain.NewValidationError(FieldWeight, err.Error())
		}
		return s.SetWeight(w)
	case name == FieldClassification:
		str, ok := toString(value)
		if !ok {
			return domain.NewValidationError(FieldClassification, "valor no textual")
		}
		return s.SetClassification(entity.Classification(strings.ToUpper(strings.TrimSpace(str))))
	case name == FieldAcknowledged:
		b, ok := value.(bool)
		if !ok {
			return domain.NewValidationError(FieldAcknowledged, "valor no booleano")
		}
		return s.SetAcknowledged(b)
	case strings.HasPrefix(name, FieldAttributes+"."):
		b, ok := value.(bool)
		if !ok {
			return domain.NewValidationError(name, "valor no booleano")
		}
		return s.SetAttribute(strings.TrimPrefix(name, FieldAttributes+"."), b)
	case strings.HasPrefix(name, FieldDefects+"."):
		b, ok := value.(bool)
		if !ok {
			return domain.NewValidationError(name, "valor no booleano")
		}
		return s.SetDefect(strings.TrimPrefix(name, FieldDefects+"."), b)
	}
	return domain.NewValidationError(name, "campo desconocido")
}

// Save envía el borrador al almacén y, solo si este confirma, avanza la secuencia
// y limpia el peso. Con la entrega llena rechaza el guardado (ErrQuotaReached).
// Ante un fallo del almacén el estado queda intacto y el error es reintentable.
func (s *Sequencer) Save(ctx context.Context) (int64, error) {
	if err := s.requireActive(); err != nil {
		return 0, err
	}
	if !s.draft.HasWeight() {
		return 0, domain.NewValidationError(FieldWeight, "ingrese un peso mayor que cero antes de guardar")
	}
	if s.Full() {
		return 0, &domain.ValidationError{
			Field:  "quota",
			Reason: fmt.Sprintf("ya se guardaron %d/%d unidades", s.saved, s.supplier.Quota),
			Err:    domain.ErrQuotaReached,
		}
	}

	supplierID := s.supplier.ID
	id, err := s.store.AppendRecord(ctx, dto.AppendRecordRequest{
		SupplierID:     &supplierID,
		SequenceLabel:  s.Label(),
		Weight:         s.draft.Weight,
		Classification: s.draft.Classification,
		Attributes:     s.draft.Attributes,
		Defects:        s.draft.Defects,
	})
	if err != nil {
		return 0, storeFailure("guardar registro", err)
	}

	s.saved++
	s.draft.Weight = decimal.Zero
	return id, nil
}

// Finish evalúa el cierre sin cambiar estado. Requiere unidades ingresadas ≥ cuota,
// la confirmación del operador y que la última unidad esté guardada.
func (s *Sequencer) Finish() error {
	if err := s.requireActive(); err != nil {
		return err
	}
	return rules.CheckCompletion(s.saved, s.supplier.Quota, s.draft.HasWeight(), s.draft.Acknowledged)
}

func (s *Sequencer) requireActive() error {
	if s.supplier == nil {
		return &domain.ValidationError{Field: "supplier_id", Reason: "seleccione un proveedor", Err: domain.ErrNoSupplier}
	}
	return nil
}

// storeFailure conserva los errores tipados del dominio y envuelve el resto
// como StoreUnavailableError.
func storeFailure(op string, err error) error {
	var verr *domain.ValidationError
	var serr *domain.StoreUnavailableError
	if errors.As(err, &verr) || errors.As(err, &serr) {
		return err
	}
	return &domain.StoreUnavailableError{Op: op, Err: err}
}

func attributeFlag(a *entity.Attributes, name string) *bool {
	switch name {
	case "large_eyes":
		return &a.LargeEyes
	case "salted":
		return &a.Salted
	case "burnt":
		return &a.Burnt
	case "passed":
		return &a.Passed
	}
	return nil
}

func defectFlag(d *entity.Defects, name string) *bool {
	switch name {
	case "loss_10":
		return &d.Loss10
	case "loss_20":
		return &d.Loss20
	}
	return nil
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, fmt.Errorf("peso no numérico %v", x)
		}
		return decimal.NewFromFloat(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case string:
		x = strings.TrimSpace(strings.ReplaceAll(x, ",", "."))
		if x == "" {
			return decimal.Zero, nil
		}
		return decimal.NewFromString(x)
	case nil:
		return decimal.Zero, nil
	}
	return decimal.Zero, fmt.Errorf("tipo de peso no soportado %T", v)
}

func toString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case entity.Classification:
		return string(x), true
	case fmt.Stringer:
		return x.String(), true
	}
	return "", false
}
