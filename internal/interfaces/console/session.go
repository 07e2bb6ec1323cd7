package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/Pesaje-api/internal/application/weighing"
	"github.com/jhoicas/Pesaje-api/internal/domain"
	"github.com/jhoicas/Pesaje-api/pkg/display"
	"github.com/jhoicas/Pesaje-api/pkg/logger"
)

const helpText = `Comandos:
  suppliers          lista el catálogo
  use <id>           activa un proveedor (reinicia la secuencia)
  weight <kg>        peso de la unidad (acepta coma decimal; 0 lo vacía)
  class I|II         clase de la unidad
  attr <nombre>      alterna large_eyes | salted | burnt | passed
  defect <nombre>    alterna loss_10 | loss_20
  ack                confirma el cierre de la entrega
  save               guarda la unidad en el almacén
  finish             cierra la entrega
  status             muestra el estado
  quit               termina la sesión
`

// Session intérprete de comandos sobre un Sequencer.
type Session struct {
	seq *weighing.Sequencer
	log *logger.Logger
}

// NewSession construye la sesión. log puede ser nil.
func NewSession(seq *weighing.Sequencer, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}
	return &Session{seq: seq, log: log}
}

// Run carga el catálogo y procesa comandos línea a línea hasta quit o EOF.
// Los errores de comando se informan y la sesión continúa; solo un fallo al
// cargar el catálogo o de E/S termina Run con error.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := s.seq.Load(ctx); err != nil {
		return fmt.Errorf("cargar catálogo: %w", err)
	}
	fmt.Fprint(out, Render(s.seq))

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if quit := s.exec(ctx, line, out); quit {
			return nil
		}
	}
	fmt.Fprintln(out)
	return sc.Err()
}

func (s *Session) exec(ctx context.Context, line string, out io.Writer) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprint(out, helpText)
	case "status":
		fmt.Fprint(out, Render(s.seq))
	case "suppliers":
		for _, sup := range s.seq.Suppliers() {
			fmt.Fprintf(out, "%d  %s  %s\n", sup.ID, display.SupplierTitle(sup.Name, sup.Quota), sup.Plate)
		}
	case "use":
		err = s.use(args, out)
	case "weight":
		if err = needArg(cmd, args); err == nil {
			err = s.seq.UpdateDraftField(weighing.FieldWeight, args[0])
		}
	case "class":
		if err = needArg(cmd, args); err == nil {
			err = s.seq.UpdateDraftField(weighing.FieldClassification, args[0])
		}
	case "attr":
		if err = needArg(cmd, args); err == nil {
			err = s.seq.ToggleAttribute(args[0])
		}
	case "defect":
		if err = needArg(cmd, args); err == nil {
			err = s.seq.ToggleDefect(args[0])
		}
	case "ack":
		err = s.seq.SetAcknowledged(true)
	case "save":
		err = s.save(ctx, out)
	case "finish":
		if err = s.seq.Finish(); err == nil {
			fmt.Fprintln(out, "Entrega completa.")
		}
	default:
		err = fmt.Errorf("comando desconocido %q (escriba help)", cmd)
	}
	if err != nil {
		fmt.Fprintln(out, describe(err))
	}
	return false
}

func (s *Session) use(args []string, out io.Writer) error {
	if err := needArg("use", args); err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return domain.NewValidationError("supplier_id", "debe ser numérico")
	}
	if err := s.seq.SelectSupplier(id); err != nil {
		return err
	}
	fmt.Fprint(out, Render(s.seq))
	return nil
}

func (s *Session) save(ctx context.Context, out io.Writer) error {
	label := s.seq.Label()
	id, err := s.seq.Save(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			s.log.Warn().Err(err).Msg("guardado fallido, borrador conservado")
		}
		return err
	}
	sup, _ := s.seq.Supplier()
	s.log.Info().Int64("record_id", id).Int64("supplier_id", sup.ID).Str("label", label).Msg("unidad guardada")
	fmt.Fprintf(out, "Guardada unidad %s (registro %d).\n", label, id)
	fmt.Fprint(out, Render(s.seq))
	return nil
}

func needArg(cmd string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s: falta el argumento", cmd)
	}
	return nil
}

// describe mensaje para el operador según el tipo de error.
func describe(err error) string {
	var inc *domain.IncompleteError
	switch {
	case errors.As(err, &inc):
		return "No se puede cerrar: " + inc.Error()
	case errors.Is(err, domain.ErrAcknowledgmentRequired):
		return "No se puede cerrar: confirme primero con \"ack\"."
	case errors.Is(err, domain.ErrNoSupplier):
		return "Sin proveedor activo."
	case errors.Is(err, domain.ErrQuotaReached):
		return "La entrega ya está llena."
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "Almacén no disponible; el borrador se conserva, reintente: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
