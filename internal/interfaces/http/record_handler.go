package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
	"github.com/jhoicas/Pesaje-api/internal/application/usecase"
	"github.com/jhoicas/Pesaje-api/pkg/logger"
)

// RecordHandler agregado de registros al log.
type RecordHandler struct {
	uc  *usecase.RecordUseCase
	log *logger.Logger
}

// NewRecordHandler construye el handler.
func NewRecordHandler(uc *usecase.RecordUseCase, log *logger.Logger) *RecordHandler {
	return &RecordHandler{uc: uc, log: log}
}

// Append godoc
// @Summary      Agregar registro de pesaje
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendRecordRequest  true  "Borrador a persistir"
// @Success      201   {object}  dto.AppendRecordResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/records [post]
func (h *RecordHandler) Append(c *fiber.Ctx) error {
	var in dto.AppendRecordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AppendRecord(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Debug().
		Str("request_id", GetRequestID(c)).
		Int64("record_id", out.ID).
		Int64("supplier_id", *in.SupplierID).
		Str("label", in.SequenceLabel).
		Msg("registro agregado")
	return c.Status(fiber.StatusCreated).JSON(out)
}
