package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
	"github.com/jhoicas/Pesaje-api/internal/application/report"
	"github.com/jhoicas/Pesaje-api/internal/application/usecase"
	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
	"github.com/jhoicas/Pesaje-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Pesaje-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Pesaje-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre repositorios en memoria con dos proveedores.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	suppliers := memory.NewSupplierRepository()
	records := memory.NewRecordRepository()
	catalog := usecase.NewCatalogUseCase(suppliers)
	_, err := catalog.EnsureSeeded(context.Background(), []*entity.Supplier{
		{Name: "Thiên Thành", Plate: "79-VA-18175", Quota: 2, DefaultWeight: decimal.NewFromInt(15)},
		{Name: "Satomura", Plate: "51-CD-98765", Quota: 14},
	})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Catalog: catalog,
		Records: usecase.NewRecordUseCase(records, suppliers),
		Ticket:  report.NewTicketUseCase(suppliers, records, infrapdf.NewMarotoTicketGenerator()),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func recordBody(supplierID any, weight string) map[string]any {
	return map[string]any{
		"supplier_id":    supplierID,
		"sequence_label": "1",
		"weight":         weight,
		"classification": "I",
		"attributes":     map[string]bool{"large_eyes": true},
		"defects":        map[string]bool{"loss_10": false},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos
// ──────────────────────────────────────────────────────────────────────────────

func TestListSuppliers(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/suppliers", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID), "toda respuesta lleva request ID")

	list := decode[[]dto.SupplierResponse](t, resp)
	require.Len(t, list, 2)
	assert.Equal(t, "Thiên Thành", list[0].Name)
	assert.Equal(t, 2, list[0].Quota)
	assert.True(t, list[0].DefaultWeight.Equal(decimal.NewFromInt(15)))
}

func TestGetSupplier(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodGet, "/api/suppliers/2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Satomura", decode[dto.SupplierResponse](t, resp).Name)

	resp = do(t, app, http.MethodGet, "/api/suppliers/99", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = do(t, app, http.MethodGet, "/api/suppliers/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAppendRecord_AndProgress(t *testing.T) {
	app := buildTestApp(t)

	resp := do(t, app, http.MethodPost, "/api/records", recordBody(1, "5.0"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	first := decode[dto.AppendRecordResponse](t, resp)
	assert.Positive(t, first.ID)

	resp = do(t, app, http.MethodPost, "/api/records", recordBody(1, "5.0"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	second := decode[dto.AppendRecordResponse](t, resp)
	assert.Greater(t, second.ID, first.ID, "identidades crecientes")

	resp = do(t, app, http.MethodGet, "/api/suppliers/1/progress", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	progress := decode[dto.ProgressResponse](t, resp)
	assert.Equal(t, 2, progress.Saved)
	assert.Equal(t, 0, progress.Remaining)
	assert.True(t, progress.Complete)

	resp = do(t, app, http.MethodGet, "/api/suppliers/1/records?limit=1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.RecordListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, 2, list.Page.Total)
	assert.Equal(t, first.ID, list.Items[0].ID)
	assert.True(t, list.Items[0].Attributes.LargeEyes)
}

func TestAppendRecord_Validation(t *testing.T) {
	app := buildTestApp(t)

	cases := []struct {
		name  string
		body  any
		field string
	}{
		{"sin proveedor", recordBody(nil, "5.0"), "supplier_id"},
		{"peso cero", recordBody(1, "0"), "weight"},
		{"peso negativo", recordBody(1, "-1.5"), "weight"},
		{"proveedor inexistente", recordBody(42, "5.0"), "supplier_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, app, http.MethodPost, "/api/records", tc.body)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			e := decode[dto.ErrorResponse](t, resp)
			assert.Equal(t, "VALIDATION", e.Code)
			assert.Equal(t, tc.field, e.Field)
		})
	}

	body := recordBody(1, "5.0")
	body["classification"] = "III"
	resp := do(t, app, http.MethodPost, "/api/records", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "classification", decode[dto.ErrorResponse](t, resp).Field)
}

func TestAppendRecord_InvalidBody(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/api/records", bytes.NewReader([]byte("{no-json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRequestID_Propagated(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/suppliers", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}

func TestTicket(t *testing.T) {
	app := buildTestApp(t)
	require.Equal(t, fiber.StatusCreated, do(t, app, http.MethodPost, "/api/records", recordBody(1, "5.0")).StatusCode)

	resp := do(t, app, http.MethodGet, "/api/suppliers/1/ticket", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "ticket-1-")
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))

	resp = do(t, app, http.MethodGet, "/api/suppliers/99/ticket", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
