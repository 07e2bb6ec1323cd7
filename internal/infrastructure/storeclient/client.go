// Package storeclient implementa weighing.RecordStore contra la API HTTP del almacén.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
	"github.com/jhoicas/Pesaje-api/internal/application/weighing"
	"github.com/jhoicas/Pesaje-api/internal/domain"
)

var (
	_ weighing.RecordStore    = (*Client)(nil)
	_ weighing.ProgressReader = (*Client)(nil)
)

// maxBody tope de lectura de respuestas.
const maxBody = 1 << 20

// Client adaptador HTTP del almacén de registros.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. timeout <= 0 deja la cancelación al contexto.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListSuppliers GET /api/suppliers.
func (c *Client) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	var out []dto.SupplierResponse
	if err := c.do(ctx, http.MethodGet, "/api/suppliers", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AppendRecord POST /api/records; devuelve la identidad asignada.
func (c *Client) AppendRecord(ctx context.Context, in dto.AppendRecordRequest) (int64, error) {
	var out dto.AppendRecordResponse
	if err := c.do(ctx, http.MethodPost, "/api/records", in, http.StatusCreated, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

// Progress GET /api/suppliers/:id/progress; cuenta del almacén, útil tras reconectar.
func (c *Client) Progress(ctx context.Context, supplierID int64) (*dto.ProgressResponse, error) {
	var out dto.ProgressResponse
	path := fmt.Sprintf("/api/suppliers/%d/progress", supplierID)
	if err := c.do(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any, want int, out any) error {
	op := method + " " + path

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("storeclient: serializar request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &domain.StoreUnavailableError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return &domain.StoreUnavailableError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return &domain.StoreUnavailableError{Op: op, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	if resp.StatusCode != want {
		return decodeError(op, resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.StoreUnavailableError{Op: op, Err: fmt.Errorf("deserializar respuesta: %w", err)}
	}
	return nil
}

// decodeError 400 → ValidationError (rechazo del almacén, recuperable); 404 → ErrNotFound;
// el resto se trata como almacén no disponible.
func decodeError(op string, status int, raw []byte) error {
	var e dto.ErrorResponse
	_ = json.Unmarshal(raw, &e)
	switch status {
	case http.StatusBadRequest:
		field := e.Field
		if field == "" {
			field = "body"
		}
		return &domain.ValidationError{Field: field, Reason: nonEmpty(e.Message, "rechazado por el almacén")}
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	msg := e.Message
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	return &domain.StoreUnavailableError{Op: op, Err: fmt.Errorf("HTTP %d: %s", status, msg)}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
