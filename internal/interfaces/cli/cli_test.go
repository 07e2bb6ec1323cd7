package cli_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pesaje-api/internal/application/dto"
	"github.com/jhoicas/Pesaje-api/internal/application/weighing"
	"github.com/jhoicas/Pesaje-api/internal/interfaces/cli"
	"github.com/jhoicas/Pesaje-api/pkg/config"
)

type stubStore struct {
	appended []dto.AppendRecordRequest
}

func (s *stubStore) ListSuppliers(context.Context) ([]dto.SupplierResponse, error) {
	return []dto.SupplierResponse{
		{ID: 1, Name: "Thiên Thành", Plate: "79-VA-18175", Quota: 10, DefaultWeight: decimal.NewFromInt(15)},
		{ID: 2, Name: "Satomura", Plate: "51-CD-98765", Quota: 14, DefaultWeight: decimal.RequireFromString("33.3")},
	}, nil
}

func (s *stubStore) AppendRecord(_ context.Context, in dto.AppendRecordRequest) (int64, error) {
	s.appended = append(s.appended, in)
	return int64(len(s.appended)), nil
}

func (s *stubStore) Progress(_ context.Context, supplierID int64) (*dto.ProgressResponse, error) {
	return &dto.ProgressResponse{SupplierID: supplierID, Saved: len(s.appended), Quota: 10, Remaining: 10 - len(s.appended)}, nil
}

// appendOnly almacén sin consulta de avance.
type appendOnly struct{ weighing.RecordStore }

func stub(store weighing.RecordStore) cli.StoreFactory {
	return func(context.Context, *cli.RootOptions) (weighing.RecordStore, io.Closer, error) {
		return store, nil, nil
	}
}

func run(t *testing.T, store weighing.RecordStore, stdin string, args ...string) string {
	t.Helper()
	cfg := &config.Config{Client: config.ClientConfig{StoreURL: "http://unused", Timeout: time.Second}}
	out, err := execute(cli.NewRootCommand(cfg, stub(store)), stdin, args...)
	require.NoError(t, err)
	return out
}

func execute(cmd *cobra.Command, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSuppliersCommand(t *testing.T) {
	out := run(t, &stubStore{}, "", "suppliers")
	assert.Contains(t, out, "1\tTHIÊN THÀNH(10)\t79-VA-18175\t15.0 kg")
	assert.Contains(t, out, "2\tSATOMURA(14)\t51-CD-98765\t33.3 kg")
}

func TestRootCommand_Flags(t *testing.T) {
	var got cli.RootOptions
	cfg := &config.Config{Client: config.ClientConfig{StoreURL: "http://default", Timeout: time.Second}}
	cmd := cli.NewRootCommand(cfg, func(_ context.Context, o *cli.RootOptions) (weighing.RecordStore, io.Closer, error) {
		got = *o
		return &stubStore{}, nil, nil
	})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"suppliers", "--store-url", "http://balanza:4000", "--timeout", "3s"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "http://balanza:4000", got.StoreURL)
	assert.Equal(t, 3*time.Second, got.Timeout)
}

func TestSessionCommand_WithSupplierFlag(t *testing.T) {
	store := &stubStore{}
	out := run(t, store, "save\nquit\n", "session", "--supplier", "2")

	assert.Contains(t, out, "SATOMURA(14)")
	require.Len(t, store.appended, 1)
	assert.Equal(t, int64(2), *store.appended[0].SupplierID)
	assert.Equal(t, "01", store.appended[0].SequenceLabel)
	assert.True(t, store.appended[0].Weight.Equal(decimal.NewFromInt(15)), "el peso se arrastra al cambiar de proveedor")
}

func TestProgressCommand(t *testing.T) {
	store := &stubStore{appended: make([]dto.AppendRecordRequest, 3)}
	out := run(t, store, "", "progress", "--supplier", "1")
	assert.Equal(t, "1\tGuardadas: 3/10\tFaltan: 7\tCompleta: no\n", out)
}

func TestProgressCommand_Errors(t *testing.T) {
	cfg := &config.Config{}

	_, err := execute(cli.NewRootCommand(cfg, stub(&stubStore{})), "", "progress")
	assert.ErrorContains(t, err, "--supplier")

	_, err = execute(cli.NewRootCommand(cfg, stub(appendOnly{&stubStore{}})), "", "progress", "--supplier", "1")
	assert.ErrorContains(t, err, "avance")
}

func TestLocalFlag_SessionThenProgress(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "pesaje.db"),
	}}

	out, err := execute(cli.NewRootCommand(cfg, nil), "", "suppliers", "--local")
	require.NoError(t, err)
	assert.Contains(t, out, "1\tTHIÊN THÀNH(10)\t79-VA-18175\t15.0 kg")

	out, err = execute(cli.NewRootCommand(cfg, nil), "save\nweight 14,5\nsave\nquit\n", "session", "--local", "--supplier", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "THIÊN THÀNH(10)")

	out, err = execute(cli.NewRootCommand(cfg, nil), "", "progress", "--local", "--supplier", "1")
	require.NoError(t, err)
	assert.Equal(t, "1\tGuardadas: 2/10\tFaltan: 8\tCompleta: no\n", out)
}

func TestLocalFlag_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "mongo"}}
	_, err := execute(cli.NewRootCommand(cfg, nil), "", "suppliers", "--local")
	assert.ErrorContains(t, err, "mongo")
}
