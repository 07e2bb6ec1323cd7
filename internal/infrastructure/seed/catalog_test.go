package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pesaje-api/internal/infrastructure/seed"
)

func TestLoad_Embedded(t *testing.T) {
	list, err := seed.Load("")
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "Thiên Thành", list[0].Name)
	assert.Equal(t, "79-VA-18175", list[0].Plate)
	assert.Equal(t, 10, list[0].Quota)
	assert.True(t, decimal.RequireFromString("15").Equal(list[0].DefaultWeight))

	assert.Equal(t, 12, list[1].Quota)
	assert.True(t, decimal.RequireFromString("33.3").Equal(list[2].DefaultWeight))
	assert.Equal(t, "50", list[2].DefaultUnitLabel)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "suppliers:\n  - name: Lote Prueba\n    plate: 00-XX-00000\n    quota: 2\n    default_weight: \"5.0\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	list, err := seed.Load(path)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].Quota)
	assert.True(t, list[0].QuotaWeight.IsZero())
}

func TestParse_NormalizesNamesToNFC(t *testing.T) {
	// "Thành" con la "à" descompuesta (a + U+0300).
	list, err := seed.Parse([]byte("suppliers:\n  - name: \"Tha\u0300nh\"\n    quota: 1\n"))
	require.NoError(t, err)
	assert.Equal(t, "Th\u00e0nh", list[0].Name)
}

func TestParse_Rejects(t *testing.T) {
	_, err := seed.Parse([]byte("suppliers:\n  - name: Sin Cuota\n    quota: 0\n"))
	assert.Error(t, err, "cuota cero")

	_, err = seed.Parse([]byte("suppliers:\n  - name: \"\"\n    quota: 3\n"))
	assert.Error(t, err, "nombre vacío")

	_, err = seed.Parse([]byte("suppliers:\n  - name: Peso Malo\n    quota: 3\n    default_weight: abc\n"))
	assert.Error(t, err, "peso no numérico")

	_, err = seed.Parse([]byte("suppliers: [\n"))
	assert.Error(t, err, "YAML inválido")
}
