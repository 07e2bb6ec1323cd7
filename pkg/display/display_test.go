package display_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Pesaje-api/pkg/display"
)

func TestSupplierTitle(t *testing.T) {
	assert.Equal(t, "THIÊN THÀNH(10)", display.SupplierTitle("Thiên Thành", 10))
	assert.Equal(t, "KIÊN THỊNH(12)", display.SupplierTitle("  Kiên Thịnh ", 12))
	assert.Equal(t, "SATOMURA(14)", display.SupplierTitle("Satomura", 14))
}

func TestWeight(t *testing.T) {
	assert.Equal(t, "33.3 kg", display.Weight(decimal.RequireFromString("33.3")))
	assert.Equal(t, "15.0 kg", display.Weight(decimal.NewFromInt(15)))
	assert.Equal(t, "", display.Weight(decimal.Zero))
	assert.Equal(t, "", display.Weight(decimal.NewFromInt(-2)))
}
