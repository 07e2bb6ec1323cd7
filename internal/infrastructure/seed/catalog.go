// Package seed carga el catálogo inicial de proveedores desde YAML
// (embebido en el binario o indicado con SEED_FILE).
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Pesaje-api/internal/domain/entity"
)

//go:embed suppliers.yaml
var defaultCatalog []byte

type catalogFile struct {
	Suppliers []supplierEntry `yaml:"suppliers"`
}

type supplierEntry struct {
	Name             string `yaml:"name"`
	Plate            string `yaml:"plate"`
	Quota            int    `yaml:"quota"`
	QuotaWeight      string `yaml:"quota_weight"`
	DefaultUnitLabel string `yaml:"default_unit_label"`
	DefaultWeight    string `yaml:"default_weight"`
}

// Load lee el catálogo de path; con path vacío usa el embebido.
func Load(path string) ([]*entity.Supplier, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: leer %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodifica el YAML y valida cada entrada. Los nombres se normalizan a NFC
// para que el mismo proveedor escrito con distintas composiciones Unicode sea idéntico.
func Parse(data []byte) ([]*entity.Supplier, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seed: decodificar YAML: %w", err)
	}
	out := make([]*entity.Supplier, 0, len(f.Suppliers))
	for i, e := range f.Suppliers {
		name := norm.NFC.String(strings.TrimSpace(e.Name))
		if name == "" {
			return nil, fmt.Errorf("seed: proveedor #%d sin nombre", i+1)
		}
		if e.Quota <= 0 {
			return nil, fmt.Errorf("seed: proveedor %q: cuota debe ser positiva", name)
		}
		quotaWeight, err := parseDecimal(e.QuotaWeight)
		if err != nil {
			return nil, fmt.Errorf("seed: proveedor %q: quota_weight: %w", name, err)
		}
		defaultWeight, err := parseDecimal(e.DefaultWeight)
		if err != nil {
			return nil, fmt.Errorf("seed: proveedor %q: default_weight: %w", name, err)
		}
		out = append(out, &entity.Supplier{
			Name:             name,
			Plate:            strings.TrimSpace(e.Plate),
			Quota:            e.Quota,
			QuotaWeight:      quotaWeight,
			DefaultUnitLabel: strings.TrimSpace(e.DefaultUnitLabel),
			DefaultWeight:    defaultWeight,
		})
	}
	return out, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.TrimSpace(s))
}
