package entity

import "github.com/shopspring/decimal"

// MinimumThreshold define el mínimo configurado para una variante (o para todo
// el producto). Si no existe configuración, aplican los valores por defecto
// según la unidad de medida (DefaultThreshold).
type MinimumThreshold struct {
	VariantID string // vacío si el mínimo aplica a todo el producto
	ProductID string
	Unit      string
	Minimum   decimal.Decimal
	Critical  decimal.Decimal
}

// Mínimos por defecto por categoría de unidad de medida (crítico = 0 en todas).
var defaultMinimums = map[string]int64{
	UnitMETER:    50,
	UnitUNIT:     10,
	UnitKILOGRAM: 20,
	UnitLITER:    20,
}

// DefaultThreshold devuelve el mínimo y el umbral crítico por defecto para la
// unidad de medida indicada. Unidades desconocidas caen al mínimo de UNIT.
func DefaultThreshold(unit string) (minimum, critical decimal.Decimal) {
	m, ok := defaultMinimums[unit]
	if !ok {
		m = defaultMinimums[UnitUNIT]
	}
	return decimal.NewFromInt(m), decimal.Zero
}
