package entity

// Unidades de medida de una variante.
const (
	UnitUNIT     = "UNIT"     // unidad
	UnitMETER    = "METER"    // metro
	UnitKILOGRAM = "KILOGRAM" // kilogramo
	UnitLITER    = "LITER"    // litro
)

// ProductVariant representa una variante vendible de un producto (combinación
// SKU de atributos como color/medida/material). El catálogo de productos es
// propiedad de otro sistema; el motor solo lo consulta para resolver códigos
// y unidades de medida.
type ProductVariant struct {
	ID          string
	ProductID   string
	ProductName string
	SKU         string
	Code        string // código interno alternativo (importaciones masivas)
	Color       string
	Measure     string
	Material    string
	Unit        string // UNIT, METER, KILOGRAM, LITER
	Active      bool
}

// ValidUnit indica si la unidad de medida es una de las conocidas.
func ValidUnit(unit string) bool {
	switch unit {
	case UnitUNIT, UnitMETER, UnitKILOGRAM, UnitLITER:
		return true
	}
	return false
}
