package inventory

import "github.com/shopspring/decimal"

// Severidades de nivel de stock frente al mínimo configurado.
const (
	SeverityCritical     = "CRITICAL"      // disponible <= umbral crítico
	SeverityBelowMinimum = "BELOW_MINIMUM" // crítico < disponible <= mínimo
	SeverityNormal       = "NORMAL"
)

// ClassifyLevel clasifica el stock disponible frente al mínimo y al umbral
// crítico (servicio de dominio puro, sin efectos).
func ClassifyLevel(available, minimum, critical decimal.Decimal) string {
	if available.LessThanOrEqual(critical) {
		return SeverityCritical
	}
	if available.LessThanOrEqual(minimum) {
		return SeverityBelowMinimum
	}
	return SeverityNormal
}

// Deficit devuelve max(0, minimum - available).
func Deficit(available, minimum decimal.Decimal) decimal.Decimal {
	d := minimum.Sub(available)
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}
