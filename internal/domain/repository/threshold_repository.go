package repository

import "github.com/tu-usuario/stock-engine/internal/domain/entity"

// ThresholdRepository define el puerto de persistencia para los mínimos
// configurados por variante o producto.
type ThresholdRepository interface {
	// GetForVariant devuelve el mínimo configurado para la variante, con
	// prioridad variante > producto. Nil sin error si no hay configuración.
	GetForVariant(variantID string) (*entity.MinimumThreshold, error)
	Upsert(threshold *entity.MinimumThreshold) error
}
