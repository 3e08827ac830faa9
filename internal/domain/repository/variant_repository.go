package repository

import "github.com/tu-usuario/stock-engine/internal/domain/entity"

// VariantRepository define el puerto de lectura del catálogo de variantes
// (el catálogo es propiedad de otro sistema; aquí solo se resuelven códigos).
type VariantRepository interface {
	GetByID(id string) (*entity.ProductVariant, error)
	// GetBySKUOrCode resuelve un SKU o código interno a su variante.
	// Devuelve nil sin error si no existe.
	GetBySKUOrCode(code string) (*entity.ProductVariant, error)
}
