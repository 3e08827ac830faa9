package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario (multi-bodega).
// El registro de bodegas es propiedad de otro sistema; aquí solo se referencia.
// Las bodegas no se eliminan: se desactivan (Active=false) para conservar la
// integridad referencial de los movimientos históricos.
type Warehouse struct {
	ID            string
	Code          string // ej. "BOD01", "SALA"
	Name          string
	IsPointOfSale bool // la bodega también opera como sala de ventas
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
