package inventory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/stock-engine/internal/application/inventory"
	"github.com/tu-usuario/stock-engine/internal/domain"
	"github.com/tu-usuario/stock-engine/internal/domain/entity"
)

func transferInput(qty int64) inventory.TransferInput {
	return inventory.TransferInput{
		ActorID:                "user-1",
		VariantID:              varTela,
		SourceWarehouseID:      whBodega,
		DestinationWarehouseID: whSala,
		Quantity:               d(qty),
		Reason:                 "Reposición de sala",
	}
}

// Un traslado produce dos movimientos TRANSFER enlazados entre sí, del mismo
// lote, con efecto neto cero sobre el total de la variante.
func TestTransfer_ParEnlazado(t *testing.T) {
	f := newFixture()
	f.seedStock(varTela, whBodega, 100)

	res, err := f.transfer.Transfer(context.Background(), transferInput(20))
	require.NoError(t, err)

	exit, entry := res.Exit, res.Entry
	assert.Equal(t, entity.MovementTypeTRANSFER, exit.Type)
	assert.Equal(t, entity.MovementTypeTRANSFER, entry.Type)
	assert.Equal(t, exit.BatchID, entry.BatchID, "ambas patas comparten el lote")
	assert.Equal(t, exit.ID, entry.LinkedMovementID)
	assert.Equal(t, entry.ID, exit.LinkedMovementID)
	assert.Equal(t, whSala, exit.DestinationWarehouseID)

	assert.True(t, exit.Quantity.Equal(d(-20)))
	assert.True(t, entry.Quantity.Equal(d(20)))
	assert.True(t, exit.Quantity.Add(entry.Quantity).IsZero(), "efecto neto cero")

	assert.True(t, f.store.available(varTela, whBodega).Equal(d(80)))
	assert.True(t, f.store.available(varTela, whSala).Equal(d(20)))
	assert.Equal(t, 2, f.store.movementCount())
}

// Sin motivo explícito, el traslado usa el motivo por defecto.
func TestTransfer_MotivoPorDefecto(t *testing.T) {
	f := newFixture()
	f.seedStock(varTela, whBodega, 10)

	in := transferInput(5)
	in.Reason = ""
	res, err := f.transfer.Transfer(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, inventory.DefaultTransferReason, res.Exit.Reason)
	assert.Equal(t, inventory.DefaultTransferReason, res.Entry.Reason)
}

// Si el origen no alcanza, el traslado se aborta completo: ninguna bodega
// cambia y no queda ningún movimiento (ni siquiera la pata de salida).
func TestTransfer_InsuficienteAbortaTodo(t *testing.T) {
	f := newFixture()
	f.seedStock(varTela, whBodega, 10)
	f.seedStock(varTela, whSala, 3)

	_, err := f.transfer.Transfer(context.Background(), transferInput(11))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, f.store.available(varTela, whBodega).Equal(d(10)))
	assert.True(t, f.store.available(varTela, whSala).Equal(d(3)))
	assert.Equal(t, 0, f.store.movementCount())
}

func TestTransfer_Validaciones(t *testing.T) {
	f := newFixture()
	f.seedStock(varTela, whBodega, 100)
	ctx := context.Background()

	t.Run("misma bodega origen y destino", func(t *testing.T) {
		in := transferInput(5)
		in.DestinationWarehouseID = whBodega
		_, err := f.transfer.Transfer(ctx, in)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("cantidad no positiva", func(t *testing.T) {
		in := transferInput(0)
		_, err := f.transfer.Transfer(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		in.Quantity = d(-4)
		_, err = f.transfer.Transfer(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("variante inexistente", func(t *testing.T) {
		in := transferInput(5)
		in.VariantID = "var-fantasma"
		_, err := f.transfer.Transfer(ctx, in)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bodega destino inexistente", func(t *testing.T) {
		in := transferInput(5)
		in.DestinationWarehouseID = "wh-fantasma"
		_, err := f.transfer.Transfer(ctx, in)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bodega destino inactiva", func(t *testing.T) {
		in := transferInput(5)
		in.DestinationWarehouseID = whCerrada
		_, err := f.transfer.Transfer(ctx, in)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	assert.Equal(t, 0, f.store.movementCount())
	assert.True(t, f.store.available(varTela, whBodega).Equal(d(100)))
}

// Traslados concurrentes en direcciones opuestas terminan consistentes:
// el total de la variante se conserva y ningún disponible queda negativo.
func TestTransfer_ConcurrenciaInversa(t *testing.T) {
	f := newFixture()
	f.seedStock(varTela, whBodega, 100)
	f.seedStock(varTela, whSala, 100)
	ctx := context.Background()

	const vueltas = 25
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < vueltas; i++ {
			_, _ = f.transfer.Transfer(ctx, transferInput(3))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < vueltas; i++ {
			_, _ = f.transfer.Transfer(ctx, inventory.TransferInput{
				ActorID:                "user-2",
				VariantID:              varTela,
				SourceWarehouseID:      whSala,
				DestinationWarehouseID: whBodega,
				Quantity:               d(2),
				Reason:                 "Devolución a bodega",
			})
		}
	}()
	wg.Wait()

	bodega := f.store.available(varTela, whBodega)
	sala := f.store.available(varTela, whSala)
	assert.True(t, bodega.Add(sala).Equal(d(200)), "el total de la variante se conserva")
	assert.False(t, bodega.IsNegative())
	assert.False(t, sala.IsNegative())
}

// Salidas concurrentes contra un mismo saldo nunca lo dejan negativo: las que
// exceden el disponible fallan con stock insuficiente.
func TestTransfer_SalidasConcurrentesNoNegativizan(t *testing.T) {
	f := newFixture()
	f.seedStock(varTela, whBodega, 10)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 6)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.transfer.Transfer(ctx, transferInput(3))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	okCount := 0
	for err := range errs {
		if err == nil {
			okCount++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	}
	// Con 10 disponibles y traslados de 3, caben exactamente 3
	assert.Equal(t, 3, okCount)
	assert.True(t, f.store.available(varTela, whBodega).Equal(d(1)))
	assert.True(t, f.store.available(varTela, whSala).Equal(d(9)))
	assert.False(t, f.store.available(varTela, whBodega).LessThan(decimal.Zero))
}
