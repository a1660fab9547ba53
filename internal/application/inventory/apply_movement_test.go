package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundwave-studio/almacen/internal/application/inventory"
	"github.com/soundwave-studio/almacen/internal/domain"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

func TestApply_EntradaSumaStock(t *testing.T) {
	e := newEngine(t)
	e.seedProduct(t, "p1", "Cavi XLR", 10, 5)

	result, err := e.apply.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeInbound, Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, result.NewStock)
	assert.Equal(t, 10, result.Movement.StockBefore)
	assert.Equal(t, 15, result.Movement.StockAfter)
	assert.Equal(t, "Cavi XLR", result.Movement.ProductName)

	p, err := e.products.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 15, p.Stock)
}

func TestApply_SalidaInsuficienteRechazaSinAplicar(t *testing.T) {
	e := newEngine(t)
	e.seedProduct(t, "p1", "Cavi XLR", 3, 5)

	_, err := e.apply.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeOutbound, Quantity: 5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 3, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)

	// Sin aplicación parcial: stock intacto y libro vacío.
	p, err := e.products.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
	movements, err := e.movements.List(context.Background(), repository.MovementFilter{})
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestApply_MermaDescuentaComoSalida(t *testing.T) {
	e := newEngine(t)
	e.seedProduct(t, "p1", "Cuffie", 10, 5)

	result, err := e.apply.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeWriteoff, Quantity: 4, Reason: "mercancía dañada",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, result.NewStock)

	_, err = e.apply.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeWriteoff, Quantity: 7,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestApply_RectificacionFijaStockAbsoluto(t *testing.T) {
	e := newEngine(t)
	e.seedProduct(t, "p1", "Microfono", 10, 5)

	// El conteo físico encontró 42, no 10: la cantidad es el valor absoluto.
	result, err := e.apply.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: 42,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, result.NewStock)
	assert.Equal(t, 10, result.Movement.StockBefore)

	// Rectificar a cero está permitido (cantidad 0 solo válida en adjustment).
	result, err = e.apply.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewStock)
}

func TestApply_TrasladoCambiaUbicacionNoStock(t *testing.T) {
	e := newEngine(t)
	e.seedProduct(t, "p1", "Aste", 8, 5)

	result, err := e.apply.Apply(context.Background(), inventory.MovementInput{
		ProductID: "p1", Type: entity.MovementTypeTransfer, Quantity: 8,
		DestinationLocation: "Sala B",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, result.NewStock)
	assert.Equal(t, "Almacén Principal", result.Movement.Location)
	assert.Equal(t, "Sala B", result.Movement.DestinationLocation)

	p, err := e.products.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Sala B", p.Location)
	assert.Equal(t, 8, p.Stock)
}

func TestApply_Rechazos(t *testing.T) {
	e := newEngine(t)
	e.seedProduct(t, "p1", "Cavi XLR", 10, 5)
	ctx := context.Background()

	t.Run("producto desconocido", func(t *testing.T) {
		_, err := e.apply.Apply(ctx, inventory.MovementInput{
			ProductID: "fantasma", Type: entity.MovementTypeInbound, Quantity: 1,
		})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
	t.Run("tipo inválido", func(t *testing.T) {
		_, err := e.apply.Apply(ctx, inventory.MovementInput{
			ProductID: "p1", Type: "teleport", Quantity: 1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("cantidad cero fuera de rectificación", func(t *testing.T) {
		_, err := e.apply.Apply(ctx, inventory.MovementInput{
			ProductID: "p1", Type: entity.MovementTypeInbound, Quantity: 0,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("cantidad negativa", func(t *testing.T) {
		_, err := e.apply.Apply(ctx, inventory.MovementInput{
			ProductID: "p1", Type: entity.MovementTypeOutbound, Quantity: -2,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
	t.Run("traslado sin destino", func(t *testing.T) {
		_, err := e.apply.Apply(ctx, inventory.MovementInput{
			ProductID: "p1", Type: entity.MovementTypeTransfer, Quantity: 1,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

// Consistencia del libro: el stock de la ficha siempre coincide con el
// StockAfter del movimiento más reciente, y cada entrada encadena con la
// regla de su tipo.
func TestApply_ConsistenciaDelLibro(t *testing.T) {
	e := newEngine(t)
	e.seedProduct(t, "p1", "Cavi XLR", 0, 5)
	ctx := context.Background()

	steps := []inventory.MovementInput{
		{ProductID: "p1", Type: entity.MovementTypeInbound, Quantity: 20},
		{ProductID: "p1", Type: entity.MovementTypeOutbound, Quantity: 7},
		{ProductID: "p1", Type: entity.MovementTypeWriteoff, Quantity: 1},
		{ProductID: "p1", Type: entity.MovementTypeAdjustment, Quantity: 15},
		{ProductID: "p1", Type: entity.MovementTypeOutbound, Quantity: 5},
	}
	for _, s := range steps {
		_, err := e.apply.Apply(ctx, s)
		require.NoError(t, err)
	}

	movements, err := e.movements.List(ctx, repository.MovementFilter{ProductID: "p1"})
	require.NoError(t, err)
	require.Len(t, movements, len(steps))

	p, err := e.products.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, p.Stock, movements[0].StockAfter, "el stock debe coincidir con el movimiento más reciente")

	// Del más antiguo al más reciente, cada StockBefore encadena con el
	// StockAfter anterior.
	for i := len(movements) - 1; i > 0; i-- {
		assert.Equal(t, movements[i].StockAfter, movements[i-1].StockBefore)
	}
}

// Escenario de punta a punta del módulo: stock 10, mínimo 5.
func TestApply_EscenarioCompleto(t *testing.T) {
	e := newEngine(t)
	e.seedProduct(t, "P", "Prodotto P", 10, 5)
	ctx := context.Background()

	// entrada 5 → 15, sin alerta
	result, err := e.apply.Apply(ctx, inventory.MovementInput{ProductID: "P", Type: entity.MovementTypeInbound, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 15, result.NewStock)
	alert, err := e.alertRepo.GetByProduct(ctx, "P")
	require.NoError(t, err)
	assert.Nil(t, alert)

	// salida 12 → 3, alerta low
	result, err = e.apply.Apply(ctx, inventory.MovementInput{ProductID: "P", Type: entity.MovementTypeOutbound, Quantity: 12})
	require.NoError(t, err)
	assert.Equal(t, 3, result.NewStock)
	alert, err = e.alertRepo.GetByProduct(ctx, "P")
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, "low", alert.Level)

	// salida 5 → rechazada (3 disponibles), stock intacto
	_, err = e.apply.Apply(ctx, inventory.MovementInput{ProductID: "P", Type: entity.MovementTypeOutbound, Quantity: 5})
	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, 3, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)
	p, err := e.products.GetByID(ctx, "P")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)

	// rectificación a 0 → alerta sube a critical
	result, err = e.apply.Apply(ctx, inventory.MovementInput{ProductID: "P", Type: entity.MovementTypeAdjustment, Quantity: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewStock)
	alert, err = e.alertRepo.GetByProduct(ctx, "P")
	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, "critical", alert.Level)
}
