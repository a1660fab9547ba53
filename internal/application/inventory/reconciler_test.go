package inventory_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundwave-studio/almacen/internal/application/inventory"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

// countingProductRepo envuelve el repositorio contando escrituras para
// verificar que la reconciliación no escribe cuando nada cambió.
type countingProductRepo struct {
	repository.ProductRepository
	writes int
}

func (r *countingProductRepo) Create(ctx context.Context, p *entity.InventoryProduct) error {
	r.writes++
	return r.ProductRepository.Create(ctx, p)
}

func (r *countingProductRepo) Update(ctx context.Context, p *entity.InventoryProduct) error {
	r.writes++
	return r.ProductRepository.Update(ctx, p)
}

func (r *countingProductRepo) Delete(ctx context.Context, id string) error {
	r.writes++
	return r.ProductRepository.Delete(ctx, id)
}

func TestReconcile_CreaFichasDesdeCatalogo(t *testing.T) {
	e := newEngine(t)
	e.catalog.Seed(
		catalogProduct("a", "A-1", "Cavi XLR", "cavi"),
		catalogProduct("b", "B-1", "Cuffie", "cuffie"),
	)

	products, err := e.reconciler.Reconcile(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, 0, p.Stock)
		assert.Equal(t, 5, p.StockMinimum)
		assert.Equal(t, 100, p.StockMaximum)
		assert.Equal(t, "Almacén Principal", p.Location)
		assert.True(t, p.PurchaseCost.IsZero())
	}
}

func TestReconcile_IdempotenteSinCambios(t *testing.T) {
	log := zerolog.Nop()
	settings := inventory.DefaultSettings()
	e := newEngine(t)
	e.catalog.Seed(
		catalogProduct("a", "A-1", "Cavi XLR", "cavi"),
		catalogProduct("b", "B-1", "Cuffie", "cuffie"),
	)

	counting := &countingProductRepo{ProductRepository: e.products}
	reconciler := inventory.NewReconcileUseCase(e.catalog, counting, settings, log)

	first, err := reconciler.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, counting.writes)

	second, err := reconciler.Reconcile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, counting.writes, "sin cambios en el catálogo no debe haber escrituras")
	assert.Equal(t, first, second)
}

func TestReconcile_RefrescaCamposEspejoPreservandoStock(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	e.catalog.Seed(catalogProduct("a", "A-1", "Cavi XLR", "cavi"))
	_, err := e.reconciler.Reconcile(ctx)
	require.NoError(t, err)

	// El producto gana stock y umbrales propios antes del renombre.
	_, err = e.apply.Apply(ctx, inventory.MovementInput{ProductID: "a", Type: entity.MovementTypeInbound, Quantity: 9})
	require.NoError(t, err)

	// El catálogo renombra y recategoriza el producto.
	e.catalog.Seed(catalogProduct("a", "A-2", "Cavi XLR Pro", "cavi-pro"))
	products, err := e.reconciler.Reconcile(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Cavi XLR Pro", products[0].Name)
	assert.Equal(t, "A-2", products[0].Code)
	assert.Equal(t, "cavi-pro", products[0].Category)
	assert.Equal(t, 9, products[0].Stock, "el stock no se toca al refrescar el espejo")
	assert.Equal(t, 5, products[0].StockMinimum)
}

func TestReconcile_BajaDeCatalogoEliminaFichaNoHistorial(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	e.catalog.Seed(
		catalogProduct("a", "A-1", "Cavi XLR", "cavi"),
		catalogProduct("b", "B-1", "Cuffie", "cuffie"),
	)
	_, err := e.reconciler.Reconcile(ctx)
	require.NoError(t, err)

	// B acumula historial antes de su baja.
	_, err = e.apply.Apply(ctx, inventory.MovementInput{ProductID: "b", Type: entity.MovementTypeInbound, Quantity: 3})
	require.NoError(t, err)

	// B se desactiva en el catálogo.
	e.catalog.Seed(catalogProduct("a", "A-1", "Cavi XLR", "cavi"))
	products, err := e.reconciler.Reconcile(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "a", products[0].ID)

	p, err := e.products.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, p, "la ficha de B desaparece")

	// El historial de B permanece consultable como registros huérfanos.
	movements, err := e.movements.List(ctx, repository.MovementFilter{ProductID: "b"})
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "Cuffie", movements[0].ProductName)
}

func TestReconcile_PrecioInicialDesdeCatalogo(t *testing.T) {
	e := newEngine(t)
	cat := catalogProduct("a", "A-1", "Cuffie", "cuffie")
	cat.SellPrice = decimalFromFloat(79)
	e.catalog.Seed(cat)

	products, err := e.reconciler.Reconcile(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].SellPrice.Equal(decimalFromFloat(79)))
}
