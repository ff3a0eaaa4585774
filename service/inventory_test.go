package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"templo/database/dbtest"
	"templo/logger"
	"templo/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func ptr[T any](v T) *T { return &v }

func newInventory(t *testing.T) *InventoryService {
	return NewInventoryService(dbtest.SQLite(t), logger.Nop(), fixedClock)
}

func createMaterial(t *testing.T, s *InventoryService, name string, qty float64) *models.Material {
	t.Helper()
	m, err := s.Create(context.Background(), MaterialInput{
		Name:            name,
		Category:        "Velas",
		UnitPrice:       2.5,
		InitialQuantity: qty,
	})
	require.NoError(t, err)
	return m
}

func TestInventory_CreateRecordsInitialStock(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()

	m := createMaterial(t, s, "Vela branca", 10)
	assert.NotZero(t, m.ID)
	assert.Equal(t, models.DefaultUnit, m.Unit)
	assert.Equal(t, float64(models.DefaultMinimumQuantity), m.MinimumQuantity)
	assert.True(t, m.Active)

	movements, err := s.ListMovements(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	mv := movements[0]
	assert.Equal(t, models.MovementEntrance, mv.Kind)
	assert.Equal(t, 10.0, mv.Quantity)
	assert.Equal(t, 0.0, mv.PreviousQuantity)
	assert.Equal(t, 10.0, mv.ResultingQuantity)
	assert.Equal(t, models.InitialStockReason, mv.Reason)
	require.NotNil(t, mv.MaterialName)
	assert.Equal(t, "Vela branca", *mv.MaterialName)

	empty := createMaterial(t, s, "Incenso", 0)
	movements, err = s.ListMovements(ctx, empty.ID)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestInventory_CreateValidation(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()

	var ve *ValidationError
	_, err := s.Create(ctx, MaterialInput{Category: "Velas"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "nome", ve.Field)

	_, err = s.Create(ctx, MaterialInput{Name: "Vela"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "categoria", ve.Field)

	_, err = s.Create(ctx, MaterialInput{Name: "Vela", Category: "Velas", InitialQuantity: -1})
	require.ErrorAs(t, err, &ve)

	// an explicit zero minimum is kept
	m, err := s.Create(ctx, MaterialInput{Name: "Pemba", Category: "Pembas", MinimumQuantity: ptr(0.0)})
	require.NoError(t, err)
	stored, err := s.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.MinimumQuantity)
}

func TestInventory_ApplyMovement(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()
	m := createMaterial(t, s, "Vela branca", 10)

	got, err := s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementEntrance, Quantity: 5, Reason: "Compra"})
	require.NoError(t, err)
	assert.Equal(t, 15.0, got.CurrentQuantity)

	got, err = s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementExit, Quantity: 3, Reason: "Gira"})
	require.NoError(t, err)
	assert.Equal(t, 12.0, got.CurrentQuantity)

	got, err = s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementAdjustment, Quantity: 20, Reason: "Inventário"})
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.CurrentQuantity)

	// exit may empty the stock exactly
	got, err = s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementExit, Quantity: 20, Reason: "Festa"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.CurrentQuantity)

	movements, err := s.ListMovements(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, movements, 5)
	// newest first
	assert.Equal(t, "Festa", movements[0].Reason)
	assert.Equal(t, 20.0, movements[0].PreviousQuantity)
	assert.Equal(t, 0.0, movements[0].ResultingQuantity)
	assert.Equal(t, models.MovementAdjustment, movements[1].Kind)
	assert.Equal(t, 20.0, movements[1].Quantity)
	assert.Equal(t, 12.0, movements[1].PreviousQuantity)
}

func TestInventory_ApplyMovement_InsufficientStock(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()
	m := createMaterial(t, s, "Vela preta", 4)
	before := testutil.ToFloat64(stockRejections)

	_, err := s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementExit, Quantity: 4.5, Reason: "Gira"})
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, before+1, testutil.ToFloat64(stockRejections))

	stored, err := s.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, stored.CurrentQuantity)

	movements, err := s.ListMovements(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, movements, 1)
}

func TestInventory_ApplyMovement_Validation(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()
	m := createMaterial(t, s, "Vela", 1)

	var ve *ValidationError
	_, err := s.ApplyMovement(ctx, m.ID, MovementInput{Kind: "doacao", Quantity: 1, Reason: "x"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tipo_movimentacao", ve.Field)

	_, err = s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementEntrance, Quantity: -2, Reason: "x"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "quantidade", ve.Field)

	_, err = s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementEntrance, Quantity: 1, Reason: "  "})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "motivo", ve.Field)

	_, err = s.ApplyMovement(ctx, 999, MovementInput{Kind: models.MovementEntrance, Quantity: 1, Reason: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInventory_DeactivatedMaterial(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()
	a := createMaterial(t, s, "Arruda", 3)
	b := createMaterial(t, s, "Alecrim", 3)

	require.NoError(t, s.Deactivate(ctx, a.ID))
	assert.ErrorIs(t, s.Deactivate(ctx, 999), ErrNotFound)

	list, err := s.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	// still readable and still movable
	stored, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, stored.Active)
	moved, err := s.ApplyMovement(ctx, a.ID, MovementInput{Kind: models.MovementEntrance, Quantity: 2, Reason: "Doação"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, moved.CurrentQuantity)

	movements, err := s.ListMovements(ctx, a.ID)
	require.NoError(t, err)
	require.NotEmpty(t, movements)
	assert.Equal(t, "Arruda", *movements[0].MaterialName)
}

func TestInventory_Update(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()
	m := createMaterial(t, s, "Vela", 8)

	got, err := s.Update(ctx, m.ID, MaterialUpdate{Name: ptr("Vela de 7 dias"), UnitPrice: ptr(4.0)})
	require.NoError(t, err)
	assert.Equal(t, "Vela de 7 dias", got.Name)
	assert.Equal(t, 4.0, got.UnitPrice)
	assert.Equal(t, "Velas", got.Category)
	assert.Equal(t, 8.0, got.CurrentQuantity)

	var ve *ValidationError
	_, err = s.Update(ctx, m.ID, MaterialUpdate{Name: ptr("")})
	assert.ErrorAs(t, err, &ve)

	_, err = s.Update(ctx, 999, MaterialUpdate{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInventory_LowStockAndSummary(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()
	createMaterial(t, s, "Vela branca", 10)
	low := createMaterial(t, s, "Vela vermelha", 5)
	_, err := s.Create(ctx, MaterialInput{Name: "Quartzo", Category: "Cristais e Pedras", UnitPrice: 12, InitialQuantity: 1, MinimumQuantity: ptr(0.0)})
	require.NoError(t, err)
	gone := createMaterial(t, s, "Vela azul", 1)
	require.NoError(t, s.Deactivate(ctx, gone.ID))

	lows, err := s.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, lows, 1)
	assert.Equal(t, low.ID, lows[0].ID)

	summary, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalMaterials)
	assert.Equal(t, int64(1), summary.LowStockMaterials)
	assert.InDelta(t, 2.5*10+2.5*5+12, summary.TotalStockValue, 1e-9)
	assert.Equal(t, []CategoryCount{
		{Category: "Cristais e Pedras", Count: 1},
		{Category: "Velas", Count: 2},
	}, summary.ByCategory)
}

func TestInventory_EmptySummary(t *testing.T) {
	summary, err := newInventory(t).Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalMaterials)
	assert.Zero(t, summary.TotalStockValue)
	assert.NotNil(t, summary.ByCategory)
}

func TestInventory_RecentMovementsLimit(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()
	m := createMaterial(t, s, "Incenso", 1)
	for i := 0; i < RecentMovementsLimit+5; i++ {
		_, err := s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementEntrance, Quantity: 1, Reason: "Compra"})
		require.NoError(t, err)
	}

	recent, err := s.RecentMovements(ctx)
	require.NoError(t, err)
	assert.Len(t, recent, RecentMovementsLimit)
	assert.Greater(t, recent[0].ID, recent[1].ID)

	none, err := s.ListMovements(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInventory_Reconcile(t *testing.T) {
	s := newInventory(t)
	ctx := context.Background()
	m := createMaterial(t, s, "Vela", 10)
	for _, in := range []MovementInput{
		{Kind: models.MovementExit, Quantity: 4, Reason: "Gira"},
		{Kind: models.MovementAdjustment, Quantity: 20, Reason: "Contagem"},
		{Kind: models.MovementExit, Quantity: 5, Reason: "Gira"},
		{Kind: models.MovementEntrance, Quantity: 1.5, Reason: "Compra"},
	} {
		_, err := s.ApplyMovement(ctx, m.ID, in)
		require.NoError(t, err)
	}

	rec, err := s.Reconcile(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 16.5, rec.CurrentQuantity)
	assert.Equal(t, 16.5, rec.ReplayedQuantity)
	assert.Equal(t, 5, rec.Movements)
	assert.True(t, rec.Consistent)

	_, err = s.Reconcile(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInventory_MovementOrder_MixedOffsets(t *testing.T) {
	ctx := context.Background()
	brt := time.FixedZone("BRT", -3*60*60)
	clock := time.Date(2024, 2, 1, 23, 0, 0, 0, brt)
	s := NewInventoryService(dbtest.SQLite(t), logger.Nop(), func() time.Time { return clock })

	m := createMaterial(t, s, "Vela", 0)
	_, err := s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementEntrance, Quantity: 5, Reason: "Compra"})
	require.NoError(t, err)

	// one hour earlier in absolute time, written in UTC
	clock = time.Date(2024, 2, 2, 1, 0, 0, 0, time.UTC)
	_, err = s.ApplyMovement(ctx, m.ID, MovementInput{Kind: models.MovementExit, Quantity: 1, Reason: "Gira"})
	require.NoError(t, err)

	movements, err := s.ListMovements(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, models.MovementEntrance, movements[0].Kind)
	assert.Equal(t, models.MovementExit, movements[1].Kind)
	assert.True(t, movements[0].MovedAt.After(movements[1].MovedAt))
}

func TestInventory_MovementsOfRemovedMaterial(t *testing.T) {
	ctx := context.Background()
	db := dbtest.SQLite(t)
	s := NewInventoryService(db, logger.Nop(), fixedClock)
	m := createMaterial(t, s, "Vela", 4)
	kept := createMaterial(t, s, "Incenso", 2)

	require.NoError(t, db.Exec("DELETE FROM materiais WHERE id = ?", m.ID).Error)

	movements, err := s.ListMovements(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Nil(t, movements[0].MaterialName)

	recent, err := s.RecentMovements(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	names := map[uint]*string{}
	for _, mv := range recent {
		names[mv.MaterialID] = mv.MaterialName
	}
	assert.Nil(t, names[m.ID])
	require.NotNil(t, names[kept.ID])
	assert.Equal(t, "Incenso", *names[kept.ID])
}

func TestInventory_ApplyMovement_RollsBackOnInsertFailure(t *testing.T) {
	db, mock := dbtest.Mock(t)
	s := NewInventoryService(db, logger.Nop(), fixedClock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `materiais`.*FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome", "categoria", "preco_unitario", "quantidade_atual", "quantidade_minima", "ativo"}).
			AddRow(1, "Vela", "Velas", 2.5, 10, 5, true))
	mock.ExpectExec("UPDATE `materiais`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `movimentacoes_estoque`").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := s.ApplyMovement(context.Background(), 1, MovementInput{Kind: models.MovementExit, Quantity: 2, Reason: "Gira"})
	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "apply movement", se.Op)
	require.NoError(t, mock.ExpectationsWereMet())
}
