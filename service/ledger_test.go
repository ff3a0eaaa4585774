package service

import (
	"context"
	"testing"
	"time"

	"templo/database/dbtest"
	"templo/logger"
	"templo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) *LedgerService {
	return NewLedgerService(dbtest.SQLite(t), logger.Nop(), fixedClock)
}

func record(t *testing.T, s *LedgerService, kind models.TransactionKind, category string, amount float64, at time.Time) *models.Transaction {
	t.Helper()
	tr, err := s.Create(context.Background(), TransactionInput{
		Description: category,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		Date:        at,
	})
	require.NoError(t, err)
	return tr
}

func TestLedger_CreateValidation(t *testing.T) {
	s := newLedger(t)
	ctx := context.Background()
	valid := TransactionInput{Description: "Doação", Amount: 10, Kind: models.TransactionIncome, Category: "Doações"}

	cases := map[string]func(in *TransactionInput){
		"descricao": func(in *TransactionInput) { in.Description = "" },
		"tipo":      func(in *TransactionInput) { in.Kind = "transferencia" },
		"valor":     func(in *TransactionInput) { in.Amount = 0 },
		"categoria": func(in *TransactionInput) { in.Category = " " },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			in := valid
			mutate(&in)
			_, err := s.Create(ctx, in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, field, ve.Field)
		})
	}

	tr, err := s.Create(ctx, valid)
	require.NoError(t, err)
	assert.True(t, tr.Date.Equal(testNow))
	assert.Nil(t, tr.MemberID)
}

func TestLedger_ListOrder(t *testing.T) {
	s := newLedger(t)
	old := record(t, s, models.TransactionExpense, "Aluguel", 800, testNow.AddDate(0, -1, 0))
	recent := record(t, s, models.TransactionIncome, "Doações", 200, testNow)
	middle := record(t, s, models.TransactionIncome, "Eventos", 100, testNow.AddDate(0, 0, -3))

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []uint{recent.ID, middle.ID, old.ID}, []uint{list[0].ID, list[1].ID, list[2].ID})
}

func TestLedger_ListOrder_MixedOffsets(t *testing.T) {
	s := newLedger(t)
	ctx := context.Background()
	brt := time.FixedZone("BRT", -3*60*60)

	// 02:00Z written with a -03:00 offset, then 01:00Z written in UTC
	later := record(t, s, models.TransactionIncome, "Doações", 10, time.Date(2024, 2, 1, 23, 0, 0, 0, brt))
	earlier := record(t, s, models.TransactionIncome, "Eventos", 10, time.Date(2024, 2, 2, 1, 0, 0, 0, time.UTC))
	assert.Equal(t, time.UTC, later.Date.Location())

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, []uint{later.ID, earlier.ID}, []uint{list[0].ID, list[1].ID})

	// moving the earlier one past the other through an update
	moved := time.Date(2024, 2, 1, 23, 30, 0, 0, brt)
	_, err = s.Update(ctx, earlier.ID, TransactionUpdate{Date: &moved})
	require.NoError(t, err)
	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{earlier.ID, later.ID}, []uint{list[0].ID, list[1].ID})
	assert.True(t, list[0].Date.Equal(moved))
}

func TestLedger_UpdateAndDelete(t *testing.T) {
	s := newLedger(t)
	ctx := context.Background()
	tr := record(t, s, models.TransactionExpense, "Material de Limpeza", 35, testNow)

	kind := models.TransactionIncome
	got, err := s.Update(ctx, tr.ID, TransactionUpdate{Amount: ptr(40.0), Kind: &kind, MemberID: ptr(uint(7))})
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.Amount)
	assert.Equal(t, models.TransactionIncome, got.Kind)
	assert.Equal(t, "Material de Limpeza", got.Category)
	require.NotNil(t, got.MemberID)
	assert.Equal(t, uint(7), *got.MemberID)

	var ve *ValidationError
	_, err = s.Update(ctx, tr.ID, TransactionUpdate{Amount: ptr(-1.0)})
	assert.ErrorAs(t, err, &ve)

	require.NoError(t, s.Delete(ctx, tr.ID))
	_, err = s.Get(ctx, tr.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, tr.ID), ErrNotFound)
}

func TestLedger_Summary(t *testing.T) {
	s := newLedger(t)
	record(t, s, models.TransactionIncome, "Doações", 150, testNow)
	record(t, s, models.TransactionIncome, "Doações", 50, testNow)
	record(t, s, models.TransactionIncome, "Mensalidades", 100, testNow)
	record(t, s, models.TransactionExpense, "Energia Elétrica", 80, testNow)

	summary, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 300.0, summary.Income)
	assert.Equal(t, 80.0, summary.Expenses)
	assert.Equal(t, 220.0, summary.Balance)
	assert.Equal(t, []CategoryTotal{
		{Category: "Doações", Total: 200},
		{Category: "Mensalidades", Total: 100},
	}, summary.IncomeByCategory)
	assert.Equal(t, []CategoryTotal{{Category: "Energia Elétrica", Total: 80}}, summary.ExpensesByCategory)
}

func TestLedger_EmptySummary(t *testing.T) {
	summary, err := newLedger(t).Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Income)
	assert.Zero(t, summary.Expenses)
	assert.Zero(t, summary.Balance)
	assert.Empty(t, summary.IncomeByCategory)
}
