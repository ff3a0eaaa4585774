package service

import (
	"context"
	"math"
	"strings"
	"time"

	"templo/logger"
	"templo/models"

	"gorm.io/gorm"
)

// LedgerService income and expense transactions
type LedgerService struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

func NewLedgerService(db *gorm.DB, log *logger.Logger, now func() time.Time) *LedgerService {
	if now == nil {
		now = time.Now
	}
	return &LedgerService{db: db, log: log, now: now}
}

// TransactionInput a transaction to record. A zero Date means now.
type TransactionInput struct {
	Description string
	Amount      float64
	Kind        models.TransactionKind
	Category    string
	Subcategory string
	Date        time.Time
	MemberID    *uint
}

// TransactionUpdate nil fields are left unchanged
type TransactionUpdate struct {
	Description *string
	Amount      *float64
	Kind        *models.TransactionKind
	Category    *string
	Subcategory *string
	Date        *time.Time
	MemberID    *uint
}

// CategoryTotal sum of one category
type CategoryTotal struct {
	Category string  `json:"categoria" gorm:"column:categoria"`
	Total    float64 `json:"valor" gorm:"column:valor"`
}

// LedgerSummary totals over all transactions
type LedgerSummary struct {
	Income             float64         `json:"receitas"`
	Expenses           float64         `json:"despesas"`
	Balance            float64         `json:"saldo"`
	IncomeByCategory   []CategoryTotal `json:"receitas_por_categoria"`
	ExpensesByCategory []CategoryTotal `json:"despesas_por_categoria"`
}

// List every transaction, most recent first
func (s *LedgerService) List(ctx context.Context) ([]models.Transaction, error) {
	list := []models.Transaction{}
	if err := s.db.WithContext(ctx).Order("data DESC, id DESC").Find(&list).Error; err != nil {
		return nil, storageErr("list transactions", err)
	}
	return list, nil
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Create records a transaction
func (s *LedgerService) Create(ctx context.Context, in TransactionInput) (*models.Transaction, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	if in.Description == "" {
		return nil, invalid("descricao", "campo obrigatório")
	}
	if !in.Kind.Valid() {
		return nil, invalid("tipo", "deve ser receita ou despesa")
	}
	if !validAmount(in.Amount) {
		return nil, invalid("valor", "deve ser maior que zero")
	}
	if in.Category == "" {
		return nil, invalid("categoria", "campo obrigatório")
	}
	if in.Date.IsZero() {
		in.Date = s.now()
	}
	// stored as UTC so text-encoded timestamps (sqlite) sort chronologically
	in.Date = in.Date.UTC()

	tr := models.Transaction{
		Description: in.Description,
		Amount:      in.Amount,
		Kind:        in.Kind,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Date:        in.Date,
		MemberID:    in.MemberID,
	}
	if err := s.db.WithContext(ctx).Create(&tr).Error; err != nil {
		return nil, storageErr("create transaction", err)
	}
	s.log.Info("transaction created", "id", tr.ID, "tipo", tr.Kind, "valor", tr.Amount)
	return &tr, nil
}

// Get looks a transaction up by id
func (s *LedgerService) Get(ctx context.Context, id uint) (*models.Transaction, error) {
	var tr models.Transaction
	if err := s.db.WithContext(ctx).First(&tr, id).Error; err != nil {
		return nil, storageErr("get transaction", err)
	}
	return &tr, nil
}

// Update merges the supplied fields into the transaction
func (s *LedgerService) Update(ctx context.Context, id uint, in TransactionUpdate) (*models.Transaction, error) {
	tr, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		if desc == "" {
			return nil, invalid("descricao", "não pode ser vazio")
		}
		updates["descricao"] = desc
	}
	if in.Amount != nil {
		if !validAmount(*in.Amount) {
			return nil, invalid("valor", "deve ser maior que zero")
		}
		updates["valor"] = *in.Amount
	}
	if in.Kind != nil {
		if !in.Kind.Valid() {
			return nil, invalid("tipo", "deve ser receita ou despesa")
		}
		updates["tipo"] = *in.Kind
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return nil, invalid("categoria", "não pode ser vazio")
		}
		updates["categoria"] = category
	}
	if in.Subcategory != nil {
		updates["subcategoria"] = *in.Subcategory
	}
	if in.Date != nil {
		updates["data"] = in.Date.UTC()
	}
	if in.MemberID != nil {
		updates["membro_id"] = *in.MemberID
	}
	if len(updates) == 0 {
		return tr, nil
	}

	if err := s.db.WithContext(ctx).Model(tr).Updates(updates).Error; err != nil {
		return nil, storageErr("update transaction", err)
	}
	s.log.Info("transaction updated", "id", id)
	return s.Get(ctx, id)
}

// Delete removes a transaction permanently
func (s *LedgerService) Delete(ctx context.Context, id uint) error {
	tr, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(tr).Error; err != nil {
		return storageErr("delete transaction", err)
	}
	s.log.Info("transaction deleted", "id", id)
	return nil
}

func (s *LedgerService) sumByKind(ctx context.Context, kind models.TransactionKind) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("COALESCE(SUM(valor), 0)").
		Where("tipo = ?", kind).
		Scan(&total).Error
	return total, err
}

func (s *LedgerService) totalsByCategory(ctx context.Context, kind models.TransactionKind) ([]CategoryTotal, error) {
	totals := []CategoryTotal{}
	err := s.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select("categoria, COALESCE(SUM(valor), 0) AS valor").
		Where("tipo = ?", kind).
		Group("categoria").
		Order("valor DESC").
		Scan(&totals).Error
	return totals, err
}

// Summary income, expenses, balance and per-category totals
func (s *LedgerService) Summary(ctx context.Context) (*LedgerSummary, error) {
	var (
		summary LedgerSummary
		err     error
	)
	if summary.Income, err = s.sumByKind(ctx, models.TransactionIncome); err != nil {
		return nil, storageErr("sum income", err)
	}
	if summary.Expenses, err = s.sumByKind(ctx, models.TransactionExpense); err != nil {
		return nil, storageErr("sum expenses", err)
	}
	summary.Balance = summary.Income - summary.Expenses

	if summary.IncomeByCategory, err = s.totalsByCategory(ctx, models.TransactionIncome); err != nil {
		return nil, storageErr("income by category", err)
	}
	if summary.ExpensesByCategory, err = s.totalsByCategory(ctx, models.TransactionExpense); err != nil {
		return nil, storageErr("expenses by category", err)
	}
	return &summary, nil
}
