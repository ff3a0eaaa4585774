package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"templo/logger"
	"templo/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecentMovementsLimit cap of the global movement listing
const RecentMovementsLimit = 50

// InventoryService materials and their movement ledger.
type InventoryService struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

// NewInventoryService now may be nil, in which case time.Now is used.
func NewInventoryService(db *gorm.DB, log *logger.Logger, now func() time.Time) *InventoryService {
	if now == nil {
		now = time.Now
	}
	return &InventoryService{db: db, log: log, now: now}
}

// MaterialInput fields accepted when creating a material
type MaterialInput struct {
	Name            string
	Description     string
	Category        string
	Subcategory     string
	Unit            string
	UnitPrice       float64
	InitialQuantity float64
	MinimumQuantity *float64
	Supplier        string
	StorageLocation string
	Notes           string
}

// MaterialUpdate nil fields are left unchanged. There is no quantity field:
// stock only moves through ApplyMovement.
type MaterialUpdate struct {
	Name            *string
	Description     *string
	Category        *string
	Subcategory     *string
	Unit            *string
	UnitPrice       *float64
	MinimumQuantity *float64
	Supplier        *string
	StorageLocation *string
	Notes           *string
}

// MovementInput a requested stock movement
type MovementInput struct {
	Kind     models.MovementKind
	Quantity float64
	Reason   string
	Notes    string
}

// MovementEntry a movement with its material's name joined in. MaterialName is nil
// when the material row no longer exists.
type MovementEntry struct {
	models.Movement
	MaterialName *string `json:"material_nome" gorm:"column:material_nome"`
}

// CategoryCount active materials per category
type CategoryCount struct {
	Category string `json:"categoria" gorm:"column:categoria"`
	Count    int64  `json:"quantidade" gorm:"column:quantidade"`
}

// StockSummary aggregates over active materials
type StockSummary struct {
	TotalMaterials    int64           `json:"total_materiais"`
	LowStockMaterials int64           `json:"materiais_baixo_estoque"`
	TotalStockValue   float64         `json:"valor_total_estoque"`
	ByCategory        []CategoryCount `json:"materiais_por_categoria"`
}

// StockReconciliation compares the stored quantity with a replay of the movement log
type StockReconciliation struct {
	MaterialID       uint    `json:"material_id"`
	CurrentQuantity  float64 `json:"quantidade_atual"`
	ReplayedQuantity float64 `json:"quantidade_calculada"`
	Movements        int     `json:"movimentacoes"`
	Consistent       bool    `json:"consistente"`
}

// ListActive active materials ordered by category then name
func (s *InventoryService) ListActive(ctx context.Context) ([]models.Material, error) {
	list := []models.Material{}
	err := s.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("categoria ASC, nome ASC").
		Find(&list).Error
	if err != nil {
		return nil, storageErr("list materials", err)
	}
	return list, nil
}

// ListLowStock active materials at or below their minimum quantity
func (s *InventoryService) ListLowStock(ctx context.Context) ([]models.Material, error) {
	list := []models.Material{}
	err := s.db.WithContext(ctx).
		Where("ativo = ? AND quantidade_atual <= quantidade_minima", true).
		Order("categoria ASC, nome ASC").
		Find(&list).Error
	if err != nil {
		return nil, storageErr("list low stock", err)
	}
	return list, nil
}

// Create stores a material. A positive initial quantity is recorded as an
// entrance movement in the same transaction.
func (s *InventoryService) Create(ctx context.Context, in MaterialInput) (*models.Material, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" {
		return nil, invalid("nome", "campo obrigatório")
	}
	if in.Category == "" {
		return nil, invalid("categoria", "campo obrigatório")
	}
	if in.UnitPrice < 0 {
		return nil, invalid("preco_unitario", "não pode ser negativo")
	}
	if in.InitialQuantity < 0 {
		return nil, invalid("quantidade_atual", "não pode ser negativa")
	}
	minimum := float64(models.DefaultMinimumQuantity)
	if in.MinimumQuantity != nil {
		if *in.MinimumQuantity < 0 {
			return nil, invalid("quantidade_minima", "não pode ser negativa")
		}
		minimum = *in.MinimumQuantity
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = models.DefaultUnit
	}

	material := models.Material{
		Name:            in.Name,
		Description:     in.Description,
		Category:        in.Category,
		Subcategory:     in.Subcategory,
		Unit:            unit,
		UnitPrice:       in.UnitPrice,
		CurrentQuantity: in.InitialQuantity,
		MinimumQuantity: minimum,
		Supplier:        in.Supplier,
		StorageLocation: in.StorageLocation,
		Notes:           in.Notes,
		Active:          true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&material).Error; err != nil {
			return err
		}
		if material.CurrentQuantity <= 0 {
			return nil
		}
		return tx.Create(&models.Movement{
			MaterialID:        material.ID,
			Kind:              models.MovementEntrance,
			Quantity:          material.CurrentQuantity,
			PreviousQuantity:  0,
			ResultingQuantity: material.CurrentQuantity,
			Reason:            models.InitialStockReason,
			MovedAt:           s.now().UTC(),
		}).Error
	})
	if err != nil {
		return nil, storageErr("create material", err)
	}

	s.log.Info("material created", "id", material.ID, "nome", material.Name, "quantidade", material.CurrentQuantity)
	return &material, nil
}

// Get looks a material up by id, active or not
func (s *InventoryService) Get(ctx context.Context, id uint) (*models.Material, error) {
	var m models.Material
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, storageErr("get material", err)
	}
	return &m, nil
}

// Update merges the supplied fields into the material
func (s *InventoryService) Update(ctx context.Context, id uint, in MaterialUpdate) (*models.Material, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, invalid("nome", "não pode ser vazio")
		}
		updates["nome"] = name
	}
	if in.Category != nil {
		category := strings.TrimSpace(*in.Category)
		if category == "" {
			return nil, invalid("categoria", "não pode ser vazia")
		}
		updates["categoria"] = category
	}
	if in.UnitPrice != nil {
		if *in.UnitPrice < 0 {
			return nil, invalid("preco_unitario", "não pode ser negativo")
		}
		updates["preco_unitario"] = *in.UnitPrice
	}
	if in.MinimumQuantity != nil {
		if *in.MinimumQuantity < 0 {
			return nil, invalid("quantidade_minima", "não pode ser negativa")
		}
		updates["quantidade_minima"] = *in.MinimumQuantity
	}
	if in.Description != nil {
		updates["descricao"] = *in.Description
	}
	if in.Subcategory != nil {
		updates["subcategoria"] = *in.Subcategory
	}
	if in.Unit != nil {
		updates["unidade_medida"] = *in.Unit
	}
	if in.Supplier != nil {
		updates["fornecedor"] = *in.Supplier
	}
	if in.StorageLocation != nil {
		updates["local_armazenamento"] = *in.StorageLocation
	}
	if in.Notes != nil {
		updates["observacoes"] = *in.Notes
	}
	if len(updates) == 0 {
		return m, nil
	}

	if err := s.db.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return nil, storageErr("update material", err)
	}
	s.log.Info("material updated", "id", id)
	return s.Get(ctx, id)
}

// Deactivate soft-deletes a material; its movements are kept
func (s *InventoryService) Deactivate(ctx context.Context, id uint) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(m).Update("ativo", false).Error; err != nil {
		return storageErr("deactivate material", err)
	}
	s.log.Info("material deactivated", "id", id)
	return nil
}

// ApplyMovement changes the stock of a material and appends the movement record.
// Both writes commit together or not at all.
func (s *InventoryService) ApplyMovement(ctx context.Context, id uint, in MovementInput) (*models.Material, error) {
	if !in.Kind.Valid() {
		return nil, invalid("tipo_movimentacao", "deve ser entrada, saida ou ajuste")
	}
	if in.Quantity < 0 || math.IsNaN(in.Quantity) || math.IsInf(in.Quantity, 0) {
		return nil, invalid("quantidade", "deve ser um número não negativo")
	}
	in.Reason = strings.TrimSpace(in.Reason)
	if in.Reason == "" {
		return nil, invalid("motivo", "campo obrigatório")
	}

	var material models.Material
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() != "sqlite" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&material, id).Error; err != nil {
			return err
		}

		if in.Kind == models.MovementExit && material.CurrentQuantity < in.Quantity {
			return ErrInsufficientStock
		}

		previous := material.CurrentQuantity
		next := in.Kind.Apply(previous, in.Quantity)
		if err := tx.Model(&material).Update("quantidade_atual", next).Error; err != nil {
			return err
		}
		material.CurrentQuantity = next

		return tx.Create(&models.Movement{
			MaterialID:        material.ID,
			Kind:              in.Kind,
			Quantity:          in.Quantity,
			PreviousQuantity:  previous,
			ResultingQuantity: next,
			Reason:            in.Reason,
			Notes:             in.Notes,
			MovedAt:           s.now().UTC(),
		}).Error
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientStock) {
			stockRejections.Inc()
		}
		return nil, storageErr("apply movement", err)
	}

	stockMovements.WithLabelValues(string(in.Kind)).Inc()
	s.log.Info("stock movement applied",
		"material_id", material.ID,
		"tipo", in.Kind,
		"quantidade", in.Quantity,
		"quantidade_atual", material.CurrentQuantity)
	return &material, nil
}

func (s *InventoryService) movementQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.Movement{}).
		Select("movimentacoes_estoque.*, materiais.nome AS material_nome").
		Joins("LEFT JOIN materiais ON materiais.id = movimentacoes_estoque.material_id")
}

// ListMovements movements of one material, newest first
func (s *InventoryService) ListMovements(ctx context.Context, materialID uint) ([]MovementEntry, error) {
	entries := []MovementEntry{}
	err := s.movementQuery(ctx).
		Where("movimentacoes_estoque.material_id = ?", materialID).
		Order("movimentacoes_estoque.data_movimentacao DESC, movimentacoes_estoque.id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, storageErr("list movements", err)
	}
	return entries, nil
}

// RecentMovements the latest movements across all materials
func (s *InventoryService) RecentMovements(ctx context.Context) ([]MovementEntry, error) {
	entries := []MovementEntry{}
	err := s.movementQuery(ctx).
		Order("movimentacoes_estoque.data_movimentacao DESC, movimentacoes_estoque.id DESC").
		Limit(RecentMovementsLimit).
		Scan(&entries).Error
	if err != nil {
		return nil, storageErr("list recent movements", err)
	}
	return entries, nil
}

// Summary counts and valuation of active materials
func (s *InventoryService) Summary(ctx context.Context) (*StockSummary, error) {
	db := s.db.WithContext(ctx)
	var summary StockSummary

	if err := db.Model(&models.Material{}).Where("ativo = ?", true).Count(&summary.TotalMaterials).Error; err != nil {
		return nil, storageErr("count materials", err)
	}
	if err := db.Model(&models.Material{}).
		Where("ativo = ? AND quantidade_atual <= quantidade_minima", true).
		Count(&summary.LowStockMaterials).Error; err != nil {
		return nil, storageErr("count low stock", err)
	}
	if err := db.Model(&models.Material{}).
		Select("COALESCE(SUM(preco_unitario * quantidade_atual), 0)").
		Where("ativo = ?", true).
		Scan(&summary.TotalStockValue).Error; err != nil {
		return nil, storageErr("stock value", err)
	}
	if err := db.Model(&models.Material{}).
		Select("categoria, COUNT(id) AS quantidade").
		Where("ativo = ?", true).
		Group("categoria").
		Order("categoria ASC").
		Scan(&summary.ByCategory).Error; err != nil {
		return nil, storageErr("materials by category", err)
	}
	if summary.ByCategory == nil {
		summary.ByCategory = []CategoryCount{}
	}
	return &summary, nil
}

// Reconcile replays the movement log of a material in recording order and
// compares the result with the stored quantity.
func (s *InventoryService) Reconcile(ctx context.Context, id uint) (*StockReconciliation, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var movements []models.Movement
	if err := s.db.WithContext(ctx).
		Where("material_id = ?", id).
		Order("id ASC").
		Find(&movements).Error; err != nil {
		return nil, storageErr("load movements", err)
	}
	replayed := models.ReplayStock(movements)
	return &StockReconciliation{
		MaterialID:       m.ID,
		CurrentQuantity:  m.CurrentQuantity,
		ReplayedQuantity: replayed,
		Movements:        len(movements),
		Consistent:       math.Abs(replayed-m.CurrentQuantity) < 1e-9,
	}, nil
}
