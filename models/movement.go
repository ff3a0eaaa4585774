package models

import "time"

// MovementKind kind of stock movement
type MovementKind string

const (
	MovementEntrance   MovementKind = "entrada"
	MovementExit       MovementKind = "saida"
	MovementAdjustment MovementKind = "ajuste"
)

// Valid reports whether k is a known kind
func (k MovementKind) Valid() bool {
	switch k {
	case MovementEntrance, MovementExit, MovementAdjustment:
		return true
	}
	return false
}

// Apply returns the stock that results from applying qty of kind k to current.
// Adjustments replace the running total instead of adding to it.
func (k MovementKind) Apply(current, qty float64) float64 {
	switch k {
	case MovementEntrance:
		return current + qty
	case MovementExit:
		return current - qty
	case MovementAdjustment:
		return qty
	}
	return current
}

// Movement one recorded change of a material's stock. Quantity keeps the submitted
// value: a delta for entrada/saida and the new absolute stock for ajuste.
// PreviousQuantity and ResultingQuantity hold the stock around the movement.
type Movement struct {
	ID                uint         `json:"id" gorm:"primaryKey"`
	MaterialID        uint         `json:"material_id" gorm:"column:material_id;not null;index"`
	Kind              MovementKind `json:"tipo_movimentacao" gorm:"column:tipo_movimentacao;size:20;not null"`
	Quantity          float64      `json:"quantidade" gorm:"column:quantidade;not null"`
	PreviousQuantity  float64      `json:"quantidade_anterior" gorm:"column:quantidade_anterior"`
	ResultingQuantity float64      `json:"quantidade_resultante" gorm:"column:quantidade_resultante"`
	Reason            string       `json:"motivo" gorm:"column:motivo;size:200;not null"`
	Notes             string       `json:"observacoes" gorm:"column:observacoes;type:text"`
	MovedAt           time.Time    `json:"data_movimentacao" gorm:"column:data_movimentacao;index"`
	CreatedAt         time.Time    `json:"created_at"`
}

func (Movement) TableName() string {
	return "movimentacoes_estoque"
}

// ReplayStock folds movements, in the order given, into the resulting stock.
func ReplayStock(movements []Movement) float64 {
	var qty float64
	for _, m := range movements {
		qty = m.Kind.Apply(qty, m.Quantity)
	}
	return qty
}
