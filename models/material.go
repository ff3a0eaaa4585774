package models

import (
	"encoding/json"
	"time"
)

// Material defaults applied on create
const (
	DefaultUnit            = "unidade"
	DefaultMinimumQuantity = 5
	InitialStockReason     = "Estoque inicial"
)

// Material a ritual or consumable item kept in the temple stock.
// CurrentQuantity only changes through movements.
type Material struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"nome" gorm:"column:nome;size:200;not null"`
	Description     string    `json:"descricao" gorm:"column:descricao;type:text"`
	Category        string    `json:"categoria" gorm:"column:categoria;size:100;not null;index"`
	Subcategory     string    `json:"subcategoria" gorm:"column:subcategoria;size:100"`
	Unit            string    `json:"unidade_medida" gorm:"column:unidade_medida;size:20;default:unidade"`
	UnitPrice       float64   `json:"preco_unitario" gorm:"column:preco_unitario;type:decimal(12,2);not null"`
	CurrentQuantity float64   `json:"quantidade_atual" gorm:"column:quantidade_atual;default:0"`
	MinimumQuantity float64   `json:"quantidade_minima" gorm:"column:quantidade_minima"`
	Supplier        string    `json:"fornecedor" gorm:"column:fornecedor;size:200"`
	StorageLocation string    `json:"local_armazenamento" gorm:"column:local_armazenamento;size:100"`
	Notes           string    `json:"observacoes" gorm:"column:observacoes;type:text"`
	Active          bool      `json:"ativo" gorm:"column:ativo;default:true;index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Material) TableName() string {
	return "materiais"
}

// TotalValue unit price times current quantity
func (m Material) TotalValue() float64 {
	return m.UnitPrice * m.CurrentQuantity
}

// IsLowStock reports quantity at or below the minimum threshold
func (m Material) IsLowStock() bool {
	return m.CurrentQuantity <= m.MinimumQuantity
}

// MarshalJSON adds the derived valor_total and estoque_baixo fields.
func (m Material) MarshalJSON() ([]byte, error) {
	type plain Material
	return json.Marshal(struct {
		plain
		TotalValue float64 `json:"valor_total"`
		LowStock   bool    `json:"estoque_baixo"`
	}{plain(m), m.TotalValue(), m.IsLowStock()})
}
