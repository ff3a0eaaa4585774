package models

import "time"

// TransactionKind income or expense
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "receita"
	TransactionExpense TransactionKind = "despesa"
)

// Valid reports whether k is a known kind
func (k TransactionKind) Valid() bool {
	return k == TransactionIncome || k == TransactionExpense
}

// Transaction an entry of the general ledger. MemberID is informational only.
type Transaction struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Description string          `json:"descricao" gorm:"column:descricao;size:200;not null"`
	Amount      float64         `json:"valor" gorm:"column:valor;type:decimal(12,2);not null"`
	Kind        TransactionKind `json:"tipo" gorm:"column:tipo;size:20;not null;index"`
	Category    string          `json:"categoria" gorm:"column:categoria;size:100;not null"`
	Subcategory string          `json:"subcategoria" gorm:"column:subcategoria;size:100"`
	Date        time.Time       `json:"data" gorm:"column:data;index"`
	MemberID    *uint           `json:"membro_id" gorm:"column:membro_id;index"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transacoes"
}
