package models

import "time"

// PeriodLayout layout of a billing period ("YYYY-MM")
const PeriodLayout = "2006-01"

// Member a registered member of the temple.
type Member struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"nome" gorm:"column:nome;size:200;not null;index"`
	Phone       string    `json:"telefone" gorm:"column:telefone;size:20"`
	Email       string    `json:"email" gorm:"column:email;size:200"`
	Address     string    `json:"endereco" gorm:"column:endereco;type:text"`
	BirthDate   *Date     `json:"data_nascimento" gorm:"column:data_nascimento"`
	JoinDate    *Date     `json:"data_ingresso" gorm:"column:data_ingresso"`
	MonthlyDues float64   `json:"valor_mensalidade" gorm:"column:valor_mensalidade;type:decimal(12,2);default:0"`
	Active      bool      `json:"ativo" gorm:"column:ativo;default:true;index"`
	Notes       string    `json:"observacoes" gorm:"column:observacoes;type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Member) TableName() string {
	return "membros"
}

// MonthlyPayment dues paid by a member for one billing period.
// At most one row exists per (member, period).
type MonthlyPayment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MemberID    uint      `json:"membro_id" gorm:"column:membro_id;not null;uniqueIndex:idx_pagamento_membro_mes"`
	Period      string    `json:"mes_referencia" gorm:"column:mes_referencia;size:7;not null;uniqueIndex:idx_pagamento_membro_mes;index:idx_pagamento_mes"`
	AmountPaid  float64   `json:"valor_pago" gorm:"column:valor_pago;type:decimal(12,2);not null"`
	PaymentDate Date      `json:"data_pagamento" gorm:"column:data_pagamento;index"`
	Notes       string    `json:"observacoes" gorm:"column:observacoes;type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

func (MonthlyPayment) TableName() string {
	return "pagamentos_mensalidade"
}

// PeriodOf formats t as a billing period.
func PeriodOf(t time.Time) string {
	return t.Format(PeriodLayout)
}

// ValidPeriod reports whether s is a "YYYY-MM" period.
func ValidPeriod(s string) bool {
	if len(s) != len(PeriodLayout) {
		return false
	}
	_, err := time.Parse(PeriodLayout, s)
	return err == nil
}
