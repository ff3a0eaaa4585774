package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"templo/logger"
	"templo/models"

	"gorm.io/gorm"
)

// MembershipService members, their monthly payments and delinquency.
type MembershipService struct {
	db  *gorm.DB
	log *logger.Logger
	now func() time.Time
}

// NewMembershipService now drives the current billing period; nil means time.Now.
func NewMembershipService(db *gorm.DB, log *logger.Logger, now func() time.Time) *MembershipService {
	if now == nil {
		now = time.Now
	}
	return &MembershipService{db: db, log: log, now: now}
}

// MemberInput fields accepted when registering a member
type MemberInput struct {
	Name        string
	Phone       string
	Email       string
	Address     string
	BirthDate   *models.Date
	JoinDate    *models.Date
	MonthlyDues float64
	Notes       string
}

// MemberUpdate nil fields are left unchanged. The active flag is not updatable.
type MemberUpdate struct {
	Name        *string
	Phone       *string
	Email       *string
	Address     *string
	BirthDate   *models.Date
	JoinDate    *models.Date
	MonthlyDues *float64
	Notes       *string
}

// PaymentInput a monthly payment to record
type PaymentInput struct {
	MemberID    uint
	Period      string
	AmountPaid  float64
	PaymentDate *models.Date
	Notes       string
}

// PaymentEntry a payment with its member's name joined in
type PaymentEntry struct {
	models.MonthlyPayment
	MemberName *string `json:"membro_nome" gorm:"column:membro_nome"`
}

// MembershipSummary registry aggregates for one billing period
type MembershipSummary struct {
	Period            string  `json:"mes_referencia"`
	TotalMembers      int64   `json:"total_membros"`
	ExpectedRevenue   float64 `json:"receita_esperada_mensal"`
	PeriodRevenue     float64 `json:"receita_mes_atual"`
	DelinquentMembers int64   `json:"membros_inadimplentes"`
	AdimplencyPercent float64 `json:"percentual_adimplencia"`
}

// CurrentPeriod the billing period of the service clock
func (s *MembershipService) CurrentPeriod() string {
	return models.PeriodOf(s.now())
}

func (s *MembershipService) resolvePeriod(period string) (string, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return s.CurrentPeriod(), nil
	}
	if !models.ValidPeriod(period) {
		return "", invalid("mes_referencia", "formato esperado YYYY-MM")
	}
	return period, nil
}

// ListActive active members ordered by name
func (s *MembershipService) ListActive(ctx context.Context) ([]models.Member, error) {
	list := []models.Member{}
	if err := s.db.WithContext(ctx).Where("ativo = ?", true).Order("nome ASC").Find(&list).Error; err != nil {
		return nil, storageErr("list members", err)
	}
	return list, nil
}

// Create registers a member. The join date defaults to today.
func (s *MembershipService) Create(ctx context.Context, in MemberInput) (*models.Member, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, invalid("nome", "campo obrigatório")
	}
	if in.MonthlyDues < 0 {
		return nil, invalid("valor_mensalidade", "não pode ser negativo")
	}
	joinDate := in.JoinDate
	if joinDate == nil {
		today := models.NewDate(s.now())
		joinDate = &today
	}

	member := models.Member{
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       strings.TrimSpace(in.Email),
		Address:     in.Address,
		BirthDate:   in.BirthDate,
		JoinDate:    joinDate,
		MonthlyDues: in.MonthlyDues,
		Active:      true,
		Notes:       in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		return nil, storageErr("create member", err)
	}
	s.log.Info("member created", "id", member.ID, "nome", member.Name)
	return &member, nil
}

// Get looks a member up by id, active or not
func (s *MembershipService) Get(ctx context.Context, id uint) (*models.Member, error) {
	var m models.Member
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, storageErr("get member", err)
	}
	return &m, nil
}

// Update merges the supplied fields into the member
func (s *MembershipService) Update(ctx context.Context, id uint, in MemberUpdate) (*models.Member, error) {
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
	if in.MonthlyDues != nil {
		if *in.MonthlyDues < 0 {
			return nil, invalid("valor_mensalidade", "não pode ser negativo")
		}
		updates["valor_mensalidade"] = *in.MonthlyDues
	}
	if in.Phone != nil {
		updates["telefone"] = *in.Phone
	}
	if in.Email != nil {
		updates["email"] = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		updates["endereco"] = *in.Address
	}
	if in.BirthDate != nil {
		updates["data_nascimento"] = *in.BirthDate
	}
	if in.JoinDate != nil {
		updates["data_ingresso"] = *in.JoinDate
	}
	if in.Notes != nil {
		updates["observacoes"] = *in.Notes
	}
	if len(updates) == 0 {
		return m, nil
	}

	if err := s.db.WithContext(ctx).Model(m).Updates(updates).Error; err != nil {
		return nil, storageErr("update member", err)
	}
	s.log.Info("member updated", "id", id)
	return s.Get(ctx, id)
}

// Deactivate soft-deletes a member; payments are kept
func (s *MembershipService) Deactivate(ctx context.Context, id uint) error {
	m, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(m).Update("ativo", false).Error; err != nil {
		return storageErr("deactivate member", err)
	}
	s.log.Info("member deactivated", "id", id)
	return nil
}

// RecordPayment stores a payment unless one already exists for the member and
// period. The existence check and the insert share a transaction and the unique
// index on (membro_id, mes_referencia) catches concurrent inserts.
func (s *MembershipService) RecordPayment(ctx context.Context, in PaymentInput) (*PaymentEntry, error) {
	if in.MemberID == 0 {
		return nil, invalid("membro_id", "campo obrigatório")
	}
	in.Period = strings.TrimSpace(in.Period)
	if !models.ValidPeriod(in.Period) {
		return nil, invalid("mes_referencia", "formato esperado YYYY-MM")
	}
	if in.AmountPaid < 0 {
		return nil, invalid("valor_pago", "não pode ser negativo")
	}
	paymentDate := models.NewDate(s.now())
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}

	var entry PaymentEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var member models.Member
		if err := tx.First(&member, in.MemberID).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&models.MonthlyPayment{}).
			Where("membro_id = ? AND mes_referencia = ?", in.MemberID, in.Period).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicatePayment
		}

		payment := models.MonthlyPayment{
			MemberID:    in.MemberID,
			Period:      in.Period,
			AmountPaid:  in.AmountPaid,
			PaymentDate: paymentDate,
			Notes:       in.Notes,
		}
		if err := tx.Create(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicatePayment
			}
			return err
		}
		entry = PaymentEntry{MonthlyPayment: payment, MemberName: &member.Name}
		return nil
	})
	if err != nil {
		return nil, storageErr("record payment", err)
	}

	paymentsRecorded.Inc()
	s.log.Info("payment recorded", "id", entry.ID, "membro_id", in.MemberID, "mes_referencia", in.Period)
	return &entry, nil
}

// DeletePayment removes a payment permanently
func (s *MembershipService) DeletePayment(ctx context.Context, id uint) error {
	var p models.MonthlyPayment
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return storageErr("get payment", err)
	}
	if err := s.db.WithContext(ctx).Delete(&p).Error; err != nil {
		return storageErr("delete payment", err)
	}
	s.log.Info("payment deleted", "id", id, "membro_id", p.MemberID, "mes_referencia", p.Period)
	return nil
}

func (s *MembershipService) paymentQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&models.MonthlyPayment{}).
		Select("pagamentos_mensalidade.*, membros.nome AS membro_nome").
		Joins("LEFT JOIN membros ON membros.id = pagamentos_mensalidade.membro_id")
}

// ListMemberPayments payments of one member, latest period first
func (s *MembershipService) ListMemberPayments(ctx context.Context, memberID uint) ([]PaymentEntry, error) {
	entries := []PaymentEntry{}
	err := s.paymentQuery(ctx).
		Where("pagamentos_mensalidade.membro_id = ?", memberID).
		Order("pagamentos_mensalidade.mes_referencia DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, storageErr("list member payments", err)
	}
	return entries, nil
}

// ListPayments every payment, latest payment date first
func (s *MembershipService) ListPayments(ctx context.Context) ([]PaymentEntry, error) {
	entries := []PaymentEntry{}
	err := s.paymentQuery(ctx).
		Order("pagamentos_mensalidade.data_pagamento DESC, pagamentos_mensalidade.id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, storageErr("list payments", err)
	}
	return entries, nil
}

// ListPeriodPayments payments referring to one period ("" = current), by member name
func (s *MembershipService) ListPeriodPayments(ctx context.Context, period string) (string, []PaymentEntry, error) {
	period, err := s.resolvePeriod(period)
	if err != nil {
		return "", nil, err
	}
	entries := []PaymentEntry{}
	err = s.paymentQuery(ctx).
		Where("pagamentos_mensalidade.mes_referencia = ?", period).
		Order("membros.nome ASC").
		Scan(&entries).Error
	if err != nil {
		return "", nil, storageErr("list period payments", err)
	}
	return period, entries, nil
}

// delinquentQuery active members with dues and no payment for period
func (s *MembershipService) delinquentQuery(ctx context.Context, period string) *gorm.DB {
	paid := s.db.WithContext(ctx).
		Model(&models.MonthlyPayment{}).
		Select("1").
		Where("pagamentos_mensalidade.membro_id = membros.id AND pagamentos_mensalidade.mes_referencia = ?", period)
	return s.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("ativo = ? AND valor_mensalidade > 0", true).
		Where("NOT EXISTS (?)", paid)
}

// Delinquents members owing dues for period ("" = current), ordered by name
func (s *MembershipService) Delinquents(ctx context.Context, period string) (string, []models.Member, error) {
	period, err := s.resolvePeriod(period)
	if err != nil {
		return "", nil, err
	}
	list := []models.Member{}
	if err := s.delinquentQuery(ctx, period).Order("nome ASC").Find(&list).Error; err != nil {
		return "", nil, storageErr("list delinquents", err)
	}
	return period, list, nil
}

// Summary registry aggregates for the current period
func (s *MembershipService) Summary(ctx context.Context) (*MembershipSummary, error) {
	db := s.db.WithContext(ctx)
	summary := MembershipSummary{Period: s.CurrentPeriod()}

	if err := db.Model(&models.Member{}).Where("ativo = ?", true).Count(&summary.TotalMembers).Error; err != nil {
		return nil, storageErr("count members", err)
	}
	if err := db.Model(&models.Member{}).
		Select("COALESCE(SUM(valor_mensalidade), 0)").
		Where("ativo = ?", true).
		Scan(&summary.ExpectedRevenue).Error; err != nil {
		return nil, storageErr("expected revenue", err)
	}
	if err := db.Model(&models.MonthlyPayment{}).
		Select("COALESCE(SUM(valor_pago), 0)").
		Where("mes_referencia = ?", summary.Period).
		Scan(&summary.PeriodRevenue).Error; err != nil {
		return nil, storageErr("period revenue", err)
	}
	if err := s.delinquentQuery(ctx, summary.Period).Count(&summary.DelinquentMembers).Error; err != nil {
		return nil, storageErr("count delinquents", err)
	}
	summary.AdimplencyPercent = AdimplencyPercent(summary.TotalMembers, summary.DelinquentMembers)
	return &summary, nil
}

// AdimplencyPercent share of active members up to date; 0 when there are none.
func AdimplencyPercent(active, delinquent int64) float64 {
	if active <= 0 {
		return 0
	}
	return float64(active-delinquent) / float64(active) * 100
}
