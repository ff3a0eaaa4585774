package api

import (
	"templo/logger"
	"templo/models"
	"templo/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler membership endpoints
type MemberHandler struct {
	svc       *service.MembershipService
	reminders *service.ReminderService
	log       *logger.Logger
}

func NewMemberHandler(svc *service.MembershipService, reminders *service.ReminderService, log *logger.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, reminders: reminders, log: log}
}

type CreateMemberRequest struct {
	Name        string       `json:"nome" binding:"required,max=200" example:"Maria da Silva"`
	Phone       string       `json:"telefone" binding:"max=20" example:"(11) 98888-7777"`
	Email       string       `json:"email" binding:"omitempty,email,max=200" example:"maria@example.com"`
	Address     string       `json:"endereco"`
	BirthDate   *models.Date `json:"data_nascimento" swaggertype:"string" example:"1985-04-12"`
	JoinDate    *models.Date `json:"data_ingresso" swaggertype:"string" example:"2024-01-10"`
	MonthlyDues float64      `json:"valor_mensalidade" binding:"gte=0" example:"50"`
	Notes       string       `json:"observacoes"`
}

type UpdateMemberRequest struct {
	Name        *string      `json:"nome" binding:"omitempty,max=200"`
	Phone       *string      `json:"telefone" binding:"omitempty,max=20"`
	Email       *string      `json:"email" binding:"omitempty,max=200"`
	Address     *string      `json:"endereco"`
	BirthDate   *models.Date `json:"data_nascimento" swaggertype:"string"`
	JoinDate    *models.Date `json:"data_ingresso" swaggertype:"string"`
	MonthlyDues *float64     `json:"valor_mensalidade" binding:"omitempty,gte=0"`
	Notes       *string      `json:"observacoes"`
}

// PeriodQuery optional ?mes=YYYY-MM
type PeriodQuery struct {
	Period string `form:"mes" binding:"omitempty,yearmonth" example:"2024-03"`
}

// dateOrNil an empty date string on the wire counts as absent
func dateOrNil(d *models.Date) *models.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}

// List active members
// @Summary Listar membros
// @Description Membros ativos ordenados por nome
// @Tags Membros
// @Produce json
// @Success 200 {object} Response{data=[]models.Member}
// @Router /api/membros [get]
func (h *MemberHandler) List(c *gin.Context) {
	list, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, list)
}

// Create member
// @Summary Cadastrar membro
// @Tags Membros
// @Accept json
// @Produce json
// @Param request body CreateMemberRequest true "Membro"
// @Success 201 {object} Response{data=models.Member}
// @Failure 400 {object} Response
// @Router /api/membros [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	m, err := h.svc.Create(c.Request.Context(), service.MemberInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		BirthDate:   dateOrNil(req.BirthDate),
		JoinDate:    dateOrNil(req.JoinDate),
		MonthlyDues: req.MonthlyDues,
		Notes:       req.Notes,
	})
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Created(c, "Membro cadastrado com sucesso", m)
}

// Get member by id
// @Summary Detalhar membro
// @Tags Membros
// @Produce json
// @Param id path int true "ID do membro"
// @Success 200 {object} Response{data=models.Member}
// @Failure 404 {object} Response
// @Router /api/membros/{id} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, m)
}

// Update member
// @Summary Atualizar membro
// @Description Atualização parcial; não reativa membros desativados
// @Tags Membros
// @Accept json
// @Produce json
// @Param id path int true "ID do membro"
// @Param request body UpdateMemberRequest true "Campos a alterar"
// @Success 200 {object} Response{data=models.Member}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/membros/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	m, err := h.svc.Update(c.Request.Context(), id, service.MemberUpdate{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		BirthDate:   dateOrNil(req.BirthDate),
		JoinDate:    dateOrNil(req.JoinDate),
		MonthlyDues: req.MonthlyDues,
		Notes:       req.Notes,
	})
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	SuccessWithMessage(c, "Membro atualizado com sucesso", m)
}

// Delete deactivates the member
// @Summary Desativar membro
// @Description Exclusão lógica; os pagamentos são mantidos
// @Tags Membros
// @Produce json
// @Param id path int true "ID do membro"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/membros/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		RespondError(c, h.log, err)
		return
	}
	SuccessWithMessage(c, "Membro removido com sucesso", nil)
}

// Payments of one member
// @Summary Pagamentos do membro
// @Tags Membros
// @Produce json
// @Param id path int true "ID do membro"
// @Success 200 {object} Response{data=[]service.PaymentEntry}
// @Router /api/membros/{id}/pagamentos [get]
func (h *MemberHandler) Payments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.svc.ListMemberPayments(c.Request.Context(), id)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, list)
}

// Delinquents members without payment for the period
// @Summary Membros inadimplentes
// @Description Membros ativos com mensalidade maior que zero e sem pagamento no mês (padrão: mês atual)
// @Tags Membros
// @Produce json
// @Param mes query string false "Mês de referência (YYYY-MM)"
// @Success 200 {object} Response{data=[]models.Member}
// @Failure 400 {object} Response
// @Router /api/membros/inadimplentes [get]
func (h *MemberHandler) Delinquents(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindingError(c, err)
		return
	}
	_, list, err := h.svc.Delinquents(c.Request.Context(), q.Period)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, list)
}

// NotifyDelinquents e-mails a reminder to every delinquent member of the period
// @Summary Notificar inadimplentes
// @Description Envia um e-mail de lembrete para cada inadimplente com e-mail cadastrado
// @Tags Membros
// @Produce json
// @Param mes query string false "Mês de referência (YYYY-MM)"
// @Success 200 {object} Response{data=service.ReminderResult}
// @Failure 400 {object} Response "E-mail desabilitado ou mês inválido"
// @Router /api/membros/inadimplentes/notificar [post]
func (h *MemberHandler) NotifyDelinquents(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindingError(c, err)
		return
	}
	result, err := h.reminders.NotifyDelinquents(c.Request.Context(), q.Period)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	SuccessWithMessage(c, "Lembretes processados", result)
}

// Summary membership summary for the current period
// @Summary Resumo de membros
// @Tags Membros
// @Produce json
// @Success 200 {object} Response{data=service.MembershipSummary}
// @Router /api/resumo-membros [get]
func (h *MemberHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, summary)
}
