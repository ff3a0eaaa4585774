package api

import (
	"templo/logger"
	"templo/models"
	"templo/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler monthly dues payments
type PaymentHandler struct {
	svc *service.MembershipService
	log *logger.Logger
}

func NewPaymentHandler(svc *service.MembershipService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: log}
}

type CreatePaymentRequest struct {
	MemberID    uint         `json:"membro_id" binding:"required" example:"1"`
	Period      string       `json:"mes_referencia" binding:"required,yearmonth" example:"2024-03"`
	AmountPaid  *float64     `json:"valor_pago" binding:"required,gte=0" example:"50"`
	PaymentDate *models.Date `json:"data_pagamento" swaggertype:"string" example:"2024-03-05"`
	Notes       string       `json:"observacoes"`
}

// List every payment
// @Summary Listar pagamentos
// @Description Todos os pagamentos, mais recentes primeiro
// @Tags Pagamentos
// @Produce json
// @Success 200 {object} Response{data=[]service.PaymentEntry}
// @Router /api/pagamentos-mensalidade [get]
func (h *PaymentHandler) List(c *gin.Context) {
	list, err := h.svc.ListPayments(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, list)
}

// Create records a payment
// @Summary Registrar pagamento
// @Description Um pagamento por membro e mês de referência
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Param request body CreatePaymentRequest true "Pagamento"
// @Success 201 {object} Response{data=service.PaymentEntry}
// @Failure 400 {object} Response "Dados inválidos ou pagamento duplicado"
// @Failure 404 {object} Response "Membro não encontrado"
// @Router /api/pagamentos-mensalidade [post]
func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	p, err := h.svc.RecordPayment(c.Request.Context(), service.PaymentInput{
		MemberID:    req.MemberID,
		Period:      req.Period,
		AmountPaid:  *req.AmountPaid,
		PaymentDate: dateOrNil(req.PaymentDate),
		Notes:       req.Notes,
	})
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Created(c, "Pagamento registrado com sucesso", p)
}

// Delete removes a payment
// @Summary Excluir pagamento
// @Tags Pagamentos
// @Produce json
// @Param id path int true "ID do pagamento"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/pagamentos-mensalidade/{id} [delete]
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.DeletePayment(c.Request.Context(), id); err != nil {
		RespondError(c, h.log, err)
		return
	}
	SuccessWithMessage(c, "Pagamento excluído com sucesso", nil)
}
