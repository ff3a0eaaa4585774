package api

import (
	"time"

	"templo/logger"
	"templo/models"
	"templo/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler finance ledger endpoints
type TransactionHandler struct {
	svc *service.LedgerService
	log *logger.Logger
}

func NewTransactionHandler(svc *service.LedgerService, log *logger.Logger) *TransactionHandler {
	return &TransactionHandler{svc: svc, log: log}
}

type CreateTransactionRequest struct {
	Description string  `json:"descricao" binding:"required,max=200" example:"Doação festa de Iemanjá"`
	Amount      float64 `json:"valor" binding:"required,gt=0" example:"150.00"`
	Kind        string  `json:"tipo" binding:"required,oneof=receita despesa" example:"receita"`
	Category    string  `json:"categoria" binding:"required,max=100" example:"Doações"`
	Subcategory string  `json:"subcategoria" binding:"max=100"`
	Date        string  `json:"data" binding:"omitempty,isodate" example:"2024-03-15"`
	MemberID    *uint   `json:"membro_id" example:"1"`
}

type UpdateTransactionRequest struct {
	Description *string  `json:"descricao" binding:"omitempty,max=200"`
	Amount      *float64 `json:"valor" binding:"omitempty,gt=0"`
	Kind        *string  `json:"tipo" binding:"omitempty,oneof=receita despesa"`
	Category    *string  `json:"categoria" binding:"omitempty,max=100"`
	Subcategory *string  `json:"subcategoria" binding:"omitempty,max=100"`
	Date        *string  `json:"data" binding:"omitempty,isodate"`
	MemberID    *uint    `json:"membro_id"`
}

// List every transaction
// @Summary Listar transações
// @Description Todas as transações, mais recentes primeiro
// @Tags Financeiro
// @Produce json
// @Success 200 {object} Response{data=[]models.Transaction}
// @Router /api/transacoes [get]
func (h *TransactionHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, list)
}

// Create transaction
// @Summary Registrar transação
// @Tags Financeiro
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transação"
// @Success 201 {object} Response{data=models.Transaction}
// @Failure 400 {object} Response
// @Router /api/transacoes [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	var at time.Time
	if req.Date != "" {
		var err error
		if at, err = parseTimestamp(req.Date); err != nil {
			BadRequest(c, "data: formato esperado YYYY-MM-DD ou RFC 3339")
			return
		}
	}

	tr, err := h.svc.Create(c.Request.Context(), service.TransactionInput{
		Description: req.Description,
		Amount:      req.Amount,
		Kind:        models.TransactionKind(req.Kind),
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Date:        at,
		MemberID:    req.MemberID,
	})
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Created(c, "Transação registrada com sucesso", tr)
}

// Get transaction by id
// @Summary Detalhar transação
// @Tags Financeiro
// @Produce json
// @Param id path int true "ID da transação"
// @Success 200 {object} Response{data=models.Transaction}
// @Failure 404 {object} Response
// @Router /api/transacoes/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tr, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, tr)
}

// Update transaction
// @Summary Atualizar transação
// @Tags Financeiro
// @Accept json
// @Produce json
// @Param id path int true "ID da transação"
// @Param request body UpdateTransactionRequest true "Campos a alterar"
// @Success 200 {object} Response{data=models.Transaction}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/transacoes/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	in := service.TransactionUpdate{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		MemberID:    req.MemberID,
	}
	if req.Kind != nil {
		kind := models.TransactionKind(*req.Kind)
		in.Kind = &kind
	}
	if req.Date != nil && *req.Date != "" {
		at, err := parseTimestamp(*req.Date)
		if err != nil {
			BadRequest(c, "data: formato esperado YYYY-MM-DD ou RFC 3339")
			return
		}
		in.Date = &at
	}

	tr, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	SuccessWithMessage(c, "Transação atualizada com sucesso", tr)
}

// Delete removes a transaction
// @Summary Excluir transação
// @Tags Financeiro
// @Produce json
// @Param id path int true "ID da transação"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/transacoes/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		RespondError(c, h.log, err)
		return
	}
	SuccessWithMessage(c, "Transação excluída com sucesso", nil)
}

// Summary financial summary
// @Summary Resumo financeiro
// @Tags Financeiro
// @Produce json
// @Success 200 {object} Response{data=service.LedgerSummary}
// @Router /api/resumo-financeiro [get]
func (h *TransactionHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, summary)
}
