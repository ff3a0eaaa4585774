package api

import (
	"templo/logger"
	"templo/models"
	"templo/service"

	"github.com/gin-gonic/gin"
)

// MaterialHandler inventory endpoints
type MaterialHandler struct {
	svc *service.InventoryService
	log *logger.Logger
}

func NewMaterialHandler(svc *service.InventoryService, log *logger.Logger) *MaterialHandler {
	return &MaterialHandler{svc: svc, log: log}
}

type CreateMaterialRequest struct {
	Name            string   `json:"nome" binding:"required,max=200" example:"Vela branca 7 dias"`
	Description     string   `json:"descricao"`
	Category        string   `json:"categoria" binding:"required,max=100" example:"Velas"`
	Subcategory     string   `json:"subcategoria" binding:"max=100" example:"Vela 7 dias"`
	Unit            string   `json:"unidade_medida" binding:"max=20" example:"unidade"`
	UnitPrice       *float64 `json:"preco_unitario" binding:"required,gte=0" example:"12.50"`
	InitialQuantity float64  `json:"quantidade_atual" binding:"gte=0" example:"10"`
	MinimumQuantity *float64 `json:"quantidade_minima" binding:"omitempty,gte=0" example:"5"`
	Supplier        string   `json:"fornecedor" binding:"max=200"`
	StorageLocation string   `json:"local_armazenamento" binding:"max=100"`
	Notes           string   `json:"observacoes"`
}

// UpdateMaterialRequest quantidade_atual is not accepted here; use the movement endpoint
type UpdateMaterialRequest struct {
	Name            *string  `json:"nome" binding:"omitempty,max=200"`
	Description     *string  `json:"descricao"`
	Category        *string  `json:"categoria" binding:"omitempty,max=100"`
	Subcategory     *string  `json:"subcategoria" binding:"omitempty,max=100"`
	Unit            *string  `json:"unidade_medida" binding:"omitempty,max=20"`
	UnitPrice       *float64 `json:"preco_unitario" binding:"omitempty,gte=0"`
	MinimumQuantity *float64 `json:"quantidade_minima" binding:"omitempty,gte=0"`
	Supplier        *string  `json:"fornecedor" binding:"omitempty,max=200"`
	StorageLocation *string  `json:"local_armazenamento" binding:"omitempty,max=100"`
	Notes           *string  `json:"observacoes"`
}

type MovementRequest struct {
	Kind     string   `json:"tipo_movimentacao" binding:"required" example:"saida"`
	Quantity *float64 `json:"quantidade" binding:"required,gte=0" example:"2"`
	Reason   string   `json:"motivo" binding:"required,max=200" example:"Gira de sexta"`
	Notes    string   `json:"observacoes"`
}

// List active materials
// @Summary Listar materiais
// @Description Materiais ativos ordenados por categoria e nome
// @Tags Estoque
// @Produce json
// @Success 200 {object} Response{data=[]models.Material}
// @Router /api/materiais [get]
func (h *MaterialHandler) List(c *gin.Context) {
	list, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, list)
}

// LowStock active materials at or below their minimum
// @Summary Materiais com estoque baixo
// @Tags Estoque
// @Produce json
// @Success 200 {object} Response{data=[]models.Material}
// @Router /api/materiais/baixo-estoque [get]
func (h *MaterialHandler) LowStock(c *gin.Context) {
	list, err := h.svc.ListLowStock(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, list)
}

// Create material
// @Summary Cadastrar material
// @Description Uma quantidade inicial positiva gera uma movimentação de entrada "Estoque inicial"
// @Tags Estoque
// @Accept json
// @Produce json
// @Param request body CreateMaterialRequest true "Material"
// @Success 201 {object} Response{data=models.Material}
// @Failure 400 {object} Response
// @Router /api/materiais [post]
func (h *MaterialHandler) Create(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	m, err := h.svc.Create(c.Request.Context(), service.MaterialInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Unit:            req.Unit,
		UnitPrice:       *req.UnitPrice,
		InitialQuantity: req.InitialQuantity,
		MinimumQuantity: req.MinimumQuantity,
		Supplier:        req.Supplier,
		StorageLocation: req.StorageLocation,
		Notes:           req.Notes,
	})
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Created(c, "Material cadastrado com sucesso", m)
}

// Get material by id
// @Summary Detalhar material
// @Tags Estoque
// @Produce json
// @Param id path int true "ID do material"
// @Success 200 {object} Response{data=models.Material}
// @Failure 404 {object} Response
// @Router /api/materiais/{id} [get]
func (h *MaterialHandler) Get(c *gin.Context) {
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

// Update material
// @Summary Atualizar material
// @Description Atualização parcial; a quantidade só muda por movimentação
// @Tags Estoque
// @Accept json
// @Produce json
// @Param id path int true "ID do material"
// @Param request body UpdateMaterialRequest true "Campos a alterar"
// @Success 200 {object} Response{data=models.Material}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/materiais/{id} [put]
func (h *MaterialHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	m, err := h.svc.Update(c.Request.Context(), id, service.MaterialUpdate{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Unit:            req.Unit,
		UnitPrice:       req.UnitPrice,
		MinimumQuantity: req.MinimumQuantity,
		Supplier:        req.Supplier,
		StorageLocation: req.StorageLocation,
		Notes:           req.Notes,
	})
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	SuccessWithMessage(c, "Material atualizado com sucesso", m)
}

// Delete deactivates the material
// @Summary Desativar material
// @Description Exclusão lógica; o histórico de movimentações é mantido
// @Tags Estoque
// @Produce json
// @Param id path int true "ID do material"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/materiais/{id} [delete]
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		RespondError(c, h.log, err)
		return
	}
	SuccessWithMessage(c, "Material removido com sucesso", nil)
}

// Move applies a stock movement
// @Summary Movimentar estoque
// @Description entrada soma, saida subtrai (exige saldo), ajuste define a quantidade absoluta
// @Tags Estoque
// @Accept json
// @Produce json
// @Param id path int true "ID do material"
// @Param request body MovementRequest true "Movimentação"
// @Success 200 {object} Response{data=models.Material}
// @Failure 400 {object} Response "Dados inválidos ou quantidade insuficiente"
// @Failure 404 {object} Response
// @Router /api/materiais/{id}/movimentar [post]
func (h *MaterialHandler) Move(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	m, err := h.svc.ApplyMovement(c.Request.Context(), id, service.MovementInput{
		Kind:     models.MovementKind(req.Kind),
		Quantity: *req.Quantity,
		Reason:   req.Reason,
		Notes:    req.Notes,
	})
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	SuccessWithMessage(c, "Movimentação registrada com sucesso", m)
}

// Movements of one material
// @Summary Movimentações do material
// @Tags Estoque
// @Produce json
// @Param id path int true "ID do material"
// @Success 200 {object} Response{data=[]service.MovementEntry}
// @Router /api/materiais/{id}/movimentacoes [get]
func (h *MaterialHandler) Movements(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.svc.ListMovements(c.Request.Context(), id)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, list)
}

// RecentMovements latest movements across all materials
// @Summary Últimas movimentações
// @Tags Estoque
// @Produce json
// @Success 200 {object} Response{data=[]service.MovementEntry}
// @Router /api/movimentacoes [get]
func (h *MaterialHandler) RecentMovements(c *gin.Context) {
	list, err := h.svc.RecentMovements(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, list)
}

// Reconcile compares the stored quantity with the movement log
// @Summary Conferir estoque
// @Tags Estoque
// @Produce json
// @Param id path int true "ID do material"
// @Success 200 {object} Response{data=service.StockReconciliation}
// @Failure 404 {object} Response
// @Router /api/materiais/{id}/conferencia [get]
func (h *MaterialHandler) Reconcile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.svc.Reconcile(c.Request.Context(), id)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, rec)
}

// Summary stock summary
// @Summary Resumo do estoque
// @Tags Estoque
// @Produce json
// @Success 200 {object} Response{data=service.StockSummary}
// @Router /api/resumo-estoque [get]
func (h *MaterialHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	Success(c, summary)
}
