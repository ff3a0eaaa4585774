package api

import (
	"templo/models"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler static category reference data
type TaxonomyHandler struct{}

func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

// MaterialTaxonomy material categories and subcategories
type MaterialTaxonomy struct {
	Categories    []string            `json:"categorias"`
	Subcategories map[string][]string `json:"subcategorias"`
}

// TransactionTaxonomy income and expense categories
type TransactionTaxonomy struct {
	Income  []string `json:"receita"`
	Expense []string `json:"despesa"`
}

// MaterialCategories
// @Summary Categorias de materiais
// @Description Lista de referência; categorias fora da lista são aceitas
// @Tags Estoque
// @Produce json
// @Success 200 {object} Response{data=MaterialTaxonomy}
// @Router /api/categorias-materiais [get]
func (h *TaxonomyHandler) MaterialCategories(c *gin.Context) {
	Success(c, MaterialTaxonomy{
		Categories:    models.MaterialCategories,
		Subcategories: models.MaterialSubcategories,
	})
}

// TransactionCategories
// @Summary Categorias financeiras
// @Description Categorias de receita e despesa para preenchimento de formulários
// @Tags Financeiro
// @Produce json
// @Success 200 {object} Response{data=TransactionTaxonomy}
// @Router /api/categorias [get]
func (h *TaxonomyHandler) TransactionCategories(c *gin.Context) {
	Success(c, TransactionTaxonomy{
		Income:  models.IncomeCategories,
		Expense: models.ExpenseCategories,
	})
}
