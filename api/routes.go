package api

import "github.com/gin-gonic/gin"

// Handlers every handler mounted under /api
type Handlers struct {
	Materials    *MaterialHandler
	Members      *MemberHandler
	Payments     *PaymentHandler
	Transactions *TransactionHandler
	Reports      *ReportHandler
	Taxonomy     *TaxonomyHandler
}

// RegisterRoutes mounts the route table on g
func RegisterRoutes(g *gin.RouterGroup, h Handlers) {
	// estoque
	{
		g.GET("/materiais", h.Materials.List)
		g.POST("/materiais", h.Materials.Create)
		g.GET("/materiais/baixo-estoque", h.Materials.LowStock)
		g.GET("/materiais/:id", h.Materials.Get)
		g.PUT("/materiais/:id", h.Materials.Update)
		g.DELETE("/materiais/:id", h.Materials.Delete)
		g.POST("/materiais/:id/movimentar", h.Materials.Move)
		g.GET("/materiais/:id/movimentacoes", h.Materials.Movements)
		g.GET("/materiais/:id/conferencia", h.Materials.Reconcile)
		g.GET("/movimentacoes", h.Materials.RecentMovements)
		g.GET("/resumo-estoque", h.Materials.Summary)
		g.GET("/categorias-materiais", h.Taxonomy.MaterialCategories)
	}

	// membros
	{
		g.GET("/membros", h.Members.List)
		g.POST("/membros", h.Members.Create)
		g.GET("/membros/inadimplentes", h.Members.Delinquents)
		g.POST("/membros/inadimplentes/notificar", h.Members.NotifyDelinquents)
		g.GET("/membros/:id", h.Members.Get)
		g.PUT("/membros/:id", h.Members.Update)
		g.DELETE("/membros/:id", h.Members.Delete)
		g.GET("/membros/:id/pagamentos", h.Members.Payments)
		g.GET("/pagamentos-mensalidade", h.Payments.List)
		g.POST("/pagamentos-mensalidade", h.Payments.Create)
		g.DELETE("/pagamentos-mensalidade/:id", h.Payments.Delete)
		g.GET("/resumo-membros", h.Members.Summary)
	}

	// financeiro
	{
		g.GET("/transacoes", h.Transactions.List)
		g.POST("/transacoes", h.Transactions.Create)
		g.GET("/transacoes/:id", h.Transactions.Get)
		g.PUT("/transacoes/:id", h.Transactions.Update)
		g.DELETE("/transacoes/:id", h.Transactions.Delete)
		g.GET("/resumo-financeiro", h.Transactions.Summary)
		g.GET("/categorias", h.Taxonomy.TransactionCategories)
	}

	// relatórios
	{
		g.GET("/relatorios/estoque.xlsx", h.Reports.Stock)
		g.GET("/relatorios/transacoes.xlsx", h.Reports.Transactions)
		g.GET("/relatorios/pagamentos.xlsx", h.Reports.Payments)
	}
}
