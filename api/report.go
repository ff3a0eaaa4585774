package api

import (
	"fmt"
	"net/url"

	"templo/logger"
	"templo/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler Excel exports
type ReportHandler struct {
	svc *service.ReportService
	log *logger.Logger
}

func NewReportHandler(svc *service.ReportService, log *logger.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log}
}

// writeWorkbook streams f as an attachment
func (h *ReportHandler) writeWorkbook(c *gin.Context, filename string, f *excelize.File) {
	defer f.Close()
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	if err := f.Write(c.Writer); err != nil {
		h.log.Error("write workbook failed", "file", filename, "error", err)
		InternalError(c, "falha ao gerar planilha")
	}
}

// Stock exports active materials
// @Summary Relatório de estoque
// @Tags Relatórios
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Planilha"
// @Router /api/relatorios/estoque.xlsx [get]
func (h *ReportHandler) Stock(c *gin.Context) {
	f, err := h.svc.StockWorkbook(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	h.writeWorkbook(c, "estoque.xlsx", f)
}

// Transactions exports the finance ledger
// @Summary Relatório financeiro
// @Tags Relatórios
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Planilha"
// @Router /api/relatorios/transacoes.xlsx [get]
func (h *ReportHandler) Transactions(c *gin.Context) {
	f, err := h.svc.LedgerWorkbook(c.Request.Context())
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	h.writeWorkbook(c, "transacoes.xlsx", f)
}

// Payments exports the payments of one period
// @Summary Relatório de mensalidades
// @Tags Relatórios
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param mes query string false "Mês de referência (YYYY-MM)"
// @Success 200 {file} file "Planilha"
// @Failure 400 {object} Response
// @Router /api/relatorios/pagamentos.xlsx [get]
func (h *ReportHandler) Payments(c *gin.Context) {
	var q PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindingError(c, err)
		return
	}
	period, f, err := h.svc.PaymentsWorkbook(c.Request.Context(), q.Period)
	if err != nil {
		RespondError(c, h.log, err)
		return
	}
	h.writeWorkbook(c, fmt.Sprintf("pagamentos_%s.xlsx", period), f)
}
