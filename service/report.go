package service

import (
	"context"
	"fmt"

	"templo/models"

	"github.com/xuri/excelize/v2"
)

// ReportService builds spreadsheet exports from the three ledgers
type ReportService struct {
	inventory  *InventoryService
	ledger     *LedgerService
	membership *MembershipService
}

func NewReportService(inventory *InventoryService, ledger *LedgerService, membership *MembershipService) *ReportService {
	return &ReportService{inventory: inventory, ledger: ledger, membership: membership}
}

const timestampLayout = "2006-01-02 15:04:05"

var thinBorder = []excelize.Border{
	{Type: "left", Color: "000000", Style: 1},
	{Type: "top", Color: "000000", Style: 1},
	{Type: "bottom", Color: "000000", Style: 1},
	{Type: "right", Color: "000000", Style: 1},
}

// sheet writes a header row, data rows and a closing summary row
type sheet struct {
	f       *excelize.File
	name    string
	columns int
	row     int
	data    int
	summary int
}

func newSheet(name string, headers []string, widths []float64) (*sheet, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		f.Close()
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder,
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	s := &sheet{f: f, name: name, columns: len(headers), row: 1, data: dataStyle, summary: summaryStyle}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(name, col, col, w)
	}
	if err := s.writeRow(headers, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

func writeValues[T any](s *sheet, values []T, style int) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			return err
		}
		if err := s.f.SetCellValue(s.name, cell, v); err != nil {
			return err
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, s.row)
	last, _ := excelize.CoordinatesToCellName(s.columns, s.row)
	if err := s.f.SetCellStyle(s.name, first, last, style); err != nil {
		return err
	}
	s.row++
	return nil
}

func (s *sheet) writeRow(values []string, style int) error {
	return writeValues(s, values, style)
}

func (s *sheet) add(values ...interface{}) error {
	return writeValues(s, values, s.data)
}

// close writes the summary row: a label, the total under totalCol and the
// record count merged over the remaining columns.
func (s *sheet) close(label string, totalCol int, total float64, count int) (*excelize.File, error) {
	values := make([]interface{}, s.columns)
	values[0] = label
	values[totalCol-1] = total
	if totalCol < s.columns {
		values[totalCol] = fmt.Sprintf("%d registros", count)
	}
	row := s.row
	if err := writeValues(s, values, s.summary); err != nil {
		s.f.Close()
		return nil, err
	}
	if totalCol > 2 {
		from, _ := excelize.CoordinatesToCellName(1, row)
		to, _ := excelize.CoordinatesToCellName(totalCol-1, row)
		s.f.MergeCell(s.name, from, to)
	}
	if totalCol+1 < s.columns {
		from, _ := excelize.CoordinatesToCellName(totalCol+1, row)
		to, _ := excelize.CoordinatesToCellName(s.columns, row)
		s.f.MergeCell(s.name, from, to)
	}
	return s.f, nil
}

// StockWorkbook active materials with their stock value
func (r *ReportService) StockWorkbook(ctx context.Context) (*excelize.File, error) {
	materials, err := r.inventory.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	s, err := newSheet("Estoque",
		[]string{"ID", "Nome", "Categoria", "Subcategoria", "Unidade", "Quantidade", "Mínimo", "Preço Unitário", "Valor Total", "Estoque Baixo"},
		[]float64{8, 30, 20, 20, 12, 12, 10, 15, 15, 14})
	if err != nil {
		return nil, err
	}

	var total float64
	for _, m := range materials {
		low := "Não"
		if m.IsLowStock() {
			low = "Sim"
		}
		if err := s.add(m.ID, m.Name, m.Category, m.Subcategory, m.Unit, m.CurrentQuantity,
			m.MinimumQuantity, m.UnitPrice, m.TotalValue(), low); err != nil {
			s.f.Close()
			return nil, err
		}
		total += m.TotalValue()
	}
	return s.close("Total", 9, total, len(materials))
}

// LedgerWorkbook every transaction, expenses counted negative in the balance
func (r *ReportService) LedgerWorkbook(ctx context.Context) (*excelize.File, error) {
	transactions, err := r.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	s, err := newSheet("Transações",
		[]string{"ID", "Data", "Tipo", "Categoria", "Subcategoria", "Descrição", "Valor"},
		[]float64{8, 20, 12, 20, 20, 35, 15})
	if err != nil {
		return nil, err
	}

	var balance float64
	for _, tr := range transactions {
		if err := s.add(tr.ID, tr.Date.Format(timestampLayout), string(tr.Kind), tr.Category,
			tr.Subcategory, tr.Description, tr.Amount); err != nil {
			s.f.Close()
			return nil, err
		}
		if tr.Kind == models.TransactionExpense {
			balance -= tr.Amount
		} else {
			balance += tr.Amount
		}
	}
	return s.close("Saldo", 7, balance, len(transactions))
}

// PaymentsWorkbook payments referring to period ("" = current)
func (r *ReportService) PaymentsWorkbook(ctx context.Context, period string) (string, *excelize.File, error) {
	period, payments, err := r.membership.ListPeriodPayments(ctx, period)
	if err != nil {
		return "", nil, err
	}

	s, err := newSheet("Pagamentos "+period,
		[]string{"ID", "Membro", "Mês Referência", "Valor Pago", "Data Pagamento", "Observações"},
		[]float64{8, 30, 15, 15, 15, 35})
	if err != nil {
		return "", nil, err
	}

	var total float64
	for _, p := range payments {
		name := ""
		if p.MemberName != nil {
			name = *p.MemberName
		}
		if err := s.add(p.ID, name, p.Period, p.AmountPaid, p.PaymentDate.String(), p.Notes); err != nil {
			s.f.Close()
			return "", nil, err
		}
		total += p.AmountPaid
	}
	f, err := s.close("Total", 4, total, len(payments))
	if err != nil {
		return "", nil, err
	}
	return period, f, nil
}
