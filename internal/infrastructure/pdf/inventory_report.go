// Package pdf genera el reporte de valoración del inventario de un tenant.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del tenant + email │ Fecha de emisión       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Artículo | Categoría | Cant. | Unidad | P.Unit | Total │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES POR CATEGORÍA                                      │
//	│  PATRIMONIO NETO + cantidad de alertas                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-hogar/internal/application/ports"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/domain/inventory"
	"github.com/jhoicas/inventario-hogar/pkg/money"
)

var _ ports.InventoryReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// currencyLabel prefijo de importes; las fuentes base del PDF no incluyen el símbolo ₦.
const currencyLabel = "NGN "

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.InventoryReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	owner *entity.User,
	items []*entity.Item,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(owner.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(owner, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(categoryRows(inventory.CategoryTotals(items))...)

	m.AddRows(line.NewRow(3))
	m.AddRows(summaryRow(items))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(owner *entity.User, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(owner.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(owner.Email, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Artículo", 3, align.Left),
		h("Categoría", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Unidad", 1, align.Center),
		h("Precio Unit.", 2, align.Right),
		h("Total", 2, align.Right),
		h("Alerta", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// itemRows: una fila por artículo; los marcados por la regla de stock bajo van en rojo.
func itemRows(items []*entity.Item) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		color := (*props.Color)(nil)
		alert := ""
		switch inventory.AlertLabel(it) {
		case inventory.AlertOutOfStock:
			color, alert = colorAlert, "AGOTADO"
		case inventory.AlertLowStock:
			color, alert = colorAlert, "BAJO"
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: color}))
		}
		rows = append(rows, row.New(7).Add(
			cell(it.Name, 3, align.Left),
			cell(it.Category, 2, align.Left),
			cell(strconv.FormatInt(it.Quantity, 10), 1, align.Center),
			cell(it.Unit, 1, align.Center),
			cell(currencyLabel+money.Format(it.PricePerUnit), 2, align.Right),
			cell(currencyLabel+money.Format(inventory.TotalValue(it)), 2, align.Right),
			cell(alert, 1, align.Center),
		))
	}
	return rows
}

// categoryRows: totales por categoría en orden alfabético.
func categoryRows(totals map[string]decimal.Decimal) []core.Row {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("TOTALES POR CATEGORÍA", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
	}
	for _, name := range names {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(name, props.Text{Size: 8, Left: 2})),
			col.New(6).Add(text.New(currencyLabel+money.Format(totals[name]), props.Text{Size: 8, Align: align.Right, Right: 1})),
		))
	}
	return rows
}

func summaryRow(items []*entity.Item) core.Row {
	flagged := len(inventory.FlagLowStock(items))
	return row.New(14).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Artículos: %d", len(items)), props.Text{Size: 9, Top: 1, Color: colorGray}),
			text.New(fmt.Sprintf("Con stock bajo o agotados: %d", flagged), props.Text{Size: 9, Top: 7, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("PATRIMONIO NETO:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1, Right: 1,
			}),
			text.New(currencyLabel+money.Format(inventory.NetWorth(items)), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 7, Right: 1,
			}),
		),
	)
}
