// Package pdf implementa la generación de la hoja de cotización de un
// producto a partir de su historial de entradas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto + SKU  │  Fecha de emisión      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FICHA: Categoría / Unidad / Descripción                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STOCK: Cantidad actual | Última entrada | Alerta            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRECIOS: Promedio | Mínimo | Máximo (historial de entradas) │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

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

	"github.com/tu-usuario/almacen-api/internal/application/report"
	"github.com/tu-usuario/almacen-api/internal/domain/analytics"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

var _ report.QuotationPDFGenerator = (*MarotoQuotationGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoQuotationGenerator implementa report.QuotationPDFGenerator usando Maroto v2.
type MarotoQuotationGenerator struct{}

// NewMarotoQuotationGenerator construye el generador.
func NewMarotoQuotationGenerator() *MarotoQuotationGenerator { return &MarotoQuotationGenerator{} }

// GenerateQuotationPDF genera el PDF y devuelve sus bytes.
func (g *MarotoQuotationGenerator) GenerateQuotationPDF(
	_ context.Context,
	product *entity.Product,
	snapshot *entity.StockSnapshot,
	stats analytics.PriceStats,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Cotización de producto", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(fichaRows(product)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(stockRow(product, snapshot))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(priceRows(stats)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + SKU (izq) y fecha de emisión (der).
func headerRow(product *entity.Product) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("SKU: "+product.SKU, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitida: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 9, Top: 1, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func fichaRows(product *entity.Product) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(6).Add(text.New("Categoría: "+product.Category, props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New("Unidad: "+product.Unit, props.Text{Size: 9, Top: 1})),
		),
	}
	if product.Description != "" {
		rows = append(rows, row.New(8).Add(
			col.New(12).Add(text.New(product.Description, props.Text{Size: 8, Top: 1, Color: colorGray})),
		))
	}
	return rows
}

// stockRow: cantidad actual, última entrada y estado de alerta.
func stockRow(product *entity.Product, snapshot *entity.StockSnapshot) core.Row {
	lastInbound := "—"
	if snapshot.LastInboundDate != nil {
		lastInbound = snapshot.LastInboundDate.Format("02/01/2006")
	}
	alerta := "OK"
	if snapshot.LowStock {
		alerta = fmt.Sprintf("STOCK BAJO (umbral %d)", snapshot.MinStockAlert)
	}
	return row.New(10).Add(
		col.New(4).Add(text.New(
			fmt.Sprintf("Stock actual: %d %s", snapshot.Quantity, product.Unit),
			props.Text{Size: 10, Style: fontstyle.Bold, Top: 2},
		)),
		col.New(4).Add(text.New("Última entrada: "+lastInbound, props.Text{Size: 9, Top: 2})),
		col.New(4).Add(text.New(alerta, props.Text{Size: 9, Top: 2, Align: align.Right})),
	)
}

// price formatea un monto con el signo de moneda del documento.
func price(d decimal.Decimal) string {
	return "$ " + d.StringFixed(2)
}

// priceRows: promedio, mínimo y máximo de precio unitario del historial.
func priceRows(stats analytics.PriceStats) []core.Row {
	min, max := "—", "—"
	if stats.Min != nil {
		min = price(*stats.Min)
	}
	if stats.Max != nil {
		max = price(*stats.Max)
	}
	return []core.Row{
		row.New(8).Add(
			col.New(12).Add(text.New("Precios de entrada (historial)", props.Text{
				Size: 10, Style: fontstyle.Bold, Color: colorPrimary, Top: 1,
			})),
		),
		row.New(10).Add(
			col.New(4).Add(text.New("Promedio: "+price(stats.Average), props.Text{Size: 9, Top: 2})),
			col.New(4).Add(text.New("Mínimo: "+min, props.Text{Size: 9, Top: 2})),
			col.New(4).Add(text.New("Máximo: "+max, props.Text{Size: 9, Top: 2})),
		),
	}
}
