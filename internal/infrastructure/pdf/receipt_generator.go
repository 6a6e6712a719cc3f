// Package pdf implementa la generación del ticket de venta en PDF.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────┐
//	│  HEADER: Panadería + N° de venta + Fecha  │
//	│  ───────────────────────────────────────  │
//	│  CLIENTE: nombre (o Consumidor final)     │
//	│  ───────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Subt.  │
//	│  ───────────────────────────────────────  │
//	│  TOTAL + método de pago                   │
//	│  QR con el id de la venta                 │
//	└───────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/panasystem/panasystem-api/internal/application/sales"
	"github.com/panasystem/panasystem-api/internal/domain/entity"
	"github.com/panasystem/panasystem-api/pkg/moneyfmt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 121, Green: 72, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Nombres legibles de los métodos de pago para el ticket.
var paymentLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentTransfer: "Transferencia",
	entity.PaymentCard:     "Tarjeta de Débito/Crédito",
	entity.PaymentQR:       "QR",
}

var _ sales.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa sales.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	businessName string
}

// NewMarotoReceiptGenerator construye el generador con el nombre del negocio
// que encabeza el ticket.
func NewMarotoReceiptGenerator(businessName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{businessName: businessName}
}

// GenerateReceipt genera el ticket PDF de una venta y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(
	_ context.Context,
	sale *entity.Sale,
	customerName string,
	lines []sales.ReceiptLine,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(8).WithBottomMargin(8).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ticket de venta", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customerName, sale.IsBakery))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(lines) > 0 {
		m.AddRows(tableHeaderRow())
		for _, r := range tableDetailRows(lines) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(totalsRow(sale))
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y N° de venta + fecha (der).
func (g *MarotoReceiptGenerator) headerRow(sale *entity.Sale) core.Row {
	fecha := sale.Date.Format("02/01/2006 15:04")
	// Referencia corta: primer bloque del UUID, suficiente para buscar la venta.
	ref := strings.ToUpper(sale.ID)
	if idx := strings.Index(ref, "-"); idx > 0 {
		ref = ref[:idx]
	}

	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ticket de venta", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VENTA N° "+ref, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// customerRow: nombre del cliente y marca de venta mayorista.
func customerRow(customerName string, isBakery bool) core.Row {
	label := "CLIENTE"
	if isBakery {
		label = "CLIENTE (PRECIO MAYORISTA)"
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 7, Color: colorPrimary, Top: 1,
			}),
			text.New(customerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 5,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableDetailRows: una fila por línea de venta.
func tableDetailRows(lines []sales.ReceiptLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				moneyfmt.Cantidad(l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				moneyfmt.Pesos(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				moneyfmt.Pesos(l.Subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: total, monto cobrado y método de pago.
func totalsRow(sale *entity.Sale) core.Row {
	total := decimal.Zero
	if sale.Total != nil {
		total = *sale.Total
	}
	charged := total
	if sale.TotalCharged != nil {
		charged = *sale.TotalCharged
	}
	payment := paymentLabels[sale.PaymentMethod]
	if payment == "" {
		payment = sale.PaymentMethod
	}

	components := []core.Component{
		text.New("TOTAL: "+moneyfmt.Pesos(total), props.Text{
			Style: fontstyle.Bold, Size: 12, Align: align.Right,
			Color: colorPrimary, Top: 1, Right: 1,
		}),
		text.New("Pago: "+payment, props.Text{
			Size: 8, Align: align.Right, Top: 9, Right: 1, Color: colorGray,
		}),
	}
	if !charged.Equal(total) {
		components = append(components, text.New(
			"Cobrado: "+moneyfmt.Pesos(charged),
			props.Text{Size: 8, Align: align.Right, Top: 14, Right: 1, Color: colorGray},
		))
	}
	return row.New(20).Add(col.New(12).Add(components...))
}

// qrRow: QR con el id de la venta para buscarla desde el mostrador.
func qrRow(sale *entity.Sale) core.Row {
	return row.New(35).Add(
		col.New(4).Add(code.NewQr(sale.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Escanea el código para ubicar\nesta venta en el sistema.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("¡Gracias por su compra!", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 18,
				Left: 3, Color: colorPrimary,
			}),
		),
	)
}
