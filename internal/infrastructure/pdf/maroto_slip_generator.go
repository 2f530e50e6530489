// Package pdf implementa el comprobante de pedido que el taller imprime
// y entrega con la prenda: datos de la clienta, servicio contratado,
// fecha de cita, medidas si las aportó y un QR con el ID del pedido.
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/sastreria-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 123, Green: 63, Blue: 97}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoSlipGenerator implementa orders.SlipGenerator usando Maroto v2.
type MarotoSlipGenerator struct {
	BusinessName string
}

// NewMarotoSlipGenerator construye el generador.
func NewMarotoSlipGenerator(businessName string) *MarotoSlipGenerator {
	return &MarotoSlipGenerator{BusinessName: businessName}
}

// GenerateOrderSlip genera el PDF del comprobante y devuelve sus bytes.
// service y customer pueden ser nil si las referencias ya no resuelven
// (servicio eliminado del catálogo); el comprobante se emite igual.
func (g *MarotoSlipGenerator) GenerateOrderSlip(
	_ context.Context,
	order *entity.Order,
	service *entity.Service,
	customer *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido", true).
		WithAuthor(g.BusinessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(customer))
	m.AddRows(serviceRow(order, service))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if order.Measurements != nil {
		m.AddRows(measurementsRows(order.Measurements)...)
	} else {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Medidas: se toman en el taller", props.Text{Size: 9, Top: 2, Color: colorGray}),
		)))
	}

	if order.SpecialInstructions != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Instrucciones: "+order.SpecialInstructions, props.Text{Size: 8, Top: 2}),
		)))
	}

	m.AddRows(qrRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del taller (izq) y pedido + estado (der).
func (g *MarotoSlipGenerator) headerRow(order *entity.Order) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.BusinessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de pedido", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("PEDIDO "+shortID(order.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Estado: "+order.Status, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func customerRow(customer *entity.User) core.Row {
	name, phone := "—", "—"
	if customer != nil {
		name = customer.Name
		if customer.Phone != "" {
			phone = customer.Phone
		}
	}
	return row.New(12).Add(col.New(12).Add(
		text.New("CLIENTA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(fmt.Sprintf("%s   |   Tel: %s", name, phone), props.Text{Size: 9, Top: 7}),
	))
}

func serviceRow(order *entity.Order, service *entity.Service) core.Row {
	name := "(servicio eliminado del catálogo)"
	price := ""
	if service != nil {
		name = service.Name
		if tier, ok := service.TierByType(order.PricingTier); ok {
			price = fmt.Sprintf("   |   %s: ₹%d", tier.Type, tier.Price)
		}
	}
	return row.New(14).Add(col.New(12).Add(
		text.New("SERVICIO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		text.New(name+price, props.Text{Size: 9, Top: 6}),
		text.New("Cita: "+order.AppointmentDate.Format("02/01/2006"), props.Text{
			Size: 8, Top: 11, Color: colorGray,
		}),
	))
}

func measurementsRows(m *entity.CustomerMeasurements) []core.Row {
	header := row.New(7).Add(col.New(12).Add(
		text.New("MEDIDAS (pulgadas)", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
	))
	cell := func(label string, v float64) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(fmt.Sprintf("%.1f", v), props.Text{Size: 9, Top: 5, Align: align.Center}),
		)
	}
	values := row.New(11).Add(
		col.New(1),
		cell("Busto", m.Bust),
		cell("Cintura", m.Waist),
		cell("Cadera", m.Hip),
		cell("Manga", m.SleeveLength),
		cell("Largo", m.TotalLength),
		col.New(1),
	)
	return []core.Row{header, values}
}

func qrRow(order *entity.Order) core.Row {
	return row.New(28).Add(
		col.New(4).Add(code.NewQr(order.ID, props.Rect{Center: true, Percent: 90})),
		col.New(8).Add(
			text.New("Presente este comprobante al recoger su prenda.", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
			text.New("ID: "+order.ID, props.Text{Size: 7, Top: 16, Color: colorGray}),
		),
	)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
