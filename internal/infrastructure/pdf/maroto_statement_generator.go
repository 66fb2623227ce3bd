// Package pdf genera la representación PDF del estado de cuenta teatral.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Statement for {cliente}  │  ID + Fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Obra | Audiencia | Créditos | Cargo                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Amount owed / Credits earned                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/tu-usuario/teatro-billing/internal/domain/billing"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 102, Green: 26, Blue: 66}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa statement.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator { return &MarotoStatementGenerator{} }

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatementPDF(
	_ context.Context,
	st *entity.Statement,
	money billing.CurrencyFormatter,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta de funciones", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(st, money) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(st, money)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: cliente (izq) e ID + fecha (der).
func headerRow(st *entity.Statement) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Statement for "+st.Customer, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(st.ID, props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Fecha: "+st.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de funciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Obra", 6, align.Left),
		h("Audiencia", 2, align.Center),
		h("Créditos", 2, align.Center),
		h("Cargo", 2, align.Right),
	)
}

// tableLineRows: una fila por función tarificada.
func tableLineRows(st *entity.Statement, money billing.CurrencyFormatter) []core.Row {
	result := make([]core.Row, 0, len(st.Lines))
	for _, l := range st.Lines {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				l.PlayName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(l.Audience)+" seats",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(l.Credits),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(l.AmountCents),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: bloque de totales alineado a la derecha.
func totalsRows(st *entity.Statement, money billing.CurrencyFormatter) []core.Row {
	return []core.Row{
		row.New(8).Add(
			col.New(8).Add(text.New("Amount owed", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			})),
			col.New(4).Add(text.New(money.Format(st.Totals.AmountCents), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1, Right: 1,
			})),
		),
		row.New(7).Add(
			col.New(8).Add(text.New("Credits earned", props.Text{
				Size: 9, Align: align.Right, Top: 1, Color: colorGray,
			})),
			col.New(4).Add(text.New(strconv.Itoa(st.Totals.Credits), props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1, Color: colorGray,
			})),
		),
	}
}
