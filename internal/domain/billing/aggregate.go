package billing

import (
	"fmt"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// Aggregate recorre las funciones de la factura en orden, resuelve cada obra en
// el catálogo, tarifica y acumula líneas y totales. Falla rápido en la primera
// función ofensora: no se devuelve estado de cuenta parcial.
//
// ErrUnknownPlay (playID fuera del catálogo) es un problema de datos del caller;
// ErrUnknownPlayType (género no soportado) es un problema del catálogo. Son
// casos distintos y se reportan con el centinela que corresponde.
func Aggregate(invoice *entity.Invoice, catalog entity.PlayCatalog) (*entity.Statement, error) {
	if invoice == nil {
		return nil, fmt.Errorf("%w: factura nil", domain.ErrInvalidInput)
	}

	st := &entity.Statement{
		InvoiceID: invoice.ID,
		Customer:  invoice.Customer,
		Lines:     make([]entity.StatementLine, 0, len(invoice.Performances)),
	}
	for i, perf := range invoice.Performances {
		play, ok := catalog[perf.PlayID]
		if !ok {
			return nil, fmt.Errorf("%w: playID %q (función %d)", domain.ErrUnknownPlay, perf.PlayID, i+1)
		}
		amount, credits, err := AmountAndCredits(play.Type, perf.Audience)
		if err != nil {
			return nil, fmt.Errorf("obra %q (función %d): %w", play.Name, i+1, err)
		}
		st.Lines = append(st.Lines, entity.StatementLine{
			PlayName:    play.Name,
			AmountCents: amount,
			Audience:    perf.Audience,
			Credits:     credits,
		})
		st.Totals.AmountCents += amount
		st.Totals.Credits += credits
	}
	return st, nil
}
