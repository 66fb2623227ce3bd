package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/billing"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// catálogo de prueba compartido, una obra por género.
func testCatalog() entity.PlayCatalog {
	return entity.PlayCatalog{
		"hamlet":    {Name: "Hamlet", Type: entity.PlayTypeTragedy},
		"as-like":   {Name: "As You Like It", Type: entity.PlayTypeComedy},
		"henry-v":   {Name: "Henry V", Type: entity.PlayTypeHistory},
		"winters":   {Name: "The Winter's Tale", Type: entity.PlayTypePastoral},
		"corrupted": {Name: "Obra Corrupta", Type: entity.PlayType("opera")},
	}
}

func TestAggregate_TotalesIgualesASumaDeLineas(t *testing.T) {
	invoice := &entity.Invoice{
		Customer: "BigCo",
		Performances: []entity.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 35},
			{PlayID: "henry-v", Audience: 40},
			{PlayID: "winters", Audience: 31},
		},
	}

	st, err := billing.Aggregate(invoice, testCatalog())
	require.NoError(t, err)
	require.Len(t, st.Lines, 4)

	var sumAmount int64
	var sumCredits int
	for _, line := range st.Lines {
		sumAmount += line.AmountCents
		sumCredits += line.Credits
	}
	assert.Equal(t, sumAmount, st.Totals.AmountCents, "el total debe ser la suma de las líneas")
	assert.Equal(t, sumCredits, st.Totals.Credits)
	assert.Equal(t, "BigCo", st.Customer)
}

// TestAggregate_OrdenDeLineas el orden de las líneas sigue el de la factura,
// sin agrupar por género.
func TestAggregate_OrdenDeLineas(t *testing.T) {
	invoice := &entity.Invoice{
		Customer: "BigCo",
		Performances: []entity.Performance{
			{PlayID: "winters", Audience: 10},
			{PlayID: "hamlet", Audience: 10},
			{PlayID: "winters", Audience: 20},
			{PlayID: "as-like", Audience: 15},
		},
	}

	st, err := billing.Aggregate(invoice, testCatalog())
	require.NoError(t, err)

	got := make([]string, 0, len(st.Lines))
	for _, line := range st.Lines {
		got = append(got, line.PlayName)
	}
	assert.Equal(t, []string{"The Winter's Tale", "Hamlet", "The Winter's Tale", "As You Like It"}, got)
}

func TestAggregate_FacturaVacia(t *testing.T) {
	st, err := billing.Aggregate(&entity.Invoice{Customer: "Nadie"}, testCatalog())
	require.NoError(t, err)
	assert.Empty(t, st.Lines)
	assert.Equal(t, int64(0), st.Totals.AmountCents)
	assert.Equal(t, 0, st.Totals.Credits)
}

func TestAggregate_ObraDesconocida(t *testing.T) {
	invoice := &entity.Invoice{
		Customer: "BigCo",
		Performances: []entity.Performance{
			{PlayID: "hamlet", Audience: 10},
			{PlayID: "no-existe", Audience: 10},
		},
	}

	st, err := billing.Aggregate(invoice, testCatalog())
	require.Error(t, err)
	assert.Nil(t, st, "no debe devolverse estado de cuenta parcial")
	assert.ErrorIs(t, err, domain.ErrUnknownPlay)
	assert.Contains(t, err.Error(), "no-existe", "el error debe nombrar el playID ofensor")
}

// TestAggregate_GeneroDesconocido playID presente pero con género inválido en
// el catálogo: caso distinto a obra desconocida, centinela distinto.
func TestAggregate_GeneroDesconocido(t *testing.T) {
	invoice := &entity.Invoice{
		Customer: "BigCo",
		Performances: []entity.Performance{
			{PlayID: "corrupted", Audience: 10},
		},
	}

	st, err := billing.Aggregate(invoice, testCatalog())
	require.Error(t, err)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, domain.ErrUnknownPlayType)
	assert.NotErrorIs(t, err, domain.ErrUnknownPlay)
}

func TestAggregate_FacturaNil(t *testing.T) {
	_, err := billing.Aggregate(nil, testCatalog())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
