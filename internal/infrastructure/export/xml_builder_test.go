package export_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
	"github.com/tu-usuario/teatro-billing/internal/infrastructure/export"
)

func TestBuild_DocumentoCompleto(t *testing.T) {
	st := &entity.Statement{
		ID:        "st-1",
		InvoiceID: "inv-1",
		Customer:  "BigCo",
		Lines: []entity.StatementLine{
			{PlayName: "Hamlet", AmountCents: 65_000, Audience: 55, Credits: 25},
			{PlayName: "As You Like It", AmountCents: 58_000, Audience: 35, Credits: 12},
		},
		Totals: entity.StatementTotals{AmountCents: 123_000, Credits: 37},
	}

	out, err := export.NewXMLBuilderService().Build(st)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out), "el output debe ser XML parseable")

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Statement", root.Tag)
	assert.Equal(t, export.NsStatement, root.SelectAttrValue("xmlns", ""))
	assert.Equal(t, "st-1", root.SelectAttrValue("id", ""))
	assert.Equal(t, "BigCo", root.FindElement("Customer").Text())

	lines := root.FindElements("Lines/Line")
	require.Len(t, lines, 2)
	assert.Equal(t, "Hamlet", lines[0].FindElement("PlayName").Text())
	assert.Equal(t, "65000", lines[0].FindElement("AmountCents").Text())
	assert.Equal(t, "55", lines[0].FindElement("Audience").Text())

	assert.Equal(t, "123000", root.FindElement("Totals/AmountCents").Text())
	assert.Equal(t, "37", root.FindElement("Totals/Credits").Text())
}

func TestBuild_StatementNil(t *testing.T) {
	_, err := export.NewXMLBuilderService().Build(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
