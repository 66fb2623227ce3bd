// Package export genera el documento XML del estado de cuenta para
// integraciones externas. Documento plano, sin firma.
package export

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// NsStatement namespace del documento de estado de cuenta.
const NsStatement = "urn:teatro-billing:statement:v1"

// XMLBuilderService construye el XML del estado de cuenta.
type XMLBuilderService struct{}

// NewXMLBuilderService crea el servicio.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// Build genera el []byte del documento Statement. Montos en centavos: el XML
// es para máquinas, el formato de moneda es cosa del render de texto.
func (s *XMLBuilderService) Build(st *entity.Statement) ([]byte, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: statement nil", domain.ErrInvalidInput)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Statement")
	root.CreateAttr("xmlns", NsStatement)
	if st.ID != "" {
		root.CreateAttr("id", st.ID)
	}
	if st.InvoiceID != "" {
		root.CreateAttr("invoiceID", st.InvoiceID)
	}

	root.CreateElement("Customer").SetText(st.Customer)

	lines := root.CreateElement("Lines")
	for _, l := range st.Lines {
		line := lines.CreateElement("Line")
		line.CreateElement("PlayName").SetText(l.PlayName)
		line.CreateElement("AmountCents").SetText(strconv.FormatInt(l.AmountCents, 10))
		line.CreateElement("Audience").SetText(strconv.Itoa(l.Audience))
		line.CreateElement("Credits").SetText(strconv.Itoa(l.Credits))
	}

	totals := root.CreateElement("Totals")
	totals.CreateElement("AmountCents").SetText(strconv.FormatInt(st.Totals.AmountCents, 10))
	totals.CreateElement("Credits").SetText(strconv.Itoa(st.Totals.Credits))

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: serializar XML: %w", err)
	}
	return out, nil
}
