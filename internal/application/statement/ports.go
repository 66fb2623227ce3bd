package statement

import (
	"context"

	"github.com/tu-usuario/teatro-billing/internal/domain/billing"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// StatementPDFGenerator puerto para la representación PDF del estado de cuenta.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, st *entity.Statement, money billing.CurrencyFormatter) ([]byte, error)
}

// StatementXMLBuilder puerto para el export XML del estado de cuenta.
type StatementXMLBuilder interface {
	Build(st *entity.Statement) ([]byte, error)
}
