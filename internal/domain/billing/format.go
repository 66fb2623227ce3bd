package billing

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// CurrencyFormatter convierte centavos a una cadena de moneda localizada
// (símbolo, separador de miles, dos decimales). El formateo de moneda es
// infraestructura de locale: el cálculo no depende de él.
type CurrencyFormatter interface {
	Format(cents int64) string
}

// Render produce el texto del estado de cuenta: encabezado con el cliente, una
// línea por función y los dos pies con el total adeudado y los créditos.
func Render(st *entity.Statement, money CurrencyFormatter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Statement for %s\n", st.Customer)
	for _, line := range st.Lines {
		fmt.Fprintf(&b, "  %s: %s (%d seats)\n", line.PlayName, money.Format(line.AmountCents), line.Audience)
	}
	fmt.Fprintf(&b, "Amount owed is %s\n", money.Format(st.Totals.AmountCents))
	fmt.Fprintf(&b, "You earned %d credits\n", st.Totals.Credits)
	return b.String()
}
