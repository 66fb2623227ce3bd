package entity

import "time"

// StatementLine línea del estado de cuenta: resultado de tarificar una función.
// AmountCents siempre en centavos (unidades menores) para evitar redondeo flotante.
type StatementLine struct {
	PlayName    string
	AmountCents int64
	Audience    int
	Credits     int
}

// StatementTotals totales acumulados de la factura.
type StatementTotals struct {
	AmountCents int64
	Credits     int
}

// Statement estado de cuenta calculado para una factura. Valor derivado:
// se construye en una sola pasada y no se modifica después.
type Statement struct {
	ID        string
	InvoiceID string
	Customer  string
	Lines     []StatementLine
	Totals    StatementTotals
	CreatedAt time.Time
}
