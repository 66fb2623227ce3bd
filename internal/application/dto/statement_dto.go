package dto

// PerformanceRequest una función dentro de la factura del request.
type PerformanceRequest struct {
	PlayID   string `json:"playID"`
	Audience int    `json:"audience"`
}

// StatementRequest factura inline para generar un estado de cuenta sin persistirla.
type StatementRequest struct {
	Customer     string               `json:"customer"`
	Performances []PerformanceRequest `json:"performances"`
}

// StatementLineResponse línea del estado de cuenta en la respuesta.
type StatementLineResponse struct {
	PlayName    string `json:"play_name"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"`
	Audience    int    `json:"audience"`
	Credits     int    `json:"credits"`
}

// StatementResponse estado de cuenta completo: líneas, totales y el texto plano.
type StatementResponse struct {
	ID               string                  `json:"id,omitempty"`
	InvoiceID        string                  `json:"invoice_id,omitempty"`
	Customer         string                  `json:"customer"`
	Lines            []StatementLineResponse `json:"lines"`
	TotalAmountCents int64                   `json:"total_amount_cents"`
	TotalAmount      string                  `json:"total_amount"`
	TotalCredits     int                     `json:"total_credits"`
	Text             string                  `json:"text"`
}

// CreateInvoiceRequest alta de una factura persistida.
type CreateInvoiceRequest struct {
	Customer     string               `json:"customer"`
	Performances []PerformanceRequest `json:"performances"`
}

// InvoiceResponse factura persistida.
type InvoiceResponse struct {
	ID           string               `json:"id"`
	Customer     string               `json:"customer"`
	Performances []PerformanceRequest `json:"performances"`
	CreatedAt    string               `json:"created_at"`
}
