package entity

import "time"

// Performance una función dentro de la factura: qué obra y cuánto público asistió.
type Performance struct {
	PlayID   string
	Audience int
}

// Invoice factura de funciones de un cliente. El orden de Performances es
// significativo: determina el orden de las líneas del estado de cuenta.
type Invoice struct {
	ID           string
	Customer     string
	Performances []Performance
	CreatedAt    time.Time
}
