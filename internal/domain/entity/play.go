package entity

// PlayType género de una obra. Conjunto cerrado: las tarifas se definen por
// género y no se aceptan géneros nuevos en runtime.
type PlayType string

const (
	PlayTypeTragedy  PlayType = "tragedy"
	PlayTypeComedy   PlayType = "comedy"
	PlayTypeHistory  PlayType = "history"
	PlayTypePastoral PlayType = "pastoral"
)

// ParsePlayType valida el campo type de una obra al cargarla del catálogo.
// El dato viene de fuera (DB, JSON) y debe validarse en la frontera.
func ParsePlayType(s string) (PlayType, bool) {
	switch PlayType(s) {
	case PlayTypeTragedy, PlayTypeComedy, PlayTypeHistory, PlayTypePastoral:
		return PlayType(s), true
	}
	return "", false
}

// Play representa una obra del catálogo. Inmutable durante la generación de un estado de cuenta.
type Play struct {
	Name string
	Type PlayType
}

// PlayCatalog mapea el ID de la obra a sus datos. Solo lectura durante una corrida.
type PlayCatalog map[string]Play
