package billing

// Tabla de tarifas por género. Montos en centavos.
//
// Cada género tiene su tarifa base, umbral de audiencia y recargo por persona
// por encima del umbral. Comedy además suma un recargo fijo al superar el
// umbral y un monto por asistente que aplica siempre. Los créditos de volumen
// parten del excedente sobre creditThreshold; extraVolumeFactor (0 = sin bono)
// otorga un crédito extra por cada N asistentes, con división entera.
type rate struct {
	baseAmount            int64
	audienceThreshold     int
	overCapacityPerPerson int64
	overCapacityFlat      int64
	amountPerAudience     int64
	creditThreshold       int
	extraVolumeFactor     int
}

const (
	tragedyBaseAmount            = 40_000
	tragedyAudienceThreshold     = 30
	tragedyOverCapacityPerPerson = 1_000

	comedyBaseAmount            = 30_000
	comedyAudienceThreshold     = 20
	comedyOverCapacityFlat      = 10_000
	comedyOverCapacityPerPerson = 500
	comedyAmountPerAudience     = 300
	comedyExtraVolumeFactor     = 5

	historyBaseAmount            = 35_000
	historyAudienceThreshold     = 25
	historyOverCapacityPerPerson = 800

	pastoralBaseAmount            = 25_000
	pastoralAudienceThreshold     = 15
	pastoralOverCapacityPerPerson = 700
	pastoralExtraVolumeFactor     = 2

	baseVolumeCreditThreshold = 30
)
