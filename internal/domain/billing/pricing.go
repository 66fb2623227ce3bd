// Package billing implementa el cálculo del estado de cuenta teatral:
// tarificación por género, agregación por factura y render del texto final.
// Todo el cálculo monetario es entero en centavos.
package billing

import (
	"fmt"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// rates tabla de despacho por género. Conjunto cerrado: agregar un género
// nuevo exige una fila aquí y una constante en el enum de entity.
var rates = map[entity.PlayType]rate{
	entity.PlayTypeTragedy: {
		baseAmount:            tragedyBaseAmount,
		audienceThreshold:     tragedyAudienceThreshold,
		overCapacityPerPerson: tragedyOverCapacityPerPerson,
		creditThreshold:       baseVolumeCreditThreshold,
	},
	entity.PlayTypeComedy: {
		baseAmount:            comedyBaseAmount,
		audienceThreshold:     comedyAudienceThreshold,
		overCapacityPerPerson: comedyOverCapacityPerPerson,
		overCapacityFlat:      comedyOverCapacityFlat,
		amountPerAudience:     comedyAmountPerAudience,
		creditThreshold:       baseVolumeCreditThreshold,
		extraVolumeFactor:     comedyExtraVolumeFactor,
	},
	entity.PlayTypeHistory: {
		baseAmount:            historyBaseAmount,
		audienceThreshold:     historyAudienceThreshold,
		overCapacityPerPerson: historyOverCapacityPerPerson,
		creditThreshold:       baseVolumeCreditThreshold,
	},
	entity.PlayTypePastoral: {
		baseAmount:            pastoralBaseAmount,
		audienceThreshold:     pastoralAudienceThreshold,
		overCapacityPerPerson: pastoralOverCapacityPerPerson,
		creditThreshold:       baseVolumeCreditThreshold,
		extraVolumeFactor:     pastoralExtraVolumeFactor,
	},
}

// AmountAndCredits calcula el cargo en centavos y los créditos de volumen para
// una función según el género y la audiencia. Género desconocido es error duro:
// no hay tarifa por defecto.
func AmountAndCredits(playType entity.PlayType, audience int) (amountCents int64, credits int, err error) {
	if audience < 0 {
		return 0, 0, fmt.Errorf("%w: audiencia negativa (%d)", domain.ErrInvalidInput, audience)
	}
	r, ok := rates[playType]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrUnknownPlayType, playType)
	}

	amountCents = r.baseAmount
	if audience > r.audienceThreshold {
		amountCents += r.overCapacityFlat + r.overCapacityPerPerson*int64(audience-r.audienceThreshold)
	}
	amountCents += r.amountPerAudience * int64(audience)

	if audience > r.creditThreshold {
		credits = audience - r.creditThreshold
	}
	if r.extraVolumeFactor > 0 {
		credits += audience / r.extraVolumeFactor
	}
	return amountCents, credits, nil
}
