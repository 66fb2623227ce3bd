package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/billing"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tarifas por género. Los valores esperados se calculan a mano desde la tabla
// de constants.go: si alguien toca una tarifa o un umbral sin querer, estos
// tests fallan de inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func TestAmountAndCredits_PorGenero(t *testing.T) {
	cases := []struct {
		name        string
		playType    entity.PlayType
		audience    int
		wantAmount  int64
		wantCredits int
	}{
		// Tragedy: base 40000, umbral 30, 1000/persona sobre el umbral.
		{"tragedy en umbral", entity.PlayTypeTragedy, 30, 40_000, 0},
		{"tragedy sobre umbral", entity.PlayTypeTragedy, 55, 40_000 + 1_000*25, 25},
		{"tragedy sin público", entity.PlayTypeTragedy, 0, 40_000, 0},

		// Comedy: base 30000, umbral 20, recargo fijo 10000 + 500/persona,
		// 300/asistente siempre; bono de 1 crédito por cada 5 asistentes.
		{"comedy en umbral", entity.PlayTypeComedy, 20, 30_000 + 300*20, 4},
		{"comedy sobre umbral", entity.PlayTypeComedy, 35, 30_000 + 10_000 + 500*15 + 300*35, 5 + 7},
		{"comedy sin público", entity.PlayTypeComedy, 0, 30_000, 0},
		{"comedy división entera del bono", entity.PlayTypeComedy, 9, 30_000 + 300*9, 1},

		// History: base 35000, umbral 25, 800/persona sobre el umbral.
		{"history en umbral", entity.PlayTypeHistory, 25, 35_000, 0},
		{"history sobre umbral", entity.PlayTypeHistory, 40, 35_000 + 800*15, 10},

		// Pastoral: base 25000, umbral 15, 700/persona; bono floor(aud/2).
		{"pastoral en umbral", entity.PlayTypePastoral, 15, 25_000, 7},
		{"pastoral sobre umbral", entity.PlayTypePastoral, 31, 25_000 + 700*16, 1 + 15},
		{"pastoral audiencia impar", entity.PlayTypePastoral, 3, 25_000, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount, credits, err := billing.AmountAndCredits(tc.playType, tc.audience)
			require.NoError(t, err)
			assert.Equal(t, tc.wantAmount, amount, "cargo en centavos")
			assert.Equal(t, tc.wantCredits, credits, "créditos de volumen")
		})
	}
}

func TestAmountAndCredits_GeneroDesconocido(t *testing.T) {
	_, _, err := billing.AmountAndCredits(entity.PlayType("opera"), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPlayType, "género fuera del conjunto cerrado debe ser error duro")
	assert.Contains(t, err.Error(), "opera", "el error debe nombrar el género ofensor")
}

func TestAmountAndCredits_AudienciaNegativa(t *testing.T) {
	for _, pt := range []entity.PlayType{
		entity.PlayTypeTragedy, entity.PlayTypeComedy, entity.PlayTypeHistory, entity.PlayTypePastoral,
	} {
		_, _, err := billing.AmountAndCredits(pt, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "género %s", pt)
	}
}

// TestAmountAndCredits_Determinista mismo input → mismo output, sin estado oculto.
func TestAmountAndCredits_Determinista(t *testing.T) {
	a1, c1, err1 := billing.AmountAndCredits(entity.PlayTypeComedy, 42)
	a2, c2, err2 := billing.AmountAndCredits(entity.PlayTypeComedy, 42)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, a1, a2)
	assert.Equal(t, c1, c2)
}

// TestAmountAndCredits_Monotonia cargo y créditos nunca decrecen al crecer la audiencia.
func TestAmountAndCredits_Monotonia(t *testing.T) {
	for _, pt := range []entity.PlayType{
		entity.PlayTypeTragedy, entity.PlayTypeComedy, entity.PlayTypeHistory, entity.PlayTypePastoral,
	} {
		prevAmount, prevCredits, err := billing.AmountAndCredits(pt, 0)
		require.NoError(t, err)
		for audience := 1; audience <= 200; audience++ {
			amount, credits, err := billing.AmountAndCredits(pt, audience)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, amount, prevAmount, "%s: cargo decreció en audiencia %d", pt, audience)
			assert.GreaterOrEqual(t, credits, prevCredits, "%s: créditos decrecieron en audiencia %d", pt, audience)
			prevAmount, prevCredits = amount, credits
		}
	}
}
