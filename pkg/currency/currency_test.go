package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/teatro-billing/pkg/currency"
)

func TestFormat_USD(t *testing.T) {
	f := currency.New("en-US", "$")

	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{65_000, "$650.00"},
		{123_000, "$1,230.00"},
		{40_050, "$400.50"},
		{5, "$0.05"},
		{173_000, "$1,730.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, f.Format(tc.cents), "centavos: %d", tc.cents)
	}
}

// TestFormat_LocaleInvalido con locale basura cae a en-US en lugar de fallar.
func TestFormat_LocaleInvalido(t *testing.T) {
	f := currency.New("???", "$")
	assert.Equal(t, "$1,230.00", f.Format(123_000))
}
