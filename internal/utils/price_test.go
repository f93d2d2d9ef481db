package utils

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceForms(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"json number", json.Number("12.5"), "12.5"},
		{"json integer", json.Number("10"), "10"},
		{"numeric string", "5.5", "5.5"},
		{"float", 7.25, "7.25"},
		{"int", 3, "3"},
		{"zero", json.Number("0"), "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePrice(tc.in)
			require.NoError(t, err)
			want, _ := decimal.NewFromString(tc.want)
			assert.True(t, got.Equal(want), "got %s want %s", got, want)
		})
	}
}

func TestParsePriceInvalid(t *testing.T) {
	for _, in := range []any{"abc", true, nil, []any{1}, map[string]any{}} {
		_, err := ParsePrice(in)
		assert.ErrorIs(t, err, ErrNotANumber, "input %#v", in)
	}
}

func TestParsePriceSumAvoidsFloatDrift(t *testing.T) {
	a, err := ParsePrice(json.Number("0.1"))
	require.NoError(t, err)
	b, err := ParsePrice(json.Number("0.2"))
	require.NoError(t, err)
	assert.Equal(t, 0.3, a.Add(b).InexactFloat64())
}
