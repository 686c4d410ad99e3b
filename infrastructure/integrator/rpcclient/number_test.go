package rpcclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexIntUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected int
	}{
		{
			name:     "Número JSON",
			payload:  `42`,
			expected: 42,
		},
		{
			name:     "String numérica de driver bigint",
			payload:  `"1234567"`,
			expected: 1234567,
		},
		{
			name:     "Número com casa decimal é truncado",
			payload:  `7.9`,
			expected: 7,
		},
		{
			name:     "Null vira zero",
			payload:  `null`,
			expected: 0,
		},
		{
			name:     "String vazia vira zero",
			payload:  `""`,
			expected: 0,
		},
		{
			name:     "String não numérica vira zero em vez de erro",
			payload:  `"n/a"`,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value FlexInt
			err := json.Unmarshal([]byte(tt.payload), &value)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, value.Int())
		})
	}
}

func TestFlexFloatUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected float64
	}{
		{
			name:     "Número JSON",
			payload:  `29.9`,
			expected: 29.9,
		},
		{
			name:     "Valor monetário serializado como string",
			payload:  `"149.90"`,
			expected: 149.90,
		},
		{
			name:     "Null vira zero",
			payload:  `null`,
			expected: 0,
		},
		{
			name:     "String não numérica vira zero em vez de erro",
			payload:  `"free"`,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var value FlexFloat
			err := json.Unmarshal([]byte(tt.payload), &value)

			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, value.Float(), 0.0001)
		})
	}
}

func TestFlexIntDentroDeEstrutura(t *testing.T) {
	// Linhas reais misturam os formatos dentro do mesmo array
	payload := `[
		{"date":"2024-01-01","count":3},
		{"date":"2024-01-02","count":"8"},
		{"date":"2024-01-03","count":null}
	]`

	var rows []struct {
		Date  string  `json:"date"`
		Count FlexInt `json:"count"`
	}

	err := json.Unmarshal([]byte(payload), &rows)

	assert.NoError(t, err)
	assert.Equal(t, 3, rows[0].Count.Int())
	assert.Equal(t, 8, rows[1].Count.Int())
	assert.Equal(t, 0, rows[2].Count.Int())
}
