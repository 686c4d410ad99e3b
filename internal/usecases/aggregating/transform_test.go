package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected []string
	}{
		{
			name:     "Intervalo de uma semana gera sete datas",
			start:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
			expected: []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07"},
		},
		{
			name:     "Início e fim no mesmo dia geram uma única data",
			start:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
			expected: []string{"2024-03-15"},
		},
		{
			name:     "Intervalo atravessando a virada do mês",
			start:    time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
			expected: []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"},
		},
		{
			name:     "Ano bissexto inclui 29 de fevereiro",
			start:    time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expected: []string{"2024-02-28", "2024-02-29", "2024-03-01"},
		},
		{
			name:     "Fim anterior ao início gera lista vazia",
			start:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, generateDateRange(tt.start, tt.end))
		})
	}
}

func TestSafeRate(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    float64
	}{
		{
			name:        "Divisão normal",
			numerator:   25,
			denominator: 100,
			expected:    0.25,
		},
		{
			name:        "Denominador zero retorna zero",
			numerator:   10,
			denominator: 0,
			expected:    0,
		},
		{
			name:        "Denominador negativo retorna zero",
			numerator:   10,
			denominator: -5,
			expected:    0,
		},
		{
			name:        "Numerador zero retorna zero",
			numerator:   0,
			denominator: 50,
			expected:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, safeRate(tt.numerator, tt.denominator))
		})
	}
}
