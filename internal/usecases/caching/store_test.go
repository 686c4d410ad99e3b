package caching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected string
	}{
		{
			name: "Chave com tokens relativos preserva a grafia original",
			key: Key{
				Product:    "ulink",
				MetricType: "ulink_business",
				DateStart:  "30daysAgo",
				DateEnd:    "today",
			},
			expected: "metrics:ulink:ulink_business:30daysAgo:today",
		},
		{
			name: "Chave com datas absolutas",
			key: Key{
				Product:    "somara",
				MetricType: "somara_platform",
				DateStart:  "2024-01-01",
				DateEnd:    "2024-01-31",
			},
			expected: "metrics:somara:somara_platform:2024-01-01:2024-01-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.key.String())
		})
	}
}

func TestIsStaleAt(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		fetchedAt time.Time
		expected  bool
	}{
		{
			name:      "Entrada recém gravada está fresca",
			fetchedAt: now.Add(-1 * time.Minute),
			expected:  false,
		},
		{
			name:      "Entrada exatamente no limite do TTL ainda está fresca",
			fetchedAt: now.Add(-DefaultTTL),
			expected:  false,
		},
		{
			name:      "Entrada além do TTL está vencida",
			fetchedAt: now.Add(-DefaultTTL - time.Second),
			expected:  true,
		},
		{
			name:      "Entrada muito antiga está vencida",
			fetchedAt: now.Add(-24 * time.Hour),
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsStaleAt(tt.fetchedAt, now, DefaultTTL))
		})
	}
}
