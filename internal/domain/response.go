package domain

import "time"

// APIResponse é o envelope único consumido pelo frontend do dashboard.
// Exatamente um entre Data e Error é não-nulo.
type APIResponse struct {
	Data     any        `json:"data"`
	Error    *string    `json:"error"`
	Cached   bool       `json:"cached"`
	CachedAt *time.Time `json:"cachedAt"`
}

// Provenance indica a origem do bundle retornado pelo orquestrador
type Provenance struct {
	Cached   bool
	CachedAt *time.Time
}
