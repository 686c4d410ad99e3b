package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTL é a validade de uma entrada do cache de métricas
const DefaultTTL = 15 * time.Minute

// Key identifica uma entrada do cache. As datas são os tokens literais da
// requisição, não as datas normalizadas: duas requisições com grafias
// diferentes do mesmo intervalo absoluto geram entradas distintas.
type Key struct {
	Product    string
	MetricType string
	DateStart  string
	DateEnd    string
}

// String retorna a representação canônica da chave (usada no backend Redis)
func (k Key) String() string {
	return fmt.Sprintf("metrics:%s:%s:%s:%s", k.Product, k.MetricType, k.DateStart, k.DateEnd)
}

// Entry é uma entrada recuperada do cache
type Entry struct {
	Payload   json.RawMessage
	FetchedAt time.Time
	IsStale   bool
}

// Store é a capacidade de cache consumida pelo orquestrador de agregação.
//
// Get retorna (nil, nil) quando não há entrada utilizável (miss) e erro apenas
// quando o próprio backend está indisponível; nesse caso o orquestrador
// ignora o cache por completo na requisição. Entradas malformadas são
// tratadas como miss, nunca como erro.
//
// Set sempre sobrescreve a entrada existente. O orquestrador o invoca sem
// aguardar a conclusão; falhas de escrita são apenas registradas em log.
type Store interface {
	Get(ctx context.Context, key Key) (*Entry, error)
	Set(ctx context.Context, key Key, payload json.RawMessage) error
}

// IsStaleAt calcula a validade de uma entrada contra o TTL em backends sem
// expiração nativa por chave
func IsStaleAt(fetchedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(fetchedAt) > ttl
}
