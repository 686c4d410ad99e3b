package sessioning

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gfvieira/metrics-dashboard-api/internal/config"
)

// SessionClaims são as claims mínimas da sessão emitida pelo serviço de
// autenticação externo. A API de métricas apenas verifica a assinatura;
// emissão e gestão de identidade acontecem fora deste serviço.
type SessionClaims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Verifier valida tokens de sessão emitidos pelo serviço de autenticação
type Verifier interface {
	Verify(token string) (*SessionClaims, error)
}

type Service struct {
	secret []byte
}

func NewService(cfg *config.Config) Verifier {
	return &Service{
		secret: []byte(cfg.Auth.SessionSecret),
	}
}

func (s *Service) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("token de sessão inválido")
	}

	return claims, nil
}
