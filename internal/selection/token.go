package selection

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrTokenInvalido = errors.New("token de selecao invalido")

type handoffClaims struct {
	EventoID string `json:"evt"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies the signed handoff token the browser
// carries between the selection and checkout pages. The subject is the
// redis session id; the token is worthless without the stored selection
// and expires with it.
type Tokens struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokens(signingKey string, ttl time.Duration) *Tokens {
	return &Tokens{signingKey: []byte(signingKey), ttl: ttl}
}

// Emitir creates a fresh session id and its signed token.
func (t *Tokens) Emitir(eventoID string) (sessionID, token string, err error) {
	sessionID = uuid.NewString()

	claims := handoffClaims{
		EventoID: eventoID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.signingKey)
	if err != nil {
		return "", "", fmt.Errorf("Emitir -> SignedString -> %w", err)
	}

	return sessionID, token, nil
}

// Validar checks signature, expiry and event binding, returning the
// session id the token addresses.
func (t *Tokens) Validar(token, eventoID string) (string, error) {
	claims := &handoffClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tk.Header["alg"])
		}
		return t.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrTokenInvalido
	}
	if claims.EventoID != eventoID || claims.Subject == "" {
		return "", ErrTokenInvalido
	}

	return claims.Subject, nil
}
