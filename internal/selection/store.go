package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrHandoffAusente means there is no selection saved for the
	// session; the caller redirects back to the selection page.
	ErrHandoffAusente = errors.New("selecao ausente")
	// ErrHandoffInvalido means the stored payload is malformed or
	// belongs to another event; treated the same as absent.
	ErrHandoffInvalido = errors.New("selecao invalida")
)

// Handoff is the typed transfer object between the selection page
// (producer) and the checkout page (consumer).
type Handoff struct {
	EventoID   string   `json:"eventoId"`
	CartelaIDs []string `json:"cartelaIds"`
}

// Store persists selections in redis with a TTL, addressed by the
// session id carried in the handoff token.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: client, ttl: ttl}
}

func chave(sessionID string) string {
	return "selecao:" + sessionID
}

// Salvar writes the session's selection, refreshing the TTL so an
// active buyer is not expired mid-funnel.
func (s *Store) Salvar(ctx context.Context, sessionID string, handoff Handoff) error {
	payload, err := json.Marshal(handoff)
	if err != nil {
		return fmt.Errorf("Salvar -> json.Marshal -> %w", err)
	}

	if err := s.redis.Set(ctx, chave(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("Salvar -> redis.Set -> %w", err)
	}

	return nil
}

// Carregar reads and validates the session's selection for an event.
func (s *Store) Carregar(ctx context.Context, sessionID, eventoID string) (Handoff, error) {
	raw, err := s.redis.Get(ctx, chave(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return Handoff{}, ErrHandoffAusente
	}
	if err != nil {
		return Handoff{}, fmt.Errorf("Carregar -> redis.Get -> %w", err)
	}

	var handoff Handoff
	if err := json.Unmarshal([]byte(raw), &handoff); err != nil {
		return Handoff{}, ErrHandoffInvalido
	}
	if handoff.EventoID != eventoID || len(handoff.CartelaIDs) == 0 {
		return Handoff{}, ErrHandoffInvalido
	}

	return handoff, nil
}

// Remover discards the selection, called once a venda is created or the
// buyer abandons the funnel.
func (s *Store) Remover(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, chave(sessionID)).Err(); err != nil {
		return fmt.Errorf("Remover -> redis.Del -> %w", err)
	}
	return nil
}
