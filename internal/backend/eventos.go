package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/paroquia-digital/bingo-storefront/internal/domain"
)

// CartelasDisponiveis is the payload of the available-card listing.
type CartelasDisponiveis struct {
	Cartelas []domain.Cartela `json:"cartelas"`
	Total    int              `json:"total"`
}

func (c *Client) GetEventosAtivos(ctx context.Context) ([]domain.Evento, error) {
	env, code, err := c.do(ctx, http.MethodGet, "/eventos/ativos", nil, nil)
	if err != nil {
		return nil, err
	}

	var eventos []domain.Evento
	if err := unwrap(env, code, &eventos); err != nil {
		return nil, fmt.Errorf("GetEventosAtivos -> %w", err)
	}

	return eventos, nil
}

func (c *Client) GetEventoByID(ctx context.Context, eventoID string) (domain.Evento, error) {
	env, code, err := c.do(ctx, http.MethodGet, "/eventos/"+url.PathEscape(eventoID), nil, nil)
	if err != nil {
		return domain.Evento{}, err
	}
	if code == http.StatusNotFound {
		return domain.Evento{}, ErrEventoNotFound
	}

	var evento domain.Evento
	if err := unwrap(env, code, &evento); err != nil {
		return domain.Evento{}, fmt.Errorf("GetEventoByID -> %w", err)
	}

	return evento, nil
}

func (c *Client) GetCartelasDisponiveis(ctx context.Context, eventoID string, limite int) (CartelasDisponiveis, error) {
	query := url.Values{}
	if limite > 0 {
		query.Set("limite", strconv.Itoa(limite))
	}

	path := "/eventos/" + url.PathEscape(eventoID) + "/cartelas/disponiveis"
	env, code, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return CartelasDisponiveis{}, err
	}
	if code == http.StatusNotFound {
		return CartelasDisponiveis{}, ErrEventoNotFound
	}

	var disponiveis CartelasDisponiveis
	if err := unwrap(env, code, &disponiveis); err != nil {
		return CartelasDisponiveis{}, fmt.Errorf("GetCartelasDisponiveis -> %w", err)
	}

	return disponiveis, nil
}
