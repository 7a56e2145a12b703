package service

import (
	"context"
	"fmt"

	"github.com/paroquia-digital/bingo-storefront/internal/backend"
	"github.com/paroquia-digital/bingo-storefront/internal/domain"
)

var (
	ErrEventoNotFound = backend.ErrEventoNotFound
	ErrVendaNotFound  = backend.ErrVendaNotFound
)

type EventosAPI interface {
	GetEventosAtivos(ctx context.Context) ([]domain.Evento, error)
	GetEventoByID(ctx context.Context, eventoID string) (domain.Evento, error)
	GetCartelasDisponiveis(ctx context.Context, eventoID string, limite int) (backend.CartelasDisponiveis, error)
}

type EventoService struct {
	api EventosAPI
}

func NewEventoService(api EventosAPI) *EventoService {
	return &EventoService{api: api}
}

func (s *EventoService) GetEventosAtivos(ctx context.Context) ([]domain.Evento, error) {
	eventos, err := s.api.GetEventosAtivos(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetEventosAtivos -> s.api.GetEventosAtivos -> %w", err)
	}

	return eventos, nil
}

func (s *EventoService) GetEventoByID(ctx context.Context, eventoID string) (domain.Evento, error) {
	evento, err := s.api.GetEventoByID(ctx, eventoID)
	if err != nil {
		return domain.Evento{}, err
	}

	return evento, nil
}

func (s *EventoService) GetCartelasDisponiveis(ctx context.Context, eventoID string, limite int) (backend.CartelasDisponiveis, error) {
	disponiveis, err := s.api.GetCartelasDisponiveis(ctx, eventoID, limite)
	if err != nil {
		return backend.CartelasDisponiveis{}, err
	}

	return disponiveis, nil
}
