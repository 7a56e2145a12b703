package payment

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/paroquia-digital/bingo-storefront/internal/domain"
)

// StatusFetcher reads the current payment status of a venda.
type StatusFetcher func(ctx context.Context, vendaID string) (domain.StatusPagamento, error)

// Observador polls a venda's status on a fixed interval until a
// terminal status is observed or the context is cancelled. A failed
// poll is not retried; it just waits for the next tick. Cutucar forces
// an immediate out-of-band refetch, used when the local countdown hits
// zero before the server's expiry sweep does.
type Observador struct {
	vendaID   string
	intervalo time.Duration
	buscar    StatusFetcher

	cutucadas chan struct{}
	atual     chan domain.StatusPagamento
	once      sync.Once
}

func NovoObservador(vendaID string, intervalo time.Duration, buscar StatusFetcher) *Observador {
	return &Observador{
		vendaID:   vendaID,
		intervalo: intervalo,
		buscar:    buscar,
		cutucadas: make(chan struct{}, 1),
		atual:     make(chan domain.StatusPagamento, 8),
	}
}

// Observar runs the polling loop. Every successful read is published on
// Atualizacoes; aoTerminal fires exactly once, on the first terminal
// status seen, so the page navigates at most once per venda.
func (o *Observador) Observar(ctx context.Context, aoTerminal func(domain.StatusPagamento)) {
	defer close(o.atual)

	for {
		status, err := o.buscar(ctx, o.vendaID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			zap.L().Warn("status poll failed, waiting for next tick",
				zap.String("vendaId", o.vendaID),
				zap.Error(err))
		} else {
			select {
			case o.atual <- status:
			default:
			}

			if status.Status.Terminal() {
				if aoTerminal != nil {
					o.once.Do(func() { aoTerminal(status) })
				}
				return
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(o.intervalo):
		case <-o.cutucadas:
		}
	}
}

// Atualizacoes streams every status the poller observes; closed when
// the loop ends. The websocket handler fans these out to the browser.
func (o *Observador) Atualizacoes() <-chan domain.StatusPagamento {
	return o.atual
}

// Cutucar requests an immediate refetch. Multiple nudges between polls
// collapse into one.
func (o *Observador) Cutucar() {
	select {
	case o.cutucadas <- struct{}{}:
	default:
	}
}
