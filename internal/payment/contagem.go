package payment

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// LimiarAlerta is the remaining time under which the countdown shows
// its "expiring soon" state.
const LimiarAlerta = 5 * time.Minute

// Restante is the countdown value: whole seconds until expiry, floored
// at zero.
func Restante(expiresAt, agora time.Time) int {
	diff := expiresAt.Sub(agora)
	if diff <= 0 {
		return 0
	}
	return int(diff / time.Second)
}

// Formatar renders seconds as M:SS, e.g. 90 -> "1:30".
func Formatar(segundos int) string {
	if segundos < 0 {
		segundos = 0
	}
	return fmt.Sprintf("%d:%02d", segundos/60, segundos%60)
}

func QuaseExpirando(segundos int) bool {
	return time.Duration(segundos)*time.Second < LimiarAlerta
}

// Contagem recomputes the remaining time once per second and fires
// aoExpirar exactly once when it reaches zero, then stops. It runs
// independently of the status poller; expiry only nudges a refetch,
// the sales API stays authoritative.
type Contagem struct {
	expiresAt time.Time
	aoExpirar func()

	intervalo time.Duration
	agora     func() time.Time
	once      sync.Once
}

func NovaContagem(expiresAt time.Time, aoExpirar func()) *Contagem {
	return &Contagem{
		expiresAt: expiresAt,
		aoExpirar: aoExpirar,
		intervalo: time.Second,
		agora:     time.Now,
	}
}

// Executar runs the countdown until expiry or ctx cancellation, which
// is how navigating away releases the timer.
func (c *Contagem) Executar(ctx context.Context) {
	if c.expirou() {
		return
	}

	ticker := time.NewTicker(c.intervalo)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.expirou() {
				return
			}
		}
	}
}

func (c *Contagem) expirou() bool {
	if Restante(c.expiresAt, c.agora()) > 0 {
		return false
	}
	if c.aoExpirar != nil {
		c.once.Do(c.aoExpirar)
	}
	return true
}

// Restante reports the current countdown value.
func (c *Contagem) Restante() int {
	return Restante(c.expiresAt, c.agora())
}
