package payment

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestante(t *testing.T) {
	agora := time.Date(2026, 6, 13, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, 90, Restante(agora.Add(90*time.Second), agora))
	assert.Equal(t, 0, Restante(agora, agora))
	assert.Equal(t, 0, Restante(agora.Add(-time.Minute), agora))
	// Partial seconds floor down.
	assert.Equal(t, 89, Restante(agora.Add(89*time.Second+900*time.Millisecond), agora))
}

func TestFormatar(t *testing.T) {
	assert.Equal(t, "1:30", Formatar(90))
	assert.Equal(t, "0:00", Formatar(0))
	assert.Equal(t, "0:05", Formatar(5))
	assert.Equal(t, "10:00", Formatar(600))
	assert.Equal(t, "0:00", Formatar(-7))
}

func TestQuaseExpirando(t *testing.T) {
	assert.True(t, QuaseExpirando(299))
	assert.True(t, QuaseExpirando(0))
	assert.False(t, QuaseExpirando(300))
	assert.False(t, QuaseExpirando(600))
}

func TestContagemDisparaUmaVez(t *testing.T) {
	var disparos atomic.Int32

	relogio := time.Date(2026, 6, 13, 20, 0, 0, 0, time.UTC)
	var agora atomic.Pointer[time.Time]
	agora.Store(&relogio)

	c := NovaContagem(relogio.Add(3*time.Second), func() { disparos.Add(1) })
	c.intervalo = time.Millisecond
	c.agora = func() time.Time { return *agora.Load() }

	assert.Equal(t, 3, c.Restante())

	done := make(chan struct{})
	go func() {
		c.Executar(context.Background())
		close(done)
	}()

	// Advance the clock past expiry; the runner must fire once and stop.
	depois := relogio.Add(5 * time.Second)
	agora.Store(&depois)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("contagem did not stop after expiry")
	}

	require.Equal(t, int32(1), disparos.Load())
	assert.Equal(t, 0, c.Restante())

	// Running again must not re-fire.
	c.Executar(context.Background())
	assert.Equal(t, int32(1), disparos.Load())
}

func TestContagemCancelamento(t *testing.T) {
	var disparos atomic.Int32

	c := NovaContagem(time.Now().Add(time.Hour), func() { disparos.Add(1) })
	c.intervalo = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Executar(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("contagem did not stop on cancellation")
	}

	assert.Equal(t, int32(0), disparos.Load())
}
