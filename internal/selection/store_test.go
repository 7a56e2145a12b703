package selection

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSalvarECarregar(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, 30*time.Minute)

	handoff := Handoff{EventoID: "ev1", CartelaIDs: []string{"c1", "c2"}}
	payload, err := json.Marshal(handoff)
	require.NoError(t, err)

	mock.ExpectSet("selecao:sess-1", payload, 30*time.Minute).SetVal("OK")
	require.NoError(t, store.Salvar(context.Background(), "sess-1", handoff))

	mock.ExpectGet("selecao:sess-1").SetVal(string(payload))
	carregado, err := store.Carregar(context.Background(), "sess-1", "ev1")
	require.NoError(t, err)
	assert.Equal(t, handoff, carregado)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreCarregarAusente(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, time.Minute)

	mock.ExpectGet("selecao:sess-x").RedisNil()

	_, err := store.Carregar(context.Background(), "sess-x", "ev1")
	assert.ErrorIs(t, err, ErrHandoffAusente)
}

func TestStoreCarregarInvalido(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, time.Minute)

	// Malformed payload.
	mock.ExpectGet("selecao:sess-1").SetVal("not-json")
	_, err := store.Carregar(context.Background(), "sess-1", "ev1")
	assert.ErrorIs(t, err, ErrHandoffInvalido)

	// Wrong event.
	mock.ExpectGet("selecao:sess-1").SetVal(`{"eventoId":"outro","cartelaIds":["c1"]}`)
	_, err = store.Carregar(context.Background(), "sess-1", "ev1")
	assert.ErrorIs(t, err, ErrHandoffInvalido)

	// Empty selection.
	mock.ExpectGet("selecao:sess-1").SetVal(`{"eventoId":"ev1","cartelaIds":[]}`)
	_, err = store.Carregar(context.Background(), "sess-1", "ev1")
	assert.ErrorIs(t, err, ErrHandoffInvalido)
}

func TestStoreRemover(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewStore(client, time.Minute)

	mock.ExpectDel("selecao:sess-1").SetVal(1)
	require.NoError(t, store.Remover(context.Background(), "sess-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTokens(t *testing.T) {
	tokens := NewTokens("chave-de-teste", time.Hour)

	sessionID, token, err := tokens.Emitir("ev1")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	require.NotEmpty(t, token)

	parsed, err := tokens.Validar(token, "ev1")
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsed)

	_, err = tokens.Validar(token, "outro-evento")
	assert.ErrorIs(t, err, ErrTokenInvalido)

	outros := NewTokens("outra-chave", time.Hour)
	_, err = outros.Validar(token, "ev1")
	assert.ErrorIs(t, err, ErrTokenInvalido)

	_, err = tokens.Validar("rabisco", "ev1")
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestTokensExpirado(t *testing.T) {
	tokens := NewTokens("chave-de-teste", -time.Minute)

	_, token, err := tokens.Emitir("ev1")
	require.NoError(t, err)

	_, err = tokens.Validar(token, "ev1")
	assert.ErrorIs(t, err, ErrTokenInvalido)
}
