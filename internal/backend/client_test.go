package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paroquia-digital/bingo-storefront/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, 2*time.Second)
}

func TestGetEventosAtivos(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eventos/ativos", r.URL.Path)
		w.Write([]byte(`{
			"status": "success",
			"data": [
				{"_id": "ev1", "nome": "Bingo de São João", "valorCartela": 1000, "status": "ativo"},
				{"_id": "ev2", "nome": "Bingo da Padroeira", "valorCartela": 1500, "status": "ativo"}
			]
		}`))
	})

	eventos, err := client.GetEventosAtivos(context.Background())
	require.NoError(t, err)
	require.Len(t, eventos, 2)
	assert.Equal(t, "Bingo de São João", eventos[0].Nome)
	assert.Equal(t, domain.Centavos(1000), eventos[0].ValorCartela)
}

func TestGetEventoByID_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": "error", "message": "Evento não encontrado"}`))
	})

	_, err := client.GetEventoByID(context.Background(), "desconhecido")
	require.ErrorIs(t, err, ErrEventoNotFound)
}

func TestGetCartelasDisponiveis(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eventos/ev1/cartelas/disponiveis", r.URL.Path)
		assert.Equal(t, "500", r.URL.Query().Get("limite"))
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"cartelas": [{"_id": "c1", "codigo": "A-001", "eventoId": "ev1", "status": "disponivel"}],
				"total": 250
			}
		}`))
	})

	disponiveis, err := client.GetCartelasDisponiveis(context.Background(), "ev1", 500)
	require.NoError(t, err)
	assert.Equal(t, 250, disponiveis.Total)
	require.Len(t, disponiveis.Cartelas, 1)
	assert.Equal(t, "A-001", disponiveis.Cartelas[0].Codigo)
}

func TestCriarVenda(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/vendas/criar", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{
			"status": "success",
			"data": {
				"vendaId": "v1",
				"pixQrCode": "00020126...",
				"pixCopyPaste": "00020126...",
				"valorTotal": 3000,
				"expiresAt": "2026-01-01T12:30:00Z"
			}
		}`))
	})

	created, err := client.CriarVenda(context.Background(), CriarVendaRequest{
		EventoID:        "ev1",
		Nome:            "Maria da Silva",
		CPF:             "123.456.789-00",
		MetodoPagamento: domain.PagamentoPIX,
		Quantidade:      3,
		CartelaIDs:      []string{"c1", "c2", "c3"},
	})
	require.NoError(t, err)
	assert.Equal(t, "v1", created.VendaID)
	assert.Equal(t, domain.Centavos(3000), created.ValorTotal)
}

func TestCriarVenda_VendaPendente(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{
			"status": "error",
			"message": "Já existe uma venda pendente para este comprador",
			"data": {"vendaId": "v-pendente", "expiresAt": "2026-01-01T12:30:00Z"}
		}`))
	})

	_, err := client.CriarVenda(context.Background(), CriarVendaRequest{EventoID: "ev1"})

	var pending *PendingSaleError
	require.ErrorAs(t, err, &pending)
	assert.Equal(t, "v-pendente", pending.VendaID)
	assert.Equal(t, 2026, pending.ExpiresAt.Year())
}

func TestCriarVenda_ErroGenerico(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": "error", "message": "Quantidade indisponível"}`))
	})

	_, err := client.CriarVenda(context.Background(), CriarVendaRequest{EventoID: "ev1"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Quantidade indisponível", apiErr.Message)
}

func TestGetVendaStatus_NormalizaStatus(t *testing.T) {
	// Older API revisions report the status in uppercase.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "success",
			"data": {"status": "EXPIRADO", "expiresAt": "2026-01-01T12:30:00Z", "emailEnviado": false}
		}`))
	})

	status, err := client.GetVendaStatus(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, domain.VendaExpirada, status.Status)
	assert.True(t, status.Status.Terminal())
}

func TestGetVendaByID_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": "error", "message": "Venda não encontrada"}`))
	})

	_, err := client.GetVendaByID(context.Background(), "v404")
	require.True(t, errors.Is(err, ErrVendaNotFound))
}

func TestDownloadURLs(t *testing.T) {
	client := NewClient("https://api.example.org/api", time.Second)

	assert.Equal(t, "https://api.example.org/api/vendas/v1/cartelas/download", client.DownloadURL("v1"))
	assert.Equal(t, "https://api.example.org/api/vendas/v1/cartelas/c9/download", client.CartelaDownloadURL("v1", "c9"))
}
