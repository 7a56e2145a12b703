package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1/response"
	"github.com/paroquia-digital/bingo-storefront/internal/backend"
	"github.com/paroquia-digital/bingo-storefront/internal/config"
	"github.com/paroquia-digital/bingo-storefront/internal/domain"
	"github.com/paroquia-digital/bingo-storefront/internal/selection"
)

type stubEventos struct {
	evento    domain.Evento
	eventoErr error
	cartelas  backend.CartelasDisponiveis
}

func (s *stubEventos) GetEventosAtivos(context.Context) ([]domain.Evento, error) {
	return []domain.Evento{s.evento}, s.eventoErr
}

func (s *stubEventos) GetEventoByID(context.Context, string) (domain.Evento, error) {
	return s.evento, s.eventoErr
}

func (s *stubEventos) GetCartelasDisponiveis(context.Context, string, int) (backend.CartelasDisponiveis, error) {
	return s.cartelas, nil
}

type stubVendas struct {
	criar     func(req backend.CriarVendaRequest) (backend.CriarVendaResponse, error)
	venda     domain.Venda
	vendaErr  error
	status    domain.StatusPagamento
	statusErr error
}

func (s *stubVendas) CriarVenda(_ context.Context, req backend.CriarVendaRequest) (backend.CriarVendaResponse, error) {
	return s.criar(req)
}

func (s *stubVendas) GetVendaByID(context.Context, string) (domain.Venda, error) {
	return s.venda, s.vendaErr
}

func (s *stubVendas) GetVendaStatus(context.Context, string) (domain.StatusPagamento, error) {
	return s.status, s.statusErr
}

func (s *stubVendas) ReenviarEmail(context.Context, string) error { return nil }

func (s *stubVendas) DownloadURL(vendaID string) string {
	return "http://api.test/vendas/" + vendaID + "/download"
}

func (s *stubVendas) CartelaDownloadURL(vendaID, cartelaID string) string {
	return "http://api.test/vendas/" + vendaID + "/cartelas/" + cartelaID + "/download"
}

func eventoTeste() domain.Evento {
	return domain.Evento{
		ID:           "ev1",
		Nome:         "Bingo de São João",
		Data:         time.Date(2026, 6, 24, 19, 0, 0, 0, time.UTC),
		ValorCartela: domain.Centavos(1000),
		Status:       domain.EventoAtivo,
	}
}

func compraRouter(h *CompraHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/loja/eventos/:eventoID/comprar", h.HandleGetComprar)
	router.POST("/loja/eventos/:eventoID/comprar", h.HandleCriarVenda)

	return router
}

func TestHandleGetComprarSemSelecaoRedireciona(t *testing.T) {
	client, _ := redismock.NewClientMock()
	store := selection.NewStore(client, time.Minute)
	tokens := selection.NewTokens("test-key", time.Minute)

	h := NewCompraHandler(&stubEventos{evento: eventoTeste()}, &stubVendas{}, store, tokens, config.LojaConfig{})
	router := compraRouter(h)

	// No token at all.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/loja/eventos/ev1/comprar", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp response.RedirecionarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/selecionar/ev1", resp.Rota)
}

func TestHandleGetComprarSelecaoExpiradaRedireciona(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := selection.NewStore(client, time.Minute)
	tokens := selection.NewTokens("test-key", time.Minute)

	sessionID, token, err := tokens.Emitir("ev1")
	require.NoError(t, err)

	// Valid token but the handoff has already expired out of redis.
	mock.ExpectGet("selecao:" + sessionID).RedisNil()

	h := NewCompraHandler(&stubEventos{evento: eventoTeste()}, &stubVendas{}, store, tokens, config.LojaConfig{})
	router := compraRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/loja/eventos/ev1/comprar", nil)
	req.Header.Set(TokenHeader, token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp response.RedirecionarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/selecionar/ev1", resp.Rota)
}

func TestHandleGetComprarComSelecao(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := selection.NewStore(client, time.Minute)
	tokens := selection.NewTokens("test-key", time.Minute)

	sessionID, token, err := tokens.Emitir("ev1")
	require.NoError(t, err)

	mock.ExpectGet("selecao:" + sessionID).SetVal(`{"eventoId":"ev1","cartelaIds":["c1","c2","c3"]}`)

	eventos := &stubEventos{
		evento:   eventoTeste(),
		cartelas: backend.CartelasDisponiveis{Total: 50},
	}
	h := NewCompraHandler(eventos, &stubVendas{}, store, tokens, config.LojaConfig{})
	router := compraRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/loja/eventos/ev1/comprar", nil)
	req.Header.Set(TokenHeader, token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var page response.ComprarPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 3, page.Quantidade)
	assert.Equal(t, domain.Centavos(3000), page.ValorTotal)
	assert.Equal(t, "R$ 30,00", page.ValorTotalFormatado)
	assert.Equal(t, []string{"c1", "c2", "c3"}, page.CartelaIDs)
}

func criarVendaBody(t *testing.T) *bytes.Buffer {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"nome":            "Maria da Silva",
		"email":           "maria@example.com",
		"telefone":        "(11) 98765-4321",
		"cpf":             "123.456.789-09",
		"metodoPagamento": "PIX",
	})
	require.NoError(t, err)

	return bytes.NewBuffer(body)
}

func TestHandleCriarVenda(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := selection.NewStore(client, time.Minute)
	tokens := selection.NewTokens("test-key", time.Minute)

	sessionID, token, err := tokens.Emitir("ev1")
	require.NoError(t, err)

	mock.ExpectGet("selecao:" + sessionID).SetVal(`{"eventoId":"ev1","cartelaIds":["c1","c2"]}`)
	mock.ExpectDel("selecao:" + sessionID).SetVal(1)

	expiresAt := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
	vendas := &stubVendas{
		criar: func(req backend.CriarVendaRequest) (backend.CriarVendaResponse, error) {
			assert.Equal(t, []string{"c1", "c2"}, req.CartelaIDs)
			assert.Equal(t, 2, req.Quantidade)
			assert.Equal(t, domain.PagamentoPIX, req.MetodoPagamento)

			return backend.CriarVendaResponse{
				VendaID:    "v1",
				ValorTotal: domain.Centavos(2000),
				ExpiresAt:  expiresAt,
			}, nil
		},
	}
	eventos := &stubEventos{
		evento:   eventoTeste(),
		cartelas: backend.CartelasDisponiveis{Total: 50},
	}

	h := NewCompraHandler(eventos, vendas, store, tokens, config.LojaConfig{})
	router := compraRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/loja/eventos/ev1/comprar", criarVendaBody(t))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp response.VendaCriadaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v1", resp.VendaID)
	assert.Equal(t, "/pagamento/v1", resp.Rota)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleCriarVendaTelefoneInvalido(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := selection.NewStore(client, time.Minute)
	tokens := selection.NewTokens("test-key", time.Minute)

	sessionID, token, err := tokens.Emitir("ev1")
	require.NoError(t, err)

	mock.ExpectGet("selecao:" + sessionID).SetVal(`{"eventoId":"ev1","cartelaIds":["c1"]}`)

	eventos := &stubEventos{
		evento:   eventoTeste(),
		cartelas: backend.CartelasDisponiveis{Total: 50},
	}
	h := NewCompraHandler(eventos, &stubVendas{}, store, tokens, config.LojaConfig{})
	router := compraRouter(h)

	body, err := json.Marshal(map[string]any{
		"nome":            "Maria da Silva",
		"telefone":        "11987654321",
		"cpf":             "123.456.789-09",
		"metodoPagamento": "PIX",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/loja/eventos/ev1/comprar", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "telefone")
}

func TestHandleCriarVendaPendenteOfereceAtalho(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := selection.NewStore(client, time.Minute)
	tokens := selection.NewTokens("test-key", time.Minute)

	sessionID, token, err := tokens.Emitir("ev1")
	require.NoError(t, err)

	mock.ExpectGet("selecao:" + sessionID).SetVal(`{"eventoId":"ev1","cartelaIds":["c1","c2"]}`)

	expiresAt := time.Now().Add(10 * time.Minute).UTC().Truncate(time.Second)
	vendas := &stubVendas{
		criar: func(backend.CriarVendaRequest) (backend.CriarVendaResponse, error) {
			return backend.CriarVendaResponse{}, &backend.PendingSaleError{
				VendaID:   "v-pendente",
				ExpiresAt: expiresAt,
				Message:   "já existe uma compra pendente para este CPF",
			}
		},
	}
	eventos := &stubEventos{
		evento:   eventoTeste(),
		cartelas: backend.CartelasDisponiveis{Total: 50},
	}

	h := NewCompraHandler(eventos, vendas, store, tokens, config.LojaConfig{})
	router := compraRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/loja/eventos/ev1/comprar", criarVendaBody(t))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(TokenHeader, token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp response.VendaPendenteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "v-pendente", resp.VendaID)
	assert.Equal(t, "/pagamento/v-pendente", resp.Rota)
	assert.NotEmpty(t, resp.Message)
}
