package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1/request"
	"github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1/response"
	"github.com/paroquia-digital/bingo-storefront/internal/config"
	"github.com/paroquia-digital/bingo-storefront/internal/domain"
	"github.com/paroquia-digital/bingo-storefront/internal/selection"
	"github.com/paroquia-digital/bingo-storefront/internal/service"
)

// TokenHeader carries the selection-handoff token on mutation and
// checkout requests.
const TokenHeader = "X-Selecao-Token"

type SelecaoHandler struct {
	eventos EventoService
	store   *selection.Store
	tokens  *selection.Tokens
	conf    config.LojaConfig
}

func NewSelecaoHandler(eventos EventoService, store *selection.Store, tokens *selection.Tokens, conf config.LojaConfig) *SelecaoHandler {
	return &SelecaoHandler{
		eventos: eventos,
		store:   store,
		tokens:  tokens,
		conf:    conf,
	}
}

// HandleGetSelecao godoc
// @Summary      Card selection view
// @Description  Lists available cards for an event with search, pagination and the buyer's current selection
// @Tags         loja
// @Produce      json
// @Param        eventoID  path      string  true   "Evento ID"
// @Param        busca     query     string  false  "Search term matched against card code and grid numbers"
// @Param        pagina    query     int     false  "Page number"
// @Param        token     query     string  false  "Selection token from a previous visit"
// @Success      200       {object}  response.SelecaoPage
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /loja/eventos/{eventoID}/selecao [get]
func (h *SelecaoHandler) HandleGetSelecao(ctx *gin.Context) {
	eventoID := ctx.Param("eventoID")
	busca := ctx.Query("busca")
	pagina, _ := strconv.Atoi(ctx.DefaultQuery("pagina", "1"))

	token := ctx.Query("token")
	if token == "" {
		token = ctx.GetHeader(TokenHeader)
	}

	sel := selection.NovaSelecao()
	sessionID, err := h.tokens.Validar(token, eventoID)
	if err != nil {
		// No usable token: start a fresh selection session.
		sessionID, token, err = h.tokens.Emitir(eventoID)
		if err != nil {
			err = fmt.Errorf("HandleGetSelecao -> h.tokens.Emitir -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}
	} else {
		if handoff, loadErr := h.store.Carregar(ctx.Request.Context(), sessionID, eventoID); loadErr == nil {
			sel = selection.NovaSelecao(handoff.CartelaIDs...)
		}
	}

	page, respErr := h.montarPagina(ctx, eventoID, busca, pagina, sel, token)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleAtualizarSelecao godoc
// @Summary      Mutate the card selection
// @Description  Applies toggle, select-page, select-all-matching-filter or clear to the working selection
// @Tags         loja
// @Accept       json
// @Produce      json
// @Param        eventoID        path      string                           true  "Evento ID"
// @Param        X-Selecao-Token  header   string                           true  "Selection token"
// @Param        input           body      request.AtualizarSelecaoRequest  true  "Operation"
// @Success      200             {object}  response.SelecaoPage
// @Failure      400             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /loja/eventos/{eventoID}/selecao/cartelas [post]
func (h *SelecaoHandler) HandleAtualizarSelecao(ctx *gin.Context) {
	eventoID := ctx.Param("eventoID")

	sessionID, err := h.tokens.Validar(ctx.GetHeader(TokenHeader), eventoID)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.AtualizarSelecaoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	disponiveis, err := h.eventos.GetCartelasDisponiveis(ctx.Request.Context(), eventoID, h.conf.LimiteCartelas)
	if err != nil {
		if errors.Is(err, service.ErrEventoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("evento", "id", eventoID))
			return
		}

		err = fmt.Errorf("HandleAtualizarSelecao -> h.eventos.GetCartelasDisponiveis -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	sel := selection.NovaSelecao()
	if handoff, loadErr := h.store.Carregar(ctx.Request.Context(), sessionID, eventoID); loadErr == nil {
		sel = selection.NovaSelecao(handoff.CartelaIDs...)
	}

	filtradas := selection.Filtrar(disponiveis.Cartelas, req.Busca)

	switch req.Operacao {
	case request.OperacaoToggle:
		sel.Toggle(req.CartelaID)
	case request.OperacaoTodas:
		sel.SelecionarTodas(idsDe(filtradas))
	case request.OperacaoPagina:
		visiveis, _ := selection.Paginar(filtradas, req.Pagina, h.conf.CartelasPorPagina)
		sel.SelecionarPagina(idsDe(visiveis))
	case request.OperacaoLimpar:
		sel.Limpar()
	}

	handoff := selection.Handoff{EventoID: eventoID, CartelaIDs: sel.IDs()}
	if err := h.store.Salvar(ctx.Request.Context(), sessionID, handoff); err != nil {
		err = fmt.Errorf("HandleAtualizarSelecao -> h.store.Salvar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token := ctx.GetHeader(TokenHeader)
	page, respErr := h.montarPagina(ctx, eventoID, req.Busca, req.Pagina, sel, token)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleProsseguir godoc
// @Summary      Proceed to checkout
// @Description  Confirms the selection handoff and returns the checkout route
// @Tags         loja
// @Produce      json
// @Param        eventoID        path      string  true  "Evento ID"
// @Param        X-Selecao-Token  header   string  true  "Selection token"
// @Success      200             {object}  response.ProsseguirResponse
// @Failure      400             {object}  response.Err
// @Failure      500             {object}  response.Err
// @Router       /loja/eventos/{eventoID}/selecao/prosseguir [post]
func (h *SelecaoHandler) HandleProsseguir(ctx *gin.Context) {
	eventoID := ctx.Param("eventoID")

	sessionID, err := h.tokens.Validar(ctx.GetHeader(TokenHeader), eventoID)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	handoff, err := h.store.Carregar(ctx.Request.Context(), sessionID, eventoID)
	if err != nil {
		if errors.Is(err, selection.ErrHandoffAusente) || errors.Is(err, selection.ErrHandoffInvalido) {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("nenhuma cartela selecionada")))
			return
		}

		err = fmt.Errorf("HandleProsseguir -> h.store.Carregar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	// Refresh the TTL so the handoff survives the page navigation.
	if err := h.store.Salvar(ctx.Request.Context(), sessionID, handoff); err != nil {
		err = fmt.Errorf("HandleProsseguir -> h.store.Salvar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ProsseguirResponse{
		Rota: response.RotaComprar(eventoID),
	})
}

func (h *SelecaoHandler) montarPagina(ctx *gin.Context, eventoID, busca string, pagina int, sel *selection.Selecao, token string) (*response.SelecaoPage, *response.Err) {
	evento, err := h.eventos.GetEventoByID(ctx.Request.Context(), eventoID)
	if err != nil {
		if errors.Is(err, service.ErrEventoNotFound) {
			return nil, response.ErrNotFound("evento", "id", eventoID)
		}
		return nil, response.ErrInternalServerError(fmt.Errorf("montarPagina -> h.eventos.GetEventoByID -> %w", err))
	}

	disponiveis, err := h.eventos.GetCartelasDisponiveis(ctx.Request.Context(), eventoID, h.conf.LimiteCartelas)
	if err != nil {
		return nil, response.ErrInternalServerError(fmt.Errorf("montarPagina -> h.eventos.GetCartelasDisponiveis -> %w", err))
	}

	filtradas := selection.Filtrar(disponiveis.Cartelas, busca)
	visiveis, paginacao := selection.Paginar(filtradas, pagina, h.conf.CartelasPorPagina)

	views := make([]response.CartelaView, 0, len(visiveis))
	for _, cartela := range visiveis {
		views = append(views, response.CartelaView{
			Cartela:     cartela,
			Selecionada: sel.Contem(cartela.ID),
		})
	}

	total := sel.ValorTotal(evento.ValorCartela)

	return &response.SelecaoPage{
		Evento:                evento,
		Cartelas:              views,
		Paginacao:             paginacao,
		Busca:                 busca,
		Selecionadas:          sel.IDs(),
		QuantidadeSelecionada: sel.Tamanho(),
		ValorTotal:            total,
		ValorTotalFormatado:   total.BRL(),
		Token:                 token,
	}, nil
}

func idsDe(cartelas []domain.Cartela) []string {
	ids := make([]string, 0, len(cartelas))
	for _, cartela := range cartelas {
		ids = append(ids, cartela.ID)
	}
	return ids
}
