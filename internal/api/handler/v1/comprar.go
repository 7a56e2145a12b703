package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1/request"
	"github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1/response"
	"github.com/paroquia-digital/bingo-storefront/internal/backend"
	"github.com/paroquia-digital/bingo-storefront/internal/config"
	"github.com/paroquia-digital/bingo-storefront/internal/domain"
	"github.com/paroquia-digital/bingo-storefront/internal/monitoring"
	"github.com/paroquia-digital/bingo-storefront/internal/selection"
	"github.com/paroquia-digital/bingo-storefront/internal/service"
)

type VendaService interface {
	CriarVenda(ctx context.Context, req backend.CriarVendaRequest) (backend.CriarVendaResponse, error)
	GetVendaByID(ctx context.Context, vendaID string) (domain.Venda, error)
	GetVendaStatus(ctx context.Context, vendaID string) (domain.StatusPagamento, error)
	ReenviarEmail(ctx context.Context, vendaID string) error
	DownloadURL(vendaID string) string
	CartelaDownloadURL(vendaID, cartelaID string) string
}

type CompraHandler struct {
	eventos EventoService
	vendas  VendaService
	store   *selection.Store
	tokens  *selection.Tokens
	conf    config.LojaConfig
}

func NewCompraHandler(eventos EventoService, vendas VendaService, store *selection.Store, tokens *selection.Tokens, conf config.LojaConfig) *CompraHandler {
	return &CompraHandler{
		eventos: eventos,
		vendas:  vendas,
		store:   store,
		tokens:  tokens,
		conf:    conf,
	}
}

// carregarHandoff rehydrates the selection saved by the selection page.
// Absent or malformed handoffs send the buyer back to selection, which
// guards against navigating straight to checkout.
func (h *CompraHandler) carregarHandoff(ctx *gin.Context, eventoID string) (selection.Handoff, string, bool) {
	sessionID, err := h.tokens.Validar(ctx.GetHeader(TokenHeader), eventoID)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusConflict, response.RedirecionarResponse{
			Rota:   response.RotaSelecao(eventoID),
			Motivo: "selecao ausente",
		})
		return selection.Handoff{}, "", false
	}

	handoff, err := h.store.Carregar(ctx.Request.Context(), sessionID, eventoID)
	if err != nil {
		if errors.Is(err, selection.ErrHandoffAusente) || errors.Is(err, selection.ErrHandoffInvalido) {
			ctx.AbortWithStatusJSON(http.StatusConflict, response.RedirecionarResponse{
				Rota:   response.RotaSelecao(eventoID),
				Motivo: "selecao ausente",
			})
			return selection.Handoff{}, "", false
		}

		err = fmt.Errorf("carregarHandoff -> h.store.Carregar -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return selection.Handoff{}, "", false
	}

	return handoff, sessionID, true
}

// HandleGetComprar godoc
// @Summary      Checkout view
// @Description  Event summary, availability and the rehydrated selection for the buyer form
// @Tags         loja
// @Produce      json
// @Param        eventoID        path      string  true  "Evento ID"
// @Param        X-Selecao-Token  header   string  true  "Selection token"
// @Success      200             {object}  response.ComprarPage
// @Failure      404             {object}  response.Err
// @Failure      409             {object}  response.RedirecionarResponse  "No selection; go back to the selection page"
// @Failure      500             {object}  response.Err
// @Router       /loja/eventos/{eventoID}/comprar [get]
func (h *CompraHandler) HandleGetComprar(ctx *gin.Context) {
	eventoID := ctx.Param("eventoID")

	handoff, _, ok := h.carregarHandoff(ctx, eventoID)
	if !ok {
		return
	}

	evento, err := h.eventos.GetEventoByID(ctx.Request.Context(), eventoID)
	if err != nil {
		if errors.Is(err, service.ErrEventoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("evento", "id", eventoID))
			return
		}

		err = fmt.Errorf("HandleGetComprar -> h.eventos.GetEventoByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	disponiveis, err := h.eventos.GetCartelasDisponiveis(ctx.Request.Context(), eventoID, 0)
	if err != nil {
		err = fmt.Errorf("HandleGetComprar -> h.eventos.GetCartelasDisponiveis -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	quantidade := len(handoff.CartelaIDs)
	total := evento.ValorCartela.Mul(quantidade)

	ctx.JSON(http.StatusOK, response.ComprarPage{
		Evento:              evento,
		TotalDisponiveis:    disponiveis.Total,
		CartelaIDs:          handoff.CartelaIDs,
		Quantidade:          quantidade,
		ValorTotal:          total,
		ValorTotalFormatado: total.BRL(),
	})
}

// HandleCriarVenda godoc
// @Summary      Create a sale
// @Description  Validates the buyer form and submits the sale for the selected cards
// @Tags         loja
// @Accept       json
// @Produce      json
// @Param        eventoID        path      string                     true  "Evento ID"
// @Param        X-Selecao-Token  header   string                     true  "Selection token"
// @Param        input           body      request.CriarVendaRequest  true  "Buyer details"
// @Success      201             {object}  response.VendaCriadaResponse
// @Failure      400             {object}  response.Err
// @Failure      404             {object}  response.Err
// @Failure      409             {object}  response.VendaPendenteResponse  "A pending sale already exists; continue to its payment"
// @Failure      500             {object}  response.Err
// @Router       /loja/eventos/{eventoID}/comprar [post]
func (h *CompraHandler) HandleCriarVenda(ctx *gin.Context) {
	eventoID := ctx.Param("eventoID")

	handoff, sessionID, ok := h.carregarHandoff(ctx, eventoID)
	if !ok {
		return
	}

	var req request.CriarVendaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// The handoff is authoritative for which cards are being bought.
	req.CartelaIDs = handoff.CartelaIDs
	if req.Quantidade == 0 {
		req.Quantidade = len(handoff.CartelaIDs)
	}

	disponiveis, err := h.eventos.GetCartelasDisponiveis(ctx.Request.Context(), eventoID, 0)
	if err != nil {
		err = fmt.Errorf("HandleCriarVenda -> h.eventos.GetCartelasDisponiveis -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if err := req.Validate(disponiveis.Total, h.conf.MaxCartelasPorCompra); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.vendas.CriarVenda(ctx.Request.Context(), backend.CriarVendaRequest{
		EventoID:        eventoID,
		Nome:            req.Nome,
		Email:           req.Email,
		Telefone:        req.Telefone,
		CPF:             req.CPF,
		MetodoPagamento: domain.MetodoPagamento(req.MetodoPagamento),
		Quantidade:      req.Quantidade,
		CartelaIDs:      req.CartelaIDs,
	})
	if err != nil {
		var pending *backend.PendingSaleError
		if errors.As(err, &pending) {
			ctx.AbortWithStatusJSON(http.StatusConflict, response.VendaPendenteResponse{
				Message:   pending.Message,
				VendaID:   pending.VendaID,
				ExpiresAt: pending.ExpiresAt,
				Rota:      response.RotaPagamento(pending.VendaID),
			})
			return
		}

		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New(apiErr.Message)))
			return
		}

		err = fmt.Errorf("HandleCriarVenda -> h.vendas.CriarVenda -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	monitoring.TrackVendaCriada(req.MetodoPagamento)

	// Provisional selection is discarded once the venda exists.
	if err := h.store.Remover(ctx.Request.Context(), sessionID); err != nil {
		zap.L().Warn("failed to clear selection after sale", zap.String("sessionID", sessionID), zap.Error(err))
	}

	ctx.JSON(http.StatusCreated, response.VendaCriadaResponse{
		VendaID:    created.VendaID,
		ValorTotal: created.ValorTotal,
		ExpiresAt:  created.ExpiresAt,
		Rota:       response.RotaPagamento(created.VendaID),
	})
}
