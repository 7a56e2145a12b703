package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1/response"
	"github.com/paroquia-digital/bingo-storefront/internal/config"
	"github.com/paroquia-digital/bingo-storefront/internal/domain"
	"github.com/paroquia-digital/bingo-storefront/internal/monitoring"
	"github.com/paroquia-digital/bingo-storefront/internal/payment"
	"github.com/paroquia-digital/bingo-storefront/internal/service"
)

type PagamentoHandler struct {
	vendas VendaService
	conf   config.LojaConfig
}

func NewPagamentoHandler(vendas VendaService, conf config.LojaConfig) *PagamentoHandler {
	return &PagamentoHandler{vendas: vendas, conf: conf}
}

// proximaRota maps a terminal decision to the page the buyer should
// land on next. Empty while still waiting.
func proximaRota(decisao payment.Decisao, vendaID string) string {
	switch decisao {
	case payment.DecisaoSucesso:
		return response.RotaSucesso(vendaID)
	case payment.DecisaoErro:
		return response.RotaErro(vendaID)
	}
	return ""
}

// HandleGetPagamento godoc
// @Summary      Payment view
// @Description  Payment artifact (PIX or card link), countdown and polling instructions for a venda
// @Tags         loja
// @Produce      json
// @Param        vendaID  path      string  true  "Venda ID"
// @Success      200      {object}  response.PagamentoPage
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /loja/vendas/{vendaID}/pagamento [get]
func (h *PagamentoHandler) HandleGetPagamento(ctx *gin.Context) {
	vendaID := ctx.Param("vendaID")

	venda, err := h.vendas.GetVendaByID(ctx.Request.Context(), vendaID)
	if err != nil {
		if errors.Is(err, service.ErrVendaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venda", "id", vendaID))
			return
		}

		err = fmt.Errorf("HandleGetPagamento -> h.vendas.GetVendaByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	decisao := payment.Decidir(venda.Status)
	artefato := payment.Artefato(venda)
	restante := payment.Restante(venda.ExpiresAt, time.Now())

	ctx.JSON(http.StatusOK, response.PagamentoPage{
		VendaID:             venda.ID,
		Status:              venda.Status,
		Decisao:             decisao,
		ProximaRota:         proximaRota(decisao, venda.ID),
		Artefato:            artefato,
		PixQrCode:           venda.PixQrCode,
		PixCopyPaste:        venda.PixCopyPaste,
		PaymentURL:          venda.PaymentURL,
		ValorTotal:          venda.ValorTotal,
		ValorTotalFormatado: venda.ValorTotal.BRL(),
		SegundosRestantes:   restante,
		Contagem:            payment.Formatar(restante),
		QuaseExpirando:      payment.QuaseExpirando(restante),
		PollIntervalMS:      int(h.conf.PollInterval.Milliseconds()),
		Instrucoes:          instrucoesPagamento(artefato, venda.ValorTotal),
		Resumo: response.ResumoCompra{
			EventoNome:    venda.Evento.Nome,
			CompradorNome: venda.Comprador.Nome,
			Quantidade:    venda.Quantidade,
		},
	})
}

// instrucoesPagamento is the "como pagar" step list shown next to the
// payment artifact.
func instrucoesPagamento(artefato payment.ArtefatoPagamento, valor domain.Centavos) []string {
	switch artefato {
	case payment.ArtefatoPix:
		return []string{
			"Abra o aplicativo do seu banco",
			"Escolha pagar via PIX com QR Code ou copie o código",
			fmt.Sprintf("Confirme o pagamento de %s", valor.BRL()),
			"A confirmação aparece aqui em instantes",
		}
	case payment.ArtefatoCartao:
		return []string{
			"Clique no botão para abrir a página segura de pagamento",
			fmt.Sprintf("Informe os dados do cartão e confirme %s", valor.BRL()),
			"Volte a esta página para acompanhar a confirmação",
		}
	default:
		return nil
	}
}

// HandleGetStatus godoc
// @Summary      Payment status
// @Description  Polling route for the payment page; includes the navigation decision
// @Tags         loja
// @Produce      json
// @Param        vendaID  path      string  true  "Venda ID"
// @Success      200      {object}  response.StatusResponse
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /loja/vendas/{vendaID}/status [get]
func (h *PagamentoHandler) HandleGetStatus(ctx *gin.Context) {
	vendaID := ctx.Param("vendaID")

	status, err := h.vendas.GetVendaStatus(ctx.Request.Context(), vendaID)
	if err != nil {
		if errors.Is(err, service.ErrVendaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venda", "id", vendaID))
			return
		}

		err = fmt.Errorf("HandleGetStatus -> h.vendas.GetVendaStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	monitoring.TrackStatusPoll(string(status.Status))

	ctx.JSON(http.StatusOK, statusResponse(vendaID, status))
}

// statusResponse is shared between the polling route and the websocket
// stream so both report the same decision shape.
func statusResponse(vendaID string, status domain.StatusPagamento) response.StatusResponse {
	decisao := payment.Decidir(status.Status)
	return response.StatusResponse{
		Status:            status.Status,
		PaidAt:            status.PaidAt,
		ExpiresAt:         status.ExpiresAt,
		EmailEnviado:      status.EmailEnviado,
		Decisao:           decisao,
		ProximaRota:       proximaRota(decisao, vendaID),
		SegundosRestantes: payment.Restante(status.ExpiresAt, time.Now()),
	}
}
