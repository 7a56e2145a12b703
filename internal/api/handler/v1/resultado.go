package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1/response"
	"github.com/paroquia-digital/bingo-storefront/internal/config"
	"github.com/paroquia-digital/bingo-storefront/internal/domain"
	"github.com/paroquia-digital/bingo-storefront/internal/service"
)

// ResultadoHandler backs the terminal pages of the funnel: the
// confirmation screen after a paid venda and the failure screen.
type ResultadoHandler struct {
	vendas VendaService
	conf   config.LojaConfig
}

func NewResultadoHandler(vendas VendaService, conf config.LojaConfig) *ResultadoHandler {
	return &ResultadoHandler{vendas: vendas, conf: conf}
}

// HandleGetSucesso godoc
// @Summary      Confirmation view
// @Description  Purchased cards, receipt and download links once a venda is paid
// @Tags         loja
// @Produce      json
// @Param        vendaID  path      string  true  "Venda ID"
// @Success      200      {object}  response.SucessoPage
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /loja/vendas/{vendaID}/sucesso [get]
func (h *ResultadoHandler) HandleGetSucesso(ctx *gin.Context) {
	vendaID := ctx.Param("vendaID")

	venda, err := h.vendas.GetVendaByID(ctx.Request.Context(), vendaID)
	if err != nil {
		if errors.Is(err, service.ErrVendaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venda", "id", vendaID))
			return
		}

		err = fmt.Errorf("HandleGetSucesso -> h.vendas.GetVendaByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	// Landing here before the payment confirms is a buyer refreshing an
	// old tab; keep the page but point back to payment when it can
	// still complete.
	if venda.Status != domain.VendaPaga {
		page := response.SucessoPage{
			Pago:       false,
			Status:     venda.Status,
			EventoNome: venda.Evento.Nome,
			RotaInicio: response.RotaInicio(),
		}
		if venda.Status == domain.VendaPendente || venda.Status == domain.VendaProcessando {
			page.RotaPagamento = response.RotaPagamento(venda.ID)
		}
		ctx.JSON(http.StatusOK, page)
		return
	}

	cartelas := make([]response.CartelaComprada, 0, len(venda.Cartelas))
	for _, cartela := range venda.Cartelas {
		cartelas = append(cartelas, response.CartelaComprada{
			Codigo:      cartela.Codigo,
			DownloadURL: h.vendas.CartelaDownloadURL(venda.ID, cartela.ID),
		})
	}

	ctx.JSON(http.StatusOK, response.SucessoPage{
		Pago:                true,
		Status:              venda.Status,
		EventoNome:          venda.Evento.Nome,
		EventoData:          &venda.Evento.Data,
		CompradorNome:       venda.Comprador.Nome,
		CompradorEmail:      venda.Comprador.Email,
		Cartelas:            cartelas,
		ValorTotal:          venda.ValorTotal,
		ValorTotalFormatado: venda.ValorTotal.BRL(),
		DownloadTodasURL:    h.vendas.DownloadURL(venda.ID),
		Recibo:              montarRecibo(venda),
		EmailEnviado:        venda.EmailEnviado,
		ContatoEmail:        h.conf.ContatoEmail,
		RotaInicio:          response.RotaInicio(),
	})
}

// montarRecibo renders the plain-text receipt the page offers for
// clipboard copy.
func montarRecibo(venda domain.Venda) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Comprovante de compra - %s\n", venda.Evento.Nome)
	fmt.Fprintf(&b, "Comprador: %s\n", venda.Comprador.Nome)
	fmt.Fprintf(&b, "Cartelas (%d):\n", venda.Quantidade)
	for _, cartela := range venda.Cartelas {
		fmt.Fprintf(&b, "  - %s\n", cartela.Codigo)
	}
	fmt.Fprintf(&b, "Valor total: %s\n", venda.ValorTotal.BRL())
	if venda.PaidAt != nil {
		fmt.Fprintf(&b, "Pago em: %s\n", venda.PaidAt.Format("02/01/2006 15:04"))
	}

	return b.String()
}

// HandleReenviarEmail godoc
// @Summary      Resend the confirmation email
// @Tags         loja
// @Produce      json
// @Param        vendaID  path      string  true  "Venda ID"
// @Success      204      "No Content"
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /loja/vendas/{vendaID}/reenviar-email [post]
func (h *ResultadoHandler) HandleReenviarEmail(ctx *gin.Context) {
	vendaID := ctx.Param("vendaID")

	if err := h.vendas.ReenviarEmail(ctx.Request.Context(), vendaID); err != nil {
		if errors.Is(err, service.ErrVendaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venda", "id", vendaID))
			return
		}

		err = fmt.Errorf("HandleReenviarEmail -> h.vendas.ReenviarEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGetErro godoc
// @Summary      Failure view
// @Description  Explains why the payment did not complete and whether a retry makes sense
// @Tags         loja
// @Produce      json
// @Param        vendaID  path      string  true  "Venda ID"
// @Success      200      {object}  response.ErroPage
// @Failure      500      {object}  response.Err
// @Router       /loja/vendas/{vendaID}/erro [get]
func (h *ResultadoHandler) HandleGetErro(ctx *gin.Context) {
	vendaID := ctx.Param("vendaID")

	venda, err := h.vendas.GetVendaByID(ctx.Request.Context(), vendaID)
	if err != nil {
		if errors.Is(err, service.ErrVendaNotFound) {
			// The failure page still renders for an unknown venda so
			// the buyer always has a way back into the store.
			ctx.JSON(http.StatusOK, response.ErroPage{
				Titulo:       "Venda não encontrada",
				Descricao:    "Não encontramos essa compra. Ela pode ter expirado ou o link está incorreto.",
				PodeRetentar: false,
				RotaInicio:   response.RotaInicio(),
				ContatoEmail: h.conf.ContatoEmail,
			})
			return
		}

		err = fmt.Errorf("HandleGetErro -> h.vendas.GetVendaByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	page := paginaDeErro(venda.Status)
	page.Status = venda.Status
	page.RotaInicio = response.RotaInicio()
	page.ContatoEmail = h.conf.ContatoEmail
	if page.PodeRetentar && venda.Evento.ID != "" {
		page.RotaNovaCompra = response.RotaComprar(venda.Evento.ID)
	}

	ctx.JSON(http.StatusOK, page)
}

func paginaDeErro(status domain.StatusVenda) response.ErroPage {
	switch status {
	case domain.VendaExpirada:
		return response.ErroPage{
			Titulo:       "Pagamento Expirado",
			Descricao:    "O prazo para pagamento desta compra terminou e as cartelas voltaram a ficar disponíveis.",
			PodeRetentar: true,
		}
	case domain.VendaCancelada:
		return response.ErroPage{
			Titulo:       "Pagamento Cancelado",
			Descricao:    "Esta compra foi cancelada. Nenhum valor foi cobrado.",
			PodeRetentar: true,
		}
	case domain.VendaErro:
		return response.ErroPage{
			Titulo:       "Erro no Pagamento",
			Descricao:    "Houve um problema ao processar o pagamento. Você pode tentar novamente.",
			PodeRetentar: true,
		}
	default:
		return response.ErroPage{
			Titulo:       "Pagamento Pendente",
			Descricao:    "Esta compra ainda aguarda pagamento. Volte à página de pagamento para concluí-la.",
			PodeRetentar: false,
		}
	}
}
