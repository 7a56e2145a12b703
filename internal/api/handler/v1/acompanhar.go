package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1/response"
	"github.com/paroquia-digital/bingo-storefront/internal/config"
	"github.com/paroquia-digital/bingo-storefront/internal/payment"
	"github.com/paroquia-digital/bingo-storefront/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production!
	},
}

// AcompanharHandler streams payment status over a websocket as an
// alternative to polling the status route.
type AcompanharHandler struct {
	vendas VendaService
	conf   config.LojaConfig
}

func NewAcompanharHandler(vendas VendaService, conf config.LojaConfig) *AcompanharHandler {
	return &AcompanharHandler{vendas: vendas, conf: conf}
}

// HandleAcompanhar godoc
// @Summary      Follow a payment over WebSocket
// @Description  Pushes status updates until the venda reaches a terminal status or the client disconnects
// @Tags         loja
// @Produce      json
// @Param        vendaID  path      string  true  "Venda ID"
// @Success      101      {string}  string  "Switching Protocols to WebSocket"
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /loja/vendas/{vendaID}/acompanhar [get]
func (h *AcompanharHandler) HandleAcompanhar(ctx *gin.Context) {
	vendaID := ctx.Param("vendaID")

	// Fetch once before upgrading so a bad ID still gets a JSON 404.
	inicial, err := h.vendas.GetVendaStatus(ctx.Request.Context(), vendaID)
	if err != nil {
		if errors.Is(err, service.ErrVendaNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("venda", "id", vendaID))
			return
		}

		err = fmt.Errorf("HandleAcompanhar -> h.vendas.GetVendaStatus -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.String("vendaID", vendaID), zap.Error(err))
		return
	}

	streamCtx, cancel := context.WithCancel(context.Background())

	obs := payment.NovoObservador(vendaID, h.conf.PollInterval, h.vendas.GetVendaStatus)
	contagem := payment.NovaContagem(inicial.ExpiresAt, obs.Cutucar)

	go obs.Observar(streamCtx, nil)
	go contagem.Executar(streamCtx)
	go h.readPump(cancel, conn)

	h.writePump(streamCtx, cancel, conn, vendaID, obs)
}

// readPump drains client frames so close handling works; the stream is
// server-to-client only.
func (h *AcompanharHandler) readPump(cancel context.CancelFunc, conn *websocket.Conn) {
	defer cancel()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				zap.L().Warn("websocket read failed", zap.Error(err))
			}
			return
		}
	}
}

func (h *AcompanharHandler) writePump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, vendaID string, obs *payment.Observador) {
	defer func() {
		cancel()
		conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case status, ok := <-obs.Atualizacoes():
			if !ok {
				return
			}

			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(statusResponse(vendaID, status)); err != nil {
				return
			}

			if status.Status.Terminal() {
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(status.Status)))
				return
			}
		}
	}
}
