package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paroquia-digital/bingo-storefront/internal/api/handler/v1/response"
	"github.com/paroquia-digital/bingo-storefront/internal/backend"
	"github.com/paroquia-digital/bingo-storefront/internal/domain"
	"github.com/paroquia-digital/bingo-storefront/internal/service"
)

type EventoService interface {
	GetEventosAtivos(ctx context.Context) ([]domain.Evento, error)
	GetEventoByID(ctx context.Context, eventoID string) (domain.Evento, error)
	GetCartelasDisponiveis(ctx context.Context, eventoID string, limite int) (backend.CartelasDisponiveis, error)
}

type EventoHandler struct {
	svc EventoService
}

func NewEventoHandler(svc EventoService) *EventoHandler {
	return &EventoHandler{
		svc: svc,
	}
}

// HandleGetEventos godoc
// @Summary      List active events
// @Description  Lists the events currently open for card purchases (home page)
// @Tags         loja
// @Produce      json
// @Success      200  {array}   domain.Evento
// @Failure      500  {object}  response.Err
// @Router       /loja/eventos [get]
func (h *EventoHandler) HandleGetEventos(ctx *gin.Context) {
	eventos, err := h.svc.GetEventosAtivos(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetEventos -> h.svc.GetEventosAtivos -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, eventos)
}

// HandleGetEvento godoc
// @Summary      Get one event
// @Tags         loja
// @Produce      json
// @Param        eventoID  path      string  true  "Evento ID"
// @Success      200       {object}  domain.Evento
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /loja/eventos/{eventoID} [get]
func (h *EventoHandler) HandleGetEvento(ctx *gin.Context) {
	eventoID := ctx.Param("eventoID")

	evento, err := h.svc.GetEventoByID(ctx.Request.Context(), eventoID)
	if err != nil {
		if errors.Is(err, service.ErrEventoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("evento", "id", eventoID))
			return
		}

		err = fmt.Errorf("HandleGetEvento -> h.svc.GetEventoByID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, evento)
}
