package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type EventStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

type EventsHandler struct {
	stream EventStream
}

func NewEventsHandler(stream EventStream) *EventsHandler {
	return &EventsHandler{
		stream: stream,
	}
}

// HandleEvents godoc
// @Summary      Live change feed
// @Description  Upgrades to a websocket that receives one JSON message per create, update or delete.
// @Description  Browsers pass the JWT in the token query parameter.
// @Tags         events
// @Param        token  query  string  false  "JWT when no Authorization header can be set"
// @Success      101
// @Failure      401    {object}  response.Err
// @Router       /api/v1/events/ws [get]
// @Security BearerAuth
func (h *EventsHandler) HandleEvents(ctx *gin.Context) {
	h.stream.ServeWS(ctx.Writer, ctx.Request)
}
