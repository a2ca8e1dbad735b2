package client

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
)

// Handler serves server-initiated messages. The client advertises no
// client-side capabilities, so every request is answered with method not found.
type Handler struct {
	logger zerolog.Logger
}

var _ transport.Handler = (*Handler)(nil)

func (h *Handler) Serve(ctx context.Context, request *jsonrpc.Request, response *jsonrpc.Response) {
	h.logger.Debug().Str("method", request.Method).Msg("unsupported server request")
	response.Id = request.Id
	response.Jsonrpc = request.Jsonrpc
	response.Error = jsonrpc.NewMethodNotFound(fmt.Sprintf("method %s not found", request.Method), nil)
}

// OnNotification logs server notifications
func (h *Handler) OnNotification(ctx context.Context, notification *jsonrpc.Notification) {
	event := h.logger.Debug().Str("method", notification.Method)
	if len(notification.Params) > 0 {
		event = event.RawJSON("params", notification.Params)
	}
	event.Msg("server notification")
}

// NewHandler creates a handler logging with logger.
func NewHandler(logger zerolog.Logger) *Handler {
	return &Handler{logger: logger}
}
