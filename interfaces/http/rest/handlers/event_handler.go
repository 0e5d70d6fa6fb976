package handlers

import (
	"net/http"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands/bus"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/common"
	apperrors "github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/errors"
	"go.uber.org/zap"
)

// EventHandler receives the interaction events the rendering
// collaborator forwards: node/pane clicks, palette drops, drawn
// connections and drag geometry. Recognized events that turn out to be
// inapplicable (unknown drop payload, no selection) are accepted and
// absorbed — the editor never surfaces referential inconsistency to
// the canvas.
type EventHandler struct {
	commandBus *bus.CommandBus
	logger     *zap.Logger
	maxBody    int64
}

// NewEventHandler creates a new event handler
func NewEventHandler(commandBus *bus.CommandBus, maxBody int64, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		commandBus: commandBus,
		logger:     logger,
		maxBody:    maxBody,
	}
}

// NodeClick handles POST /events/node-click
func (h *EventHandler) NodeClick(w http.ResponseWriter, r *http.Request) {
	var cmd commands.NodeClickCommand
	h.dispatch(w, r, &cmd)
}

// PaneClick handles POST /events/pane-click
func (h *EventHandler) PaneClick(w http.ResponseWriter, r *http.Request) {
	// No payload to decode; the event is the message.
	if err := h.commandBus.Send(r.Context(), commands.PaneClickCommand{}); err != nil {
		h.respondDispatchError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusAccepted, nil)
}

// Drop handles POST /events/drop
func (h *EventHandler) Drop(w http.ResponseWriter, r *http.Request) {
	var cmd commands.DropConceptCommand
	h.dispatch(w, r, &cmd)
}

// Connect handles POST /events/connect
func (h *EventHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var cmd commands.ConnectNodesCommand
	h.dispatch(w, r, &cmd)
}

// NodeMove handles POST /events/node-move
func (h *EventHandler) NodeMove(w http.ResponseWriter, r *http.Request) {
	var cmd commands.MoveNodeCommand
	h.dispatch(w, r, &cmd)
}

// dispatch decodes the body into cmd, validates and sends it
func (h *EventHandler) dispatch(w http.ResponseWriter, r *http.Request, cmd bus.Command) {
	if err := common.ParseJSONBody(r, cmd, h.maxBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := cmd.Validate(); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	// Commands decoded from pointers dispatch by value so registration
	// types line up.
	if err := h.commandBus.Send(r.Context(), deref(cmd)); err != nil {
		h.respondDispatchError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusAccepted, nil)
}

func (h *EventHandler) respondDispatchError(w http.ResponseWriter, err error) {
	h.logger.Error("Event dispatch failed", zap.Error(err))
	common.RespondError(w, apperrors.HTTPStatusOf(err), errorCode(err), "Failed to process event")
}

// errorCode maps a dispatch error to the envelope code
func errorCode(err error) string {
	switch {
	case apperrors.IsType(err, apperrors.ErrorTypeValidation):
		return common.StandardErrorCodes.ValidationError
	case apperrors.IsType(err, apperrors.ErrorTypeNotFound):
		return common.StandardErrorCodes.NotFound
	default:
		return common.StandardErrorCodes.InternalError
	}
}

// deref maps the pointer commands used for JSON decoding back to the
// value types the bus handlers are registered under
func deref(cmd bus.Command) bus.Command {
	switch c := cmd.(type) {
	case *commands.NodeClickCommand:
		return *c
	case *commands.DropConceptCommand:
		return *c
	case *commands.ConnectNodesCommand:
		return *c
	case *commands.MoveNodeCommand:
		return *c
	default:
		return cmd
	}
}
