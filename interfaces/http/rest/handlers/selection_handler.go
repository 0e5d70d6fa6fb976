package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/commands/bus"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries"
	querybus "github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries/bus"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/common"
	apperrors "github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/errors"
	"go.uber.org/zap"
)

// SelectionHandler serves the properties panel: reading the resolved
// selection and applying the rename/field edits to it. Every edit is a
// no-op without a live selection; the panel still gets a 202 because
// the protocol treats missing selection as benign.
type SelectionHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
	maxBody    int64
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	maxBody int64,
	logger *zap.Logger,
) *SelectionHandler {
	return &SelectionHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
		maxBody:    maxBody,
	}
}

// UpdateFieldRequest is the body of a field attribute edit
type UpdateFieldRequest struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
}

// GetSelection handles GET /selection
func (h *SelectionHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetSelectionQuery{})
	if err != nil {
		h.logger.Error("Selection query failed", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, common.StandardErrorCodes.InternalError, "Failed to read selection")
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// Rename handles POST /selection/label
func (h *SelectionHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var cmd commands.RenameConceptCommand
	if err := common.ParseJSONBody(r, &cmd, h.maxBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}
	h.send(w, r, cmd)
}

// AddField handles POST /selection/fields
func (h *SelectionHandler) AddField(w http.ResponseWriter, r *http.Request) {
	h.send(w, r, commands.AddFieldCommand{})
}

// UpdateField handles PATCH /selection/fields/{index}
func (h *SelectionHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	index, ok := h.fieldIndex(w, r)
	if !ok {
		return
	}

	var req UpdateFieldRequest
	if err := common.ParseJSONBody(r, &req, h.maxBody); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Invalid request body: "+err.Error())
		return
	}

	h.send(w, r, commands.UpdateFieldCommand{
		Index:     index,
		Attribute: req.Attribute,
		Value:     req.Value,
	})
}

// RemoveField handles DELETE /selection/fields/{index}
func (h *SelectionHandler) RemoveField(w http.ResponseWriter, r *http.Request) {
	index, ok := h.fieldIndex(w, r)
	if !ok {
		return
	}
	h.send(w, r, commands.RemoveFieldCommand{Index: index})
}

func (h *SelectionHandler) fieldIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil || index < 0 {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.BadRequest, "Field index must be a non-negative integer")
		return 0, false
	}
	return index, true
}

func (h *SelectionHandler) send(w http.ResponseWriter, r *http.Request, cmd bus.Command) {
	if err := cmd.Validate(); err != nil {
		common.RespondError(w, http.StatusBadRequest, common.StandardErrorCodes.ValidationError, err.Error())
		return
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Edit dispatch failed", zap.Error(err))
		common.RespondError(w, apperrors.HTTPStatusOf(err), errorCode(err), "Failed to apply edit")
		return
	}

	common.RespondJSON(w, http.StatusAccepted, nil)
}
