package handlers

import (
	"net/http"

	"github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries"
	querybus "github.com/yashverma2628/concerto-graphical-editor-prototype/application/queries/bus"
	"github.com/yashverma2628/concerto-graphical-editor-prototype/pkg/common"
	"go.uber.org/zap"
)

// GraphHandler serves the full render snapshot over plain HTTP, for
// clients that pull instead of subscribing to the stream.
type GraphHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{
		queryBus: queryBus,
		logger:   logger,
	}
}

// GetGraph handles GET /graph
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetGraphDataQuery{})
	if err != nil {
		h.logger.Error("Graph query failed", zap.Error(err))
		common.RespondError(w, http.StatusInternalServerError, common.StandardErrorCodes.InternalError, "Failed to read graph")
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
