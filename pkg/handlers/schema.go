package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/relgraph-ai/relgraph-engine/pkg/services"
)

// SchemaHandler serves the active graph-schema artifact.
type SchemaHandler struct {
	store  *services.SchemaStore
	logger *zap.Logger
}

// NewSchemaHandler creates a new SchemaHandler.
func NewSchemaHandler(store *services.SchemaStore, logger *zap.Logger) *SchemaHandler {
	return &SchemaHandler{store: store, logger: logger}
}

// RegisterRoutes registers the schema routes on the given mux.
func (h *SchemaHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/schema", h.GetSchema)
}

// GetSchema handles GET /api/schema by returning the serialized artifact
// of the active snapshot.
func (h *SchemaHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	schema := h.store.Current()
	if schema == nil {
		_ = ErrorResponse(w, http.StatusNotFound, "no_schema", "no dataset has been ingested")
		return
	}

	if err := WriteJSON(w, http.StatusOK, schema.Artifact()); err != nil {
		h.logger.Error("Failed to encode schema artifact", zap.Error(err))
	}
}
