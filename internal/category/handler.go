package category

import (
	"log/slog"
	"net/http"

	"github.com/danakita/expense-tracker/internal/transport"
	"github.com/danakita/expense-tracker/pkg/logger"
)

type ServiceAPI interface {
	ListAll() ([]*Category, error)
	ResetToDefaults() ([]*Category, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.L()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.ListAll()
	if err != nil {
		h.Logger.Error("GetCategories: failed to list categories", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to get categories")
		return
	}

	h.WriteJSON(w, http.StatusOK, categories)
}

// ResetDefaults handles POST /categories/default, a destructive bulk replace.
func (h *Handler) ResetDefaults(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.ResetToDefaults()
	if err != nil {
		h.Logger.Error("ResetDefaults: failed to reset categories", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to reset categories")
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Default categories created",
		"categories": categories,
	})
}
