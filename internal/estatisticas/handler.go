// internal/estatisticas/handler.go
package estatisticas

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// Painel devolve os agregados do dashboard administrativo.
func (h *Handler) Painel(w http.ResponseWriter, r *http.Request) {
	painel, err := h.Repository.Painel()
	if err != nil {
		http.Error(w, "Erro ao calcular as estatísticas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(painel)
}
