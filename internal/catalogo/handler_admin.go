// internal/catalogo/handler_admin.go
//
// Manutenção das linhas de catálogo pelo admin. O catálogo é semeado no
// primeiro boot; estes endpoints cobrem o dia a dia (novo formato,
// substrato descontinuado, módulo novo de acondicionamento).
package catalogo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// GET /admin/catalogo/formatos
func (h *Handler) ListarFormatos(w http.ResponseWriter, r *http.Request) {
	formatos, err := h.Repository.Formatos()
	if err != nil {
		http.Error(w, "Erro ao listar formatos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(formatos)
}

// POST /admin/catalogo/formatos
func (h *Handler) SalvarFormato(w http.ResponseWriter, r *http.Request) {
	var f Formato
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if f.Nome == "" {
		http.Error(w, "Nome do formato é obrigatório", http.StatusBadRequest)
		return
	}
	if err := h.DB.Save(&f).Error; err != nil {
		http.Error(w, "Erro ao salvar formato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(f)
}

// DELETE /admin/catalogo/formatos/{id}
func (h *Handler) RemoverFormato(w http.ResponseWriter, r *http.Request) {
	h.removerPorID(w, r, &Formato{}, "Erro ao remover formato")
}

// GET /admin/catalogo/substratos
func (h *Handler) ListarSubstratos(w http.ResponseWriter, r *http.Request) {
	substratos, err := h.Repository.Substratos()
	if err != nil {
		http.Error(w, "Erro ao listar substratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(substratos)
}

// POST /admin/catalogo/substratos
func (h *Handler) SalvarSubstrato(w http.ResponseWriter, r *http.Request) {
	var s Substrato
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if s.Nome == "" {
		http.Error(w, "Nome do substrato é obrigatório", http.StatusBadRequest)
		return
	}
	if err := h.DB.Save(&s).Error; err != nil {
		http.Error(w, "Erro ao salvar substrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(s)
}

// DELETE /admin/catalogo/substratos/{id}
func (h *Handler) RemoverSubstrato(w http.ResponseWriter, r *http.Request) {
	h.removerPorID(w, r, &Substrato{}, "Erro ao remover substrato")
}

// GET /admin/catalogo/modulos
func (h *Handler) ListarModulos(w http.ResponseWriter, r *http.Request) {
	modulos, err := h.Repository.Modulos()
	if err != nil {
		http.Error(w, "Erro ao listar módulos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(modulos)
}

// POST /admin/catalogo/modulos
func (h *Handler) SalvarModulo(w http.ResponseWriter, r *http.Request) {
	var m ModuloAcondicionamento
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if m.Nome == "" || m.Quantidade <= 0 {
		http.Error(w, "Nome e quantidade positiva são obrigatórios", http.StatusBadRequest)
		return
	}
	if err := h.DB.Save(&m).Error; err != nil {
		http.Error(w, "Erro ao salvar módulo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// DELETE /admin/catalogo/modulos/{id}
func (h *Handler) RemoverModulo(w http.ResponseWriter, r *http.Request) {
	h.removerPorID(w, r, &ModuloAcondicionamento{}, "Erro ao remover módulo")
}

// POST /admin/catalogo/tipos-alca
func (h *Handler) SalvarTipoAlca(w http.ResponseWriter, r *http.Request) {
	var t TipoAlca
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if t.Nome == "" {
		http.Error(w, "Nome do tipo de alça é obrigatório", http.StatusBadRequest)
		return
	}
	if err := h.DB.Save(&t).Error; err != nil {
		http.Error(w, "Erro ao salvar tipo de alça", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// DELETE /admin/catalogo/tipos-alca/{id}
func (h *Handler) RemoverTipoAlca(w http.ResponseWriter, r *http.Request) {
	h.removerPorID(w, r, &TipoAlca{}, "Erro ao remover tipo de alça")
}

func (h *Handler) removerPorID(w http.ResponseWriter, r *http.Request, modelo interface{}, msgErro string) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.DB.Delete(modelo, id).Error; err != nil {
		http.Error(w, msgErro, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
