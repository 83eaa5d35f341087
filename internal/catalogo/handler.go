// internal/catalogo/handler.go
package catalogo

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler expõe leitura do catálogo para o formulário e manutenção das
// permissões/restrições para o admin.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// GET /catalogo/tipos
func (h *Handler) ListarTipos(w http.ResponseWriter, r *http.Request) {
	tipos, err := h.Repository.ProdutoTipos()
	if err != nil {
		http.Error(w, "Erro ao listar tipos de produto", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tipos)
}

// GET /catalogo/tipos/{id}/modelos
func (h *Handler) ListarModelosPorTipo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	modelos, err := h.Repository.ModelosPorTipo(uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar modelos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(modelos)
}

// GET /catalogo/modelos/{id}
func (h *Handler) BuscarModelo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	modelo, err := h.Repository.ProdutoModeloPorID(uint(id))
	if err != nil {
		if errors.Is(err, ErrNaoEncontrado) {
			http.Error(w, "Modelo não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Erro ao buscar modelo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(modelo)
}

type criarPermissaoRequest struct {
	ProdutoModeloID uint      `json:"produtoModeloId"`
	Categoria       Categoria `json:"categoria"`
	OpcaoID         uint      `json:"opcaoId"`
	Ordem           int       `json:"ordem"`
}

var categoriasValidas = map[Categoria]bool{
	CategoriaFormato:          true,
	CategoriaSubstrato:        true,
	CategoriaModoImpressao:    true,
	CategoriaCombinacao:       true,
	CategoriaTipoAlca:         true,
	CategoriaAcabamento:       true,
	CategoriaModeloReforco:    true,
	CategoriaModeloFitaFuro:   true,
	CategoriaAcondicionamento: true,
	CategoriaEnobrecimento:    true,
}

// POST /catalogo/permissoes (admin)
func (h *Handler) CriarPermissao(w http.ResponseWriter, r *http.Request) {
	var req criarPermissaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if req.ProdutoModeloID == 0 || req.OpcaoID == 0 || !categoriasValidas[req.Categoria] {
		http.Error(w, "produtoModeloId, categoria e opcaoId são obrigatórios", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.ProdutoModeloPorID(req.ProdutoModeloID); err != nil {
		http.Error(w, "Modelo não encontrado", http.StatusNotFound)
		return
	}

	p := PermissaoOpcao{
		ProdutoModeloID: req.ProdutoModeloID,
		Categoria:       req.Categoria,
		OpcaoID:         req.OpcaoID,
		Ordem:           req.Ordem,
	}
	if err := h.DB.Create(&p).Error; err != nil {
		http.Error(w, "Erro ao salvar permissão", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// DELETE /catalogo/permissoes/{id} (admin)
func (h *Handler) RemoverPermissao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var p PermissaoOpcao
	if err := h.DB.First(&p, id).Error; err != nil {
		http.Error(w, "Permissão não encontrada", http.StatusNotFound)
		return
	}
	if err := h.DB.Delete(&p).Error; err != nil {
		http.Error(w, "Erro ao remover permissão", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type criarRestricaoRequest struct {
	ProdutoModeloID uint          `json:"produtoModeloId"`
	Categoria       CategoriaAlca `json:"categoria"`
	Valor           string        `json:"valor"`
	Ordem           int           `json:"ordem"`
}

// POST /catalogo/restricoes-alca (admin)
func (h *Handler) CriarRestricaoAlca(w http.ResponseWriter, r *http.Request) {
	var req criarRestricaoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	switch req.Categoria {
	case CategoriaAlcaAplicacao, CategoriaAlcaLargura, CategoriaAlcaCor:
	default:
		http.Error(w, "categoria de alça inválida", http.StatusBadRequest)
		return
	}
	if req.ProdutoModeloID == 0 || req.Valor == "" {
		http.Error(w, "produtoModeloId e valor são obrigatórios", http.StatusBadRequest)
		return
	}

	re := RestricaoAlca{
		ProdutoModeloID: req.ProdutoModeloID,
		Categoria:       req.Categoria,
		Valor:           req.Valor,
		Ordem:           req.Ordem,
	}
	if err := h.DB.Create(&re).Error; err != nil {
		http.Error(w, "Erro ao salvar restrição", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(re)
}

// DELETE /catalogo/restricoes-alca/{id} (admin)
func (h *Handler) RemoverRestricaoAlca(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.DB.Delete(&RestricaoAlca{}, id).Error; err != nil {
		http.Error(w, "Erro ao remover restrição", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
