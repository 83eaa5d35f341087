// internal/formulario/handler.go
package formulario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/EmbalaFlex/api-orcamentos/internal/catalogo"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Opcoes     *ResolutorOpcoes
}

func NewHandler(db *gorm.DB, catalogoRepo catalogo.Repository) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Opcoes:     NewResolutorOpcoes(catalogoRepo),
	}
}

// ListarEtapasAtivas é o endpoint público consumido pelo assistente.
func (h *Handler) ListarEtapasAtivas(w http.ResponseWriter, r *http.Request) {
	etapas, err := h.Repository.EtapasAtivas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar etapas do formulário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(etapas)
}

// ListarEtapas devolve todas as etapas, inclusive inativas, para o admin.
func (h *Handler) ListarEtapas(w http.ResponseWriter, r *http.Request) {
	etapas, err := h.Repository.Etapas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao buscar etapas do formulário", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(etapas)
}

func (h *Handler) CriarEtapa(w http.ResponseWriter, r *http.Request) {
	var etapa FormEtapa
	if err := json.NewDecoder(r.Body).Decode(&etapa); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if etapa.Codigo == "" || etapa.Titulo == "" {
		http.Error(w, "Código e título da etapa são obrigatórios", http.StatusBadRequest)
		return
	}
	if err := h.Repository.SalvarEtapa(h.DB, &etapa); err != nil {
		http.Error(w, "Erro ao salvar etapa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(etapa)
}

func (h *Handler) AtualizarEtapa(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	etapa, err := h.Repository.EtapaPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Etapa não encontrada", http.StatusNotFound)
		return
	}

	var corpo FormEtapa
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	etapa.Titulo = corpo.Titulo
	etapa.Ordem = corpo.Ordem
	etapa.Ativo = corpo.Ativo
	etapa.Opcional = corpo.Opcional
	if corpo.Codigo != "" {
		etapa.Codigo = corpo.Codigo
	}
	if err := h.Repository.SalvarEtapa(h.DB, etapa); err != nil {
		http.Error(w, "Erro ao salvar etapa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(etapa)
}

func (h *Handler) RemoverEtapa(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	etapa, err := h.Repository.EtapaPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Etapa não encontrada", http.StatusNotFound)
		return
	}
	for i := range etapa.Campos {
		if etapa.Campos[i].Essencial() {
			http.Error(w, "Etapa contém campos essenciais e não pode ser excluída; desative-a", http.StatusConflict)
			return
		}
	}
	if err := h.Repository.RemoverEtapa(h.DB, id); err != nil {
		http.Error(w, "Erro ao remover etapa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CriarCampo(w http.ResponseWriter, r *http.Request) {
	etapaID, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.EtapaPorID(h.DB, etapaID); err != nil {
		http.Error(w, "Etapa não encontrada", http.StatusNotFound)
		return
	}

	var campo FormCampo
	if err := json.NewDecoder(r.Body).Decode(&campo); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if campo.Titulo == "" || campo.Tipo == "" {
		http.Error(w, "Título e tipo do campo são obrigatórios", http.StatusBadRequest)
		return
	}
	campo.ID = 0
	campo.FormEtapaID = etapaID
	if err := h.Repository.SalvarCampo(h.DB, &campo); err != nil {
		http.Error(w, "Erro ao salvar campo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(campo)
}

func (h *Handler) AtualizarCampo(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	campo, err := h.Repository.CampoPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Campo não encontrado", http.StatusNotFound)
		return
	}

	var corpo FormCampo
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	// Campos essenciais não podem trocar de chave nem perder o vínculo com
	// o pipeline; título, ordem, opções e ativação seguem editáveis.
	if campo.Essencial() && corpo.ChaveSistema != campo.ChaveSistema {
		http.Error(w, "A chave de sistema de um campo essencial não pode ser alterada", http.StatusConflict)
		return
	}

	campo.Titulo = corpo.Titulo
	campo.Tipo = corpo.Tipo
	campo.Obrigatorio = corpo.Obrigatorio
	campo.Ativo = corpo.Ativo
	campo.Ordem = corpo.Ordem
	campo.CampoMapeado = corpo.CampoMapeado
	campo.Opcoes = corpo.Opcoes
	campo.Configuracao = corpo.Configuracao
	if !campo.Essencial() {
		campo.ChaveSistema = corpo.ChaveSistema
	}
	if err := h.Repository.SalvarCampo(h.DB, campo); err != nil {
		http.Error(w, "Erro ao salvar campo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(campo)
}

// RemoverCampo exclui um campo. Campos essenciais só podem ser
// desativados: a exclusão quebraria o mapeamento do pipeline.
func (h *Handler) RemoverCampo(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	campo, err := h.Repository.CampoPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Campo não encontrado", http.StatusNotFound)
		return
	}
	if campo.Essencial() {
		http.Error(w, "Campo essencial não pode ser excluído, apenas desativado", http.StatusConflict)
		return
	}
	if err := h.Repository.RemoverCampo(h.DB, id); err != nil {
		http.Error(w, "Erro ao remover campo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OpcoesDoCampo resolve as opções de um campo para o contexto passado em
// query string (produtoTipoId, produtoModeloId, variacao, modoImpressaoId,
// numeroEntregas).
func (h *Handler) OpcoesDoCampo(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	campo, err := h.Repository.CampoPorID(h.DB, id)
	if err != nil {
		http.Error(w, "Campo não encontrado", http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	ctx := Contexto{
		ProdutoTipoID:   uintDeQuery(q.Get("produtoTipoId")),
		ProdutoModeloID: uintDeQuery(q.Get("produtoModeloId")),
		Variacao:        q.Get("variacao"),
		ModoImpressaoID: uintDeQuery(q.Get("modoImpressaoId")),
		NumeroEntregas:  intDeQuery(q.Get("numeroEntregas")),
	}

	opcoes, err := h.Opcoes.OpcoesDoCampo(campo, ctx)
	if err != nil {
		http.Error(w, "Erro ao resolver opções do campo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(opcoes)
}

func idDaRota(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	return uint(id), err
}

func uintDeQuery(s string) uint {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func intDeQuery(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
