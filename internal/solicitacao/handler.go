// internal/solicitacao/handler.go
package solicitacao

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/EmbalaFlex/api-orcamentos/internal/catalogo"
	"github.com/EmbalaFlex/api-orcamentos/internal/notificacao"
	"github.com/EmbalaFlex/api-orcamentos/internal/pedido"
	"github.com/EmbalaFlex/api-orcamentos/internal/validacao"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB          *gorm.DB
	Repository  Repository
	Pipeline    *Pipeline
	Catalogo    catalogo.Repository
	Notificador *notificacao.Notificador
}

func NewHandler(db *gorm.DB, catalogoRepo catalogo.Repository, notificador *notificacao.Notificador) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(db),
		Pipeline:    NewPipeline(catalogoRepo),
		Catalogo:    catalogoRepo,
		Notificador: notificador,
	}
}

type respostaErros struct {
	Erros []validacao.ErroCampo `json:"erros"`
}

// Criar processa a submissão do assistente. A resposta 201 sai antes do
// webhook: a entrega acontece em background e o status é gravado depois.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var p pedido.Pedido
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	s, avaliacao, err := h.Pipeline.Processar(&p)
	if err != nil {
		http.Error(w, "Erro ao processar a solicitação", http.StatusInternalServerError)
		return
	}
	if len(avaliacao.Erros) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(respostaErros{Erros: avaliacao.Erros})
		return
	}

	if err := h.Repository.Criar(s); err != nil {
		http.Error(w, "Erro ao salvar a solicitação", http.StatusInternalServerError)
		return
	}

	if h.Notificador != nil {
		h.Notificador.EnviarAsync(s.ID, MontarPayloadWebhook(s, h.Catalogo))
	}

	resposta := map[string]interface{}{
		"id":            s.ID,
		"protocolo":     s.Protocolo,
		"statusWebhook": s.StatusWebhook,
	}
	if len(avaliacao.Avisos) > 0 {
		resposta["avisos"] = avaliacao.Avisos
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(resposta)
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pagina, _ := strconv.Atoi(q.Get("pagina"))
	tamanho, _ := strconv.Atoi(q.Get("tamanho"))

	solicitacoes, total, err := h.Repository.Listar(pagina, tamanho)
	if err != nil {
		http.Error(w, "Erro ao listar solicitações", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"total": total,
		"itens": solicitacoes,
	})
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	s, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Solicitação não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s)
}

// BuscarPorProtocolo é o endpoint público de acompanhamento: o cliente
// consulta pelo UUID recebido na criação.
func (h *Handler) BuscarPorProtocolo(w http.ResponseWriter, r *http.Request) {
	s, err := h.Repository.BuscarPorProtocolo(mux.Vars(r)["protocolo"])
	if err != nil {
		http.Error(w, "Solicitação não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"protocolo":     s.Protocolo,
		"statusWebhook": s.StatusWebhook,
		"criadaEm":      s.CreatedAt,
	})
}

// ReenviarWebhook volta a solicitação para pendente e dispara uma nova
// tentativa de entrega.
func (h *Handler) ReenviarWebhook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	s, err := h.Repository.BuscarPorID(uint(id))
	if err != nil {
		http.Error(w, "Solicitação não encontrada", http.StatusNotFound)
		return
	}
	if h.Notificador == nil {
		http.Error(w, "Webhook não configurado", http.StatusServiceUnavailable)
		return
	}

	if err := h.Repository.AtualizarStatusWebhook(s.ID, notificacao.StatusPendente, "", nil); err != nil {
		http.Error(w, "Erro ao atualizar o status do webhook", http.StatusInternalServerError)
		return
	}
	h.Notificador.EnviarAsync(s.ID, MontarPayloadWebhook(s, h.Catalogo))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"id":            s.ID,
		"statusWebhook": notificacao.StatusPendente,
	})
}

// GravarResultadoWebhook é o callback passado ao notificador: atualiza o
// último desfecho na solicitação e acrescenta a tentativa ao histórico.
func (h *Handler) GravarResultadoWebhook(solicitacaoID uint, status, resposta string, enviadoEm time.Time) {
	if err := h.Repository.AtualizarStatusWebhook(solicitacaoID, status, resposta, &enviadoEm); err != nil {
		log.Printf("Erro ao gravar o status do webhook da solicitação %d: %v", solicitacaoID, err)
	}
	if err := notificacao.RegistrarTentativa(h.DB, solicitacaoID, status, resposta, enviadoEm); err != nil {
		log.Printf("Erro ao registrar a tentativa de webhook da solicitação %d: %v", solicitacaoID, err)
	}
}

// HistoricoWebhook lista as tentativas de entrega de uma solicitação.
func (h *Handler) HistoricoWebhook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	entregas, err := notificacao.HistoricoDaSolicitacao(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Erro ao listar o histórico do webhook", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(entregas)
}
