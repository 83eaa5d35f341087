package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/EmbalaFlex/api-orcamentos/internal/auth"
	"github.com/EmbalaFlex/api-orcamentos/internal/catalogo"
	"github.com/EmbalaFlex/api-orcamentos/internal/estatisticas"
	"github.com/EmbalaFlex/api-orcamentos/internal/formulario"
	"github.com/EmbalaFlex/api-orcamentos/internal/notificacao"
	"github.com/EmbalaFlex/api-orcamentos/internal/solicitacao"
	"github.com/EmbalaFlex/api-orcamentos/internal/usuario"
	"github.com/EmbalaFlex/api-orcamentos/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := catalogo.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate do catálogo:", err)
	}
	if err := formulario.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate do formulário:", err)
	}
	if err := solicitacao.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate das solicitações:", err)
	}
	if err := notificacao.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate das entregas de webhook:", err)
	}
	if err := usuario.Migrate(database); err != nil {
		log.Fatal("Erro no AutoMigrate dos usuários:", err)
	}

	// Seeds iniciais (não sobrescrevem dados existentes)
	if err := catalogo.Seed(database); err != nil {
		log.Fatal("Erro ao semear o catálogo:", err)
	}
	if err := formulario.Seed(database); err != nil {
		log.Fatal("Erro ao semear o formulário:", err)
	}

	catalogoRepo := catalogo.NewRepository(database)

	// Handlers
	catalogoHandler := catalogo.NewHandler(database)
	formularioHandler := formulario.NewHandler(database, catalogoRepo)
	usuarioHandler := usuario.NewHandler(database)
	estatisticasHandler := estatisticas.NewHandler(database)

	solicitacaoHandler := solicitacao.NewHandler(database, catalogoRepo, nil)
	solicitacaoHandler.Notificador = notificacao.NewNotificador(
		os.Getenv("WEBHOOK_URL"),
		timeoutWebhook(),
		solicitacaoHandler.GravarResultadoWebhook,
	)

	// Router
	r := mux.NewRouter()

	// Rotas públicas: formulário, catálogo de leitura e submissão
	r.HandleFunc("/formulario/etapas", formularioHandler.ListarEtapasAtivas).Methods("GET")
	r.HandleFunc("/formulario/campos/{id}/opcoes", formularioHandler.OpcoesDoCampo).Methods("GET")
	r.HandleFunc("/catalogo/tipos", catalogoHandler.ListarTipos).Methods("GET")
	r.HandleFunc("/catalogo/tipos/{id}/modelos", catalogoHandler.ListarModelosPorTipo).Methods("GET")
	r.HandleFunc("/catalogo/modelos/{id}", catalogoHandler.BuscarModelo).Methods("GET")
	r.HandleFunc("/solicitacoes", solicitacaoHandler.Criar).Methods("POST")
	r.HandleFunc("/solicitacoes/protocolo/{protocolo}", solicitacaoHandler.BuscarPorProtocolo).Methods("GET")
	r.HandleFunc("/usuarios/login", usuarioHandler.Login).Methods("POST")

	// Rotas administrativas
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)

	admin.HandleFunc("/formulario/etapas", formularioHandler.ListarEtapas).Methods("GET")
	admin.HandleFunc("/formulario/etapas", formularioHandler.CriarEtapa).Methods("POST")
	admin.HandleFunc("/formulario/etapas/{id}", formularioHandler.AtualizarEtapa).Methods("PUT")
	admin.HandleFunc("/formulario/etapas/{id}", formularioHandler.RemoverEtapa).Methods("DELETE")
	admin.HandleFunc("/formulario/etapas/{id}/campos", formularioHandler.CriarCampo).Methods("POST")
	admin.HandleFunc("/formulario/campos/{id}", formularioHandler.AtualizarCampo).Methods("PUT")
	admin.HandleFunc("/formulario/campos/{id}", formularioHandler.RemoverCampo).Methods("DELETE")

	admin.HandleFunc("/catalogo/permissoes", catalogoHandler.CriarPermissao).Methods("POST")
	admin.HandleFunc("/catalogo/permissoes/{id}", catalogoHandler.RemoverPermissao).Methods("DELETE")
	admin.HandleFunc("/catalogo/restricoes-alca", catalogoHandler.CriarRestricaoAlca).Methods("POST")
	admin.HandleFunc("/catalogo/restricoes-alca/{id}", catalogoHandler.RemoverRestricaoAlca).Methods("DELETE")

	admin.HandleFunc("/catalogo/formatos", catalogoHandler.ListarFormatos).Methods("GET")
	admin.HandleFunc("/catalogo/formatos", catalogoHandler.SalvarFormato).Methods("POST")
	admin.HandleFunc("/catalogo/formatos/{id}", catalogoHandler.RemoverFormato).Methods("DELETE")
	admin.HandleFunc("/catalogo/substratos", catalogoHandler.ListarSubstratos).Methods("GET")
	admin.HandleFunc("/catalogo/substratos", catalogoHandler.SalvarSubstrato).Methods("POST")
	admin.HandleFunc("/catalogo/substratos/{id}", catalogoHandler.RemoverSubstrato).Methods("DELETE")
	admin.HandleFunc("/catalogo/modulos", catalogoHandler.ListarModulos).Methods("GET")
	admin.HandleFunc("/catalogo/modulos", catalogoHandler.SalvarModulo).Methods("POST")
	admin.HandleFunc("/catalogo/modulos/{id}", catalogoHandler.RemoverModulo).Methods("DELETE")
	admin.HandleFunc("/catalogo/tipos-alca", catalogoHandler.SalvarTipoAlca).Methods("POST")
	admin.HandleFunc("/catalogo/tipos-alca/{id}", catalogoHandler.RemoverTipoAlca).Methods("DELETE")

	admin.HandleFunc("/solicitacoes", solicitacaoHandler.Listar).Methods("GET")
	admin.HandleFunc("/solicitacoes/{id}", solicitacaoHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/solicitacoes/{id}/webhook", solicitacaoHandler.ReenviarWebhook).Methods("POST")
	admin.HandleFunc("/solicitacoes/{id}/webhook", solicitacaoHandler.HistoricoWebhook).Methods("GET")

	admin.HandleFunc("/estatisticas", estatisticasHandler.Painel).Methods("GET")

	admin.HandleFunc("/usuarios", usuarioHandler.Create).Methods("POST")
	admin.HandleFunc("/usuarios", usuarioHandler.List).Methods("GET")

	// Rotas autenticadas sem exigência de admin
	conta := r.PathPrefix("/usuarios").Subrouter()
	conta.Use(auth.MiddlewareAutenticacao)
	conta.HandleFunc("/me", usuarioHandler.Me).Methods("GET")
	conta.HandleFunc("/{id}", usuarioHandler.Update).Methods("PUT")
	conta.HandleFunc("/{id}", usuarioHandler.Delete).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	}).Handler(r)

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, handler))
}

func timeoutWebhook() time.Duration {
	segundos, err := strconv.Atoi(os.Getenv("WEBHOOK_TIMEOUT_SECONDS"))
	if err != nil || segundos <= 0 {
		return notificacao.TimeoutPadrao
	}
	return time.Duration(segundos) * time.Second
}
