// internal/notificacao/webhook.go
//
// Entrega da solicitação ao sistema comercial via webhook. O envio é
// fire-and-forget: a resposta HTTP da criação já foi devolvida ao
// cliente quando a tentativa acontece, e o resultado é gravado de volta
// na solicitação pelo callback Resultado.
package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Status de entrega do webhook gravados na solicitação.
const (
	StatusPendente = "pendente"
	StatusSucesso  = "sucesso"
	StatusErro     = "erro"
)

const TimeoutPadrao = 30 * time.Second

// ResultadoFunc grava o desfecho da tentativa na solicitação de origem.
type ResultadoFunc func(solicitacaoID uint, status string, resposta string, enviadoEm time.Time)

// Notificador envia o payload denormalizado para o endpoint configurado.
// Uma tentativa por disparo; reenvio é ação manual do admin.
type Notificador struct {
	URL       string
	Timeout   time.Duration
	Cliente   *http.Client
	Resultado ResultadoFunc
}

func NewNotificador(url string, timeout time.Duration, resultado ResultadoFunc) *Notificador {
	if timeout <= 0 {
		timeout = TimeoutPadrao
	}
	return &Notificador{
		URL:       url,
		Timeout:   timeout,
		Cliente:   &http.Client{},
		Resultado: resultado,
	}
}

// Enviar faz uma única tentativa de POST e grava o resultado. Sem URL
// configurada a solicitação permanece pendente.
func (n *Notificador) Enviar(solicitacaoID uint, payload interface{}) {
	if n.URL == "" {
		log.Printf("Webhook não configurado; solicitação %d permanece pendente", solicitacaoID)
		return
	}

	corpo, err := json.Marshal(payload)
	if err != nil {
		n.gravar(solicitacaoID, StatusErro, fmt.Sprintf("erro ao serializar payload: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewBuffer(corpo))
	if err != nil {
		n.gravar(solicitacaoID, StatusErro, fmt.Sprintf("erro ao montar requisição: %v", err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Cliente.Do(req)
	if err != nil {
		log.Printf("Erro ao enviar webhook da solicitação %d: %v", solicitacaoID, err)
		n.gravar(solicitacaoID, StatusErro, err.Error())
		return
	}
	defer resp.Body.Close()

	resposta := lerResposta(resp.Body)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		n.gravar(solicitacaoID, StatusSucesso, resposta)
		return
	}
	log.Printf("Webhook da solicitação %d respondeu %d", solicitacaoID, resp.StatusCode)
	n.gravar(solicitacaoID, StatusErro, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resposta))
}

// EnviarAsync dispara o envio em background. A chamada retorna na hora.
func (n *Notificador) EnviarAsync(solicitacaoID uint, payload interface{}) {
	go n.Enviar(solicitacaoID, payload)
}

func (n *Notificador) gravar(solicitacaoID uint, status, resposta string) {
	if n.Resultado != nil {
		n.Resultado(solicitacaoID, status, resposta, time.Now())
	}
}

// lerResposta devolve o corpo como JSON compactado quando parseável, ou
// o texto bruto truncado caso contrário.
func lerResposta(r io.Reader) string {
	bruto, err := io.ReadAll(io.LimitReader(r, 64*1024))
	if err != nil {
		return ""
	}
	var qualquer interface{}
	if json.Unmarshal(bruto, &qualquer) == nil {
		if compacto, err := json.Marshal(qualquer); err == nil {
			return string(compacto)
		}
	}
	return string(bruto)
}
