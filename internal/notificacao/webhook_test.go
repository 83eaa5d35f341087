package notificacao

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resultadoCapturado struct {
	mu            sync.Mutex
	solicitacaoID uint
	status        string
	resposta      string
	chamadas      int
}

func (rc *resultadoCapturado) gravar(id uint, status, resposta string, _ time.Time) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.solicitacaoID = id
	rc.status = status
	rc.resposta = resposta
	rc.chamadas++
}

func TestEnviarComSucesso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"recebido": true}`))
	}))
	defer srv.Close()

	rc := &resultadoCapturado{}
	n := NewNotificador(srv.URL, time.Second, rc.gravar)
	n.Enviar(42, map[string]string{"protocolo": "abc"})

	assert.Equal(t, uint(42), rc.solicitacaoID)
	assert.Equal(t, StatusSucesso, rc.status)
	assert.JSONEq(t, `{"recebido": true}`, rc.resposta)
}

func TestEnviarComErroHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "fila indisponível", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rc := &resultadoCapturado{}
	n := NewNotificador(srv.URL, time.Second, rc.gravar)
	n.Enviar(7, map[string]string{})

	assert.Equal(t, StatusErro, rc.status)
	assert.Contains(t, rc.resposta, "HTTP 500")
	assert.Contains(t, rc.resposta, "fila indisponível")
}

func TestEnviarComTimeout(t *testing.T) {
	segure := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-segure
	}))
	defer srv.Close()
	defer close(segure)

	rc := &resultadoCapturado{}
	n := NewNotificador(srv.URL, 50*time.Millisecond, rc.gravar)
	n.Enviar(9, map[string]string{})

	assert.Equal(t, StatusErro, rc.status)
}

func TestSemURLNaoGravaResultado(t *testing.T) {
	rc := &resultadoCapturado{}
	n := NewNotificador("", time.Second, rc.gravar)
	n.Enviar(1, map[string]string{})
	assert.Zero(t, rc.chamadas)
}

func TestEnviarAsyncRetornaImediatamente(t *testing.T) {
	terminou := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewNotificador(srv.URL, time.Second, func(uint, string, string, time.Time) {
		close(terminou)
	})
	n.EnviarAsync(3, map[string]string{})

	select {
	case <-terminou:
	case <-time.After(2 * time.Second):
		t.Fatal("resultado do envio assíncrono não foi gravado")
	}
}

func TestTimeoutPadraoQuandoNaoConfigurado(t *testing.T) {
	n := NewNotificador("http://localhost", 0, nil)
	require.Equal(t, TimeoutPadrao, n.Timeout)
}
