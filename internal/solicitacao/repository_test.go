package solicitacao

import (
	"testing"
	"time"

	"github.com/EmbalaFlex/api-orcamentos/internal/notificacao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func solicitacaoMinima() *Solicitacao {
	modeloID := uint(1)
	return &Solicitacao{
		Protocolo:     uuid.NewString(),
		Vendedor:      "Ana",
		Contato:       "ana@cliente.com",
		Marca:         "Cliente X",
		CodigoMetrics: "12345",
		TipoContrato:  "SPOT",
		StatusWebhook: notificacao.StatusPendente,
		Item: ItemSolicitacao{
			ProdutoModeloID: &modeloID,
			Quantidade:      5000,
		},
	}
}

func TestCriarEBuscar(t *testing.T) {
	repo := NewRepository(bancoDeTeste(t))

	s := solicitacaoMinima()
	require.NoError(t, repo.Criar(s))
	require.NotZero(t, s.ID)
	require.NotZero(t, s.Item.ID)

	porID, err := repo.BuscarPorID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.Protocolo, porID.Protocolo)
	assert.Equal(t, 5000, porID.Item.Quantidade)

	porProtocolo, err := repo.BuscarPorProtocolo(s.Protocolo)
	require.NoError(t, err)
	assert.Equal(t, s.ID, porProtocolo.ID)
}

func TestBuscarInexistente(t *testing.T) {
	repo := NewRepository(bancoDeTeste(t))
	_, err := repo.BuscarPorID(999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.BuscarPorProtocolo("nao-existe")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAtualizarStatusWebhook(t *testing.T) {
	repo := NewRepository(bancoDeTeste(t))
	s := solicitacaoMinima()
	require.NoError(t, repo.Criar(s))

	agora := time.Now()
	require.NoError(t, repo.AtualizarStatusWebhook(s.ID, notificacao.StatusSucesso, `{"ok":true}`, &agora))

	atualizada, err := repo.BuscarPorID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, notificacao.StatusSucesso, atualizada.StatusWebhook)
	assert.Equal(t, `{"ok":true}`, atualizada.RespostaWebhook)
	require.NotNil(t, atualizada.WebhookEnviadoEm)
}

func TestListarPaginado(t *testing.T) {
	repo := NewRepository(bancoDeTeste(t))
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Criar(solicitacaoMinima()))
	}

	itens, total, err := repo.Listar(1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, itens, 2)

	itens, _, err = repo.Listar(3, 2)
	require.NoError(t, err)
	assert.Len(t, itens, 1)
}
