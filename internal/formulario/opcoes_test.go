package formulario

import (
	"testing"

	"github.com/EmbalaFlex/api-orcamentos/internal/catalogo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func catalogoDeTeste() *catalogo.MemRepository {
	return &catalogo.MemRepository{
		Tipos: []catalogo.ProdutoTipo{
			{ID: 1, Codigo: "SACOLA", Nome: "Sacola"},
			{ID: 2, Codigo: "ENVELOPE", Nome: "Envelope"},
		},
		Modelos: []catalogo.ProdutoModelo{
			{ID: 1, ProdutoTipoID: 1, Codigo: "SACOLA-LUXO", Nome: "Sacola Luxo", PermiteAlca: true},
			{ID: 2, ProdutoTipoID: 2, Codigo: "ENVELOPE-OFICIO", Nome: "Envelope Ofício"},
		},
		ListaFormatos: []catalogo.Formato{
			{ID: 1, Nome: "P 20x30"},
			{ID: 2, Nome: "M 30x40"},
		},
		ListaSubstratos: []catalogo.Substrato{
			{ID: 1, Nome: "Kraft", Gramaturas: datatypes.NewJSONSlice([]int{90, 120})},
		},
		Modos: []catalogo.ModoImpressao{
			{ID: 1, Nome: "Flexografia", Combinacoes: []catalogo.CombinacaoImpressao{
				{ID: 1, ModoImpressaoID: 1, Nome: "1 cor externa", Cores: 1},
				{ID: 2, ModoImpressaoID: 1, Nome: "4 cores externas", Cores: 4},
			}},
			{ID: 2, Nome: "Offset", Combinacoes: []catalogo.CombinacaoImpressao{
				{ID: 3, ModoImpressaoID: 2, Nome: "4x0", Cores: 4},
			}},
		},
		ListaModulos: []catalogo.ModuloAcondicionamento{
			{ID: 1, Nome: "Caixa", Quantidade: 500},
		},
		Permissoes: []catalogo.PermissaoOpcao{
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaFormato, OpcaoID: 2, Ordem: 1},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaFormato, OpcaoID: 1, Ordem: 2},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaSubstrato, OpcaoID: 1, Ordem: 1},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaModoImpressao, OpcaoID: 1, Ordem: 1},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaCombinacao, OpcaoID: 2, Ordem: 1},
		},
	}
}

func TestListaEstaticaTemPrecedenciaMaxima(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{
		Tipo:         TipoSelecao,
		ChaveSistema: "substrato",
		Opcoes:       datatypes.NewJSONSlice([]string{"Incluso", "Não incluso"}),
	}
	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{ProdutoModeloID: 1})
	require.NoError(t, err)
	require.Len(t, opcoes, 3)
	assert.Equal(t, "Incluso", opcoes[0].Valor)
	assert.Equal(t, "Não incluso", opcoes[1].Valor)
	assert.Equal(t, "outro", opcoes[2].Valor)
}

func TestOverrideTamanhosPorModelo(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{
		Tipo:         TipoSelecao,
		ChaveSistema: "formato_padrao",
		Configuracao: datatypes.JSONMap{
			"tamanhosPorModelo": map[string]interface{}{
				"1": []interface{}{"25x35", "30x40"},
			},
		},
	}

	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{ProdutoModeloID: 1})
	require.NoError(t, err)
	require.Len(t, opcoes, 3)
	assert.Equal(t, "25x35", opcoes[0].Valor)
	assert.Equal(t, "30x40", opcoes[1].Valor)
	assert.Equal(t, "outro", opcoes[2].Valor)

	// modelo sem entrada no mapa cai para o catálogo
	opcoes, err = ro.OpcoesDoCampo(campo, Contexto{ProdutoModeloID: 2})
	require.NoError(t, err)
	require.Len(t, opcoes, 1)
	assert.Equal(t, "outro", opcoes[0].Valor)
}

func TestOverrideModelosPorProduto(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{
		Tipo:         TipoModelo,
		ChaveSistema: "modelo",
		Configuracao: datatypes.JSONMap{
			"modelosPorProduto": map[string]interface{}{
				"1": []interface{}{"Sacola Boutique", "Sacola Kraft"},
			},
		},
	}
	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{ProdutoTipoID: 1, ProdutoModeloID: 1})
	require.NoError(t, err)
	require.Len(t, opcoes, 2)
	assert.Equal(t, "Sacola Boutique", opcoes[0].Valor)
}

func TestModelosListadosSoComProdutoSelecionado(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{Tipo: TipoModelo, ChaveSistema: "modelo"}

	// o estado normal do assistente: tipo escolhido, modelo ainda não
	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{ProdutoTipoID: 1})
	require.NoError(t, err)
	require.Len(t, opcoes, 1)
	assert.Equal(t, "1", opcoes[0].Valor)
	assert.Equal(t, "Sacola Luxo", opcoes[0].Rotulo)

	opcoes, err = ro.OpcoesDoCampo(campo, Contexto{})
	require.NoError(t, err)
	assert.Empty(t, opcoes)
}

func TestCatalogoRespeitaOrdemDasPermissoes(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{Tipo: TipoSelecao, ChaveSistema: "formato_padrao"}

	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{ProdutoModeloID: 1})
	require.NoError(t, err)
	require.Len(t, opcoes, 3)
	assert.Equal(t, "2", opcoes[0].Valor)
	assert.Equal(t, "M 30x40", opcoes[0].Rotulo)
	assert.Equal(t, "1", opcoes[1].Valor)
	assert.Equal(t, "outro", opcoes[2].Valor)
}

func TestCombinacoesFiltradasPorModo(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{Tipo: TipoSelecao, ChaveSistema: "impressao_combinacao"}

	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{ProdutoModeloID: 1, ModoImpressaoID: 1})
	require.NoError(t, err)
	require.Len(t, opcoes, 2)
	assert.Equal(t, "2", opcoes[0].Valor)
	assert.Equal(t, "4 cores externas", opcoes[0].Rotulo)

	// modo não permitido para o modelo só rende o sentinela
	opcoes, err = ro.OpcoesDoCampo(campo, Contexto{ProdutoModeloID: 1, ModoImpressaoID: 2})
	require.NoError(t, err)
	require.Len(t, opcoes, 1)
	assert.Equal(t, "outro", opcoes[0].Valor)
}

func TestModuloUsaRotuloComQuantidade(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{Tipo: TipoSelecao, ChaveSistema: "modulo"}

	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{ProdutoModeloID: 1})
	require.NoError(t, err)
	require.Len(t, opcoes, 2)
	assert.Equal(t, "Caixa (500 un)", opcoes[0].Rotulo)
}

func TestSentinelaNaoEInjetadoEmChaveSemEscalonamento(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{Tipo: TipoProduto, ChaveSistema: "produto"}

	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{})
	require.NoError(t, err)
	require.Len(t, opcoes, 2)
	for _, o := range opcoes {
		assert.NotEqual(t, "outro", o.Valor)
	}
}

func TestSentinelaNaoEDuplicado(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{
		Tipo:         TipoSelecao,
		ChaveSistema: "substrato",
		Opcoes:       datatypes.NewJSONSlice([]string{"Kraft", "Outro (Desenvolvimento)"}),
	}
	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{ProdutoModeloID: 1})
	require.NoError(t, err)
	assert.Len(t, opcoes, 2)
}

func TestSemModeloSelecionadoListaVazia(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{Tipo: TipoSelecao, ChaveSistema: "substrato"}

	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{})
	require.NoError(t, err)
	require.Len(t, opcoes, 1)
	assert.Equal(t, "outro", opcoes[0].Valor)
}

func TestFrequenciaPerdeOpcaoUnicaComVariasEntregas(t *testing.T) {
	ro := NewResolutorOpcoes(catalogoDeTeste())
	campo := &FormCampo{
		Tipo:         TipoSelecao,
		CampoMapeado: "entregas.frequencia",
		Opcoes:       datatypes.NewJSONSlice([]string{"Única", "Semanal", "Mensal"}),
	}

	opcoes, err := ro.OpcoesDoCampo(campo, Contexto{NumeroEntregas: 3})
	require.NoError(t, err)
	require.Len(t, opcoes, 2)
	assert.Equal(t, "Semanal", opcoes[0].Valor)
	assert.Equal(t, "Mensal", opcoes[1].Valor)

	// entrega única mantém a lista completa
	opcoes, err = ro.OpcoesDoCampo(campo, Contexto{NumeroEntregas: 1})
	require.NoError(t, err)
	assert.Len(t, opcoes, 3)
}

func TestCampoEssencial(t *testing.T) {
	assert.True(t, (&FormCampo{ChaveSistema: "produto"}).Essencial())
	assert.True(t, (&FormCampo{ChaveSistema: "quantidade"}).Essencial())
	assert.False(t, (&FormCampo{ChaveSistema: "substrato"}).Essencial())
}
