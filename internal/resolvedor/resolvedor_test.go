package resolvedor

import (
	"testing"

	"github.com/EmbalaFlex/api-orcamentos/internal/catalogo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// catalogoFixture monta um catálogo pequeno em memória:
//
//	tipo 1 "SACOLA" (tiragem mínima 1000)
//	  modelo 1 "Sacola Luxo" (permite alça, variação "boutique" restrita
//	    aos formatos 1,2 e à alça 1)
//	  modelo 2 "Sacola Padrão" (permite alça, sem restrições de alça)
//	tipo 2 "SACO"
//	  modelo 3 "Saco Fundo V" (sem alça)
func catalogoFixture() *catalogo.MemRepository {
	return &catalogo.MemRepository{
		Tipos: []catalogo.ProdutoTipo{
			{ID: 1, Codigo: "SACOLA", Nome: "Sacola de Papel", TiragemMinima: intPtr(1000)},
			{ID: 2, Codigo: "SACO", Nome: "Saco de Papel"},
		},
		Modelos: []catalogo.ProdutoModelo{
			{
				ID: 1, ProdutoTipoID: 1, Codigo: "SACOLA-LUXO", Nome: "Sacola Luxo", PermiteAlca: true,
				Variacoes: []catalogo.ModeloVariacao{
					{
						ID: 1, ProdutoModeloID: 1, Codigo: "boutique", Nome: "Boutique",
						FormatosPermitidos: datatypes.NewJSONSlice([]uint{1, 2}),
						AlcasPermitidas:    datatypes.NewJSONSlice([]uint{1}),
					},
				},
			},
			{ID: 2, ProdutoTipoID: 1, Codigo: "SACOLA-PADRAO", Nome: "Sacola Padrão", PermiteAlca: true},
			{ID: 3, ProdutoTipoID: 2, Codigo: "SACO-FUNDO-V", Nome: "Saco Fundo V"},
		},
		ListaFormatos: []catalogo.Formato{
			{ID: 1, Nome: "Pequeno", Largura: 18, Altura: 24},
			{ID: 2, Nome: "Médio", Largura: 25, Altura: 32},
			{ID: 3, Nome: "Grande", Largura: 32, Altura: 42},
			{ID: 4, Nome: "Saco 1kg", Largura: 14, Altura: 28},
		},
		ListaSubstratos: []catalogo.Substrato{
			{ID: 1, Nome: "Kraft Natural", Gramaturas: datatypes.NewJSONSlice([]int{80, 90, 110})},
			{ID: 2, Nome: "Papel Offset", Gramaturas: datatypes.NewJSONSlice([]int{120, 150})},
		},
		Modos: []catalogo.ModoImpressao{
			{ID: 1, Nome: "Flexografia", Combinacoes: []catalogo.CombinacaoImpressao{
				{ID: 1, ModoImpressaoID: 1, Nome: "1 cor externa", Cores: 1},
				{ID: 2, ModoImpressaoID: 1, Nome: "2 cores externas", Cores: 2},
			}},
			{ID: 2, Nome: "Offset", Combinacoes: []catalogo.CombinacaoImpressao{
				{ID: 3, ModoImpressaoID: 2, Nome: "4x0", Cores: 4},
			}},
		},
		Alcas: []catalogo.TipoAlca{
			{ID: 1, Nome: "Fita Gorgurão"},
			{ID: 2, Nome: "Cordão de Algodão"},
		},
		ListaAcabamentos: []catalogo.Acabamento{
			{ID: 1, Codigo: "reforco_fundo", Nome: "Reforço de Fundo"},
			{ID: 2, Codigo: "fita_furo", Nome: "Fita e Furo"},
		},
		Reforcos:  []catalogo.ModeloReforco{{ID: 1, Nome: "Cartão 250g"}},
		FitasFuro: []catalogo.ModeloFitaFuro{{ID: 1, Nome: "Furo 6mm"}},
		Acondicionamentos: []catalogo.TipoAcondicionamento{
			{ID: 1, Nome: "Caixa de Papelão"},
		},
		ListaModulos: []catalogo.ModuloAcondicionamento{
			{ID: 1, Nome: "Caixa", Quantidade: 250},
			{ID: 2, Nome: "Caixa", Quantidade: 500},
		},
		Enobrecimentos: []catalogo.TipoEnobrecimento{
			{ID: 1, Codigo: "hot_stamping", Nome: "Hot Stamping"},
		},
		Permissoes: []catalogo.PermissaoOpcao{
			// modelo 1: formatos 2,1,3 (ordem do admin), substrato 2, offset
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaFormato, OpcaoID: 2, Ordem: 0},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaFormato, OpcaoID: 1, Ordem: 1},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaFormato, OpcaoID: 3, Ordem: 2},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaSubstrato, OpcaoID: 2},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaModoImpressao, OpcaoID: 2},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaCombinacao, OpcaoID: 3},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaTipoAlca, OpcaoID: 1},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaTipoAlca, OpcaoID: 2},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaAcabamento, OpcaoID: 1},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaModeloReforco, OpcaoID: 1},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaAcondicionamento, OpcaoID: 1},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaEnobrecimento, OpcaoID: 1},
			// modelo 2: flexografia com só uma combinação liberada
			{ProdutoModeloID: 2, Categoria: catalogo.CategoriaFormato, OpcaoID: 1},
			{ProdutoModeloID: 2, Categoria: catalogo.CategoriaSubstrato, OpcaoID: 1},
			{ProdutoModeloID: 2, Categoria: catalogo.CategoriaModoImpressao, OpcaoID: 1},
			{ProdutoModeloID: 2, Categoria: catalogo.CategoriaCombinacao, OpcaoID: 2},
			{ProdutoModeloID: 2, Categoria: catalogo.CategoriaTipoAlca, OpcaoID: 2},
			{ProdutoModeloID: 2, Categoria: catalogo.CategoriaAcondicionamento, OpcaoID: 1},
			// modelo 3: saco, sem alça, modo permitido sem combinação
			{ProdutoModeloID: 3, Categoria: catalogo.CategoriaFormato, OpcaoID: 4},
			{ProdutoModeloID: 3, Categoria: catalogo.CategoriaModoImpressao, OpcaoID: 1},
		},
		Restricoes: []catalogo.RestricaoAlca{
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaAlcaCor, Valor: "Preta"},
			{ProdutoModeloID: 1, Categoria: catalogo.CategoriaAlcaCor, Valor: "Dourada"},
		},
		Regras: []catalogo.RegraFormato{
			{ProdutoModeloID: 1, FormatoID: 2, ModuloPadraoQuantidade: 500},
			{ProdutoModeloID: 1, FormatoID: 3, ModuloPadraoQuantidade: 9999},
		},
	}
}

func intPtr(v int) *int { return &v }

func TestFormatosPara(t *testing.T) {
	r := Novo(catalogoFixture())

	t.Run("respeita permissoes e ordem do admin", func(t *testing.T) {
		formatos, err := r.FormatosPara(1, "")
		require.NoError(t, err)
		require.Len(t, formatos, 3)
		assert.Equal(t, uint(2), formatos[0].ID)
		assert.Equal(t, uint(1), formatos[1].ID)
		assert.Equal(t, uint(3), formatos[2].ID)
	})

	t.Run("variacao intersecta o subconjunto declarado", func(t *testing.T) {
		formatos, err := r.FormatosPara(1, "boutique")
		require.NoError(t, err)
		require.Len(t, formatos, 2)
		assert.Equal(t, uint(2), formatos[0].ID)
		assert.Equal(t, uint(1), formatos[1].ID)
	})

	t.Run("variacao desconhecida nao restringe", func(t *testing.T) {
		formatos, err := r.FormatosPara(1, "inexistente")
		require.NoError(t, err)
		assert.Len(t, formatos, 3)
	})

	t.Run("sem permissao devolve vazio", func(t *testing.T) {
		fix := catalogoFixture()
		fix.Permissoes = nil
		formatos, err := Novo(fix).FormatosPara(1, "")
		require.NoError(t, err)
		assert.Empty(t, formatos)
	})

	t.Run("idempotente", func(t *testing.T) {
		a, err := r.FormatosPara(1, "boutique")
		require.NoError(t, err)
		b, err := r.FormatosPara(1, "boutique")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestSubstratosPara(t *testing.T) {
	r := Novo(catalogoFixture())
	substratos, err := r.SubstratosPara(1)
	require.NoError(t, err)
	require.Len(t, substratos, 1)
	assert.Equal(t, "Papel Offset", substratos[0].Nome)
	assert.Equal(t, []int{120, 150}, []int(substratos[0].Gramaturas))
}

func TestOpcoesAlcaPara(t *testing.T) {
	r := Novo(catalogoFixture())

	t.Run("modelo sem alca devolve conjuntos vazios", func(t *testing.T) {
		opcoes, err := r.OpcoesAlcaPara(3, "")
		require.NoError(t, err)
		assert.Empty(t, opcoes.Tipos)
		assert.Empty(t, opcoes.Aplicacoes)
	})

	t.Run("restricao configurada substitui o padrao", func(t *testing.T) {
		opcoes, err := r.OpcoesAlcaPara(1, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"Preta", "Dourada"}, opcoes.Cores)
	})

	t.Run("sem restricao cai na lista padrao", func(t *testing.T) {
		opcoes, err := r.OpcoesAlcaPara(1, "")
		require.NoError(t, err)
		assert.Equal(t, AplicacoesPadrao, opcoes.Aplicacoes)
		assert.Equal(t, LargurasPadrao, opcoes.Larguras)
	})

	t.Run("variacao restringe tipos de alca", func(t *testing.T) {
		opcoes, err := r.OpcoesAlcaPara(1, "boutique")
		require.NoError(t, err)
		require.Len(t, opcoes.Tipos, 1)
		assert.Equal(t, uint(1), opcoes.Tipos[0].ID)
	})
}

func TestOpcoesImpressaoPara(t *testing.T) {
	r := Novo(catalogoFixture())

	t.Run("combinacoes filtradas por modelo e modo", func(t *testing.T) {
		modos, err := r.OpcoesImpressaoPara(2)
		require.NoError(t, err)
		require.Len(t, modos, 1)
		assert.Equal(t, "Flexografia", modos[0].Nome)
		require.Len(t, modos[0].Combinacoes, 1)
		assert.Equal(t, uint(2), modos[0].Combinacoes[0].ID)
	})

	t.Run("modo permitido sem combinacao aparece vazio", func(t *testing.T) {
		modos, err := r.OpcoesImpressaoPara(3)
		require.NoError(t, err)
		require.Len(t, modos, 1)
		assert.Empty(t, modos[0].Combinacoes)
	})
}

func TestAcabamentosESubOpcoes(t *testing.T) {
	r := Novo(catalogoFixture())

	acabamentos, err := r.AcabamentosPara(1)
	require.NoError(t, err)
	require.Len(t, acabamentos, 1)
	assert.Equal(t, "reforco_fundo", acabamentos[0].Codigo)

	reforcos, err := r.ModelosReforcoPara(1)
	require.NoError(t, err)
	assert.Len(t, reforcos, 1)

	fitas, err := r.ModelosFitaFuroPara(1)
	require.NoError(t, err)
	assert.Empty(t, fitas)
}

func TestTiragemMinimaPara(t *testing.T) {
	r := Novo(catalogoFixture())

	min, err := r.TiragemMinimaPara("SACOLA")
	require.NoError(t, err)
	require.NotNil(t, min)
	assert.Equal(t, 1000, *min)

	min, err = r.TiragemMinimaPara("SACO")
	require.NoError(t, err)
	assert.Nil(t, min)

	min, err = r.TiragemMinimaPara("INEXISTENTE")
	require.NoError(t, err)
	assert.Nil(t, min)
}

func TestModuloPadraoPara(t *testing.T) {
	r := Novo(catalogoFixture())

	t.Run("regra resolve modulo pela quantidade", func(t *testing.T) {
		modulo, err := r.ModuloPadraoPara(1, 2)
		require.NoError(t, err)
		require.NotNil(t, modulo)
		assert.Equal(t, 500, modulo.Quantidade)
	})

	t.Run("sem regra devolve nil", func(t *testing.T) {
		modulo, err := r.ModuloPadraoPara(1, 1)
		require.NoError(t, err)
		assert.Nil(t, modulo)
	})

	t.Run("quantidade sem modulo correspondente devolve nil", func(t *testing.T) {
		modulo, err := r.ModuloPadraoPara(1, 3)
		require.NoError(t, err)
		assert.Nil(t, modulo)
	})
}
