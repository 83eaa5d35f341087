package validacao

import (
	"testing"

	"github.com/EmbalaFlex/api-orcamentos/internal/pedido"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pedidoValido monta um pedido SPOT mínimo que passa em todas as regras.
func pedidoValido() *pedido.Pedido {
	return &pedido.Pedido{
		DadosGerais: pedido.DadosGerais{
			Vendedor: "Ana", Contato: "ana@cliente.com", Marca: "Cliente X", CodigoMetrics: "12345",
		},
		CondicoesVenda: pedido.CondicoesVenda{
			TipoContrato: pedido.ContratoSpot, Imposto: "Incluso", CondicaoPagamento: "28 dias",
		},
		Produto: pedido.Produto{ProdutoTipoID: "1", ProdutoModeloID: "2", Quantidade: "5000"},
		Formato: pedido.Formato{FormatoPadraoID: "1"},
		Substrato: pedido.Substrato{SubstratoID: "1", Gramatura: "90"},
		Acondicionamento: pedido.Acondicionamento{TipoID: "1", Quantidade: "500"},
	}
}

func campos(erros []ErroCampo) []string {
	out := make([]string, 0, len(erros))
	for _, e := range erros {
		out = append(out, e.Campo)
	}
	return out
}

func TestPedidoValidoNaoTemErros(t *testing.T) {
	assert.Empty(t, Validar(pedidoValido()))
}

func TestErrosSaoColetadosExaustivamente(t *testing.T) {
	p := pedidoValido()
	p.DadosGerais.Vendedor = ""
	p.DadosGerais.Marca = " "
	p.DadosGerais.CodigoMetrics = "abc"
	erros := Validar(p)
	assert.Contains(t, campos(erros), "dadosGerais.vendedor")
	assert.Contains(t, campos(erros), "dadosGerais.marca")
	assert.Contains(t, campos(erros), "dadosGerais.codigoMetrics")
}

func TestCondicaoPagamentoOutra(t *testing.T) {
	p := pedidoValido()
	p.CondicoesVenda.CondicaoPagamento = pedido.OpcaoOutraInformar
	assert.Contains(t, campos(Validar(p)), "condicoesVenda.condicaoPagamentoOutra")

	p.CondicoesVenda.CondicaoPagamentoOutra = "90 dias com entrada"
	assert.Empty(t, Validar(p))
}

func TestRoyaltiesSimExigeNumero(t *testing.T) {
	p := pedidoValido()
	p.CondicoesVenda.Royalties = "Sim"
	assert.Contains(t, campos(Validar(p)), "condicoesVenda.royalties")

	p.CondicoesVenda.Royalties = "sim, 5%"
	assert.Empty(t, Validar(p))

	p.CondicoesVenda.BVAgencia = "SIM"
	assert.Contains(t, campos(Validar(p)), "condicoesVenda.bvAgencia")
}

func entregasValidasPRG() pedido.Entregas {
	return pedido.Entregas{
		Frete: "CIF", CidadeUF: "Curitiba/PR",
		NumeroEntregas: "4", Frequencia: "Semanal",
	}
}

func TestEntregasPRG(t *testing.T) {
	t.Run("uma entrega exige frequencia Unica", func(t *testing.T) {
		p := pedidoValido()
		p.CondicoesVenda.TipoContrato = pedido.ContratoPRG
		p.Entregas = entregasValidasPRG()
		p.Entregas.NumeroEntregas = "1"
		p.Entregas.Frequencia = "Semanal"
		assert.Contains(t, campos(Validar(p)), "entregas.frequencia")

		p.Entregas.Frequencia = pedido.FrequenciaUnica
		assert.Empty(t, Validar(p))

		p.Entregas.Frequencia = ""
		assert.Empty(t, Validar(p))
	})

	t.Run("varias entregas proibem Unica", func(t *testing.T) {
		p := pedidoValido()
		p.CondicoesVenda.TipoContrato = pedido.ContratoPRG
		p.Entregas = entregasValidasPRG()
		p.Entregas.Frequencia = pedido.FrequenciaUnica
		assert.Contains(t, campos(Validar(p)), "entregas.frequencia")
	})

	t.Run("frequencia Outra exige descricao", func(t *testing.T) {
		p := pedidoValido()
		p.CondicoesVenda.TipoContrato = pedido.ContratoPRG
		p.Entregas = entregasValidasPRG()
		p.Entregas.Frequencia = pedido.OpcaoOutraInformar
		assert.Contains(t, campos(Validar(p)), "entregas.frequenciaOutra")

		p.Entregas.FrequenciaOutra = "a cada 10 dias"
		assert.Empty(t, Validar(p))
	})

	t.Run("numero de entregas invalido", func(t *testing.T) {
		p := pedidoValido()
		p.CondicoesVenda.TipoContrato = pedido.ContratoPRG
		p.Entregas = entregasValidasPRG()
		p.Entregas.NumeroEntregas = "zero"
		assert.Contains(t, campos(Validar(p)), "entregas.numeroEntregas")
	})

	t.Run("frete e cidade obrigatorios", func(t *testing.T) {
		p := pedidoValido()
		p.CondicoesVenda.TipoContrato = pedido.ContratoPRG
		p.Entregas = entregasValidasPRG()
		p.Entregas.Frete = "Aéreo"
		p.Entregas.CidadeUF = ""
		erros := campos(Validar(p))
		assert.Contains(t, erros, "entregas.frete")
		assert.Contains(t, erros, "entregas.cidadeUF")
	})
}

func TestEntregasJIT(t *testing.T) {
	t.Run("numeroEntregas e frequencia nao se aplicam", func(t *testing.T) {
		p := pedidoValido()
		p.CondicoesVenda.TipoContrato = pedido.ContratoJIT
		p.Entregas = pedido.Entregas{Frete: "FOB", CidadesUF: "São Paulo/SP; Campinas/SP"}
		AplicarRegrasContrato(p)
		assert.Empty(t, Validar(p))
	})

	t.Run("valores enviados sao sobrescritos para Nao ha", func(t *testing.T) {
		p := pedidoValido()
		p.CondicoesVenda.TipoContrato = pedido.ContratoJIT
		p.Entregas = pedido.Entregas{Frete: "FOB", CidadeUF: "Recife/PE", NumeroEntregas: "12", Frequencia: "Mensal"}
		AplicarRegrasContrato(p)
		assert.Equal(t, pedido.NaoHa, p.Entregas.NumeroEntregas)
		assert.Equal(t, pedido.NaoHa, p.Entregas.Frequencia)
		assert.Empty(t, Validar(p))
	})
}

func TestLocalUnico(t *testing.T) {
	sim, nao := true, false

	p := pedidoValido()
	p.CondicoesVenda.TipoContrato = pedido.ContratoPRG
	p.Entregas = entregasValidasPRG()
	p.Entregas.LocalUnico = &nao
	assert.Contains(t, campos(Validar(p)), "entregas.pedidoMinimoCIF")

	p.Entregas.PedidoMinimoCIF = "R$ 2.000,00"
	assert.Empty(t, Validar(p))

	p.Entregas.LocalUnico = &sim
	p.Entregas.PedidoMinimoCIF = ""
	AplicarRegrasContrato(p)
	assert.Equal(t, pedido.NaoHa, p.Entregas.PedidoMinimoCIF)
	assert.Empty(t, Validar(p))
}

func TestFormatoQuatroCaminhos(t *testing.T) {
	t.Run("formato padrao", func(t *testing.T) {
		p := pedidoValido()
		assert.Empty(t, Validar(p))
	})

	t.Run("medidas customizadas", func(t *testing.T) {
		p := pedidoValido()
		p.Formato = pedido.Formato{Largura: "20", Altura: "30"}
		assert.Empty(t, Validar(p))
	})

	t.Run("largura saco fundo v", func(t *testing.T) {
		p := pedidoValido()
		p.Formato = pedido.Formato{LarguraSacoFundoV: "14"}
		assert.Empty(t, Validar(p))
	})

	t.Run("descricao de desenvolvimento", func(t *testing.T) {
		p := pedidoValido()
		p.Formato = pedido.Formato{
			FormatoPadraoID:          "outro",
			DesenvolvimentoDescricao: "sacola cônica para garrafa",
		}
		assert.Empty(t, Validar(p))
	})

	t.Run("nenhum caminho satisfeito", func(t *testing.T) {
		p := pedidoValido()
		p.Formato = pedido.Formato{Largura: "20"} // falta altura
		assert.Contains(t, campos(Validar(p)), "formato")
	})
}

func TestSubstratoSentinela(t *testing.T) {
	t.Run("outro sem descricao falha", func(t *testing.T) {
		p := pedidoValido()
		p.Substrato = pedido.Substrato{SubstratoID: "outro"}
		assert.Contains(t, campos(Validar(p)), "substrato.outroDescricao")
	})

	t.Run("outro com descricao passa", func(t *testing.T) {
		p := pedidoValido()
		p.Substrato = pedido.Substrato{SubstratoID: "Outro (Desenvolvimento)", OutroDescricao: "kraft 200g reciclado"}
		assert.Empty(t, Validar(p))
	})

	t.Run("vazio sem descricao falha", func(t *testing.T) {
		p := pedidoValido()
		p.Substrato = pedido.Substrato{}
		assert.Contains(t, campos(Validar(p)), "substrato.substratoId")
	})
}

func TestAcondicionamentoEEnobrecimentos(t *testing.T) {
	p := pedidoValido()
	p.Acondicionamento.Quantidade = "-5"
	assert.Contains(t, campos(Validar(p)), "acondicionamento.quantidade")

	p = pedidoValido()
	p.Enobrecimentos = []pedido.Enobrecimento{{TipoID: "1"}, {TipoID: ""}}
	erros := Validar(p)
	require.Len(t, erros, 1)
	assert.Equal(t, "enobrecimentos.1.tipoId", erros[0].Campo)
}

func TestEtapaOpcional(t *testing.T) {
	assert.True(t, EtapaOpcional("acabamentos"))
	assert.True(t, EtapaOpcional("revisao"))
	assert.False(t, EtapaOpcional("produto"))
}
