package formulario

import (
	"testing"

	"github.com/EmbalaFlex/api-orcamentos/internal/pedido"
	"github.com/stretchr/testify/assert"
)

func TestTrocaDeModeloLimpaDependentes(t *testing.T) {
	g := NovoGrafo()
	e := NovoEstado()
	e.define("produto.produtoModeloId", "1")
	e.define("formato.formatoPadraoId", "3")
	e.define("substrato.substratoId", "2")
	e.define("impressao.modoId", "1")
	e.define("impressao.combinacaoId", "4")
	e.define("alca.cor", "Preta")

	e.define("produto.produtoModeloId", "2")
	afetados := g.Recalcular(e, "produto.produtoModeloId")

	assert.Empty(t, e.valor("formato.formatoPadraoId"))
	assert.Empty(t, e.valor("substrato.substratoId"))
	assert.Empty(t, e.valor("impressao.modoId"))
	assert.Empty(t, e.valor("impressao.combinacaoId"))
	assert.Empty(t, e.valor("alca.cor"))
	assert.Equal(t, "2", e.valor("produto.produtoModeloId"))
	assert.Contains(t, afetados, "impressao.combinacaoId")
}

func TestTrocaDeModoLimpaCombinacao(t *testing.T) {
	g := NovoGrafo()
	e := NovoEstado()
	e.define("impressao.modoId", "2")
	e.define("impressao.combinacaoId", "7")

	g.Recalcular(e, "impressao.modoId")
	assert.Empty(t, e.valor("impressao.combinacaoId"))
	assert.Equal(t, "2", e.valor("impressao.modoId"))
}

func TestContratoJITForcaNaoHa(t *testing.T) {
	g := NovoGrafo()
	e := NovoEstado()
	e.define("entregas.numeroEntregas", "6")
	e.define("entregas.frequencia", "Mensal")

	e.define("condicoesVenda.tipoContrato", pedido.ContratoJIT)
	g.Recalcular(e, "condicoesVenda.tipoContrato")

	assert.Equal(t, pedido.NaoHa, e.valor("entregas.numeroEntregas"))
	assert.Equal(t, pedido.NaoHa, e.valor("entregas.frequencia"))
	assert.True(t, e.Ocultos["entregas.numeroEntregas"])
	assert.True(t, e.Ocultos["entregas.frequencia"])
}

func TestVoltarParaPRGReabreEntregas(t *testing.T) {
	g := NovoGrafo()
	e := NovoEstado()
	e.define("condicoesVenda.tipoContrato", pedido.ContratoJIT)
	g.Recalcular(e, "condicoesVenda.tipoContrato")

	e.define("condicoesVenda.tipoContrato", pedido.ContratoPRG)
	g.Recalcular(e, "condicoesVenda.tipoContrato")

	assert.Empty(t, e.valor("entregas.numeroEntregas"))
	assert.Empty(t, e.valor("entregas.frequencia"))
	assert.False(t, e.Ocultos["entregas.numeroEntregas"])
	assert.False(t, e.Ocultos["entregas.frequencia"])
}

func TestUmaEntregaForcaFrequenciaUnica(t *testing.T) {
	g := NovoGrafo()
	e := NovoEstado()
	e.define("entregas.numeroEntregas", "1")
	g.Recalcular(e, "entregas.numeroEntregas")

	assert.Equal(t, pedido.FrequenciaUnica, e.valor("entregas.frequencia"))
	assert.True(t, e.Ocultos["entregas.frequencia"])
	assert.False(t, e.Obrigatorios["entregas.frequencia"])

	e.define("entregas.numeroEntregas", "4")
	g.Recalcular(e, "entregas.numeroEntregas")

	assert.Empty(t, e.valor("entregas.frequencia"))
	assert.False(t, e.Ocultos["entregas.frequencia"])
	assert.True(t, e.Obrigatorios["entregas.frequencia"])
}

func TestLocalUnicoEscondePedidoMinimo(t *testing.T) {
	g := NovoGrafo()
	e := NovoEstado()
	e.define("entregas.localUnico", "true")
	g.Recalcular(e, "entregas.localUnico")

	assert.Equal(t, pedido.NaoHa, e.valor("entregas.pedidoMinimoCIF"))
	assert.True(t, e.Ocultos["entregas.pedidoMinimoCIF"])

	e.define("entregas.localUnico", "false")
	g.Recalcular(e, "entregas.localUnico")

	assert.Empty(t, e.valor("entregas.pedidoMinimoCIF"))
	assert.True(t, e.Obrigatorios["entregas.pedidoMinimoCIF"])
}

func TestCondicaoPagamentoOutraRevelaDescricao(t *testing.T) {
	g := NovoGrafo()
	e := NovoEstado()
	e.define("condicoesVenda.condicaoPagamento", pedido.OpcaoOutraInformar)
	g.Recalcular(e, "condicoesVenda.condicaoPagamento")

	assert.False(t, e.Ocultos["condicoesVenda.condicaoPagamentoOutra"])
	assert.True(t, e.Obrigatorios["condicoesVenda.condicaoPagamentoOutra"])

	e.define("condicoesVenda.condicaoPagamentoOutra", "90 dias")
	e.define("condicoesVenda.condicaoPagamento", "28 dias")
	g.Recalcular(e, "condicoesVenda.condicaoPagamento")

	assert.Empty(t, e.valor("condicoesVenda.condicaoPagamentoOutra"))
	assert.True(t, e.Ocultos["condicoesVenda.condicaoPagamentoOutra"])
}

func TestSairDoOutroLimpaDescricaoDeEscalonamento(t *testing.T) {
	g := NovoGrafo()
	e := NovoEstado()
	e.define("substrato.substratoId", "outro")
	e.define("substrato.outroDescricao", "kraft 200g reciclado")

	e.define("substrato.substratoId", "2")
	g.Recalcular(e, "substrato.substratoId")
	assert.Empty(t, e.valor("substrato.outroDescricao"))

	// escolher "outro" de novo preserva a descrição digitada
	e.define("substrato.substratoId", "outro")
	e.define("substrato.outroDescricao", "kraft 200g")
	g.Recalcular(e, "substrato.substratoId")
	assert.Equal(t, "kraft 200g", e.valor("substrato.outroDescricao"))
}

func TestRecalcularCampoSemEfeitoNaoFazNada(t *testing.T) {
	g := NovoGrafo()
	e := NovoEstado()
	e.define("dadosGerais.marca", "Cliente X")
	assert.Empty(t, g.Recalcular(e, "dadosGerais.marca"))
	assert.Equal(t, "Cliente X", e.valor("dadosGerais.marca"))
}
