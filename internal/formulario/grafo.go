// internal/formulario/grafo.go
//
// Grafo explícito de dependências entre campos do assistente: cada
// campo derivado declara de quem depende, e Recalcular(campoAlterado)
// caminha o grafo aplicando limpezas, valores forçados e visibilidade de
// forma determinística, sem depender de change-detection de UI.
package formulario

import (
	"strconv"
	"strings"

	"github.com/EmbalaFlex/api-orcamentos/internal/pedido"
	"github.com/EmbalaFlex/api-orcamentos/internal/selecao"
)

// Estado é a visão achatada do formulário: valores por caminho de campo,
// mais flags de visibilidade e obrigatoriedade derivadas.
type Estado struct {
	Valores      map[string]string
	Ocultos      map[string]bool
	Obrigatorios map[string]bool
}

func NovoEstado() *Estado {
	return &Estado{
		Valores:      map[string]string{},
		Ocultos:      map[string]bool{},
		Obrigatorios: map[string]bool{},
	}
}

func (e *Estado) valor(campo string) string { return e.Valores[campo] }

func (e *Estado) define(campo, valor string) { e.Valores[campo] = valor }

func (e *Estado) limpa(campo string) { delete(e.Valores, campo) }

// Grafo liga cada campo aos efeitos disparados quando ele muda. Efeitos
// podem alterar outros campos; a propagação segue até estabilizar.
type Grafo struct {
	efeitos map[string]func(e *Estado) []string
}

// Campos de seleção dependentes do modelo, limpos quando ele muda.
var dependentesDoModelo = []string{
	"formato.formatoPadraoId",
	"formato.larguraSacoFundoV",
	"substrato.substratoId",
	"substrato.gramatura",
	"alca.tipoId",
	"alca.aplicacao",
	"alca.largura",
	"alca.cor",
	"impressao.modoId",
	"impressao.combinacaoId",
	"acabamentos.reforcoModeloId",
	"acabamentos.fitaFuroModeloId",
	"acondicionamento.tipoId",
	"acondicionamento.moduloId",
}

// NovoGrafo monta o grafo com as regras reativas do assistente.
func NovoGrafo() *Grafo {
	g := &Grafo{efeitos: map[string]func(*Estado) []string{}}

	g.efeitos["produto.produtoModeloId"] = func(e *Estado) []string {
		for _, campo := range dependentesDoModelo {
			e.limpa(campo)
		}
		return dependentesDoModelo
	}

	g.efeitos["impressao.modoId"] = func(e *Estado) []string {
		e.limpa("impressao.combinacaoId")
		return []string{"impressao.combinacaoId"}
	}

	g.efeitos["condicoesVenda.tipoContrato"] = func(e *Estado) []string {
		switch e.valor("condicoesVenda.tipoContrato") {
		case pedido.ContratoJIT:
			e.define("entregas.numeroEntregas", pedido.NaoHa)
			e.define("entregas.frequencia", pedido.NaoHa)
			e.Ocultos["entregas.numeroEntregas"] = true
			e.Ocultos["entregas.frequencia"] = true
		case pedido.ContratoPRG:
			if e.valor("entregas.numeroEntregas") == pedido.NaoHa {
				e.limpa("entregas.numeroEntregas")
			}
			if e.valor("entregas.frequencia") == pedido.NaoHa {
				e.limpa("entregas.frequencia")
			}
			e.Ocultos["entregas.numeroEntregas"] = false
			e.Ocultos["entregas.frequencia"] = false
		}
		return []string{"entregas.numeroEntregas", "entregas.frequencia"}
	}

	g.efeitos["entregas.localUnico"] = func(e *Estado) []string {
		if e.valor("entregas.localUnico") == "true" {
			e.define("entregas.pedidoMinimoCIF", pedido.NaoHa)
			e.Ocultos["entregas.pedidoMinimoCIF"] = true
			e.Obrigatorios["entregas.pedidoMinimoCIF"] = false
		} else {
			if e.valor("entregas.pedidoMinimoCIF") == pedido.NaoHa {
				e.limpa("entregas.pedidoMinimoCIF")
			}
			e.Ocultos["entregas.pedidoMinimoCIF"] = false
			e.Obrigatorios["entregas.pedidoMinimoCIF"] = true
		}
		return []string{"entregas.pedidoMinimoCIF"}
	}

	g.efeitos["entregas.numeroEntregas"] = func(e *Estado) []string {
		n, err := strconv.Atoi(strings.TrimSpace(e.valor("entregas.numeroEntregas")))
		if err != nil {
			return nil
		}
		if n == 1 {
			e.define("entregas.frequencia", pedido.FrequenciaUnica)
			e.Ocultos["entregas.frequencia"] = true
			e.Obrigatorios["entregas.frequencia"] = false
		} else if n > 1 {
			if e.valor("entregas.frequencia") == pedido.FrequenciaUnica {
				e.limpa("entregas.frequencia")
			}
			e.Ocultos["entregas.frequencia"] = false
			e.Obrigatorios["entregas.frequencia"] = true
		}
		return []string{"entregas.frequencia"}
	}

	g.efeitos["condicoesVenda.condicaoPagamento"] = func(e *Estado) []string {
		if e.valor("condicoesVenda.condicaoPagamento") == pedido.OpcaoOutraInformar {
			e.Ocultos["condicoesVenda.condicaoPagamentoOutra"] = false
			e.Obrigatorios["condicoesVenda.condicaoPagamentoOutra"] = true
		} else {
			e.limpa("condicoesVenda.condicaoPagamentoOutra")
			e.Ocultos["condicoesVenda.condicaoPagamentoOutra"] = true
			e.Obrigatorios["condicoesVenda.condicaoPagamentoOutra"] = false
		}
		return []string{"condicoesVenda.condicaoPagamentoOutra"}
	}

	// Justificativa de escalonamento limpa ao sair do "outro".
	for _, par := range [][2]string{
		{"formato.formatoPadraoId", "formato.formatoOutroDescricao"},
		{"substrato.substratoId", "substrato.outroDescricao"},
		{"alca.tipoId", "alca.outroDescricao"},
		{"impressao.modoId", "impressao.outroDescricao"},
		{"acondicionamento.tipoId", "acondicionamento.outroDescricao"},
	} {
		campo, descricao := par[0], par[1]
		anterior := g.efeitos[campo]
		g.efeitos[campo] = func(e *Estado) []string {
			var tocados []string
			if anterior != nil {
				tocados = anterior(e)
			}
			if !selecao.EhOutro(e.valor(campo)) {
				e.limpa(descricao)
				tocados = append(tocados, descricao)
			}
			return tocados
		}
	}

	return g
}

// Recalcular aplica os efeitos do campo alterado e propaga para os
// campos tocados até estabilizar. Devolve os caminhos afetados, na ordem
// de propagação, para a UI re-resolver opções e visibilidade.
func (g *Grafo) Recalcular(e *Estado, campoAlterado string) []string {
	visitados := map[string]bool{}
	var afetados []string

	fila := []string{campoAlterado}
	for len(fila) > 0 {
		campo := fila[0]
		fila = fila[1:]
		if visitados[campo] {
			continue
		}
		visitados[campo] = true

		efeito, ok := g.efeitos[campo]
		if !ok {
			continue
		}
		for _, tocado := range efeito(e) {
			afetados = append(afetados, tocado)
			fila = append(fila, tocado)
		}
	}
	return afetados
}
