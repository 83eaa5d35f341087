// internal/validacao/regras.go
//
// Regras condicionais entre campos, avaliadas por cima da validação de
// tipo de cada campo. Todas as violações são coletadas de uma vez (sem
// fail-fast) para que o cliente veja a lista completa.
package validacao

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/EmbalaFlex/api-orcamentos/internal/pedido"
	"github.com/EmbalaFlex/api-orcamentos/internal/selecao"
)

// ErroCampo aponta a violação para um caminho de campo específico.
type ErroCampo struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// Enumerações fixas dos campos de condições de venda e entregas.
var (
	TiposContrato      = []string{pedido.ContratoSpot, pedido.ContratoPRG, pedido.ContratoJIT}
	Impostos           = []string{"Incluso", "Não incluso"}
	CondicoesPagamento = []string{"À vista", "28 dias", "45 dias", "60 dias", pedido.OpcaoOutraInformar}
	Fretes             = []string{"CIF", "FOB"}
	Frequencias        = []string{pedido.FrequenciaUnica, "Semanal", "Quinzenal", "Mensal", pedido.OpcaoOutraInformar}
)

var reSomenteDigitos = regexp.MustCompile(`^\d+$`)
var reTemDigito = regexp.MustCompile(`\d`)

// Etapas que o assistente pode pular sem validar.
var etapasOpcionais = map[string]bool{
	"acabamentos":    true,
	"enobrecimentos": true,
	"alca_detalhes":  true,
	"impressao":      true,
	"revisao":        true,
}

// EtapaOpcional informa se a etapa pode ser avançada sem validação.
func EtapaOpcional(codigo string) bool {
	return etapasOpcionais[codigo]
}

// AplicarRegrasContrato normaliza o pedido antes da validação: contrato
// JIT não tem número de entregas nem frequência, então quaisquer valores
// enviados são sobrescritos para "Não há".
func AplicarRegrasContrato(p *pedido.Pedido) {
	if p.CondicoesVenda.TipoContrato == pedido.ContratoJIT {
		p.Entregas.NumeroEntregas = pedido.NaoHa
		p.Entregas.Frequencia = pedido.NaoHa
	}
	if p.Entregas.LocalUnico != nil && *p.Entregas.LocalUnico {
		p.Entregas.PedidoMinimoCIF = pedido.NaoHa
	}
}

func vazio(s string) bool { return strings.TrimSpace(s) == "" }

func entre(valor string, opcoes []string) bool {
	for _, o := range opcoes {
		if valor == o {
			return true
		}
	}
	return false
}

// "sim" sem percentual/valor numérico junto é inválido.
func simSemNumero(valor string) bool {
	n := selecao.Normalizar(valor)
	return strings.Contains(n, "sim") && !reTemDigito.MatchString(n)
}

// Validar avalia o pedido inteiro e devolve todas as violações.
func Validar(p *pedido.Pedido) []ErroCampo {
	var erros []ErroCampo
	falha := func(campo, msg string) {
		erros = append(erros, ErroCampo{Campo: campo, Mensagem: msg})
	}

	// dadosGerais
	if vazio(p.DadosGerais.Vendedor) {
		falha("dadosGerais.vendedor", "campo obrigatório")
	}
	if vazio(p.DadosGerais.Contato) {
		falha("dadosGerais.contato", "campo obrigatório")
	}
	if vazio(p.DadosGerais.Marca) {
		falha("dadosGerais.marca", "campo obrigatório")
	}
	if !reSomenteDigitos.MatchString(strings.TrimSpace(p.DadosGerais.CodigoMetrics)) {
		falha("dadosGerais.codigoMetrics", "deve conter apenas dígitos")
	}

	// condicoesVenda
	cv := p.CondicoesVenda
	if !entre(cv.TipoContrato, TiposContrato) {
		falha("condicoesVenda.tipoContrato", "tipo de contrato inválido")
	}
	if !entre(cv.Imposto, Impostos) {
		falha("condicoesVenda.imposto", "imposto inválido")
	}
	if !entre(cv.CondicaoPagamento, CondicoesPagamento) {
		falha("condicoesVenda.condicaoPagamento", "condição de pagamento inválida")
	} else if cv.CondicaoPagamento == pedido.OpcaoOutraInformar && vazio(cv.CondicaoPagamentoOutra) {
		falha("condicoesVenda.condicaoPagamentoOutra", "descreva a condição de pagamento")
	}
	if simSemNumero(cv.Royalties) {
		falha("condicoesVenda.royalties", "informe o percentual junto com o sim")
	}
	if simSemNumero(cv.BVAgencia) {
		falha("condicoesVenda.bvAgencia", "informe o percentual junto com o sim")
	}

	// entregas: só avaliada para contratos programados
	if cv.TipoContrato == pedido.ContratoPRG || cv.TipoContrato == pedido.ContratoJIT {
		erros = append(erros, validarEntregas(&p.Entregas, cv.TipoContrato)...)
	}

	// produto
	if vazio(p.Produto.ProdutoTipoID) {
		falha("produto.produtoTipoId", "campo obrigatório")
	}
	if vazio(p.Produto.ProdutoModeloID) {
		falha("produto.produtoModeloId", "campo obrigatório")
	}
	if vazio(p.Produto.Quantidade) {
		falha("produto.quantidade", "campo obrigatório")
	}

	erros = append(erros, validarFormato(&p.Formato)...)

	// substrato: opção de catálogo ou descrição de escalonamento
	sel := selecao.Interpretar(p.Substrato.SubstratoID, p.Substrato.OutroDescricao)
	switch {
	case sel.EhEscalada() && sel.Descricao == "":
		falha("substrato.outroDescricao", "descreva o substrato desejado")
	case sel.EhVazia() && vazio(p.Substrato.OutroDescricao):
		falha("substrato.substratoId", "selecione um substrato ou descreva outro")
	}

	// acondicionamento
	if qtd, err := strconv.Atoi(strings.TrimSpace(p.Acondicionamento.Quantidade)); err != nil || qtd <= 0 {
		falha("acondicionamento.quantidade", "quantidade deve ser um inteiro positivo")
	}

	// enobrecimentos: lista vazia é válida; cada entrada exige o tipo
	for i, e := range p.Enobrecimentos {
		if vazio(e.TipoID) {
			falha("enobrecimentos."+strconv.Itoa(i)+".tipoId", "tipo de enobrecimento obrigatório")
		}
	}

	return erros
}

func validarEntregas(e *pedido.Entregas, tipoContrato string) []ErroCampo {
	var erros []ErroCampo
	falha := func(campo, msg string) {
		erros = append(erros, ErroCampo{Campo: campo, Mensagem: msg})
	}

	if !entre(e.Frete, Fretes) {
		falha("entregas.frete", "frete deve ser CIF ou FOB")
	}
	if vazio(e.CidadeUF) && vazio(e.CidadesUF) {
		falha("entregas.cidadeUF", "informe a cidade/UF de entrega")
	}

	if tipoContrato == pedido.ContratoPRG {
		n, err := strconv.Atoi(strings.TrimSpace(e.NumeroEntregas))
		if err != nil || n <= 0 {
			falha("entregas.numeroEntregas", "número de entregas deve ser um inteiro positivo")
		} else if n == 1 {
			if e.Frequencia != "" && e.Frequencia != pedido.FrequenciaUnica {
				falha("entregas.frequencia", "com uma única entrega a frequência deve ser \"Única\"")
			}
		} else {
			switch {
			case vazio(e.Frequencia):
				falha("entregas.frequencia", "campo obrigatório")
			case e.Frequencia == pedido.FrequenciaUnica:
				falha("entregas.frequencia", "frequência \"Única\" exige uma única entrega")
			case !entre(e.Frequencia, Frequencias):
				falha("entregas.frequencia", "frequência inválida")
			case e.Frequencia == pedido.OpcaoOutraInformar && vazio(e.FrequenciaOutra):
				falha("entregas.frequenciaOutra", "descreva a frequência")
			}
		}
	}
	// JIT: numeroEntregas/frequencia não se aplicam (já sobrescritos).

	if e.LocalUnico != nil && !*e.LocalUnico && vazio(e.PedidoMinimoCIF) {
		falha("entregas.pedidoMinimoCIF", "campo obrigatório para múltiplos locais de entrega")
	}

	return erros
}

// validarFormato: o bloco é válido se qualquer um dos quatro caminhos de
// satisfação estiver completo.
func validarFormato(f *pedido.Formato) []ErroCampo {
	padrao := selecao.Interpretar(f.FormatoPadraoID, f.FormatoOutroDescricao)
	if padrao.EhConhecida() || padrao.EhNome() {
		return nil
	}

	largura := selecao.Interpretar(f.Largura, f.MedidaOutroDescricao)
	altura := selecao.Interpretar(f.Altura, f.MedidaOutroDescricao)
	if (largura.EhConhecida() || largura.EhNome()) && (altura.EhConhecida() || altura.EhNome()) {
		return nil
	}

	fundoV := selecao.Interpretar(f.LarguraSacoFundoV, f.SacoFundoVOutroDescricao)
	if fundoV.EhConhecida() || fundoV.EhNome() {
		return nil
	}

	if !vazio(f.FormatoOutroDescricao) || !vazio(f.MedidaOutroDescricao) ||
		!vazio(f.SacoFundoVOutroDescricao) || !vazio(f.DesenvolvimentoDescricao) {
		return nil
	}

	return []ErroCampo{{
		Campo:    "formato",
		Mensagem: "informe um formato padrão, medidas customizadas ou a descrição de desenvolvimento",
	}}
}
