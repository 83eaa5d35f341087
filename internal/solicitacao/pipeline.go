// internal/solicitacao/pipeline.go
//
// Pipeline de submissão: normaliza o pedido pelas regras de contrato,
// valida, resolve cada seleção textual para ID de catálogo (aceitando
// nome ou ID) e monta a entidade persistível. Falha de resolução é
// devolvida como erro de campo, no mesmo contrato da validação.
package solicitacao

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/EmbalaFlex/api-orcamentos/internal/catalogo"
	"github.com/EmbalaFlex/api-orcamentos/internal/notificacao"
	"github.com/EmbalaFlex/api-orcamentos/internal/pedido"
	"github.com/EmbalaFlex/api-orcamentos/internal/resolvedor"
	"github.com/EmbalaFlex/api-orcamentos/internal/selecao"
	"github.com/EmbalaFlex/api-orcamentos/internal/validacao"
	"github.com/google/uuid"
)

type Pipeline struct {
	catalogo   catalogo.Repository
	resolvedor *resolvedor.Resolvedor
}

func NewPipeline(repo catalogo.Repository) *Pipeline {
	return &Pipeline{catalogo: repo, resolvedor: resolvedor.Novo(repo)}
}

// Avaliacao é o desfecho de campos da submissão: erros bloqueiam a
// criação, avisos acompanham a solicitação criada sem impedi-la.
type Avaliacao struct {
	Erros  []validacao.ErroCampo `json:"erros,omitempty"`
	Avisos []validacao.ErroCampo `json:"avisos,omitempty"`
}

// Processar roda o pedido até a entidade pronta para persistir. Erros e
// avisos de campo (validação ou resolução) voltam na segunda posição;
// erro de infraestrutura na terceira.
func (pl *Pipeline) Processar(p *pedido.Pedido) (*Solicitacao, Avaliacao, error) {
	validacao.AplicarRegrasContrato(p)
	if erros := validacao.Validar(p); len(erros) > 0 {
		return nil, Avaliacao{Erros: erros}, nil
	}

	res := &resolucao{pipeline: pl}
	item, enobrecimentos := res.resolver(p)
	if res.err != nil {
		return nil, Avaliacao{}, res.err
	}
	if len(res.erros) > 0 {
		return nil, Avaliacao{Erros: res.erros}, nil
	}

	bruto, err := json.Marshal(p)
	if err != nil {
		return nil, Avaliacao{}, err
	}

	s := &Solicitacao{
		Protocolo: uuid.NewString(),

		Vendedor:      strings.TrimSpace(p.DadosGerais.Vendedor),
		Contato:       strings.TrimSpace(p.DadosGerais.Contato),
		Marca:         strings.TrimSpace(p.DadosGerais.Marca),
		CodigoMetrics: strings.TrimSpace(p.DadosGerais.CodigoMetrics),

		TipoContrato:           p.CondicoesVenda.TipoContrato,
		Imposto:                p.CondicoesVenda.Imposto,
		CondicaoPagamento:      p.CondicoesVenda.CondicaoPagamento,
		CondicaoPagamentoOutra: p.CondicoesVenda.CondicaoPagamentoOutra,
		Royalties:              p.CondicoesVenda.Royalties,
		BVAgencia:              p.CondicoesVenda.BVAgencia,

		Frete:           p.Entregas.Frete,
		CidadeUF:        p.Entregas.CidadeUF,
		CidadesUF:       p.Entregas.CidadesUF,
		NumeroEntregas:  p.Entregas.NumeroEntregas,
		Frequencia:      p.Entregas.Frequencia,
		FrequenciaOutra: p.Entregas.FrequenciaOutra,
		LocalUnico:      p.Entregas.LocalUnico,
		PedidoMinimoCIF: p.Entregas.PedidoMinimoCIF,

		Observacoes:           p.Observacoes,
		ObservacoesEngenharia: strings.Join(res.observacoes, "\n"),

		StatusWebhook: notificacao.StatusPendente,
		PayloadBruto:  bruto,

		Item:           *item,
		Enobrecimentos: enobrecimentos,
	}
	return s, Avaliacao{Avisos: res.avisos}, nil
}

// resolucao acumula erros de campo, avisos e observações de engenharia
// durante a resolução, parando só em erro de infraestrutura.
type resolucao struct {
	pipeline    *Pipeline
	erros       []validacao.ErroCampo
	avisos      []validacao.ErroCampo
	observacoes []string
	err         error
}

func (r *resolucao) falha(campo, msg string) {
	r.erros = append(r.erros, validacao.ErroCampo{Campo: campo, Mensagem: msg})
}

func (r *resolucao) avisa(campo, msg string) {
	r.avisos = append(r.avisos, validacao.ErroCampo{Campo: campo, Mensagem: msg})
}

func (r *resolucao) escala(assunto, descricao string) {
	r.observacoes = append(r.observacoes, assunto+": "+descricao)
}

func (r *resolucao) resolver(p *pedido.Pedido) (*ItemSolicitacao, []EnobrecimentoSolicitacao) {
	item := &ItemSolicitacao{
		Variacao:          p.Produto.Variacao,
		Largura:           p.Formato.Largura,
		Altura:            p.Formato.Altura,
		Lateral:           p.Formato.Lateral,
		LarguraSacoFundoV: p.Formato.LarguraSacoFundoV,
		Gramatura:         p.Substrato.Gramatura,
		AlcaAplicacao:     p.Alca.Aplicacao,
		AlcaLargura:       p.Alca.Largura,
		AlcaCor:           p.Alca.Cor,
		Camadas:           p.Impressao.Camadas,
		ReforcoFundo:      p.Acabamentos.ReforcoFundo,
		FitaFuro:          p.Acabamentos.FitaFuro,
		Ilhos:             p.Acabamentos.Ilhos,
	}

	tipo := r.resolverTipo(p.Produto.ProdutoTipoID)
	modelo := r.resolverModelo(p.Produto.ProdutoModeloID, tipo)
	if tipo != nil {
		item.ProdutoTipoID = &tipo.ID
	}
	if modelo != nil {
		item.ProdutoModeloID = &modelo.ID
	}

	item.Quantidade = r.resolverQuantidade(p.Produto.Quantidade, tipo)

	r.resolverFormato(&p.Formato, item)
	r.resolverSubstrato(&p.Substrato, item)
	r.resolverAlca(&p.Alca, item)
	r.resolverImpressao(&p.Impressao, item)
	r.resolverAcabamentos(&p.Acabamentos, item)
	r.resolverAcondicionamento(&p.Acondicionamento, item, modelo)

	return item, r.resolverEnobrecimentos(p.Enobrecimentos)
}

func (r *resolucao) resolverTipo(bruto string) *catalogo.ProdutoTipo {
	sel := selecao.Interpretar(bruto, "")
	switch {
	case sel.EhConhecida():
		t, err := r.pipeline.catalogo.ProdutoTipoPorID(sel.ID)
		if err == catalogo.ErrNaoEncontrado {
			r.falha("produto.produtoTipoId", "produto não encontrado")
			return nil
		}
		if err != nil {
			r.err = err
			return nil
		}
		return t
	case sel.EhNome():
		tipos, err := r.pipeline.catalogo.ProdutoTipos()
		if err != nil {
			r.err = err
			return nil
		}
		alvo := selecao.Normalizar(sel.Nome)
		for i := range tipos {
			if selecao.Normalizar(tipos[i].Nome) == alvo || selecao.Normalizar(tipos[i].Codigo) == alvo {
				return &tipos[i]
			}
		}
		r.falha("produto.produtoTipoId", "produto não encontrado")
	default:
		r.falha("produto.produtoTipoId", "campo obrigatório")
	}
	return nil
}

func (r *resolucao) resolverModelo(bruto string, tipo *catalogo.ProdutoTipo) *catalogo.ProdutoModelo {
	if tipo == nil {
		return nil
	}
	sel := selecao.Interpretar(bruto, "")
	switch {
	case sel.EhConhecida():
		m, err := r.pipeline.catalogo.ProdutoModeloPorID(sel.ID)
		if err == catalogo.ErrNaoEncontrado {
			r.falha("produto.produtoModeloId", "modelo não encontrado")
			return nil
		}
		if err != nil {
			r.err = err
			return nil
		}
		if m.ProdutoTipoID != tipo.ID {
			r.falha("produto.produtoModeloId", "modelo não pertence ao produto informado")
			return nil
		}
		return m
	case sel.EhNome():
		modelos, err := r.pipeline.catalogo.ModelosPorTipo(tipo.ID)
		if err != nil {
			r.err = err
			return nil
		}
		alvo := selecao.Normalizar(sel.Nome)
		for i := range modelos {
			if selecao.Normalizar(modelos[i].Nome) == alvo || selecao.Normalizar(modelos[i].Codigo) == alvo {
				return &modelos[i]
			}
		}
		r.falha("produto.produtoModeloId", "modelo não encontrado")
	default:
		r.falha("produto.produtoModeloId", "campo obrigatório")
	}
	return nil
}

func (r *resolucao) resolverQuantidade(bruto string, tipo *catalogo.ProdutoTipo) int {
	qtd, err := strconv.Atoi(strings.TrimSpace(bruto))
	if err != nil || qtd <= 0 {
		r.falha("produto.quantidade", "quantidade deve ser um inteiro positivo")
		return 0
	}
	// Tiragem mínima não barra a submissão: vira aviso na resposta.
	if tipo != nil && tipo.TiragemMinima != nil && qtd < *tipo.TiragemMinima {
		r.avisa("produto.quantidade",
			fmt.Sprintf("quantidade abaixo da tiragem mínima de %d unidades", *tipo.TiragemMinima))
	}
	return qtd
}

func (r *resolucao) resolverFormato(f *pedido.Formato, item *ItemSolicitacao) {
	sel := selecao.Interpretar(f.FormatoPadraoID, f.FormatoOutroDescricao)
	switch {
	case sel.EhEscalada():
		item.FormatoDescricao = sel.Descricao
		r.escala("Formato", sel.Descricao)
	case sel.EhConhecida():
		if _, err := r.pipeline.catalogo.FormatoPorID(sel.ID); err == catalogo.ErrNaoEncontrado {
			r.falha("formato.formatoPadraoId", "formato não encontrado")
			return
		} else if err != nil {
			r.err = err
			return
		}
		item.FormatoID = sel.IDOuNulo()
	case sel.EhNome():
		id := r.buscarFormatoPorNome(sel.Nome)
		if id == nil {
			r.falha("formato.formatoPadraoId", "formato não encontrado")
			return
		}
		item.FormatoID = id
	}
	if f.DesenvolvimentoDescricao != "" {
		item.FormatoDescricao = f.DesenvolvimentoDescricao
		r.escala("Formato", f.DesenvolvimentoDescricao)
	}
}

func (r *resolucao) buscarFormatoPorNome(nome string) *uint {
	formatos, err := r.pipeline.catalogo.Formatos()
	if err != nil {
		r.err = err
		return nil
	}
	alvo := selecao.Normalizar(nome)
	for _, f := range formatos {
		if selecao.Normalizar(f.Nome) == alvo {
			id := f.ID
			return &id
		}
	}
	return nil
}

func (r *resolucao) resolverSubstrato(s *pedido.Substrato, item *ItemSolicitacao) {
	sel := selecao.Interpretar(s.SubstratoID, s.OutroDescricao)
	switch {
	case sel.EhEscalada():
		item.SubstratoDescricao = sel.Descricao
		r.escala("Substrato", sel.Descricao)
	case sel.EhConhecida():
		if _, err := r.pipeline.catalogo.SubstratoPorID(sel.ID); err == catalogo.ErrNaoEncontrado {
			r.falha("substrato.substratoId", "substrato não encontrado")
			return
		} else if err != nil {
			r.err = err
			return
		}
		item.SubstratoID = sel.IDOuNulo()
	case sel.EhNome():
		substratos, err := r.pipeline.catalogo.Substratos()
		if err != nil {
			r.err = err
			return
		}
		alvo := selecao.Normalizar(sel.Nome)
		for _, sub := range substratos {
			if selecao.Normalizar(sub.Nome) == alvo {
				id := sub.ID
				item.SubstratoID = &id
				return
			}
		}
		r.falha("substrato.substratoId", "substrato não encontrado")
	}
}

func (r *resolucao) resolverAlca(a *pedido.Alca, item *ItemSolicitacao) {
	sel := selecao.Interpretar(a.TipoID, a.OutroDescricao)
	switch {
	case sel.EhEscalada():
		item.AlcaDescricao = sel.Descricao
		r.escala("Alça", sel.Descricao)
	case sel.EhConhecida():
		if _, err := r.pipeline.catalogo.TipoAlcaPorID(sel.ID); err == catalogo.ErrNaoEncontrado {
			r.falha("alca.tipoId", "tipo de alça não encontrado")
			return
		} else if err != nil {
			r.err = err
			return
		}
		item.TipoAlcaID = sel.IDOuNulo()
	case sel.EhNome():
		alcas, err := r.pipeline.catalogo.TiposAlca()
		if err != nil {
			r.err = err
			return
		}
		alvo := selecao.Normalizar(sel.Nome)
		for _, t := range alcas {
			if selecao.Normalizar(t.Nome) == alvo {
				id := t.ID
				item.TipoAlcaID = &id
				return
			}
		}
		r.falha("alca.tipoId", "tipo de alça não encontrado")
	}
}

func (r *resolucao) resolverImpressao(i *pedido.Impressao, item *ItemSolicitacao) {
	sel := selecao.Interpretar(i.ModoID, i.OutroDescricao)
	var modo *catalogo.ModoImpressao
	switch {
	case sel.EhEscalada():
		item.ImpressaoDescricao = sel.Descricao
		r.escala("Impressão", sel.Descricao)
		return
	case sel.EhConhecida():
		m, err := r.pipeline.catalogo.ModoImpressaoPorID(sel.ID)
		if err == catalogo.ErrNaoEncontrado {
			r.falha("impressao.modoId", "modo de impressão não encontrado")
			return
		}
		if err != nil {
			r.err = err
			return
		}
		modo = m
	case sel.EhNome():
		modos, err := r.pipeline.catalogo.ModosImpressao()
		if err != nil {
			r.err = err
			return
		}
		alvo := selecao.Normalizar(sel.Nome)
		for idx := range modos {
			if selecao.Normalizar(modos[idx].Nome) == alvo {
				modo = &modos[idx]
				break
			}
		}
		if modo == nil {
			r.falha("impressao.modoId", "modo de impressão não encontrado")
			return
		}
	default:
		return
	}
	item.ModoImpressaoID = &modo.ID

	comb := selecao.Interpretar(i.CombinacaoID, "")
	switch {
	case comb.EhConhecida():
		c, err := r.pipeline.catalogo.CombinacaoPorID(comb.ID)
		if err == catalogo.ErrNaoEncontrado {
			r.falha("impressao.combinacaoId", "combinação de impressão não encontrada")
			return
		}
		if err != nil {
			r.err = err
			return
		}
		if c.ModoImpressaoID != modo.ID {
			r.falha("impressao.combinacaoId", "combinação não pertence ao modo de impressão")
			return
		}
		item.CombinacaoImpressaoID = comb.IDOuNulo()
	case comb.EhNome():
		alvo := selecao.Normalizar(comb.Nome)
		for idx := range modo.Combinacoes {
			if selecao.Normalizar(modo.Combinacoes[idx].Nome) == alvo {
				id := modo.Combinacoes[idx].ID
				item.CombinacaoImpressaoID = &id
				return
			}
		}
		r.falha("impressao.combinacaoId", "combinação de impressão não encontrada")
	}
}

func (r *resolucao) resolverAcabamentos(a *pedido.Acabamentos, item *ItemSolicitacao) {
	if a.OutroDescricao != "" {
		item.AcabamentoDescricao = a.OutroDescricao
		r.escala("Acabamentos", a.OutroDescricao)
	}

	if a.ReforcoFundo {
		modelos, err := r.pipeline.catalogo.ModelosReforco()
		if err != nil {
			r.err = err
			return
		}
		item.ReforcoModeloID = r.casarSubOpcao("acabamentos.reforcoModeloId", a.ReforcoModeloID,
			"modelo de reforço não encontrado", nomesDeReforco(modelos))
	}

	if a.FitaFuro {
		modelos, err := r.pipeline.catalogo.ModelosFitaFuro()
		if err != nil {
			r.err = err
			return
		}
		item.FitaFuroModeloID = r.casarSubOpcao("acabamentos.fitaFuroModeloId", a.FitaFuroModeloID,
			"modelo de fita e furo não encontrado", nomesDeFitaFuro(modelos))
	}
}

type opcaoNomeada struct {
	id   uint
	nome string
}

func nomesDeReforco(modelos []catalogo.ModeloReforco) []opcaoNomeada {
	out := make([]opcaoNomeada, 0, len(modelos))
	for _, m := range modelos {
		out = append(out, opcaoNomeada{id: m.ID, nome: m.Nome})
	}
	return out
}

func nomesDeFitaFuro(modelos []catalogo.ModeloFitaFuro) []opcaoNomeada {
	out := make([]opcaoNomeada, 0, len(modelos))
	for _, m := range modelos {
		out = append(out, opcaoNomeada{id: m.ID, nome: m.Nome})
	}
	return out
}

// casarSubOpcao resolve um valor de sub-opção (ID ou nome) contra a lista
// de catálogo. Valor vazio devolve nil sem erro.
func (r *resolucao) casarSubOpcao(campo, bruto, msgNaoEncontrado string, opcoes []opcaoNomeada) *uint {
	sel := selecao.Interpretar(bruto, "")
	switch {
	case sel.EhConhecida():
		for _, o := range opcoes {
			if o.id == sel.ID {
				return sel.IDOuNulo()
			}
		}
		r.falha(campo, msgNaoEncontrado)
	case sel.EhNome():
		alvo := selecao.Normalizar(sel.Nome)
		for _, o := range opcoes {
			if selecao.Normalizar(o.nome) == alvo {
				id := o.id
				return &id
			}
		}
		r.falha(campo, msgNaoEncontrado)
	}
	return nil
}

func (r *resolucao) resolverAcondicionamento(a *pedido.Acondicionamento, item *ItemSolicitacao, modelo *catalogo.ProdutoModelo) {
	qtd, err := strconv.Atoi(strings.TrimSpace(a.Quantidade))
	if err == nil {
		item.QuantidadePorModulo = qtd
	}

	sel := selecao.Interpretar(a.TipoID, a.OutroDescricao)
	switch {
	case sel.EhEscalada():
		item.AcondicionamentoDescricao = sel.Descricao
		r.escala("Acondicionamento", sel.Descricao)
	case sel.EhConhecida():
		if _, err := r.pipeline.catalogo.TipoAcondicionamentoPorID(sel.ID); err == catalogo.ErrNaoEncontrado {
			r.falha("acondicionamento.tipoId", "tipo de acondicionamento não encontrado")
			return
		} else if err != nil {
			r.err = err
			return
		}
		item.AcondicionamentoID = sel.IDOuNulo()
	case sel.EhNome():
		tipos, err := r.pipeline.catalogo.TiposAcondicionamento()
		if err != nil {
			r.err = err
			return
		}
		alvo := selecao.Normalizar(sel.Nome)
		encontrado := false
		for _, t := range tipos {
			if selecao.Normalizar(t.Nome) == alvo {
				id := t.ID
				item.AcondicionamentoID = &id
				encontrado = true
				break
			}
		}
		if !encontrado {
			r.falha("acondicionamento.tipoId", "tipo de acondicionamento não encontrado")
			return
		}
	}

	r.resolverModulo(a.ModuloID, item, modelo)
}

var reQuantidadeModulo = regexp.MustCompile(`\((\d+)\s*un\)`)

// resolverModulo aceita ID, nome simples ou o rótulo "Nome (N un)". Sem
// módulo informado, usa o padrão do formato quando a regra existir.
func (r *resolucao) resolverModulo(bruto string, item *ItemSolicitacao, modelo *catalogo.ProdutoModelo) {
	sel := selecao.Interpretar(bruto, "")
	switch {
	case sel.EhConhecida():
		if _, err := r.pipeline.catalogo.ModuloPorID(sel.ID); err == catalogo.ErrNaoEncontrado {
			r.falha("acondicionamento.moduloId", "módulo não encontrado")
			return
		} else if err != nil {
			r.err = err
			return
		}
		item.ModuloID = sel.IDOuNulo()
		return

	case sel.EhNome():
		modulos, err := r.pipeline.catalogo.Modulos()
		if err != nil {
			r.err = err
			return
		}
		alvo := selecao.Normalizar(sel.Nome)
		for _, m := range modulos {
			rotulo := fmt.Sprintf("%s (%d un)", m.Nome, m.Quantidade)
			if selecao.Normalizar(m.Nome) == alvo || selecao.Normalizar(rotulo) == alvo {
				id := m.ID
				item.ModuloID = &id
				return
			}
		}
		// rótulo customizado: ainda dá para casar pela quantidade
		if grupos := reQuantidadeModulo.FindStringSubmatch(sel.Nome); grupos != nil {
			if qtd, err := strconv.Atoi(grupos[1]); err == nil {
				for _, m := range modulos {
					if m.Quantidade == qtd {
						id := m.ID
						item.ModuloID = &id
						return
					}
				}
			}
		}
		r.falha("acondicionamento.moduloId", "módulo não encontrado")
		return

	case sel.EhVazia():
		if modelo == nil || item.FormatoID == nil {
			return
		}
		padrao, err := r.pipeline.resolvedor.ModuloPadraoPara(modelo.ID, *item.FormatoID)
		if err != nil {
			r.err = err
			return
		}
		if padrao != nil {
			id := padrao.ID
			item.ModuloID = &id
		}
	}
}

func (r *resolucao) resolverEnobrecimentos(entradas []pedido.Enobrecimento) []EnobrecimentoSolicitacao {
	var out []EnobrecimentoSolicitacao
	for i, e := range entradas {
		campo := fmt.Sprintf("enobrecimentos.%d.tipoId", i)
		linha := EnobrecimentoSolicitacao{Observacoes: e.Observacoes}
		if len(e.Dados) > 0 {
			linha.Dados = map[string]interface{}{}
			for k, v := range e.Dados {
				linha.Dados[k] = v
			}
		}

		sel := selecao.Interpretar(e.TipoID, e.Observacoes)
		switch {
		case sel.EhEscalada():
			linha.TipoDescricao = sel.Descricao
			r.escala("Enobrecimento", sel.Descricao)
		case sel.EhConhecida():
			if _, err := r.pipeline.catalogo.TipoEnobrecimentoPorID(sel.ID); err == catalogo.ErrNaoEncontrado {
				r.falha(campo, "tipo de enobrecimento não encontrado")
				continue
			} else if err != nil {
				r.err = err
				return out
			}
			linha.TipoEnobrecimentoID = sel.IDOuNulo()
		case sel.EhNome():
			tipos, err := r.pipeline.catalogo.TiposEnobrecimento()
			if err != nil {
				r.err = err
				return out
			}
			alvo := selecao.Normalizar(sel.Nome)
			encontrado := false
			for _, t := range tipos {
				if selecao.Normalizar(t.Nome) == alvo || selecao.Normalizar(t.Codigo) == alvo {
					id := t.ID
					linha.TipoEnobrecimentoID = &id
					encontrado = true
					break
				}
			}
			if !encontrado {
				r.falha(campo, "tipo de enobrecimento não encontrado")
				continue
			}
		}
		out = append(out, linha)
	}
	return out
}
