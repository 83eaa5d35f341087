// internal/formulario/opcoes.go
//
// Resolução das opções de um campo em runtime. Precedência (primeira
// que casar vence):
//
//  1. lista estática `opcoes` do campo;
//  2. override do admin `configuracao.tamanhosPorModelo[modeloId]`;
//  3. override `configuracao.modelosPorProduto[tipoId]` (campos de modelo);
//  4. catálogo, via chaveSistema -> resolvedor;
//  5. lista vazia (campo desabilitado com placeholder).
package formulario

import (
	"fmt"
	"strconv"

	"github.com/EmbalaFlex/api-orcamentos/internal/catalogo"
	"github.com/EmbalaFlex/api-orcamentos/internal/pedido"
	"github.com/EmbalaFlex/api-orcamentos/internal/resolvedor"
	"github.com/EmbalaFlex/api-orcamentos/internal/selecao"
)

// Opcao é uma escolha renderizável: Valor vai no payload, Rotulo na UI.
type Opcao struct {
	Valor  string `json:"valor"`
	Rotulo string `json:"rotulo"`
}

// Contexto carrega as seleções a montante que afetam a resolução.
type Contexto struct {
	ProdutoTipoID   uint   `json:"produtoTipoId"`
	ProdutoModeloID uint   `json:"produtoModeloId"`
	Variacao        string `json:"variacao"`
	ModoImpressaoID uint   `json:"modoImpressaoId"`
	NumeroEntregas  int    `json:"numeroEntregas"`
}

// Chaves de sistema cujas listas aceitam escalonamento para engenharia:
// nelas é injetado o sentinela "Outro (Desenvolvimento)". Conjunto único
// consultado por todos os pontos de renderização.
var chavesComEscalonamento = map[string]bool{
	"formato_padrao":       true,
	"substrato":            true,
	"alca_tipo":            true,
	"impressao_modo":       true,
	"impressao_combinacao": true,
	"acondicionamento":     true,
	"modulo":               true,
}

const rotuloEscalonamento = "Outro (Desenvolvimento)"

// ResolutorOpcoes resolve a lista de opções de cada campo consultando o
// resolvedor de restrições quando a precedência chega no catálogo.
type ResolutorOpcoes struct {
	resolvedor *resolvedor.Resolvedor
	catalogo   catalogo.Repository
}

func NewResolutorOpcoes(repo catalogo.Repository) *ResolutorOpcoes {
	return &ResolutorOpcoes{resolvedor: resolvedor.Novo(repo), catalogo: repo}
}

// OpcoesDoCampo aplica a precedência 1-5, filtra a lista pelo contexto
// de entregas e, por fim, injeta o sentinela de escalonamento quando a
// chave do campo o suporta.
func (ro *ResolutorOpcoes) OpcoesDoCampo(campo *FormCampo, ctx Contexto) ([]Opcao, error) {
	opcoes, err := ro.resolve(campo, ctx)
	if err != nil {
		return nil, err
	}
	// Com mais de uma entrega, "Única" deixa de ser escolha válida e o
	// usuário precisa selecionar uma frequência de fato.
	if campo.CampoMapeado == "entregas.frequencia" && ctx.NumeroEntregas > 1 {
		opcoes = semFrequenciaUnica(opcoes)
	}
	if chavesComEscalonamento[campo.ChaveSistema] {
		opcoes = injetaEscalonamento(opcoes)
	}
	return opcoes, nil
}

func semFrequenciaUnica(opcoes []Opcao) []Opcao {
	alvo := selecao.Normalizar(pedido.FrequenciaUnica)
	out := make([]Opcao, 0, len(opcoes))
	for _, o := range opcoes {
		if selecao.Normalizar(o.Valor) == alvo {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (ro *ResolutorOpcoes) resolve(campo *FormCampo, ctx Contexto) ([]Opcao, error) {
	// 1. lista estática do campo
	if len(campo.Opcoes) > 0 {
		out := make([]Opcao, 0, len(campo.Opcoes))
		for _, o := range campo.Opcoes {
			out = append(out, Opcao{Valor: o, Rotulo: o})
		}
		return out, nil
	}

	// 2. override por modelo
	if ctx.ProdutoModeloID != 0 {
		if valores, ok := listaDoMapa(campo.Configuracao, "tamanhosPorModelo", ctx.ProdutoModeloID); ok {
			return valores, nil
		}
	}

	// 3. override por produto, só para campos de modelo
	if campo.Tipo == TipoModelo && ctx.ProdutoTipoID != 0 {
		if valores, ok := listaDoMapa(campo.Configuracao, "modelosPorProduto", ctx.ProdutoTipoID); ok {
			return valores, nil
		}
	}

	// 4. catálogo via chave de sistema
	if campo.ChaveSistema != "" {
		return ro.resolveCatalogo(campo.ChaveSistema, ctx)
	}

	// 5. nada configurado
	return []Opcao{}, nil
}

// listaDoMapa lê configuracao[chave][id] como lista de strings. Mapa
// presente mas sem a entrada do id não é match: a precedência segue.
func listaDoMapa(cfg map[string]interface{}, chave string, id uint) ([]Opcao, bool) {
	if cfg == nil {
		return nil, false
	}
	mapa, ok := cfg[chave].(map[string]interface{})
	if !ok {
		return nil, false
	}
	bruto, ok := mapa[strconv.FormatUint(uint64(id), 10)]
	if !ok {
		return nil, false
	}
	itens, ok := bruto.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]Opcao, 0, len(itens))
	for _, item := range itens {
		if s, ok := item.(string); ok {
			out = append(out, Opcao{Valor: s, Rotulo: s})
		}
	}
	return out, true
}

func (ro *ResolutorOpcoes) resolveCatalogo(chave string, ctx Contexto) ([]Opcao, error) {
	// "produto" abre o assistente e "modelo" é escolhido logo depois do
	// tipo; só as demais chaves exigem um modelo já selecionado.
	if ctx.ProdutoModeloID == 0 && chave != "produto" && chave != "modelo" {
		return []Opcao{}, nil
	}

	switch chave {
	case "produto":
		tipos, err := ro.catalogo.ProdutoTipos()
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(tipos))
		for _, t := range tipos {
			out = append(out, opcaoID(t.ID, t.Nome))
		}
		return out, nil

	case "modelo":
		modelos, err := ro.catalogo.ModelosPorTipo(ctx.ProdutoTipoID)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(modelos))
		for _, m := range modelos {
			out = append(out, opcaoID(m.ID, m.Nome))
		}
		return out, nil

	case "formato_padrao":
		formatos, err := ro.resolvedor.FormatosPara(ctx.ProdutoModeloID, ctx.Variacao)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(formatos))
		for _, f := range formatos {
			out = append(out, opcaoID(f.ID, f.Nome))
		}
		return out, nil

	case "substrato":
		substratos, err := ro.resolvedor.SubstratosPara(ctx.ProdutoModeloID)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(substratos))
		for _, s := range substratos {
			out = append(out, opcaoID(s.ID, s.Nome))
		}
		return out, nil

	case "alca_tipo":
		alca, err := ro.resolvedor.OpcoesAlcaPara(ctx.ProdutoModeloID, ctx.Variacao)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(alca.Tipos))
		for _, t := range alca.Tipos {
			out = append(out, opcaoID(t.ID, t.Nome))
		}
		return out, nil

	case "alca_aplicacao", "alca_largura", "alca_cor":
		alca, err := ro.resolvedor.OpcoesAlcaPara(ctx.ProdutoModeloID, ctx.Variacao)
		if err != nil {
			return nil, err
		}
		var valores []string
		switch chave {
		case "alca_aplicacao":
			valores = alca.Aplicacoes
		case "alca_largura":
			valores = alca.Larguras
		default:
			valores = alca.Cores
		}
		out := make([]Opcao, 0, len(valores))
		for _, v := range valores {
			out = append(out, Opcao{Valor: v, Rotulo: v})
		}
		return out, nil

	case "impressao_modo":
		modos, err := ro.resolvedor.OpcoesImpressaoPara(ctx.ProdutoModeloID)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(modos))
		for _, m := range modos {
			out = append(out, opcaoID(m.ID, m.Nome))
		}
		return out, nil

	case "impressao_combinacao":
		modos, err := ro.resolvedor.OpcoesImpressaoPara(ctx.ProdutoModeloID)
		if err != nil {
			return nil, err
		}
		out := []Opcao{}
		for _, m := range modos {
			if m.ID != ctx.ModoImpressaoID {
				continue
			}
			for _, c := range m.Combinacoes {
				out = append(out, opcaoID(c.ID, c.Nome))
			}
		}
		return out, nil

	case "acabamento":
		acabamentos, err := ro.resolvedor.AcabamentosPara(ctx.ProdutoModeloID)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(acabamentos))
		for _, a := range acabamentos {
			out = append(out, opcaoID(a.ID, a.Nome))
		}
		return out, nil

	case "acabamento_reforco":
		reforcos, err := ro.resolvedor.ModelosReforcoPara(ctx.ProdutoModeloID)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(reforcos))
		for _, m := range reforcos {
			out = append(out, opcaoID(m.ID, m.Nome))
		}
		return out, nil

	case "acabamento_fita_furo":
		fitas, err := ro.resolvedor.ModelosFitaFuroPara(ctx.ProdutoModeloID)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(fitas))
		for _, m := range fitas {
			out = append(out, opcaoID(m.ID, m.Nome))
		}
		return out, nil

	case "acondicionamento":
		tipos, err := ro.resolvedor.AcondicionamentosPara(ctx.ProdutoModeloID)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(tipos))
		for _, t := range tipos {
			out = append(out, opcaoID(t.ID, t.Nome))
		}
		return out, nil

	case "modulo":
		modulos, err := ro.catalogo.Modulos()
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(modulos))
		for _, m := range modulos {
			out = append(out, opcaoID(m.ID, fmt.Sprintf("%s (%d un)", m.Nome, m.Quantidade)))
		}
		return out, nil

	case "enobrecimento":
		tipos, err := ro.resolvedor.EnobrecimentosPara(ctx.ProdutoModeloID)
		if err != nil {
			return nil, err
		}
		out := make([]Opcao, 0, len(tipos))
		for _, t := range tipos {
			out = append(out, opcaoID(t.ID, t.Nome))
		}
		return out, nil
	}

	return []Opcao{}, nil
}

func opcaoID(id uint, rotulo string) Opcao {
	return Opcao{Valor: strconv.FormatUint(uint64(id), 10), Rotulo: rotulo}
}

// injetaEscalonamento acrescenta o sentinela quando a lista ainda não o
// tem (comparação normalizada, tolerante a caixa/acentos).
func injetaEscalonamento(opcoes []Opcao) []Opcao {
	for _, o := range opcoes {
		if selecao.EhOutro(o.Valor) || selecao.EhOutro(o.Rotulo) {
			return opcoes
		}
	}
	return append(opcoes, Opcao{Valor: "outro", Rotulo: rotuloEscalonamento})
}
