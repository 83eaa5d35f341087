// internal/resolvedor/resolvedor.go
//
// Resolução de restrições em cascata: dado um modelo de produto (e,
// quando houver, a variação escolhida), devolve os conjuntos ordenados
// de opções válidas em cada categoria dependente.
//
// Política para modelo sem nenhuma permissão em uma categoria: nada é
// oferecido (lista vazia, que a UI mostra como "nenhuma opção
// configurada"). A exceção são as sub-categorias de alça (aplicação,
// largura, cor), que caem para uma lista padrão quando o admin ainda
// não configurou restrições.
package resolvedor

import (
	"github.com/EmbalaFlex/api-orcamentos/internal/catalogo"
)

// Listas padrão das sub-categorias de alça.
var (
	AplicacoesPadrao = []string{"Colada", "Amarrada", "Grampeada"}
	LargurasPadrao   = []string{"10mm", "15mm", "20mm", "25mm"}
	CoresPadrao      = []string{"Branca", "Preta", "Kraft", "Personalizada"}
)

// Resolvedor consulta o catálogo injetado; não guarda estado próprio, e
// por isso re-resolver as mesmas entradas produz sempre a mesma lista.
type Resolvedor struct {
	catalogo catalogo.Repository
}

func Novo(repo catalogo.Repository) *Resolvedor {
	return &Resolvedor{catalogo: repo}
}

// variacaoDe localiza a variação do modelo pelo código; nil quando o
// código não bate com nenhuma.
func variacaoDe(modelo *catalogo.ProdutoModelo, codigo string) *catalogo.ModeloVariacao {
	if codigo == "" {
		return nil
	}
	for i := range modelo.Variacoes {
		if modelo.Variacoes[i].Codigo == codigo {
			return &modelo.Variacoes[i]
		}
	}
	return nil
}

func contem(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// FormatosPara devolve os formatos permitidos para o modelo, na ordem
// configurada; se a variação declara um subconjunto de formatos, a lista
// é a interseção, mantendo a ordem das permissões.
func (r *Resolvedor) FormatosPara(modeloID uint, variacao string) ([]catalogo.Formato, error) {
	modelo, err := r.catalogo.ProdutoModeloPorID(modeloID)
	if err != nil {
		return nil, err
	}
	permitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaFormato)
	if err != nil {
		return nil, err
	}

	if v := variacaoDe(modelo, variacao); v != nil && len(v.FormatosPermitidos) > 0 {
		filtrados := permitidos[:0:0]
		for _, id := range permitidos {
			if contem(v.FormatosPermitidos, id) {
				filtrados = append(filtrados, id)
			}
		}
		permitidos = filtrados
	}

	todos, err := r.catalogo.Formatos()
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]catalogo.Formato, len(todos))
	for _, f := range todos {
		porID[f.ID] = f
	}

	out := []catalogo.Formato{}
	for _, id := range permitidos {
		if f, ok := porID[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// SubstratosPara devolve os substratos permitidos, já com a lista de
// gramaturas de cada um.
func (r *Resolvedor) SubstratosPara(modeloID uint) ([]catalogo.Substrato, error) {
	permitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaSubstrato)
	if err != nil {
		return nil, err
	}
	todos, err := r.catalogo.Substratos()
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]catalogo.Substrato, len(todos))
	for _, s := range todos {
		porID[s.ID] = s
	}
	out := []catalogo.Substrato{}
	for _, id := range permitidos {
		if s, ok := porID[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// OpcoesAlca agrupa as quatro dimensões independentes da alça.
type OpcoesAlca struct {
	Tipos      []catalogo.TipoAlca `json:"tipos"`
	Aplicacoes []string            `json:"aplicacoes"`
	Larguras   []string            `json:"larguras"`
	Cores      []string            `json:"cores"`
}

// OpcoesAlcaPara devolve tipos/aplicações/larguras/cores de alça para o
// modelo. Modelo que não permite alça recebe conjuntos vazios.
func (r *Resolvedor) OpcoesAlcaPara(modeloID uint, variacao string) (*OpcoesAlca, error) {
	modelo, err := r.catalogo.ProdutoModeloPorID(modeloID)
	if err != nil {
		return nil, err
	}
	if !modelo.PermiteAlca {
		return &OpcoesAlca{Tipos: []catalogo.TipoAlca{}, Aplicacoes: []string{}, Larguras: []string{}, Cores: []string{}}, nil
	}

	permitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaTipoAlca)
	if err != nil {
		return nil, err
	}
	if v := variacaoDe(modelo, variacao); v != nil && len(v.AlcasPermitidas) > 0 {
		filtrados := permitidos[:0:0]
		for _, id := range permitidos {
			if contem(v.AlcasPermitidas, id) {
				filtrados = append(filtrados, id)
			}
		}
		permitidos = filtrados
	}

	todos, err := r.catalogo.TiposAlca()
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]catalogo.TipoAlca, len(todos))
	for _, t := range todos {
		porID[t.ID] = t
	}
	tipos := []catalogo.TipoAlca{}
	for _, id := range permitidos {
		if t, ok := porID[id]; ok {
			tipos = append(tipos, t)
		}
	}

	aplicacoes, err := r.restricaoOuPadrao(modeloID, catalogo.CategoriaAlcaAplicacao, AplicacoesPadrao)
	if err != nil {
		return nil, err
	}
	larguras, err := r.restricaoOuPadrao(modeloID, catalogo.CategoriaAlcaLargura, LargurasPadrao)
	if err != nil {
		return nil, err
	}
	cores, err := r.restricaoOuPadrao(modeloID, catalogo.CategoriaAlcaCor, CoresPadrao)
	if err != nil {
		return nil, err
	}

	return &OpcoesAlca{Tipos: tipos, Aplicacoes: aplicacoes, Larguras: larguras, Cores: cores}, nil
}

func (r *Resolvedor) restricaoOuPadrao(modeloID uint, cat catalogo.CategoriaAlca, padrao []string) ([]string, error) {
	valores, err := r.catalogo.RestricoesAlca(modeloID, cat)
	if err != nil {
		return nil, err
	}
	if len(valores) == 0 {
		return append([]string{}, padrao...), nil
	}
	return valores, nil
}

// OpcoesImpressaoPara devolve os modos permitidos, cada um com apenas as
// combinações permitidas para o par (modelo, modo). Um modo permitido
// sem combinação permitida aparece com Combinacoes vazio: é sinal de
// catálogo incompleto, não erro.
func (r *Resolvedor) OpcoesImpressaoPara(modeloID uint) ([]catalogo.ModoImpressao, error) {
	modosPermitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaModoImpressao)
	if err != nil {
		return nil, err
	}
	combosPermitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaCombinacao)
	if err != nil {
		return nil, err
	}
	todos, err := r.catalogo.ModosImpressao()
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]catalogo.ModoImpressao, len(todos))
	for _, m := range todos {
		porID[m.ID] = m
	}

	out := []catalogo.ModoImpressao{}
	for _, id := range modosPermitidos {
		modo, ok := porID[id]
		if !ok {
			continue
		}
		combos := []catalogo.CombinacaoImpressao{}
		for _, c := range modo.Combinacoes {
			if contem(combosPermitidos, c.ID) {
				combos = append(combos, c)
			}
		}
		modo.Combinacoes = combos
		out = append(out, modo)
	}
	return out, nil
}

// AcabamentosPara devolve os acabamentos booleanos permitidos.
func (r *Resolvedor) AcabamentosPara(modeloID uint) ([]catalogo.Acabamento, error) {
	permitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaAcabamento)
	if err != nil {
		return nil, err
	}
	todos, err := r.catalogo.Acabamentos()
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]catalogo.Acabamento, len(todos))
	for _, a := range todos {
		porID[a.ID] = a
	}
	out := []catalogo.Acabamento{}
	for _, id := range permitidos {
		if a, ok := porID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

// ModelosReforcoPara: sub-opções do acabamento "reforço"; só fazem
// sentido quando o acabamento correspondente está habilitado.
func (r *Resolvedor) ModelosReforcoPara(modeloID uint) ([]catalogo.ModeloReforco, error) {
	permitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaModeloReforco)
	if err != nil {
		return nil, err
	}
	todos, err := r.catalogo.ModelosReforco()
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]catalogo.ModeloReforco, len(todos))
	for _, m := range todos {
		porID[m.ID] = m
	}
	out := []catalogo.ModeloReforco{}
	for _, id := range permitidos {
		if m, ok := porID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// ModelosFitaFuroPara: sub-opções do acabamento "fita e furo".
func (r *Resolvedor) ModelosFitaFuroPara(modeloID uint) ([]catalogo.ModeloFitaFuro, error) {
	permitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaModeloFitaFuro)
	if err != nil {
		return nil, err
	}
	todos, err := r.catalogo.ModelosFitaFuro()
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]catalogo.ModeloFitaFuro, len(todos))
	for _, m := range todos {
		porID[m.ID] = m
	}
	out := []catalogo.ModeloFitaFuro{}
	for _, id := range permitidos {
		if m, ok := porID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// AcondicionamentosPara devolve os tipos de acondicionamento permitidos.
func (r *Resolvedor) AcondicionamentosPara(modeloID uint) ([]catalogo.TipoAcondicionamento, error) {
	permitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaAcondicionamento)
	if err != nil {
		return nil, err
	}
	todos, err := r.catalogo.TiposAcondicionamento()
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]catalogo.TipoAcondicionamento, len(todos))
	for _, t := range todos {
		porID[t.ID] = t
	}
	out := []catalogo.TipoAcondicionamento{}
	for _, id := range permitidos {
		if t, ok := porID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// EnobrecimentosPara devolve os tipos de enobrecimento permitidos.
func (r *Resolvedor) EnobrecimentosPara(modeloID uint) ([]catalogo.TipoEnobrecimento, error) {
	permitidos, err := r.catalogo.PermissoesPorModelo(modeloID, catalogo.CategoriaEnobrecimento)
	if err != nil {
		return nil, err
	}
	todos, err := r.catalogo.TiposEnobrecimento()
	if err != nil {
		return nil, err
	}
	porID := make(map[uint]catalogo.TipoEnobrecimento, len(todos))
	for _, t := range todos {
		porID[t.ID] = t
	}
	out := []catalogo.TipoEnobrecimento{}
	for _, id := range permitidos {
		if t, ok := porID[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// TiragemMinimaPara devolve a tiragem mínima do tipo de produto; nil
// quando o tipo não declara uma.
func (r *Resolvedor) TiragemMinimaPara(tipoCodigo string) (*int, error) {
	tipos, err := r.catalogo.ProdutoTipos()
	if err != nil {
		return nil, err
	}
	for _, t := range tipos {
		if t.Codigo == tipoCodigo {
			return t.TiragemMinima, nil
		}
	}
	return nil, nil
}

// ModuloPadraoPara devolve o módulo de acondicionamento pré-selecionado
// pela regra do par (modelo, formato), resolvido pela quantidade fixa;
// nil quando não há regra ou nenhum módulo bate com a quantidade. É um
// pré-preenchimento, não uma imposição.
func (r *Resolvedor) ModuloPadraoPara(modeloID, formatoID uint) (*catalogo.ModuloAcondicionamento, error) {
	regra, err := r.catalogo.RegraPorFormato(modeloID, formatoID)
	if err != nil {
		return nil, err
	}
	if regra == nil || regra.ModuloPadraoQuantidade <= 0 {
		return nil, nil
	}
	modulos, err := r.catalogo.Modulos()
	if err != nil {
		return nil, err
	}
	for i := range modulos {
		if modulos[i].Quantidade == regra.ModuloPadraoQuantidade {
			return &modulos[i], nil
		}
	}
	return nil, nil
}
