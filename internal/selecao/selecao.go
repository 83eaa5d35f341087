// internal/selecao/selecao.go
package selecao

import (
	"strconv"
	"strings"
)

// Tipo indica como o valor enviado pelo cliente deve ser tratado.
type Tipo int

const (
	// TipoVazia cobre valor ausente e os sentinelas de "não se aplica"
	// ("Sem Alça", "Não há"). Persistido como NULL.
	TipoVazia Tipo = iota
	// TipoConhecida é um ID numérico de catálogo.
	TipoConhecida
	// TipoNome é um valor textual que ainda precisa ser resolvido para ID.
	TipoNome
	// TipoEscalada é o sentinela "Outro (Desenvolvimento)": exige descrição
	// e entra nas observações de engenharia.
	TipoEscalada
)

// Selecao substitui a comparação solta de strings sentinela por um valor
// tipado: Vazia, Conhecida(id), Nome(texto) ou Escalada(descricao).
type Selecao struct {
	Tipo      Tipo
	ID        uint
	Nome      string
	Descricao string
}

func Vazia() Selecao            { return Selecao{Tipo: TipoVazia} }
func Conhecida(id uint) Selecao { return Selecao{Tipo: TipoConhecida, ID: id} }
func Nome(nome string) Selecao  { return Selecao{Tipo: TipoNome, Nome: nome} }
func Escalada(descricao string) Selecao {
	return Selecao{Tipo: TipoEscalada, Descricao: strings.TrimSpace(descricao)}
}

func (s Selecao) EhVazia() bool     { return s.Tipo == TipoVazia }
func (s Selecao) EhConhecida() bool { return s.Tipo == TipoConhecida }
func (s Selecao) EhNome() bool      { return s.Tipo == TipoNome }
func (s Selecao) EhEscalada() bool  { return s.Tipo == TipoEscalada }

// IDOuNulo devolve o ID como ponteiro para persistência (NULL quando não há
// opção de catálogo resolvida).
func (s Selecao) IDOuNulo() *uint {
	if s.Tipo != TipoConhecida {
		return nil
	}
	id := s.ID
	return &id
}

var substituidorAcentos = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c", "ñ", "n",
)

// Normalizar reduz um valor textual para comparação: minúsculas, sem
// acentos e sem espaços nas pontas.
func Normalizar(s string) string {
	return substituidorAcentos.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Sentinelas de escalonamento para engenharia.
var sentinelasOutro = map[string]bool{
	"outro":                   true,
	"outra":                   true,
	"outros":                  true,
	"outro (desenvolvimento)": true,
	"outra: informar":         true,
}

// Sentinelas de "não se aplica": viram NULL, sem escalonamento.
var sentinelasNaoSeAplica = map[string]bool{
	"sem alca":  true,
	"sem alcas": true,
	"nao ha":    true,
	"n/a":       true,
}

// EhOutro reconhece o sentinela de escalonamento em qualquer variação de
// caixa/acentuação.
func EhOutro(valor string) bool {
	return sentinelasOutro[Normalizar(valor)]
}

// EhNaoSeAplica reconhece os sentinelas de ausência ("Sem Alça", "Não há").
func EhNaoSeAplica(valor string) bool {
	return sentinelasNaoSeAplica[Normalizar(valor)]
}

// Interpretar converte o valor bruto enviado pelo cliente em uma Selecao.
// descricao é o campo "<campo>OutroDescricao" que acompanha o valor.
func Interpretar(bruto, descricao string) Selecao {
	bruto = strings.TrimSpace(bruto)
	switch {
	case bruto == "" || EhNaoSeAplica(bruto):
		return Vazia()
	case EhOutro(bruto):
		return Escalada(descricao)
	}
	if id, err := strconv.ParseUint(bruto, 10, 32); err == nil && id > 0 {
		return Conhecida(uint(id))
	}
	return Nome(bruto)
}
