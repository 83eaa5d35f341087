// internal/pedido/pedido.go
//
// Payload da solicitação de orçamento como chega do formulário. Os
// campos de seleção viajam como texto (ID, nome de catálogo ou
// sentinela) e são resolvidos no pipeline; cada um tem o campo irmão
// "...OutroDescricao" exigido quando a seleção é "Outro".
package pedido

// Constantes de domínio usadas pelas regras condicionais.
const (
	ContratoPRG  = "PRG"
	ContratoJIT  = "JIT"
	ContratoSpot = "SPOT"

	FrequenciaUnica    = "Única"
	NaoHa              = "Não há"
	OpcaoOutraInformar = "Outra: Informar"
)

type DadosGerais struct {
	Vendedor      string `json:"vendedor"`
	Contato       string `json:"contato"`
	Marca         string `json:"marca"`
	CodigoMetrics string `json:"codigoMetrics"`
}

type CondicoesVenda struct {
	TipoContrato           string `json:"tipoContrato"`
	Imposto                string `json:"imposto"`
	CondicaoPagamento      string `json:"condicaoPagamento"`
	CondicaoPagamentoOutra string `json:"condicaoPagamentoOutra"`
	Royalties              string `json:"royalties"`
	BVAgencia              string `json:"bvAgencia"`
}

type Entregas struct {
	Frete           string `json:"frete"`
	CidadeUF        string `json:"cidadeUF"`
	CidadesUF       string `json:"cidadesUF"`
	NumeroEntregas  string `json:"numeroEntregas"`
	Frequencia      string `json:"frequencia"`
	FrequenciaOutra string `json:"frequenciaOutra"`
	LocalUnico      *bool  `json:"localUnico"`
	PedidoMinimoCIF string `json:"pedidoMinimoCIF"`
}

type Produto struct {
	ProdutoTipoID   string `json:"produtoTipoId"`
	ProdutoModeloID string `json:"produtoModeloId"`
	Variacao        string `json:"variacao"`
	Quantidade      string `json:"quantidade"`
}

// Formato tem quatro caminhos alternativos de preenchimento: formato
// padrão de catálogo, medidas customizadas, largura de Saco Fundo V ou
// descrição livre de desenvolvimento.
type Formato struct {
	FormatoPadraoID          string `json:"formatoPadraoId"`
	FormatoOutroDescricao    string `json:"formatoOutroDescricao"`
	Largura                  string `json:"largura"`
	Altura                   string `json:"altura"`
	Lateral                  string `json:"lateral"`
	MedidaOutroDescricao     string `json:"medidaOutroDescricao"`
	LarguraSacoFundoV        string `json:"larguraSacoFundoV"`
	SacoFundoVOutroDescricao string `json:"sacoFundoVOutroDescricao"`
	DesenvolvimentoDescricao string `json:"desenvolvimentoDescricao"`
}

type Substrato struct {
	SubstratoID    string `json:"substratoId"`
	Gramatura      string `json:"gramatura"`
	OutroDescricao string `json:"outroDescricao"`
}

type Alca struct {
	TipoID         string `json:"tipoId"`
	Aplicacao      string `json:"aplicacao"`
	Largura        string `json:"largura"`
	Cor            string `json:"cor"`
	OutroDescricao string `json:"outroDescricao"`
}

type Impressao struct {
	ModoID         string   `json:"modoId"`
	CombinacaoID   string   `json:"combinacaoId"`
	Camadas        []string `json:"camadas"`
	OutroDescricao string   `json:"outroDescricao"`
}

type Acabamentos struct {
	ReforcoFundo     bool   `json:"reforcoFundo"`
	ReforcoModeloID  string `json:"reforcoModeloId"`
	FitaFuro         bool   `json:"fitaFuro"`
	FitaFuroModeloID string `json:"fitaFuroModeloId"`
	Ilhos            bool   `json:"ilhos"`
	OutroDescricao   string `json:"outroDescricao"`
}

type Acondicionamento struct {
	TipoID         string `json:"tipoId"`
	ModuloID       string `json:"moduloId"`
	Quantidade     string `json:"quantidade"`
	OutroDescricao string `json:"outroDescricao"`
}

type Enobrecimento struct {
	TipoID      string            `json:"tipoId"`
	Dados       map[string]string `json:"dados"`
	Observacoes string            `json:"observacoes"`
}

// Pedido é a submissão completa do assistente de orçamento.
type Pedido struct {
	DadosGerais      DadosGerais      `json:"dadosGerais"`
	CondicoesVenda   CondicoesVenda   `json:"condicoesVenda"`
	Entregas         Entregas         `json:"entregas"`
	Produto          Produto          `json:"produto"`
	Formato          Formato          `json:"formato"`
	Substrato        Substrato        `json:"substrato"`
	Alca             Alca             `json:"alca"`
	Impressao        Impressao        `json:"impressao"`
	Acabamentos      Acabamentos      `json:"acabamentos"`
	Acondicionamento Acondicionamento `json:"acondicionamento"`
	Enobrecimentos   []Enobrecimento  `json:"enobrecimentos"`
	Observacoes      string           `json:"observacoes"`
}
