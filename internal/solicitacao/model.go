// internal/solicitacao/model.go
package solicitacao

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Solicitacao é a solicitação de orçamento persistida após o pipeline de
// submissão: campos comerciais denormalizados na própria linha, o item
// técnico em ItemSolicitacao e o payload original guardado como evidência.
type Solicitacao struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Protocolo string `gorm:"size:36;uniqueIndex;not null" json:"protocolo"`

	Vendedor      string `gorm:"size:255;not null" json:"vendedor"`
	Contato       string `gorm:"size:255;not null" json:"contato"`
	Marca         string `gorm:"size:255;not null" json:"marca"`
	CodigoMetrics string `gorm:"size:50;not null" json:"codigoMetrics"`

	TipoContrato           string `gorm:"size:10;not null" json:"tipoContrato"`
	Imposto                string `gorm:"size:30" json:"imposto"`
	CondicaoPagamento      string `gorm:"size:50" json:"condicaoPagamento"`
	CondicaoPagamentoOutra string `gorm:"size:255" json:"condicaoPagamentoOutra"`
	Royalties              string `gorm:"size:100" json:"royalties"`
	BVAgencia              string `gorm:"size:100" json:"bvAgencia"`

	Frete           string `gorm:"size:10" json:"frete"`
	CidadeUF        string `gorm:"size:100" json:"cidadeUF"`
	CidadesUF       string `gorm:"type:text" json:"cidadesUF"`
	NumeroEntregas  string `gorm:"size:20" json:"numeroEntregas"`
	Frequencia      string `gorm:"size:50" json:"frequencia"`
	FrequenciaOutra string `gorm:"size:255" json:"frequenciaOutra"`
	LocalUnico      *bool  `json:"localUnico"`
	PedidoMinimoCIF string `gorm:"size:100" json:"pedidoMinimoCIF"`

	Observacoes           string `gorm:"type:text" json:"observacoes"`
	ObservacoesEngenharia string `gorm:"type:text" json:"observacoesEngenharia"`

	StatusWebhook    string         `gorm:"size:20;not null;default:pendente" json:"statusWebhook"`
	RespostaWebhook  string         `gorm:"type:text" json:"respostaWebhook"`
	WebhookEnviadoEm *time.Time     `json:"webhookEnviadoEm"`
	PayloadBruto     datatypes.JSON `json:"payloadBruto"`

	Item           ItemSolicitacao            `gorm:"foreignKey:SolicitacaoID;constraint:OnDelete:CASCADE" json:"item"`
	Enobrecimentos []EnobrecimentoSolicitacao `gorm:"foreignKey:SolicitacaoID;constraint:OnDelete:CASCADE" json:"enobrecimentos"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ItemSolicitacao guarda as escolhas técnicas resolvidas. FKs de catálogo
// são ponteiros: NULL significa "não se aplica" ou seleção escalada para
// engenharia (a descrição vai no campo irmão).
type ItemSolicitacao struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	SolicitacaoID uint `gorm:"not null;uniqueIndex" json:"solicitacaoId"`

	ProdutoTipoID   *uint  `json:"produtoTipoId"`
	ProdutoModeloID *uint  `json:"produtoModeloId"`
	Variacao        string `gorm:"size:50" json:"variacao"`
	Quantidade      int    `gorm:"not null" json:"quantidade"`

	FormatoID         *uint  `json:"formatoId"`
	Largura           string `gorm:"size:20" json:"largura"`
	Altura            string `gorm:"size:20" json:"altura"`
	Lateral           string `gorm:"size:20" json:"lateral"`
	LarguraSacoFundoV string `gorm:"size:20" json:"larguraSacoFundoV"`
	FormatoDescricao  string `gorm:"size:500" json:"formatoDescricao"`

	SubstratoID        *uint  `json:"substratoId"`
	Gramatura          string `gorm:"size:20" json:"gramatura"`
	SubstratoDescricao string `gorm:"size:500" json:"substratoDescricao"`

	TipoAlcaID    *uint  `json:"tipoAlcaId"`
	AlcaAplicacao string `gorm:"size:100" json:"alcaAplicacao"`
	AlcaLargura   string `gorm:"size:50" json:"alcaLargura"`
	AlcaCor       string `gorm:"size:50" json:"alcaCor"`
	AlcaDescricao string `gorm:"size:500" json:"alcaDescricao"`

	ModoImpressaoID       *uint                       `json:"modoImpressaoId"`
	CombinacaoImpressaoID *uint                       `json:"combinacaoImpressaoId"`
	Camadas               datatypes.JSONSlice[string] `json:"camadas"`
	ImpressaoDescricao    string                      `gorm:"size:500" json:"impressaoDescricao"`

	ReforcoFundo        bool   `gorm:"not null;default:false" json:"reforcoFundo"`
	ReforcoModeloID     *uint  `json:"reforcoModeloId"`
	FitaFuro            bool   `gorm:"not null;default:false" json:"fitaFuro"`
	FitaFuroModeloID    *uint  `json:"fitaFuroModeloId"`
	Ilhos               bool   `gorm:"not null;default:false" json:"ilhos"`
	AcabamentoDescricao string `gorm:"size:500" json:"acabamentoDescricao"`

	AcondicionamentoID        *uint  `json:"acondicionamentoId"`
	ModuloID                  *uint  `json:"moduloId"`
	QuantidadePorModulo       int    `gorm:"not null;default:0" json:"quantidadePorModulo"`
	AcondicionamentoDescricao string `gorm:"size:500" json:"acondicionamentoDescricao"`
}

// EnobrecimentoSolicitacao é um enobrecimento escolhido, com os dados
// específicos do tipo (cores do hot stamping, área do verniz...) em Dados.
type EnobrecimentoSolicitacao struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	SolicitacaoID uint `gorm:"not null;index" json:"solicitacaoId"`

	TipoEnobrecimentoID *uint             `json:"tipoEnobrecimentoId"`
	TipoDescricao       string            `gorm:"size:500" json:"tipoDescricao"`
	Dados               datatypes.JSONMap `json:"dados"`
	Observacoes         string            `gorm:"type:text" json:"observacoes"`
}

// Migrate cria as tabelas de solicitação.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Solicitacao{}, &ItemSolicitacao{}, &EnobrecimentoSolicitacao{})
}
