// internal/catalogo/model.go
package catalogo

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProdutoTipo é uma categoria de item fabricado (sacola, envelope...).
// Semeado uma vez; somente leitura em runtime.
type ProdutoTipo struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Codigo        string `gorm:"size:50;uniqueIndex;not null" json:"codigo"`
	Nome          string `gorm:"size:255;not null" json:"nome"`
	TiragemMinima *int   `json:"tiragemMinima,omitempty"`
}

// ProdutoModelo é uma variante fabricável de um ProdutoTipo.
type ProdutoModelo struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ProdutoTipoID uint   `gorm:"not null;index" json:"produtoTipoId"`
	Codigo        string `gorm:"size:50;uniqueIndex;not null" json:"codigo"`
	Nome          string `gorm:"size:255;not null" json:"nome"`
	PermiteAlca   bool   `gorm:"not null;default:false" json:"permiteAlca"`

	Variacoes     []ModeloVariacao `gorm:"foreignKey:ProdutoModeloID;constraint:OnDelete:CASCADE" json:"variacoes,omitempty"`
	RegrasFormato []RegraFormato   `gorm:"foreignKey:ProdutoModeloID;constraint:OnDelete:CASCADE" json:"regrasFormato,omitempty"`
}

// ModeloVariacao restringe ainda mais os formatos/alças de um modelo
// quando o cliente escolhe uma sub-variação.
type ModeloVariacao struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	ProdutoModeloID uint   `gorm:"not null;index" json:"produtoModeloId"`
	Codigo          string `gorm:"size:50;not null" json:"codigo"`
	Nome            string `gorm:"size:255;not null" json:"nome"`

	FormatosPermitidos datatypes.JSONSlice[uint] `json:"formatosPermitidos"`
	AlcasPermitidas    datatypes.JSONSlice[uint] `json:"alcasPermitidas"`
}

// RegraFormato guarda defaults por formato (ex.: módulo de
// acondicionamento padrão, identificado pela quantidade fixa).
type RegraFormato struct {
	ID                     uint `gorm:"primaryKey" json:"id"`
	ProdutoModeloID        uint `gorm:"not null;index:idx_regra_modelo_formato,unique" json:"produtoModeloId"`
	FormatoID              uint `gorm:"not null;index:idx_regra_modelo_formato,unique" json:"formatoId"`
	ModuloPadraoQuantidade int  `gorm:"not null;default:0" json:"moduloPadraoQuantidade"`
}

// Formato é uma dimensão padrão nomeada. Lateral é o fole/sanfona,
// presente só em alguns formatos.
type Formato struct {
	ID                    uint     `gorm:"primaryKey" json:"id"`
	Nome                  string   `gorm:"size:255;not null" json:"nome"`
	Largura               float64  `gorm:"not null;default:0" json:"largura"`
	Altura                float64  `gorm:"not null;default:0" json:"altura"`
	Lateral               *float64 `json:"lateral,omitempty"`
	AceitaDesenvolvimento bool     `gorm:"not null;default:false" json:"aceitaDesenvolvimento"`
}

// Substrato é o material, com a lista ordenada de gramaturas aceitas.
type Substrato struct {
	ID         uint                     `gorm:"primaryKey" json:"id"`
	Nome       string                   `gorm:"size:255;not null" json:"nome"`
	Gramaturas datatypes.JSONSlice[int] `json:"gramaturas"`
}

// ModoImpressao agrupa combinações de cores/camadas.
type ModoImpressao struct {
	ID          uint                  `gorm:"primaryKey" json:"id"`
	Nome        string                `gorm:"size:255;not null" json:"nome"`
	Combinacoes []CombinacaoImpressao `gorm:"foreignKey:ModoImpressaoID;constraint:OnDelete:CASCADE" json:"combinacoes,omitempty"`
}

// CombinacaoImpressao é uma combinação de quantidade de cores e camadas
// imprimíveis (externa/interna/refile/saco/pouch/rótulo).
type CombinacaoImpressao struct {
	ID              uint                        `gorm:"primaryKey" json:"id"`
	ModoImpressaoID uint                        `gorm:"not null;index" json:"modoImpressaoId"`
	Nome            string                      `gorm:"size:255;not null" json:"nome"`
	Cores           int                         `gorm:"not null;default:0" json:"cores"`
	Camadas         datatypes.JSONSlice[string] `json:"camadas"`
}

// TipoAlca é o tipo de alça (fita, cordão, vazada...).
type TipoAlca struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:255;not null" json:"nome"`
}

// Acabamento é uma opção booleana de acabamento (reforço de fundo, fita e
// furo...), com sub-opções próprias quando habilitada.
type Acabamento struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Codigo string `gorm:"size:50;uniqueIndex;not null" json:"codigo"`
	Nome   string `gorm:"size:255;not null" json:"nome"`
}

// ModeloReforco é sub-opção do acabamento "reforço".
type ModeloReforco struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:255;not null" json:"nome"`
}

// ModeloFitaFuro é sub-opção do acabamento "fita e furo".
type ModeloFitaFuro struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:255;not null" json:"nome"`
}

// TipoAcondicionamento é a embalagem de transporte (caixa, fardo...).
type TipoAcondicionamento struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nome string `gorm:"size:255;not null" json:"nome"`
}

// ModuloAcondicionamento é a unidade de quantidade fixa ("Caixa (500 un)").
type ModuloAcondicionamento struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Nome       string `gorm:"size:255;not null" json:"nome"`
	Quantidade int    `gorm:"not null" json:"quantidade"`
}

// TipoEnobrecimento é o enobrecimento (hot stamping, relevo, laminação,
// verniz UV).
type TipoEnobrecimento struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Codigo string `gorm:"size:50;uniqueIndex;not null" json:"codigo"`
	Nome   string `gorm:"size:255;not null" json:"nome"`
}

// Categoria identifica a qual catálogo uma PermissaoOpcao se refere.
type Categoria string

const (
	CategoriaFormato          Categoria = "formato"
	CategoriaSubstrato        Categoria = "substrato"
	CategoriaModoImpressao    Categoria = "modo_impressao"
	CategoriaCombinacao       Categoria = "combinacao_impressao"
	CategoriaTipoAlca         Categoria = "tipo_alca"
	CategoriaAcabamento       Categoria = "acabamento"
	CategoriaModeloReforco    Categoria = "modelo_reforco"
	CategoriaModeloFitaFuro   Categoria = "modelo_fita_furo"
	CategoriaAcondicionamento Categoria = "acondicionamento"
	CategoriaEnobrecimento    Categoria = "enobrecimento"
)

// PermissaoOpcao é a relação N-N "a opção X pode ser oferecida para o
// modelo Y". A ausência da relação significa opção não oferecida.
type PermissaoOpcao struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ProdutoModeloID uint      `gorm:"not null;uniqueIndex:uq_permissao,priority:1" json:"produtoModeloId"`
	Categoria       Categoria `gorm:"size:50;not null;uniqueIndex:uq_permissao,priority:2" json:"categoria"`
	OpcaoID         uint      `gorm:"not null;uniqueIndex:uq_permissao,priority:3" json:"opcaoId"`
	Ordem           int       `gorm:"not null;default:0" json:"ordem"`

	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CategoriaAlca distingue as sub-categorias de alça restringíveis por
// valor textual (não são linhas de catálogo).
type CategoriaAlca string

const (
	CategoriaAlcaAplicacao CategoriaAlca = "aplicacao"
	CategoriaAlcaLargura   CategoriaAlca = "largura"
	CategoriaAlcaCor       CategoriaAlca = "cor"
)

// RestricaoAlca limita aplicações/larguras/cores de alça por modelo.
// Quando não existe nenhuma linha para a categoria, vale a lista padrão
// (decisão de UX: não travar o usuário antes do admin configurar).
type RestricaoAlca struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	ProdutoModeloID uint          `gorm:"not null;index" json:"produtoModeloId"`
	Categoria       CategoriaAlca `gorm:"size:30;not null" json:"categoria"`
	Valor           string        `gorm:"size:255;not null" json:"valor"`
	Ordem           int           `gorm:"not null;default:0" json:"ordem"`
}

// Migrate cria todas as tabelas do catálogo.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ProdutoTipo{},
		&ProdutoModelo{},
		&ModeloVariacao{},
		&RegraFormato{},
		&Formato{},
		&Substrato{},
		&ModoImpressao{},
		&CombinacaoImpressao{},
		&TipoAlca{},
		&Acabamento{},
		&ModeloReforco{},
		&ModeloFitaFuro{},
		&TipoAcondicionamento{},
		&ModuloAcondicionamento{},
		&TipoEnobrecimento{},
		&PermissaoOpcao{},
		&RestricaoAlca{},
	)
}
