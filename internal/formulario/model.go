// internal/formulario/model.go
package formulario

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tipos de campo suportados pelo construtor de formulário.
const (
	TipoTextoCurto = "texto_curto"
	TipoTextoLongo = "texto_longo"
	TipoNumero     = "numero"
	TipoData       = "data"
	TipoSelecao    = "selecao"
	TipoProduto    = "produto"
	TipoModelo     = "modelo"
	TipoBooleano   = "booleano"
)

// Chaves de sistema essenciais: os campos correspondentes não podem ser
// excluídos pelo admin, apenas desativados.
var chavesEssenciais = map[string]bool{
	"produto":    true,
	"modelo":     true,
	"quantidade": true,
}

// FormEtapa agrupa campos em uma etapa do assistente. Codigo é estável e
// usado pela lógica de pular/exibir etapas.
type FormEtapa struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Codigo    string         `gorm:"size:50;uniqueIndex;not null" json:"codigo"`
	Titulo    string         `gorm:"size:255;not null" json:"titulo"`
	Ordem     int            `gorm:"not null;default:0" json:"ordem"`
	Ativo     bool           `gorm:"not null;default:true" json:"ativo"`
	Opcional  bool           `gorm:"not null;default:false" json:"opcional"`
	Campos    []FormCampo    `gorm:"foreignKey:FormEtapaID;constraint:OnDelete:CASCADE" json:"campos"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// FormCampo é um campo configurável pelo admin.
//
// Configuracao aceita os mapas de override:
//
//	"tamanhosPorModelo":  {"<modeloId>": ["valor", ...]}
//	"modelosPorProduto":  {"<tipoId>": ["valor", ...]}
type FormCampo struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	FormEtapaID  uint                        `gorm:"not null;index" json:"formEtapaId"`
	Titulo       string                      `gorm:"size:255;not null" json:"titulo"`
	Tipo         string                      `gorm:"size:30;not null" json:"tipo"`
	Obrigatorio  bool                        `gorm:"not null;default:false" json:"obrigatorio"`
	Ativo        bool                        `gorm:"not null;default:true" json:"ativo"`
	Ordem        int                         `gorm:"not null;default:0" json:"ordem"`
	CampoMapeado string                      `gorm:"size:255" json:"campoMapeado"`
	ChaveSistema string                      `gorm:"size:50;index" json:"chaveSistema"`
	Opcoes       datatypes.JSONSlice[string] `json:"opcoes"`
	Configuracao datatypes.JSONMap           `json:"configuracao"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt              `gorm:"index" json:"-"`
}

// Essencial informa se o campo é protegido contra exclusão.
func (c *FormCampo) Essencial() bool {
	return chavesEssenciais[c.ChaveSistema]
}

// Migrate cria as tabelas do construtor de formulário.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&FormEtapa{}, &FormCampo{})
}
