// internal/notificacao/model.go
package notificacao

import (
	"time"

	"gorm.io/gorm"
)

// EntregaWebhook é o histórico de tentativas de entrega de uma
// solicitação. A solicitação guarda só o último desfecho; aqui fica a
// trilha completa, incluindo reenvios manuais.
type EntregaWebhook struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	SolicitacaoID uint      `gorm:"not null;index" json:"solicitacaoId"`
	Status        string    `gorm:"size:20;not null" json:"status"`
	Resposta      string    `gorm:"type:text" json:"resposta"`
	EnviadoEm     time.Time `json:"enviadoEm"`
	CreatedAt     time.Time `json:"createdAt"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&EntregaWebhook{})
}

// RegistrarTentativa acrescenta uma linha ao histórico de entregas.
func RegistrarTentativa(db *gorm.DB, solicitacaoID uint, status, resposta string, enviadoEm time.Time) error {
	return db.Create(&EntregaWebhook{
		SolicitacaoID: solicitacaoID,
		Status:        status,
		Resposta:      resposta,
		EnviadoEm:     enviadoEm,
	}).Error
}

// HistoricoDaSolicitacao lista as tentativas da mais recente para a mais
// antiga.
func HistoricoDaSolicitacao(db *gorm.DB, solicitacaoID uint) ([]EntregaWebhook, error) {
	var entregas []EntregaWebhook
	err := db.Where("solicitacao_id = ?", solicitacaoID).
		Order("enviado_em DESC").
		Find(&entregas).Error
	return entregas, err
}
