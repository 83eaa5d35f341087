// internal/solicitacao/repository.go
package solicitacao

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Criar(s *Solicitacao) error
	Listar(pagina, tamanho int) ([]Solicitacao, int64, error)
	BuscarPorID(id uint) (*Solicitacao, error)
	BuscarPorProtocolo(protocolo string) (*Solicitacao, error)
	AtualizarStatusWebhook(id uint, status, resposta string, enviadoEm *time.Time) error
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// Criar grava a solicitação com item e enobrecimentos na mesma transação.
func (r *repositoryImpl) Criar(s *Solicitacao) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(s).Error
	})
}

func (r *repositoryImpl) Listar(pagina, tamanho int) ([]Solicitacao, int64, error) {
	if pagina < 1 {
		pagina = 1
	}
	if tamanho < 1 || tamanho > 100 {
		tamanho = 20
	}

	var total int64
	if err := r.db.Model(&Solicitacao{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var solicitacoes []Solicitacao
	err := r.db.
		Preload("Item").
		Preload("Enobrecimentos").
		Order("created_at DESC").
		Limit(tamanho).
		Offset((pagina - 1) * tamanho).
		Find(&solicitacoes).Error
	if err != nil {
		return nil, 0, err
	}
	return solicitacoes, total, nil
}

func (r *repositoryImpl) BuscarPorID(id uint) (*Solicitacao, error) {
	var s Solicitacao
	err := r.db.Preload("Item").Preload("Enobrecimentos").First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repositoryImpl) BuscarPorProtocolo(protocolo string) (*Solicitacao, error) {
	var s Solicitacao
	err := r.db.Preload("Item").Preload("Enobrecimentos").
		Where("protocolo = ?", protocolo).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// AtualizarStatusWebhook grava o desfecho da entrega sem tocar no resto
// da linha.
func (r *repositoryImpl) AtualizarStatusWebhook(id uint, status, resposta string, enviadoEm *time.Time) error {
	return r.db.Model(&Solicitacao{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status_webhook":     status,
			"resposta_webhook":   resposta,
			"webhook_enviado_em": enviadoEm,
		}).Error
}
