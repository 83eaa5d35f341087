// internal/estatisticas/repository.go
//
// Agregados do painel administrativo: volumes de solicitação por status
// de webhook, por modelo de produto e por mês de criação.
package estatisticas

import (
	"github.com/EmbalaFlex/api-orcamentos/internal/solicitacao"
	"gorm.io/gorm"
)

type ContagemStatus struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

type ContagemModelo struct {
	ProdutoModeloID *uint  `json:"produtoModeloId"`
	Modelo          string `json:"modelo"`
	Total           int64  `json:"total"`
}

type ContagemMes struct {
	Mes   string `json:"mes"`
	Total int64  `json:"total"`
}

type Painel struct {
	Total     int64            `json:"total"`
	PorStatus []ContagemStatus `json:"porStatus"`
	PorModelo []ContagemModelo `json:"porModelo"`
	PorMes    []ContagemMes    `json:"porMes"`
}

type Repository interface {
	Painel() (*Painel, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Painel() (*Painel, error) {
	painel := &Painel{}

	err := r.db.Model(&solicitacao.Solicitacao{}).Count(&painel.Total).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&solicitacao.Solicitacao{}).
		Select("status_webhook AS status, COUNT(*) AS total").
		Group("status_webhook").
		Order("total DESC").
		Scan(&painel.PorStatus).Error
	if err != nil {
		return nil, err
	}

	// LEFT JOIN preserva solicitações escaladas (modelo NULL).
	err = r.db.Model(&solicitacao.Solicitacao{}).
		Select("item_solicitacaos.produto_modelo_id AS produto_modelo_id, " +
			"COALESCE(produto_modelos.nome, 'Desenvolvimento') AS modelo, COUNT(*) AS total").
		Joins("LEFT JOIN item_solicitacaos ON item_solicitacaos.solicitacao_id = solicitacaos.id").
		Joins("LEFT JOIN produto_modelos ON produto_modelos.id = item_solicitacaos.produto_modelo_id").
		Group("item_solicitacaos.produto_modelo_id, produto_modelos.nome").
		Order("total DESC").
		Scan(&painel.PorModelo).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&solicitacao.Solicitacao{}).
		Select(r.expressaoMes() + " AS mes, COUNT(*) AS total").
		Group("mes").
		Order("mes DESC").
		Scan(&painel.PorMes).Error
	if err != nil {
		return nil, err
	}

	return painel, nil
}

// expressaoMes devolve a expressão de truncamento por mês do dialeto em
// uso (Postgres em produção, SQLite nos testes).
func (r *repositoryImpl) expressaoMes() string {
	if r.db.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m', created_at)"
	}
	return "to_char(created_at, 'YYYY-MM')"
}
