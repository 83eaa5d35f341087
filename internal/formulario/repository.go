// internal/formulario/repository.go
package formulario

import (
	"sort"

	"gorm.io/gorm"
)

type Repository interface {
	EtapasAtivas(db *gorm.DB) ([]FormEtapa, error)
	Etapas(db *gorm.DB) ([]FormEtapa, error)
	EtapaPorID(db *gorm.DB, id uint) (*FormEtapa, error)
	SalvarEtapa(db *gorm.DB, e *FormEtapa) error
	RemoverEtapa(db *gorm.DB, id uint) error
	CampoPorID(db *gorm.DB, id uint) (*FormCampo, error)
	SalvarCampo(db *gorm.DB, c *FormCampo) error
	RemoverCampo(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

// EtapasAtivas devolve só o que o formulário público renderiza: etapas
// ativas com campos ativos, ambos ordenados.
func (r *repositoryImpl) EtapasAtivas(db *gorm.DB) ([]FormEtapa, error) {
	var etapas []FormEtapa
	err := db.
		Where("ativo = ?", true).
		Preload("Campos", "ativo = ?", true).
		Order("ordem, id").
		Find(&etapas).Error
	if err != nil {
		return nil, err
	}
	for i := range etapas {
		ordenaCampos(etapas[i].Campos)
	}
	return etapas, nil
}

func (r *repositoryImpl) Etapas(db *gorm.DB) ([]FormEtapa, error) {
	var etapas []FormEtapa
	err := db.Preload("Campos").Order("ordem, id").Find(&etapas).Error
	if err != nil {
		return nil, err
	}
	for i := range etapas {
		ordenaCampos(etapas[i].Campos)
	}
	return etapas, nil
}

func (r *repositoryImpl) EtapaPorID(db *gorm.DB, id uint) (*FormEtapa, error) {
	var e FormEtapa
	if err := db.Preload("Campos").First(&e, id).Error; err != nil {
		return nil, err
	}
	ordenaCampos(e.Campos)
	return &e, nil
}

func (r *repositoryImpl) SalvarEtapa(db *gorm.DB, e *FormEtapa) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) RemoverEtapa(db *gorm.DB, id uint) error {
	return db.Select("Campos").Delete(&FormEtapa{ID: id}).Error
}

func (r *repositoryImpl) CampoPorID(db *gorm.DB, id uint) (*FormCampo, error) {
	var c FormCampo
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) SalvarCampo(db *gorm.DB, c *FormCampo) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) RemoverCampo(db *gorm.DB, id uint) error {
	return db.Delete(&FormCampo{}, id).Error
}

func ordenaCampos(campos []FormCampo) {
	sort.SliceStable(campos, func(i, j int) bool {
		if campos[i].Ordem != campos[j].Ordem {
			return campos[i].Ordem < campos[j].Ordem
		}
		return campos[i].ID < campos[j].ID
	})
}
