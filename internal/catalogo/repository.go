// internal/catalogo/repository.go
package catalogo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNaoEncontrado é devolvido quando um ID não existe no catálogo.
var ErrNaoEncontrado = errors.New("registro de catálogo não encontrado")

// Repository é o acesso de leitura ao catálogo. É injetado no resolvedor
// e no pipeline de solicitação; não há estado global de catálogo.
type Repository interface {
	ProdutoTipos() ([]ProdutoTipo, error)
	ProdutoTipoPorID(id uint) (*ProdutoTipo, error)
	ProdutoModeloPorID(id uint) (*ProdutoModelo, error)
	ModelosPorTipo(tipoID uint) ([]ProdutoModelo, error)

	Formatos() ([]Formato, error)
	FormatoPorID(id uint) (*Formato, error)

	Substratos() ([]Substrato, error)
	SubstratoPorID(id uint) (*Substrato, error)

	ModosImpressao() ([]ModoImpressao, error)
	ModoImpressaoPorID(id uint) (*ModoImpressao, error)
	CombinacaoPorID(id uint) (*CombinacaoImpressao, error)

	TiposAlca() ([]TipoAlca, error)
	TipoAlcaPorID(id uint) (*TipoAlca, error)

	Acabamentos() ([]Acabamento, error)
	ModelosReforco() ([]ModeloReforco, error)
	ModelosFitaFuro() ([]ModeloFitaFuro, error)

	TiposAcondicionamento() ([]TipoAcondicionamento, error)
	TipoAcondicionamentoPorID(id uint) (*TipoAcondicionamento, error)

	Modulos() ([]ModuloAcondicionamento, error)
	ModuloPorID(id uint) (*ModuloAcondicionamento, error)

	TiposEnobrecimento() ([]TipoEnobrecimento, error)
	TipoEnobrecimentoPorID(id uint) (*TipoEnobrecimento, error)

	// PermissoesPorModelo devolve os IDs de opção permitidos para o
	// modelo na categoria, na ordem configurada pelo admin.
	PermissoesPorModelo(modeloID uint, categoria Categoria) ([]uint, error)
	// RestricoesAlca devolve os valores permitidos da sub-categoria de
	// alça; lista vazia significa "sem restrição configurada".
	RestricoesAlca(modeloID uint, categoria CategoriaAlca) ([]string, error)
	// RegraPorFormato devolve a regra de defaults do par (modelo,
	// formato), ou nil quando não há regra.
	RegraPorFormato(modeloID, formatoID uint) (*RegraFormato, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository cria o repositório de catálogo sobre o banco.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ProdutoTipos() ([]ProdutoTipo, error) {
	var list []ProdutoTipo
	err := r.db.Order("nome").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ProdutoTipoPorID(id uint) (*ProdutoTipo, error) {
	var t ProdutoTipo
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &t, nil
}

func (r *repositoryImpl) ProdutoModeloPorID(id uint) (*ProdutoModelo, error) {
	var m ProdutoModelo
	err := r.db.
		Preload("Variacoes").
		Preload("RegrasFormato").
		First(&m, id).Error
	if err != nil {
		return nil, traduzErro(err)
	}
	return &m, nil
}

func (r *repositoryImpl) ModelosPorTipo(tipoID uint) ([]ProdutoModelo, error) {
	var list []ProdutoModelo
	err := r.db.
		Where("produto_tipo_id = ?", tipoID).
		Preload("Variacoes").
		Order("nome").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Formatos() ([]Formato, error) {
	var list []Formato
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) FormatoPorID(id uint) (*Formato, error) {
	var f Formato
	if err := r.db.First(&f, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &f, nil
}

func (r *repositoryImpl) Substratos() ([]Substrato, error) {
	var list []Substrato
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) SubstratoPorID(id uint) (*Substrato, error) {
	var s Substrato
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &s, nil
}

func (r *repositoryImpl) ModosImpressao() ([]ModoImpressao, error) {
	var list []ModoImpressao
	err := r.db.Preload("Combinacoes").Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ModoImpressaoPorID(id uint) (*ModoImpressao, error) {
	var m ModoImpressao
	if err := r.db.Preload("Combinacoes").First(&m, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &m, nil
}

func (r *repositoryImpl) CombinacaoPorID(id uint) (*CombinacaoImpressao, error) {
	var c CombinacaoImpressao
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &c, nil
}

func (r *repositoryImpl) TiposAlca() ([]TipoAlca, error) {
	var list []TipoAlca
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) TipoAlcaPorID(id uint) (*TipoAlca, error) {
	var t TipoAlca
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &t, nil
}

func (r *repositoryImpl) Acabamentos() ([]Acabamento, error) {
	var list []Acabamento
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ModelosReforco() ([]ModeloReforco, error) {
	var list []ModeloReforco
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ModelosFitaFuro() ([]ModeloFitaFuro, error) {
	var list []ModeloFitaFuro
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) TiposAcondicionamento() ([]TipoAcondicionamento, error) {
	var list []TipoAcondicionamento
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) TipoAcondicionamentoPorID(id uint) (*TipoAcondicionamento, error) {
	var t TipoAcondicionamento
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &t, nil
}

func (r *repositoryImpl) Modulos() ([]ModuloAcondicionamento, error) {
	var list []ModuloAcondicionamento
	err := r.db.Order("quantidade").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ModuloPorID(id uint) (*ModuloAcondicionamento, error) {
	var m ModuloAcondicionamento
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &m, nil
}

func (r *repositoryImpl) TiposEnobrecimento() ([]TipoEnobrecimento, error) {
	var list []TipoEnobrecimento
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) TipoEnobrecimentoPorID(id uint) (*TipoEnobrecimento, error) {
	var t TipoEnobrecimento
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, traduzErro(err)
	}
	return &t, nil
}

func (r *repositoryImpl) PermissoesPorModelo(modeloID uint, categoria Categoria) ([]uint, error) {
	var perms []PermissaoOpcao
	err := r.db.
		Where("produto_modelo_id = ? AND categoria = ?", modeloID, categoria).
		Order("ordem, id").
		Find(&perms).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(perms))
	for _, p := range perms {
		ids = append(ids, p.OpcaoID)
	}
	return ids, nil
}

func (r *repositoryImpl) RestricoesAlca(modeloID uint, categoria CategoriaAlca) ([]string, error) {
	var restricoes []RestricaoAlca
	err := r.db.
		Where("produto_modelo_id = ? AND categoria = ?", modeloID, categoria).
		Order("ordem, id").
		Find(&restricoes).Error
	if err != nil {
		return nil, err
	}
	valores := make([]string, 0, len(restricoes))
	for _, re := range restricoes {
		valores = append(valores, re.Valor)
	}
	return valores, nil
}

func (r *repositoryImpl) RegraPorFormato(modeloID, formatoID uint) (*RegraFormato, error) {
	var regra RegraFormato
	err := r.db.
		Where("produto_modelo_id = ? AND formato_id = ?", modeloID, formatoID).
		First(&regra).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &regra, nil
}

func traduzErro(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNaoEncontrado
	}
	return err
}
