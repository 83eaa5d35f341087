// internal/catalogo/memoria.go
package catalogo

// MemRepository é uma implementação em memória do Repository, usada nos
// testes do resolvedor e do pipeline com catálogos de fixture.
type MemRepository struct {
	Tipos             []ProdutoTipo
	Modelos           []ProdutoModelo
	ListaFormatos     []Formato
	ListaSubstratos   []Substrato
	Modos             []ModoImpressao
	Alcas             []TipoAlca
	ListaAcabamentos  []Acabamento
	Reforcos          []ModeloReforco
	FitasFuro         []ModeloFitaFuro
	Acondicionamentos []TipoAcondicionamento
	ListaModulos      []ModuloAcondicionamento
	Enobrecimentos    []TipoEnobrecimento
	Permissoes        []PermissaoOpcao
	Restricoes        []RestricaoAlca
	Regras            []RegraFormato
}

var _ Repository = (*MemRepository)(nil)

func (m *MemRepository) ProdutoTipos() ([]ProdutoTipo, error) { return m.Tipos, nil }

func (m *MemRepository) ProdutoTipoPorID(id uint) (*ProdutoTipo, error) {
	for i := range m.Tipos {
		if m.Tipos[i].ID == id {
			return &m.Tipos[i], nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) ProdutoModeloPorID(id uint) (*ProdutoModelo, error) {
	for i := range m.Modelos {
		if m.Modelos[i].ID == id {
			modelo := m.Modelos[i]
			for _, regra := range m.Regras {
				if regra.ProdutoModeloID == id {
					modelo.RegrasFormato = append(modelo.RegrasFormato, regra)
				}
			}
			return &modelo, nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) ModelosPorTipo(tipoID uint) ([]ProdutoModelo, error) {
	var out []ProdutoModelo
	for _, mo := range m.Modelos {
		if mo.ProdutoTipoID == tipoID {
			out = append(out, mo)
		}
	}
	return out, nil
}

func (m *MemRepository) Formatos() ([]Formato, error) { return m.ListaFormatos, nil }

func (m *MemRepository) FormatoPorID(id uint) (*Formato, error) {
	for i := range m.ListaFormatos {
		if m.ListaFormatos[i].ID == id {
			return &m.ListaFormatos[i], nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) Substratos() ([]Substrato, error) { return m.ListaSubstratos, nil }

func (m *MemRepository) SubstratoPorID(id uint) (*Substrato, error) {
	for i := range m.ListaSubstratos {
		if m.ListaSubstratos[i].ID == id {
			return &m.ListaSubstratos[i], nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) ModosImpressao() ([]ModoImpressao, error) { return m.Modos, nil }

func (m *MemRepository) ModoImpressaoPorID(id uint) (*ModoImpressao, error) {
	for i := range m.Modos {
		if m.Modos[i].ID == id {
			return &m.Modos[i], nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) CombinacaoPorID(id uint) (*CombinacaoImpressao, error) {
	for i := range m.Modos {
		for j := range m.Modos[i].Combinacoes {
			if m.Modos[i].Combinacoes[j].ID == id {
				return &m.Modos[i].Combinacoes[j], nil
			}
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) TiposAlca() ([]TipoAlca, error) { return m.Alcas, nil }

func (m *MemRepository) TipoAlcaPorID(id uint) (*TipoAlca, error) {
	for i := range m.Alcas {
		if m.Alcas[i].ID == id {
			return &m.Alcas[i], nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) Acabamentos() ([]Acabamento, error)       { return m.ListaAcabamentos, nil }
func (m *MemRepository) ModelosReforco() ([]ModeloReforco, error) { return m.Reforcos, nil }
func (m *MemRepository) ModelosFitaFuro() ([]ModeloFitaFuro, error) {
	return m.FitasFuro, nil
}

func (m *MemRepository) TiposAcondicionamento() ([]TipoAcondicionamento, error) {
	return m.Acondicionamentos, nil
}

func (m *MemRepository) TipoAcondicionamentoPorID(id uint) (*TipoAcondicionamento, error) {
	for i := range m.Acondicionamentos {
		if m.Acondicionamentos[i].ID == id {
			return &m.Acondicionamentos[i], nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) Modulos() ([]ModuloAcondicionamento, error) { return m.ListaModulos, nil }

func (m *MemRepository) ModuloPorID(id uint) (*ModuloAcondicionamento, error) {
	for i := range m.ListaModulos {
		if m.ListaModulos[i].ID == id {
			return &m.ListaModulos[i], nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) TiposEnobrecimento() ([]TipoEnobrecimento, error) {
	return m.Enobrecimentos, nil
}

func (m *MemRepository) TipoEnobrecimentoPorID(id uint) (*TipoEnobrecimento, error) {
	for i := range m.Enobrecimentos {
		if m.Enobrecimentos[i].ID == id {
			return &m.Enobrecimentos[i], nil
		}
	}
	return nil, ErrNaoEncontrado
}

func (m *MemRepository) PermissoesPorModelo(modeloID uint, categoria Categoria) ([]uint, error) {
	ids := []uint{}
	for _, p := range m.Permissoes {
		if p.ProdutoModeloID == modeloID && p.Categoria == categoria {
			ids = append(ids, p.OpcaoID)
		}
	}
	return ids, nil
}

func (m *MemRepository) RestricoesAlca(modeloID uint, categoria CategoriaAlca) ([]string, error) {
	valores := []string{}
	for _, re := range m.Restricoes {
		if re.ProdutoModeloID == modeloID && re.Categoria == categoria {
			valores = append(valores, re.Valor)
		}
	}
	return valores, nil
}

func (m *MemRepository) RegraPorFormato(modeloID, formatoID uint) (*RegraFormato, error) {
	for i := range m.Regras {
		if m.Regras[i].ProdutoModeloID == modeloID && m.Regras[i].FormatoID == formatoID {
			return &m.Regras[i], nil
		}
	}
	return nil, nil
}
