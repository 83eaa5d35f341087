// internal/solicitacao/payload.go
//
// Montagem do payload enviado ao sistema comercial: todos os IDs de
// catálogo viram nomes legíveis, e seleções escaladas para engenharia
// são renderizadas como "Outro - <descrição>".
package solicitacao

import (
	"fmt"

	"github.com/EmbalaFlex/api-orcamentos/internal/catalogo"
)

type PayloadWebhook struct {
	Protocolo string `json:"protocolo"`

	DadosGerais struct {
		Vendedor      string `json:"vendedor"`
		Contato       string `json:"contato"`
		Marca         string `json:"marca"`
		CodigoMetrics string `json:"codigoMetrics"`
	} `json:"dadosGerais"`

	CondicoesVenda struct {
		TipoContrato      string `json:"tipoContrato"`
		Imposto           string `json:"imposto"`
		CondicaoPagamento string `json:"condicaoPagamento"`
		Royalties         string `json:"royalties"`
		BVAgencia         string `json:"bvAgencia"`
	} `json:"condicoesVenda"`

	Entregas struct {
		Frete           string `json:"frete"`
		CidadeUF        string `json:"cidadeUF"`
		CidadesUF       string `json:"cidadesUF"`
		NumeroEntregas  string `json:"numeroEntregas"`
		Frequencia      string `json:"frequencia"`
		LocalUnico      *bool  `json:"localUnico"`
		PedidoMinimoCIF string `json:"pedidoMinimoCIF"`
	} `json:"entregas"`

	Produto struct {
		Tipo       string `json:"tipo"`
		Modelo     string `json:"modelo"`
		Variacao   string `json:"variacao,omitempty"`
		Quantidade int    `json:"quantidade"`
	} `json:"produto"`

	Especificacao struct {
		Formato             string   `json:"formato"`
		Largura             string   `json:"largura,omitempty"`
		Altura              string   `json:"altura,omitempty"`
		Lateral             string   `json:"lateral,omitempty"`
		LarguraSacoFundoV   string   `json:"larguraSacoFundoV,omitempty"`
		Substrato           string   `json:"substrato"`
		Gramatura           string   `json:"gramatura,omitempty"`
		TipoAlca            string   `json:"tipoAlca,omitempty"`
		AlcaAplicacao       string   `json:"alcaAplicacao,omitempty"`
		AlcaLargura         string   `json:"alcaLargura,omitempty"`
		AlcaCor             string   `json:"alcaCor,omitempty"`
		ModoImpressao       string   `json:"modoImpressao,omitempty"`
		Combinacao          string   `json:"combinacao,omitempty"`
		Camadas             []string `json:"camadas,omitempty"`
		ReforcoFundo        string   `json:"reforcoFundo,omitempty"`
		FitaFuro            string   `json:"fitaFuro,omitempty"`
		Ilhos               bool     `json:"ilhos"`
		Acondicionamento    string   `json:"acondicionamento,omitempty"`
		Modulo              string   `json:"modulo,omitempty"`
		QuantidadePorModulo int      `json:"quantidadePorModulo,omitempty"`
	} `json:"especificacao"`

	Enobrecimentos []PayloadEnobrecimento `json:"enobrecimentos,omitempty"`

	Observacoes           string `json:"observacoes,omitempty"`
	ObservacoesEngenharia string `json:"observacoesEngenharia,omitempty"`
}

type PayloadEnobrecimento struct {
	Tipo        string                 `json:"tipo"`
	Dados       map[string]interface{} `json:"dados,omitempty"`
	Observacoes string                 `json:"observacoes,omitempty"`
}

// MontarPayloadWebhook resolve os nomes de catálogo da solicitação. Erros
// de lookup não derrubam a montagem: o campo sai vazio e o registro
// persistido continua sendo a fonte da verdade.
func MontarPayloadWebhook(s *Solicitacao, repo catalogo.Repository) *PayloadWebhook {
	p := &PayloadWebhook{Protocolo: s.Protocolo}

	p.DadosGerais.Vendedor = s.Vendedor
	p.DadosGerais.Contato = s.Contato
	p.DadosGerais.Marca = s.Marca
	p.DadosGerais.CodigoMetrics = s.CodigoMetrics

	p.CondicoesVenda.TipoContrato = s.TipoContrato
	p.CondicoesVenda.Imposto = s.Imposto
	p.CondicoesVenda.CondicaoPagamento = ouDescricao(s.CondicaoPagamento, s.CondicaoPagamentoOutra)
	p.CondicoesVenda.Royalties = s.Royalties
	p.CondicoesVenda.BVAgencia = s.BVAgencia

	p.Entregas.Frete = s.Frete
	p.Entregas.CidadeUF = s.CidadeUF
	p.Entregas.CidadesUF = s.CidadesUF
	p.Entregas.NumeroEntregas = s.NumeroEntregas
	p.Entregas.Frequencia = ouDescricao(s.Frequencia, s.FrequenciaOutra)
	p.Entregas.LocalUnico = s.LocalUnico
	p.Entregas.PedidoMinimoCIF = s.PedidoMinimoCIF

	item := &s.Item
	p.Produto.Variacao = item.Variacao
	p.Produto.Quantidade = item.Quantidade
	if item.ProdutoTipoID != nil {
		if t, err := repo.ProdutoTipoPorID(*item.ProdutoTipoID); err == nil {
			p.Produto.Tipo = t.Nome
		}
	}
	if item.ProdutoModeloID != nil {
		if m, err := repo.ProdutoModeloPorID(*item.ProdutoModeloID); err == nil {
			p.Produto.Modelo = m.Nome
		}
	}

	e := &p.Especificacao
	e.Formato = nomeOuEscalado(item.FormatoID, item.FormatoDescricao, func(id uint) (string, error) {
		f, err := repo.FormatoPorID(id)
		if err != nil {
			return "", err
		}
		return f.Nome, nil
	})
	e.Largura = item.Largura
	e.Altura = item.Altura
	e.Lateral = item.Lateral
	e.LarguraSacoFundoV = item.LarguraSacoFundoV

	e.Substrato = nomeOuEscalado(item.SubstratoID, item.SubstratoDescricao, func(id uint) (string, error) {
		s, err := repo.SubstratoPorID(id)
		if err != nil {
			return "", err
		}
		return s.Nome, nil
	})
	e.Gramatura = item.Gramatura

	e.TipoAlca = nomeOuEscalado(item.TipoAlcaID, item.AlcaDescricao, func(id uint) (string, error) {
		t, err := repo.TipoAlcaPorID(id)
		if err != nil {
			return "", err
		}
		return t.Nome, nil
	})
	e.AlcaAplicacao = item.AlcaAplicacao
	e.AlcaLargura = item.AlcaLargura
	e.AlcaCor = item.AlcaCor

	e.ModoImpressao = nomeOuEscalado(item.ModoImpressaoID, item.ImpressaoDescricao, func(id uint) (string, error) {
		m, err := repo.ModoImpressaoPorID(id)
		if err != nil {
			return "", err
		}
		return m.Nome, nil
	})
	if item.CombinacaoImpressaoID != nil {
		if c, err := repo.CombinacaoPorID(*item.CombinacaoImpressaoID); err == nil {
			e.Combinacao = c.Nome
		}
	}
	e.Camadas = item.Camadas

	if item.ReforcoFundo {
		e.ReforcoFundo = "Sim"
		if item.ReforcoModeloID != nil {
			if modelos, err := repo.ModelosReforco(); err == nil {
				for _, m := range modelos {
					if m.ID == *item.ReforcoModeloID {
						e.ReforcoFundo = m.Nome
						break
					}
				}
			}
		}
	}
	if item.FitaFuro {
		e.FitaFuro = "Sim"
		if item.FitaFuroModeloID != nil {
			if modelos, err := repo.ModelosFitaFuro(); err == nil {
				for _, m := range modelos {
					if m.ID == *item.FitaFuroModeloID {
						e.FitaFuro = m.Nome
						break
					}
				}
			}
		}
	}
	e.Ilhos = item.Ilhos

	e.Acondicionamento = nomeOuEscalado(item.AcondicionamentoID, item.AcondicionamentoDescricao, func(id uint) (string, error) {
		t, err := repo.TipoAcondicionamentoPorID(id)
		if err != nil {
			return "", err
		}
		return t.Nome, nil
	})
	if item.ModuloID != nil {
		if m, err := repo.ModuloPorID(*item.ModuloID); err == nil {
			e.Modulo = fmt.Sprintf("%s (%d un)", m.Nome, m.Quantidade)
		}
	}
	e.QuantidadePorModulo = item.QuantidadePorModulo

	for _, en := range s.Enobrecimentos {
		pe := PayloadEnobrecimento{Dados: en.Dados, Observacoes: en.Observacoes}
		if en.TipoEnobrecimentoID != nil {
			if t, err := repo.TipoEnobrecimentoPorID(*en.TipoEnobrecimentoID); err == nil {
				pe.Tipo = t.Nome
			}
		} else if en.TipoDescricao != "" {
			pe.Tipo = "Outro - " + en.TipoDescricao
		}
		p.Enobrecimentos = append(p.Enobrecimentos, pe)
	}

	p.Observacoes = s.Observacoes
	p.ObservacoesEngenharia = s.ObservacoesEngenharia
	return p
}

// nomeOuEscalado resolve o nome de catálogo ou marca a seleção escalada.
func nomeOuEscalado(id *uint, descricao string, busca func(uint) (string, error)) string {
	if id != nil {
		if nome, err := busca(*id); err == nil {
			return nome
		}
		return ""
	}
	if descricao != "" {
		return "Outro - " + descricao
	}
	return ""
}

// ouDescricao troca o sentinela "Outra: Informar" pela descrição digitada.
func ouDescricao(valor, descricao string) string {
	if descricao != "" {
		return descricao
	}
	return valor
}
