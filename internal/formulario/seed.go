// internal/formulario/seed.go
package formulario

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seed grava o formulário padrão do assistente quando o banco está
// vazio. O admin edita a partir daqui; rodar de novo não sobrescreve.
func Seed(db *gorm.DB) error {
	var total int64
	if err := db.Model(&FormEtapa{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	etapas := []FormEtapa{
		{
			Codigo: "dados_gerais", Titulo: "Dados Gerais", Ordem: 1,
			Campos: []FormCampo{
				{Titulo: "Vendedor", Tipo: TipoTextoCurto, Obrigatorio: true, Ordem: 1, CampoMapeado: "dadosGerais.vendedor"},
				{Titulo: "Contato do cliente", Tipo: TipoTextoCurto, Obrigatorio: true, Ordem: 2, CampoMapeado: "dadosGerais.contato"},
				{Titulo: "Marca", Tipo: TipoTextoCurto, Obrigatorio: true, Ordem: 3, CampoMapeado: "dadosGerais.marca"},
				{Titulo: "Código Metrics", Tipo: TipoTextoCurto, Obrigatorio: true, Ordem: 4, CampoMapeado: "dadosGerais.codigoMetrics"},
			},
		},
		{
			Codigo: "condicoes_venda", Titulo: "Condições de Venda", Ordem: 2,
			Campos: []FormCampo{
				{Titulo: "Tipo de contrato", Tipo: TipoSelecao, Obrigatorio: true, Ordem: 1, CampoMapeado: "condicoesVenda.tipoContrato",
					Opcoes: datatypes.NewJSONSlice([]string{"SPOT", "PRG", "JIT"})},
				{Titulo: "Imposto", Tipo: TipoSelecao, Obrigatorio: true, Ordem: 2, CampoMapeado: "condicoesVenda.imposto",
					Opcoes: datatypes.NewJSONSlice([]string{"Incluso", "Não incluso"})},
				{Titulo: "Condição de pagamento", Tipo: TipoSelecao, Obrigatorio: true, Ordem: 3, CampoMapeado: "condicoesVenda.condicaoPagamento",
					Opcoes: datatypes.NewJSONSlice([]string{"À vista", "28 dias", "45 dias", "60 dias", "Outra: Informar"})},
				{Titulo: "Royalties", Tipo: TipoTextoCurto, Ordem: 4, CampoMapeado: "condicoesVenda.royalties"},
				{Titulo: "BV de agência", Tipo: TipoTextoCurto, Ordem: 5, CampoMapeado: "condicoesVenda.bvAgencia"},
			},
		},
		{
			Codigo: "entregas", Titulo: "Entregas", Ordem: 3,
			Campos: []FormCampo{
				{Titulo: "Frete", Tipo: TipoSelecao, Obrigatorio: true, Ordem: 1, CampoMapeado: "entregas.frete",
					Opcoes: datatypes.NewJSONSlice([]string{"CIF", "FOB"})},
				{Titulo: "Cidade/UF", Tipo: TipoTextoCurto, Ordem: 2, CampoMapeado: "entregas.cidadeUF"},
				{Titulo: "Cidades/UF (múltiplas)", Tipo: TipoTextoLongo, Ordem: 3, CampoMapeado: "entregas.cidadesUF"},
				{Titulo: "Número de entregas", Tipo: TipoNumero, Ordem: 4, CampoMapeado: "entregas.numeroEntregas"},
				{Titulo: "Frequência", Tipo: TipoSelecao, Ordem: 5, CampoMapeado: "entregas.frequencia",
					Opcoes: datatypes.NewJSONSlice([]string{"Única", "Semanal", "Quinzenal", "Mensal", "Outra: Informar"})},
				{Titulo: "Local único de entrega?", Tipo: TipoBooleano, Ordem: 6, CampoMapeado: "entregas.localUnico"},
				{Titulo: "Pedido mínimo CIF", Tipo: TipoTextoCurto, Ordem: 7, CampoMapeado: "entregas.pedidoMinimoCIF"},
			},
		},
		{
			Codigo: "produto", Titulo: "Produto", Ordem: 4,
			Campos: []FormCampo{
				{Titulo: "Produto", Tipo: TipoProduto, Obrigatorio: true, Ordem: 1, CampoMapeado: "produto.produtoTipoId", ChaveSistema: "produto"},
				{Titulo: "Modelo", Tipo: TipoModelo, Obrigatorio: true, Ordem: 2, CampoMapeado: "produto.produtoModeloId", ChaveSistema: "modelo"},
				{Titulo: "Quantidade", Tipo: TipoNumero, Obrigatorio: true, Ordem: 3, CampoMapeado: "produto.quantidade", ChaveSistema: "quantidade"},
			},
		},
		{
			Codigo: "formato", Titulo: "Formato", Ordem: 5,
			Campos: []FormCampo{
				{Titulo: "Formato padrão", Tipo: TipoSelecao, Ordem: 1, CampoMapeado: "formato.formatoPadraoId", ChaveSistema: "formato_padrao"},
				{Titulo: "Largura (cm)", Tipo: TipoNumero, Ordem: 2, CampoMapeado: "formato.largura"},
				{Titulo: "Altura (cm)", Tipo: TipoNumero, Ordem: 3, CampoMapeado: "formato.altura"},
				{Titulo: "Lateral (cm)", Tipo: TipoNumero, Ordem: 4, CampoMapeado: "formato.lateral"},
				{Titulo: "Largura do saco fundo V", Tipo: TipoNumero, Ordem: 5, CampoMapeado: "formato.larguraSacoFundoV"},
				{Titulo: "Descrição do desenvolvimento", Tipo: TipoTextoLongo, Ordem: 6, CampoMapeado: "formato.desenvolvimentoDescricao"},
			},
		},
		{
			Codigo: "substrato", Titulo: "Substrato", Ordem: 6,
			Campos: []FormCampo{
				{Titulo: "Substrato", Tipo: TipoSelecao, Obrigatorio: true, Ordem: 1, CampoMapeado: "substrato.substratoId", ChaveSistema: "substrato"},
				{Titulo: "Gramatura", Tipo: TipoSelecao, Ordem: 2, CampoMapeado: "substrato.gramatura"},
			},
		},
		{
			Codigo: "alca", Titulo: "Alça", Ordem: 7,
			Campos: []FormCampo{
				{Titulo: "Tipo de alça", Tipo: TipoSelecao, Ordem: 1, CampoMapeado: "alca.tipoId", ChaveSistema: "alca_tipo"},
			},
		},
		{
			Codigo: "alca_detalhes", Titulo: "Detalhes da Alça", Ordem: 8, Opcional: true,
			Campos: []FormCampo{
				{Titulo: "Aplicação", Tipo: TipoSelecao, Ordem: 1, CampoMapeado: "alca.aplicacao", ChaveSistema: "alca_aplicacao"},
				{Titulo: "Largura", Tipo: TipoSelecao, Ordem: 2, CampoMapeado: "alca.largura", ChaveSistema: "alca_largura"},
				{Titulo: "Cor", Tipo: TipoSelecao, Ordem: 3, CampoMapeado: "alca.cor", ChaveSistema: "alca_cor"},
			},
		},
		{
			Codigo: "impressao", Titulo: "Impressão", Ordem: 9, Opcional: true,
			Campos: []FormCampo{
				{Titulo: "Modo de impressão", Tipo: TipoSelecao, Ordem: 1, CampoMapeado: "impressao.modoId", ChaveSistema: "impressao_modo"},
				{Titulo: "Combinação de cores", Tipo: TipoSelecao, Ordem: 2, CampoMapeado: "impressao.combinacaoId", ChaveSistema: "impressao_combinacao"},
			},
		},
		{
			Codigo: "acabamentos", Titulo: "Acabamentos", Ordem: 10, Opcional: true,
			Campos: []FormCampo{
				{Titulo: "Modelo de reforço de fundo", Tipo: TipoSelecao, Ordem: 1, CampoMapeado: "acabamentos.reforcoModeloId", ChaveSistema: "acabamento_reforco"},
				{Titulo: "Modelo de fita e furo", Tipo: TipoSelecao, Ordem: 2, CampoMapeado: "acabamentos.fitaFuroModeloId", ChaveSistema: "acabamento_fita_furo"},
			},
		},
		{
			Codigo: "acondicionamento", Titulo: "Acondicionamento", Ordem: 11,
			Campos: []FormCampo{
				{Titulo: "Tipo de acondicionamento", Tipo: TipoSelecao, Obrigatorio: true, Ordem: 1, CampoMapeado: "acondicionamento.tipoId", ChaveSistema: "acondicionamento"},
				{Titulo: "Módulo", Tipo: TipoSelecao, Ordem: 2, CampoMapeado: "acondicionamento.moduloId", ChaveSistema: "modulo"},
				{Titulo: "Quantidade por módulo", Tipo: TipoNumero, Obrigatorio: true, Ordem: 3, CampoMapeado: "acondicionamento.quantidade"},
			},
		},
		{
			Codigo: "enobrecimentos", Titulo: "Enobrecimentos", Ordem: 12, Opcional: true,
			Campos: []FormCampo{
				{Titulo: "Tipo de enobrecimento", Tipo: TipoSelecao, Ordem: 1, CampoMapeado: "enobrecimentos.tipoId", ChaveSistema: "enobrecimento"},
			},
		},
		{
			Codigo: "revisao", Titulo: "Revisão", Ordem: 13, Opcional: true,
			Campos: []FormCampo{
				{Titulo: "Observações", Tipo: TipoTextoLongo, Ordem: 1, CampoMapeado: "observacoes"},
			},
		},
	}

	for i := range etapas {
		etapas[i].Ativo = true
		if err := db.Create(&etapas[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
