// internal/catalogo/seed.go
package catalogo

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Seed popula o catálogo inicial quando o banco está vazio. Os dados de
// produção são mantidos pelo admin depois disso.
func Seed(db *gorm.DB) error {
	var total int64
	if err := db.Model(&ProdutoTipo{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	log.Println("Catálogo vazio, aplicando seed inicial")

	tipos := []ProdutoTipo{
		{Codigo: "SACOLA", Nome: "Sacola de Papel", TiragemMinima: intPtr(1000)},
		{Codigo: "SACO", Nome: "Saco de Papel", TiragemMinima: intPtr(5000)},
		{Codigo: "ENVELOPE", Nome: "Envelope", TiragemMinima: intPtr(2000)},
	}
	if err := db.Create(&tipos).Error; err != nil {
		return err
	}

	formatos := []Formato{
		{Nome: "Pequeno (18x24x8)", Largura: 18, Altura: 24, Lateral: floatPtr(8)},
		{Nome: "Médio (25x32x10)", Largura: 25, Altura: 32, Lateral: floatPtr(10)},
		{Nome: "Grande (32x42x12)", Largura: 32, Altura: 42, Lateral: floatPtr(12)},
		{Nome: "Saco 1kg (14x28)", Largura: 14, Altura: 28},
		{Nome: "Saco 2kg (17x34)", Largura: 17, Altura: 34},
		{Nome: "Envelope Ofício (24x34)", Largura: 24, Altura: 34},
		{Nome: "Outro (Desenvolvimento)", AceitaDesenvolvimento: true},
	}
	if err := db.Create(&formatos).Error; err != nil {
		return err
	}

	substratos := []Substrato{
		{Nome: "Kraft Natural", Gramaturas: datatypes.NewJSONSlice([]int{80, 90, 110, 120})},
		{Nome: "Kraft Branco", Gramaturas: datatypes.NewJSONSlice([]int{90, 110, 120})},
		{Nome: "Papel Offset", Gramaturas: datatypes.NewJSONSlice([]int{120, 150, 180})},
		{Nome: "Duplex", Gramaturas: datatypes.NewJSONSlice([]int{250, 300})},
	}
	if err := db.Create(&substratos).Error; err != nil {
		return err
	}

	modos := []ModoImpressao{
		{Nome: "Flexografia", Combinacoes: []CombinacaoImpressao{
			{Nome: "1 cor externa", Cores: 1, Camadas: datatypes.NewJSONSlice([]string{"externa"})},
			{Nome: "2 cores externas", Cores: 2, Camadas: datatypes.NewJSONSlice([]string{"externa"})},
			{Nome: "4 cores externas", Cores: 4, Camadas: datatypes.NewJSONSlice([]string{"externa"})},
			{Nome: "1 cor externa + 1 interna", Cores: 2, Camadas: datatypes.NewJSONSlice([]string{"externa", "interna"})},
		}},
		{Nome: "Offset", Combinacoes: []CombinacaoImpressao{
			{Nome: "4x0", Cores: 4, Camadas: datatypes.NewJSONSlice([]string{"externa"})},
			{Nome: "4x4", Cores: 8, Camadas: datatypes.NewJSONSlice([]string{"externa", "interna"})},
		}},
	}
	if err := db.Create(&modos).Error; err != nil {
		return err
	}

	alcas := []TipoAlca{
		{Nome: "Fita Gorgurão"},
		{Nome: "Cordão de Algodão"},
		{Nome: "Alça Torcida de Papel"},
		{Nome: "Alça Vazada"},
	}
	if err := db.Create(&alcas).Error; err != nil {
		return err
	}

	acabamentos := []Acabamento{
		{Codigo: "reforco_fundo", Nome: "Reforço de Fundo"},
		{Codigo: "fita_furo", Nome: "Fita e Furo"},
		{Codigo: "ilhos", Nome: "Ilhós"},
	}
	if err := db.Create(&acabamentos).Error; err != nil {
		return err
	}
	reforcos := []ModeloReforco{{Nome: "Cartão 250g"}, {Nome: "Cartão 300g"}}
	if err := db.Create(&reforcos).Error; err != nil {
		return err
	}
	fitas := []ModeloFitaFuro{{Nome: "Furo 6mm"}, {Nome: "Furo 8mm"}}
	if err := db.Create(&fitas).Error; err != nil {
		return err
	}

	acond := []TipoAcondicionamento{{Nome: "Caixa de Papelão"}, {Nome: "Fardo Plastificado"}}
	if err := db.Create(&acond).Error; err != nil {
		return err
	}
	modulos := []ModuloAcondicionamento{
		{Nome: "Caixa", Quantidade: 250},
		{Nome: "Caixa", Quantidade: 500},
		{Nome: "Fardo", Quantidade: 1000},
	}
	if err := db.Create(&modulos).Error; err != nil {
		return err
	}

	enob := []TipoEnobrecimento{
		{Codigo: "hot_stamping", Nome: "Hot Stamping"},
		{Codigo: "relevo_seco", Nome: "Relevo Seco"},
		{Codigo: "laminacao_fosca", Nome: "Laminação Fosca"},
		{Codigo: "verniz_uv", Nome: "Verniz UV Localizado"},
	}
	if err := db.Create(&enob).Error; err != nil {
		return err
	}

	modelos := []ProdutoModelo{
		{
			ProdutoTipoID: tipos[0].ID, Codigo: "SACOLA-LUXO", Nome: "Sacola Luxo", PermiteAlca: true,
			Variacoes: []ModeloVariacao{
				{
					Codigo: "boutique", Nome: "Boutique",
					FormatosPermitidos: datatypes.NewJSONSlice([]uint{formatos[0].ID, formatos[1].ID}),
					AlcasPermitidas:    datatypes.NewJSONSlice([]uint{alcas[0].ID, alcas[1].ID}),
				},
			},
		},
		{ProdutoTipoID: tipos[0].ID, Codigo: "SACOLA-PADRAO", Nome: "Sacola Padrão", PermiteAlca: true},
		{ProdutoTipoID: tipos[1].ID, Codigo: "SACO-FUNDO-V", Nome: "Saco Fundo V", PermiteAlca: false},
		{ProdutoTipoID: tipos[2].ID, Codigo: "ENVELOPE-OFICIO", Nome: "Envelope Ofício", PermiteAlca: false},
	}
	if err := db.Create(&modelos).Error; err != nil {
		return err
	}

	permite := func(modelo ProdutoModelo, cat Categoria, ids ...uint) []PermissaoOpcao {
		perms := make([]PermissaoOpcao, 0, len(ids))
		for i, id := range ids {
			perms = append(perms, PermissaoOpcao{
				ProdutoModeloID: modelo.ID, Categoria: cat, OpcaoID: id, Ordem: i,
			})
		}
		return perms
	}

	var permissoes []PermissaoOpcao
	// Sacola Luxo: formatos de sacola, substratos nobres, offset.
	permissoes = append(permissoes, permite(modelos[0], CategoriaFormato, formatos[0].ID, formatos[1].ID, formatos[2].ID)...)
	permissoes = append(permissoes, permite(modelos[0], CategoriaSubstrato, substratos[1].ID, substratos[2].ID, substratos[3].ID)...)
	permissoes = append(permissoes, permite(modelos[0], CategoriaModoImpressao, modos[1].ID)...)
	permissoes = append(permissoes, permite(modelos[0], CategoriaCombinacao, modos[1].Combinacoes[0].ID, modos[1].Combinacoes[1].ID)...)
	permissoes = append(permissoes, permite(modelos[0], CategoriaTipoAlca, alcas[0].ID, alcas[1].ID, alcas[2].ID)...)
	permissoes = append(permissoes, permite(modelos[0], CategoriaAcabamento, acabamentos[0].ID, acabamentos[1].ID, acabamentos[2].ID)...)
	permissoes = append(permissoes, permite(modelos[0], CategoriaModeloReforco, reforcos[0].ID, reforcos[1].ID)...)
	permissoes = append(permissoes, permite(modelos[0], CategoriaModeloFitaFuro, fitas[0].ID, fitas[1].ID)...)
	permissoes = append(permissoes, permite(modelos[0], CategoriaAcondicionamento, acond[0].ID)...)
	permissoes = append(permissoes, permite(modelos[0], CategoriaEnobrecimento, enob[0].ID, enob[1].ID, enob[2].ID, enob[3].ID)...)

	// Sacola Padrão: flexografia, kraft.
	permissoes = append(permissoes, permite(modelos[1], CategoriaFormato, formatos[0].ID, formatos[1].ID, formatos[2].ID)...)
	permissoes = append(permissoes, permite(modelos[1], CategoriaSubstrato, substratos[0].ID, substratos[1].ID)...)
	permissoes = append(permissoes, permite(modelos[1], CategoriaModoImpressao, modos[0].ID)...)
	permissoes = append(permissoes, permite(modelos[1], CategoriaCombinacao,
		modos[0].Combinacoes[0].ID, modos[0].Combinacoes[1].ID, modos[0].Combinacoes[2].ID)...)
	permissoes = append(permissoes, permite(modelos[1], CategoriaTipoAlca, alcas[2].ID, alcas[3].ID)...)
	permissoes = append(permissoes, permite(modelos[1], CategoriaAcabamento, acabamentos[0].ID, acabamentos[1].ID)...)
	permissoes = append(permissoes, permite(modelos[1], CategoriaModeloReforco, reforcos[0].ID)...)
	permissoes = append(permissoes, permite(modelos[1], CategoriaModeloFitaFuro, fitas[0].ID, fitas[1].ID)...)
	permissoes = append(permissoes, permite(modelos[1], CategoriaAcondicionamento, acond[0].ID, acond[1].ID)...)
	permissoes = append(permissoes, permite(modelos[1], CategoriaEnobrecimento, enob[3].ID)...)

	// Saco Fundo V: formatos de saco, flexografia básica.
	permissoes = append(permissoes, permite(modelos[2], CategoriaFormato, formatos[3].ID, formatos[4].ID)...)
	permissoes = append(permissoes, permite(modelos[2], CategoriaSubstrato, substratos[0].ID)...)
	permissoes = append(permissoes, permite(modelos[2], CategoriaModoImpressao, modos[0].ID)...)
	permissoes = append(permissoes, permite(modelos[2], CategoriaCombinacao,
		modos[0].Combinacoes[0].ID, modos[0].Combinacoes[3].ID)...)
	permissoes = append(permissoes, permite(modelos[2], CategoriaAcondicionamento, acond[1].ID)...)

	// Envelope Ofício.
	permissoes = append(permissoes, permite(modelos[3], CategoriaFormato, formatos[5].ID)...)
	permissoes = append(permissoes, permite(modelos[3], CategoriaSubstrato, substratos[2].ID)...)
	permissoes = append(permissoes, permite(modelos[3], CategoriaModoImpressao, modos[1].ID)...)
	permissoes = append(permissoes, permite(modelos[3], CategoriaCombinacao, modos[1].Combinacoes[0].ID)...)
	permissoes = append(permissoes, permite(modelos[3], CategoriaAcondicionamento, acond[0].ID)...)

	if err := db.Create(&permissoes).Error; err != nil {
		return err
	}

	restricoes := []RestricaoAlca{
		{ProdutoModeloID: modelos[0].ID, Categoria: CategoriaAlcaCor, Valor: "Preta", Ordem: 0},
		{ProdutoModeloID: modelos[0].ID, Categoria: CategoriaAlcaCor, Valor: "Dourada", Ordem: 1},
		{ProdutoModeloID: modelos[0].ID, Categoria: CategoriaAlcaCor, Valor: "Personalizada", Ordem: 2},
	}
	if err := db.Create(&restricoes).Error; err != nil {
		return err
	}

	regras := []RegraFormato{
		{ProdutoModeloID: modelos[1].ID, FormatoID: formatos[0].ID, ModuloPadraoQuantidade: 250},
		{ProdutoModeloID: modelos[1].ID, FormatoID: formatos[1].ID, ModuloPadraoQuantidade: 500},
		{ProdutoModeloID: modelos[2].ID, FormatoID: formatos[3].ID, ModuloPadraoQuantidade: 1000},
	}
	return db.Create(&regras).Error
}
