package models

// Reference lists offered to clients for form population. They are not enforced
// on write: any category string is accepted.

// MaterialCategories material categories
var MaterialCategories = []string{
	"Velas",
	"Ervas",
	"Incensos",
	"Óleos Essenciais",
	"Cristais e Pedras",
	"Imagens e Santos",
	"Instrumentos Musicais",
	"Tecidos e Roupas",
	"Bebidas Ritualísticas",
	"Flores",
	"Charutos e Cigarros",
	"Perfumes",
	"Pólvoras e Pemba",
	"Utensílios Diversos",
	"Limpeza do Templo",
	"Outros Materiais",
}

// MaterialSubcategories subcategories for the categories that have them
var MaterialSubcategories = map[string][]string{
	"Velas":                 {"Branca", "Vermelha", "Azul", "Amarela", "Verde", "Rosa", "Roxa", "Preta", "Dourada", "Prateada"},
	"Ervas":                 {"Arruda", "Guiné", "Alecrim", "Manjericão", "Espada de São Jorge", "Comigo-ninguém-pode", "Outras"},
	"Incensos":              {"Sândalo", "Mirra", "Benjoim", "Olíbano", "Lavanda", "Rosa", "Outros"},
	"Cristais e Pedras":     {"Quartzo Branco", "Ametista", "Citrino", "Hematita", "Obsidiana", "Outros"},
	"Instrumentos Musicais": {"Atabaque", "Agogô", "Xequerê", "Caxixi", "Outros"},
}

// IncomeCategories ledger income categories
var IncomeCategories = []string{
	"Mensalidades",
	"Doações",
	"Eventos e Festivais",
	"Consultas Espirituais",
	"Trabalhos Espirituais",
	"Vendas de Materiais",
	"Outras Receitas",
}

// ExpenseCategories ledger expense categories
var ExpenseCategories = []string{
	"Materiais Religiosos",
	"Manutenção do Templo",
	"Energia Elétrica",
	"Água",
	"Internet/Telefone",
	"Limpeza",
	"Alimentação (Eventos)",
	"Transporte",
	"Documentação",
	"Outras Despesas",
}
