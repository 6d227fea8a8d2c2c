package bankgen

import "github.com/robalobadob/forca/internal/words"

// Curated lists, grouped by final theme. Each theme keeps its base list
// first, then the two extension batches in the order they were approved.
var curated = []Theme{
	{Name: "animais", Batches: [][]string{
		{"CÃO", "GATO", "PATO", "RATO", "SAPO", "PEIXE", "CAVALO", "LEÃO", "LOBO", "URSO",
			"VACA", "GALINHA", "PORCO", "MACACO", "TIGRE", "ELEFANTE", "COELHO", "BORBOLETA", "FORMIGA", "TARTARUGA"},
		{"CAMELO", "ZEBRA", "JACARÉ", "TUCANO", "PINGUIM", "GIRAFA", "CORUJA", "LAGARTO", "ARARA", "CAVALO-MARINHO"},
		{"POLVO", "CAMARÃO", "CANGURU", "GALO", "BEIJA-FLOR", "MOSCA", "CARACOL", "TATU", "PAVÃO", "FOCA"},
	}},
	{Name: "frutas", Batches: [][]string{
		{"BANANA", "MAÇÃ", "PERA", "UVA", "LIMÃO", "LARANJA", "MELÃO", "MELANCIA", "ABACAXI", "COCO",
			"GOIABA", "MANGA", "KIWI", "MORANGO", "CEREJA"},
		{"AMEIXA", "FIGO", "CAJU", "PITANGA", "JABUTICABA", "MARACUJÁ", "FRAMBOESA"},
		{"TANGERINA", "GRAVIOLA", "CUPUAÇU", "PÊSSEGO", "DAMASCO", "ACEROLA", "AMEIXA"},
	}},
	{Name: "escola", Batches: [][]string{
		{"LIVRO", "CADERNO", "LÁPIS", "CANETA", "RÉGUA", "BORRACHA", "QUADRO", "GIZ", "MESA", "CADEIRA",
			"MOCHILA", "PROFESSOR", "ESCOLA", "PAPEL", "TINTA"},
		{"TESOURA", "COLA", "LIVRARIA", "LANCHE", "QUADRO-NEGRO", "GLOBO", "MAPA"},
		{"APAGADOR", "ESTOJO", "TAREFA", "GIZ DE CERA", "LAPISEIRA", "LIVRINHO", "APONTADOR"},
	}},
	{Name: "casa", Batches: [][]string{
		{"PORTA", "JANELA", "CAMA", "SOFÁ", "TELEVISÃO", "MESA", "CADEIRA", "LUZ", "COPO", "PRATO",
			"FACA", "COLHER", "GARFO", "TAPETE", "ESPELHO"},
		{"ARMÁRIO", "GELADEIRA", "FOGÃO", "PANELAS", "COZINHA", "QUARTO", "COBERTOR", "ALMOFADA"},
		{"CHAVE", "CORTINA", "TRAVESSEIRO", "QUADRO", "ABANADOR", "TELEFONE", "BANHEIRO"},
	}},
	{Name: "brinquedos", Batches: [][]string{
		{"BOLA", "BONECA", "PIÃO", "URSINHO", "CARRINHO", "QUEBRA-CABEÇA", "AVIÃO", "BLOCO", "BALÃO", "PIPA"},
		{"DOMINÓ", "PATINS", "SKATE", "TRENZINHO", "CUBO", "CARRINHOS"},
		{"BAMBOLÊ", "CARRINHO-DE-MÃO", "JOGO", "CARTAS", "PATINETE", "BICICLETA"},
	}},
	{Name: "natureza", Batches: [][]string{
		{"ÁRVORE", "FLOR", "SOL", "LUA", "ESTRELA", "CÉU", "MAR", "PEDRA", "RIO", "NUVEM"},
		{"VENTO", "CHUVA", "RELVA", "AREIA", "MONTANHA", "FLORESTA"},
		{"TERRA", "LAGO", "DESERTO", "ILHA", "CACHOEIRA", "PRAIA"},
	}},
	{Name: "cores", Batches: [][]string{
		{"AZUL", "VERMELHO", "VERDE", "AMARELO", "ROSA"},
	}},
	{Name: "corpo", Batches: [][]string{
		{"MÃO", "PÉ", "OLHO", "BOCA", "NARIZ", "ORELHA", "CABELO", "DENTE", "BARRIGA", "PERNA"},
		{"BRAÇO", "DEDO", "UNHA", "COSTA", "PESCOÇO", "JOELHO"},
		{"OMBRO", "COTOVELO", "COSTELA", "LÁBIO", "PULSO", "TORNOZELO", "CORAÇÃO"},
	}},
}

// allowedRepeats lists words approved to appear twice in the same theme.
var allowedRepeats = map[words.Key]bool{
	{Theme: "frutas", DisplayForm: "AMEIXA"}: true,
}
