package types

// ContractRecord é o resultado agregado de uma análise de contrato.
// Todas as chaves de topo estão sempre presentes no JSON final; o guard de
// schema em logic/analyze garante fatias não-nulas após qualquer parse de LLM.
type ContractRecord struct {
	DatasVencimento          []DataVencimento         `json:"datas_vencimento"`
	ValoresMultas            []ValorMulta             `json:"valores_multas"`
	Partes                   []Parte                  `json:"partes"`
	ClausulasComprometedoras []ClausulaComprometedora `json:"clausulas_comprometedoras"`
	ClausulasPadrao          []ClausulaPadrao         `json:"clausulas_padrao"`
	AnaliseRisco             AnaliseRisco             `json:"analise_risco"`
	ResumoJuridico           string                   `json:"resumo_juridico"`
}

// DataVencimento é uma data (ou prazo sem data) extraída do contrato.
// DataISO fica null quando o contrato só fala em prazos relativos.
type DataVencimento struct {
	Descricao   string  `json:"descricao"`
	DataISO     *string `json:"data_iso"`
	TextoOrigem string  `json:"texto_origem"`
}

// ValorMulta é um valor monetário ou multa. ValorMonetario e Percentual
// chegam como número ou string dependendo do humor do modelo.
type ValorMulta struct {
	Tipo           string `json:"tipo"`
	ValorMonetario any    `json:"valor_monetario"`
	Moeda          string `json:"moeda"`
	Percentual     any    `json:"percentual"`
	Condicao       string `json:"condicao"`
	TextoOrigem    string `json:"texto_origem"`
}

// Parte é uma parte contratante. Documentos pode vir como string, número,
// lista ou objeto; a normalização converte tudo para texto de exibição.
type Parte struct {
	Nome       string `json:"nome"`
	Tipo       string `json:"tipo"`
	Papel      string `json:"papel"`
	Documentos any    `json:"documentos"`
}

type ClausulaComprometedora struct {
	Titulo       string `json:"titulo"`
	Risco        string `json:"risco"`
	ParteAfetada string `json:"parte_afetada"`
	Gravidade    string `json:"gravidade"` // baixo | médio | alto
	TextoOrigem  string `json:"texto_origem"`
}

type ClausulaPadrao struct {
	Tipo        string `json:"tipo"`
	Presente    bool   `json:"presente"`
	Desvio      string `json:"desvio"`
	TextoOrigem string `json:"texto_origem"`
}

type AnaliseRisco struct {
	RiscoGeralNota int      `json:"risco_geral_nota"`
	TopRiscos      []string `json:"top_riscos"`
}
