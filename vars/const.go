package vars

import (
	"os"

	"github.com/joho/godotenv"
)

// GetEnv devolve a variável de ambiente ou o valor padrão.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

const (
	// Modelos Groq (os antigos llama3-* foram descontinuados)
	Llama8B    = "llama-3.1-8b-instant"
	Llama70B   = "llama-3.3-70b-versatile"
	Mixtral8x7 = "mixtral-8x7b-32768"

	// Modelos locais (Ollama)
	Qwen3B = "qwen2.5:3b"
	Qwen7B = "qwen2.5:7b"

	// Limites do pipeline de análise
	ChunkMaxChars    = 1400  // orçamento de cada chunk (em runas)
	ChunkedThreshold = 12000 // acima disso a análise vira chunked
	DefaultMaxChunks = 10    // teto de chunks processados por análise
	SummaryMaxChars  = 4000  // teto do resumo agregado
	QATopK           = 5     // trechos recuperados para perguntas

	// Geração
	DefaultTemperature  = 0.2
	DefaultMaxOutTokens = 2000
)

// ModelSuccessors mapeia modelos descontinuados para os sucessores anunciados.
var ModelSuccessors = map[string]string{
	"llama3-8b-8192":  Llama8B,
	"llama3-70b-8192": Llama70B,
}

// CheaperModel é usado quando a cota diária do modelo pedido estoura.
const CheaperModel = Llama8B

// FallbackModels é tentado em ordem quando o chamador não fixa um modelo.
var FallbackModels = []string{Llama8B, Llama70B, Mixtral8x7}

// Variáveis de ambiente (suportam .env local e deploy via Docker)
var (
	GroqAPIKey  string // Groq (API compatível com OpenAI)
	GroqBaseURL string
	OllamaPath  string // Ollama (opcional, para rodar tudo local)
	LLMProvider string // "groq" ou "ollama"

	PGUser string
	PGPwd  string
	PGDB   string
	PGHost string
	PGPort string

	RetentionDays string // dias antes do purge do cron
	HTTPAddr      string
)

func init() {
	_ = godotenv.Load() // .env é opcional

	GroqAPIKey = GetEnv("GROQ_API_KEY", "")
	GroqBaseURL = GetEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	OllamaPath = GetEnv("OLLAMA_PATH", "http://localhost:11434")
	LLMProvider = GetEnv("LLM_PROVIDER", "groq")

	PGUser = GetEnv("PGUSER", "root")
	PGPwd = GetEnv("PGPWD", "root")
	PGDB = GetEnv("PGDB", "analisadorDB")
	PGHost = GetEnv("PGHOST", "localhost")
	PGPort = GetEnv("PGPORT", "5432")

	RetentionDays = GetEnv("RETENTION_DAYS", "90")
	HTTPAddr = GetEnv("HTTP_ADDR", ":8081")
}

// ClausulasPadrao são as cláusulas verificadas na análise de desvios.
var ClausulasPadrao = []string{
	"Confidencialidade",
	"Prazo e Rescisão",
	"Multa por atraso",
	"Garantias",
	"Força maior",
	"Propriedade intelectual",
	"Não concorrência",
	"Resolução de disputas / Foro",
	"Indenização / Limitação de responsabilidade",
	"Proteção de dados pessoais / LGPD",
}

// ExtractionSystemPrompt instrui o modelo a responder só com o JSON do schema.
const ExtractionSystemPrompt = `Você é um analista jurídico especializado em contratos em português (Brasil). ` +
	`Extraia informações com precisão e responda ESTRITAMENTE em JSON válido, sem markdown. ` +
	`Extraia datas de vencimento, valores e multas citando o texto exato de origem. ` +
	`Se houver referência a prazos em dias (sem data), registre a descrição e mantenha 'data_iso' como null. ` +
	`Quando houver 'dia X de cada mês' e forem citados meses específicos com ano (ex.: abril a agosto de 2025), gere uma entrada por mês com 'data_iso' = YYYY-MM-X. ` +
	`Use datas em ISO (YYYY-MM-DD) quando possível. Se não houver, use null. ` +
	`Para valores monetários (R$), registre exatamente como aparece e não estime. ` +
	`Inclua sempre o texto de origem (campo 'texto_origem') com a frase do contrato que fundamenta cada ponto.`

// ExtractionUserPrompt recebe o texto do contrato via {{.Contrato}}.
const ExtractionUserPrompt = `Leia o contrato a seguir e produza um objeto JSON COM AS CHAVES EXATAS: ` +
	`'datas_vencimento' (lista de objetos: descricao, data_iso, texto_origem), ` +
	`'valores_multas' (lista: tipo, valor_monetario, moeda, percentual, condicao, texto_origem), ` +
	`'partes' (lista: nome, tipo(pessoa física/jurídica), papel, documentos), ` +
	`'clausulas_comprometedoras' (lista: titulo, risco, parte_afetada, gravidade(baixo/médio/alto), texto_origem), ` +
	`'clausulas_padrao' (lista: tipo, presente(true/false), desvio, texto_origem), ` +
	`'analise_risco' (objeto: risco_geral_nota(1-5), top_riscos(lista de strings)), ` +
	`'resumo_juridico' (string: resuma cláusulas com títulos e riscos associados; se não houver risco, apenas resuma). ` +
	`REGRAS: Não calcule nem estime valores (por exemplo, não derive o valor da parcela dividindo o total). ` +
	`Registre apenas números que aparecem literalmente no contrato. Se não houver número explícito, use null. ` +
	"IMPORTANTE: Responda SOMENTE com JSON válido.\n\nContrato:\n{{.Contrato}}"

// StrictSystemSuffix endurece o system prompt na segunda tentativa.
const StrictSystemSuffix = ` Responda SOMENTE com JSON válido, sem markdown e sem texto fora.`

// StrictUserSuffix é anexado ao prompt do usuário na segunda tentativa.
const StrictUserSuffix = "\nRetorne apenas o JSON começando com '{' e terminando com '}'."

// ChunkSelectionQuery guia o retriever quando há chunks demais para processar.
const ChunkSelectionQuery = `datas de vencimento prazos multas valores monetários partes contratantes ` +
	`cláusulas padrão desvios cláusulas comprometedoras riscos resumo jurídico`

// QASystemPrompt responde perguntas com base nos trechos recuperados.
const QASystemPrompt = `Você é um assistente jurídico em português. Responda com base nos trechos ` +
	`do contrato fornecidos. Se a resposta não estiver claramente no contrato, diga explicitamente ` +
	`que não há evidência suficiente. Seja preciso, cite trechos quando possível e não invente nada.`
