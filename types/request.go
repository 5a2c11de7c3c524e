package types

// AskRequest é o corpo de POST /contrato/perguntar.
type AskRequest struct {
	DocID    string `json:"doc_id" binding:"required"`
	Pergunta string `json:"pergunta" binding:"required"`
}

// AskResponse devolve a resposta e os trechos usados como contexto.
type AskResponse struct {
	Resposta string   `json:"resposta"`
	Trechos  []string `json:"trechos"`
}

// CalendarLink agrupa os links de criação de evento para uma data.
type CalendarLink struct {
	Descricao string `json:"descricao"`
	DataISO   string `json:"data_iso"`
	Google    string `json:"google"`
	Outlook   string `json:"outlook"`
	Office    string `json:"office"`
}
