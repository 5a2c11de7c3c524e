package postgres

import (
	"time"
)

// Analise é o resultado persistido de uma análise de contrato. TextHash
// (MD5 do texto extraído) funciona como chave de memoização: reenviar o
// mesmo contrato devolve o registro salvo sem nova rodada de LLM.
type Analise struct {
	DocID      string    `gorm:"column:doc_id;primaryKey;type:uuid"`
	FileName   string    `gorm:"column:file_name;type:varchar(255);not null"`
	TextHash   string    `gorm:"column:text_hash;type:char(32);uniqueIndex"`
	RawText    string    `gorm:"column:raw_text;type:text"` // usado pelo QA
	ResultJSON string    `gorm:"column:result_json;type:jsonb"`
	RiscoNota  int       `gorm:"column:risco_nota;type:smallint;index"`
	Modelo     string    `gorm:"column:modelo;type:varchar(64)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Analise) TableName() string {
	return "analises"
}
