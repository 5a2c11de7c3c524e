package analyze

import (
	"github.com/fvictoor/analisador-contrato/types"
)

// EnsureSchema devolve uma cópia do registro com todas as chaves de topo
// presentes: fatias nunca nulas e resumo sempre string. Não muta a entrada.
func EnsureSchema(rec *types.ContractRecord) *types.ContractRecord {
	out := types.ContractRecord{}
	if rec != nil {
		out = *rec
	}
	if out.DatasVencimento == nil {
		out.DatasVencimento = []types.DataVencimento{}
	}
	if out.ValoresMultas == nil {
		out.ValoresMultas = []types.ValorMulta{}
	}
	if out.Partes == nil {
		out.Partes = []types.Parte{}
	}
	if out.ClausulasComprometedoras == nil {
		out.ClausulasComprometedoras = []types.ClausulaComprometedora{}
	}
	if out.ClausulasPadrao == nil {
		out.ClausulasPadrao = []types.ClausulaPadrao{}
	}
	if out.AnaliseRisco.TopRiscos == nil {
		out.AnaliseRisco.TopRiscos = []string{}
	}
	return &out
}

// IsEmpty decide se a extração não trouxe nada aproveitável, o que dispara a
// segunda tentativa com prompt estrito. analise_risco fica de fora de
// propósito: nota sem nenhum achado não conta como conteúdo.
func IsEmpty(rec *types.ContractRecord) bool {
	if rec == nil {
		return true
	}
	return len(rec.DatasVencimento) == 0 &&
		len(rec.ValoresMultas) == 0 &&
		len(rec.Partes) == 0 &&
		len(rec.ClausulasComprometedoras) == 0 &&
		len(rec.ClausulasPadrao) == 0 &&
		rec.ResumoJuridico == ""
}
