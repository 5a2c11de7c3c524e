package normalize

import (
	"github.com/fvictoor/analisador-contrato/types"
)

// Record aplica os três passes de normalização sobre o registro agregado.
// Devolve uma cópia; o registro de entrada não é mutado.
func Record(rec *types.ContractRecord) *types.ContractRecord {
	if rec == nil {
		return nil
	}
	out := *rec
	out.ValoresMultas = Money(rec.ValoresMultas)
	out.Partes = Parties(rec.Partes)
	out.DatasVencimento = Dates(rec.DatasVencimento)
	return &out
}
