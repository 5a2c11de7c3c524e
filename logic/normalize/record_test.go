package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvictoor/analisador-contrato/types"
)

func TestRecordAppliesAllPasses(t *testing.T) {
	in := &types.ContractRecord{
		ValoresMultas: []types.ValorMulta{
			{Tipo: "multa", TextoOrigem: "multa de R$ 1.500,00"},
		},
		Partes: []types.Parte{
			{Nome: "Acme Ltd", Papel: "Contratante"},
			{Nome: " acme ltd ", Papel: "Fornecedor"},
		},
		DatasVencimento: []types.DataVencimento{
			{Descricao: "Aluguel", TextoOrigem: "pagamento no dia 5 de abril a junho de 2025"},
		},
	}
	out := Record(in)

	require.Len(t, out.ValoresMultas, 1)
	assert.Equal(t, "R$ 1.500,00", out.ValoresMultas[0].ValorMonetario)
	require.Len(t, out.Partes, 1)
	assert.Equal(t, "Contratante, Fornecedor", out.Partes[0].Papel)
	assert.Len(t, out.DatasVencimento, 4)

	// entrada não é mutada
	assert.Len(t, in.Partes, 2)
	assert.Nil(t, in.ValoresMultas[0].ValorMonetario)
}

func TestRecordNil(t *testing.T) {
	assert.Nil(t, Record(nil))
}
