package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvictoor/analisador-contrato/types"
)

func TestPartiesMergesByNormalizedName(t *testing.T) {
	out := Parties([]types.Parte{
		{Nome: "Acme Ltd", Papel: "Contratante"},
		{Nome: " acme  ltd ", Papel: "Fornecedor"},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "Acme Ltd", out[0].Nome) // primeiro nome cru vence
	assert.Equal(t, "Contratante, Fornecedor", out[0].Papel)
}

func TestPartiesDuplicateRoleOnce(t *testing.T) {
	out := Parties([]types.Parte{
		{Nome: "Acme", Papel: "Contratante"},
		{Nome: "ACME", Papel: "Contratante"},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "Contratante", out[0].Papel)
}

func TestPartiesMostFrequentTipo(t *testing.T) {
	out := Parties([]types.Parte{
		{Nome: "Acme", Tipo: "pessoa física"},
		{Nome: "acme", Tipo: "pessoa jurídica"},
		{Nome: "ACME", Tipo: "pessoa jurídica"},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "pessoa jurídica", out[0].Tipo)
}

func TestPartiesMissingFieldsAsDash(t *testing.T) {
	out := Parties([]types.Parte{{Nome: "Acme"}})
	require.Len(t, out, 1)
	assert.Equal(t, "-", out[0].Tipo)
	assert.Equal(t, "-", out[0].Papel)
	assert.Equal(t, "-", out[0].Documentos)
}

func TestPartiesSortedByName(t *testing.T) {
	out := Parties([]types.Parte{
		{Nome: "Zeta Serviços"},
		{Nome: "alfa ltda"},
		{Nome: "Beta SA"},
	})
	require.Len(t, out, 3)
	assert.Equal(t, "alfa ltda", out[0].Nome)
	assert.Equal(t, "Beta SA", out[1].Nome)
	assert.Equal(t, "Zeta Serviços", out[2].Nome)
}

func TestPartiesRenderDocuments(t *testing.T) {
	out := Parties([]types.Parte{
		{Nome: "Acme", Documentos: map[string]any{"cnpj": "12.345.678/0001-00", "ie": "isento"}},
		{Nome: "acme", Documentos: []any{"CPF 111.222.333-44", float64(42)}},
	})
	require.Len(t, out, 1)
	assert.Equal(t, "cnpj: 12.345.678/0001-00, ie: isento; CPF 111.222.333-44, 42", out[0].Documentos)
}

func TestPartiesIdempotent(t *testing.T) {
	once := Parties([]types.Parte{
		{Nome: "Acme Ltd", Papel: "Contratante", Tipo: "pessoa jurídica"},
		{Nome: " acme ltd", Papel: "Fornecedor"},
	})
	twice := Parties(once)
	assert.Equal(t, once, twice)
}
