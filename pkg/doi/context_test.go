package doi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/validador-doi/pkg/doi"
)

// Conjuntos esperados por subsistema según la tabla SUNAT (identificador no vacío).
func TestListSuitableTypes_PorContexto(t *testing.T) {
	expected := map[doi.Context][]doi.Type{
		doi.ContextPLE: doi.Types(),
		doi.ContextPLAME: {
			doi.DNI, doi.PNP, doi.CE, doi.RUC, doi.Passport, doi.Refugee,
			doi.Diplomatic, doi.PTP, doi.ID, doi.IDPTP,
		},
		doi.ContextAFPNet: {
			doi.DNI, doi.PNP, doi.CE, doi.Passport, doi.Refugee,
			doi.Diplomatic, doi.PTP, doi.ID, doi.IDPTP,
		},
		doi.ContextFV3800: {
			doi.DNI, doi.CE, doi.RUC, doi.Passport, doi.ID, doi.TIN,
		},
	}
	for _, ctx := range doi.Contexts() {
		t.Run(ctx.String(), func(t *testing.T) {
			got, err := doi.ListSuitableTypes(ctx)
			require.NoError(t, err)
			assert.Equal(t, expected[ctx], got, "mismo conjunto y en orden de catálogo")

			for _, typ := range doi.Types() {
				id, err := typ.SubsystemID(ctx)
				require.NoError(t, err)
				assert.Equal(t, id != "", contains(got, typ), "%s en %s", typ, ctx)
			}
		})
	}
}

func TestListSuitableTypes_MetodoYFuncionCoinciden(t *testing.T) {
	for _, ctx := range doi.Contexts() {
		a, err := ctx.ListSuitableTypes()
		require.NoError(t, err)
		b, err := doi.ListSuitableTypes(ctx)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestListSuitableTypes_ContextoNoReconocido(t *testing.T) {
	got, err := doi.ListSuitableTypes(doi.Context(42))
	assert.ErrorIs(t, err, doi.ErrUnrecognizedContext)
	assert.Nil(t, got)
}

func TestParseContext(t *testing.T) {
	cases := map[string]doi.Context{
		"PLE":     doi.ContextPLE,
		"plame":   doi.ContextPLAME,
		"AFP_NET": doi.ContextAFPNet,
		"afp-net": doi.ContextAFPNet,
		"FV_3800": doi.ContextFV3800,
		"fv-3800": doi.ContextFV3800,
	}
	for in, want := range cases {
		got, err := doi.ParseContext(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, got, mustParse(t, got.String()), "String() es reversible")
	}

	_, err := doi.ParseContext("SIRE")
	assert.ErrorIs(t, err, doi.ErrUnrecognizedContext)
	assert.Equal(t, "Context(9)", doi.Context(9).String())
}

func contains(list []doi.Type, typ doi.Type) bool {
	for _, v := range list {
		if v == typ {
			return true
		}
	}
	return false
}

func mustParse(t *testing.T, s string) doi.Context {
	t.Helper()
	c, err := doi.ParseContext(s)
	require.NoError(t, err)
	return c
}
