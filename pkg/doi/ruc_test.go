package doi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/validador-doi/pkg/doi"
)

// Ejemplo oficial: los 10 primeros dígitos de 20607854247 producen '7'.
func TestComputeRUCCheckDigit_EjemploOficial(t *testing.T) {
	d, err := doi.ComputeRUCCheckDigit("20607854247")
	require.NoError(t, err)
	assert.Equal(t, byte('7'), d)

	d, err = doi.ComputeRUCCheckDigit("2060785424")
	require.NoError(t, err)
	assert.Equal(t, byte('7'), d, "con 10 dígitos el resultado es el mismo")
}

func TestComputeRUCCheckDigit_CasosLimite(t *testing.T) {
	cases := []struct {
		base string
		want byte
	}{
		{"2000000001", '0'}, // 11 - residuo 1 = 10 -> '0'
		{"2000000006", '1'}, // 11 - residuo 0 = 11 -> '1'
		{"1012345602", '1'},
		{"1012345608", '0'},
		{"2000000000", '1'}, // 11 - residuo 10 = 1
		{"1046123456", '4'},
		{"1512345678", '2'},
		{"1712345678", '5'},
		{"1600000000", '4'},
	}
	for _, tc := range cases {
		t.Run(tc.base, func(t *testing.T) {
			d, err := doi.ComputeRUCCheckDigit(tc.base)
			require.NoError(t, err)
			assert.Equal(t, string(tc.want), string(d))
		})
	}
}

func TestComputeRUCCheckDigit_ViolacionDeContrato(t *testing.T) {
	for _, in := range []string{"", "123456789", "206078542471", "20-0785424", "2060785424X"} {
		_, err := doi.ComputeRUCCheckDigit(in)
		assert.ErrorIs(t, err, doi.ErrInvalidArgument, "entrada %q", in)
	}
}

func TestComputeRUCCheckDigitMode_LaxoSanitiza(t *testing.T) {
	d, err := doi.ComputeRUCCheckDigitMode("20-60785424-7", false)
	require.NoError(t, err)
	assert.Equal(t, byte('7'), d)

	_, err = doi.ComputeRUCCheckDigitMode("20-60785424-7", true)
	assert.ErrorIs(t, err, doi.ErrInvalidArgument, "en modo estricto no se sanitiza")
}

func TestIsRUCValid(t *testing.T) {
	assert.True(t, doi.IsRUCValid("20607854247"))
	assert.True(t, doi.IsRUCValid("20000000010"))
	assert.True(t, doi.IsRUCValid("20000000061"))
	assert.True(t, doi.IsRUCValid("10123456021"))

	assert.False(t, doi.IsRUCValid("20607854248"), "dígito verificador alterado")
	assert.False(t, doi.IsRUCValid("2060785424"), "10 dígitos")
	assert.False(t, doi.IsRUCValid("206078542470"), "12 dígitos")
	assert.False(t, doi.IsRUCValid("2060785424A"))
	assert.False(t, doi.IsRUCValid(""))
}

// "99" no es un prefijo permitido aunque el dígito verificador sea correcto.
func TestIsRUCValid_PrefijoNoPermitido(t *testing.T) {
	d, err := doi.ComputeRUCCheckDigit("9912345678")
	require.NoError(t, err)
	ruc := "9912345678" + string(d)

	assert.False(t, doi.IsRUCValid(ruc))
	assert.ErrorContains(t, doi.ValidateRUC(ruc), "prefijo 99")
}

func TestValidateRUC_Causa(t *testing.T) {
	assert.NoError(t, doi.ValidateRUC("20607854247"))

	err := doi.ValidateRUC("20607854241")
	assert.ErrorIs(t, err, doi.ErrInvalidRUC)
	assert.ErrorContains(t, err, "esperado 7, recibido 1")

	assert.ErrorContains(t, doi.ValidateRUC("2060785424"), "debe tener 11 dígitos")
	assert.ErrorContains(t, doi.ValidateRUC("2060785424-"), "posición 10")
}

func TestIsRUCValidMode(t *testing.T) {
	assert.True(t, doi.IsRUCValidMode("20607854247", true))
	assert.False(t, doi.IsRUCValidMode("20-60785424-7", true))
	assert.True(t, doi.IsRUCValidMode("20-60785424-7", false))
	assert.True(t, doi.IsRUCValidMode(" RUC: 20607854247 ", false))

	assert.False(t, doi.IsRUCValidMode("", false))
	assert.False(t, doi.IsRUCValidMode("   ", false))
	assert.False(t, doi.IsRUCValidMode("   ", true))
}
