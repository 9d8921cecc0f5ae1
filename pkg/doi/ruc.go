package doi

import (
	"fmt"
	"strings"
)

// pesos posicionales SUNAT para el dígito verificador del RUC (módulo 11).
// Se aplican a los 10 primeros dígitos, de izquierda a derecha.
var rucWeights = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// rucPrefixes prefijos válidos: 10 persona natural, 15/16/17 regímenes especiales, 20 persona jurídica.
var rucPrefixes = map[string]bool{
	"10": true,
	"15": true,
	"16": true,
	"17": true,
	"20": true,
}

const rucLength = 11

// ComputeRUCCheckDigit calcula el dígito verificador a partir de los 10 primeros dígitos de s.
// s debe tener 10 u 11 dígitos ASCII; el undécimo, si existe, se ignora para el cálculo.
// Cualquier otra entrada devuelve un error que envuelve ErrInvalidArgument.
func ComputeRUCCheckDigit(s string) (byte, error) {
	if len(s) < 10 {
		return 0, fmt.Errorf("%w: se requieren al menos 10 dígitos para calcular el dígito verificador del RUC, se recibieron %d", ErrInvalidArgument, len(s))
	}
	if len(s) > rucLength {
		return 0, fmt.Errorf("%w: el RUC no puede exceder %d dígitos, se recibieron %d", ErrInvalidArgument, rucLength, len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isASCIIDigit(s[i]) {
			return 0, fmt.Errorf("%w: carácter de RUC inválido %q en la posición %d", ErrInvalidArgument, s[i], i)
		}
	}
	var sum int
	for i, w := range rucWeights {
		sum += int(s[i]-'0') * w
	}
	check := 11 - sum%11
	switch check {
	case 11:
		return '1', nil
	case 10:
		return '0', nil
	}
	return byte('0' + check), nil
}

// ComputeRUCCheckDigitMode igual que ComputeRUCCheckDigit; con strict=false sanitiza raw
// con la política del RUC (solo dígitos, máximo 11, truncado a la derecha) antes de calcular.
func ComputeRUCCheckDigitMode(raw string, strict bool) (byte, error) {
	if !strict {
		raw = RUC.Sanitize(raw)
	}
	return ComputeRUCCheckDigit(raw)
}

// ValidateRUC verifica que ruc tenga exactamente 11 dígitos, un prefijo permitido
// y un dígito verificador correcto. El error indica la causa y envuelve ErrInvalidRUC.
func ValidateRUC(ruc string) error {
	if len(ruc) != rucLength {
		return fmt.Errorf("%w: debe tener %d dígitos, se recibieron %d", ErrInvalidRUC, rucLength, len(ruc))
	}
	for i := 0; i < len(ruc); i++ {
		if !isASCIIDigit(ruc[i]) {
			return fmt.Errorf("%w: carácter no numérico %q en la posición %d", ErrInvalidRUC, ruc[i], i)
		}
	}
	if !rucPrefixes[ruc[:2]] {
		return fmt.Errorf("%w: prefijo %s no permitido", ErrInvalidRUC, ruc[:2])
	}
	expected, err := ComputeRUCCheckDigit(ruc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRUC, err)
	}
	if ruc[10] != expected {
		return fmt.Errorf("%w: dígito verificador esperado %c, recibido %c", ErrInvalidRUC, expected, ruc[10])
	}
	return nil
}

// IsRUCValid reporta si ruc es un RUC estructuralmente válido (ver ValidateRUC).
func IsRUCValid(ruc string) bool {
	return ValidateRUC(ruc) == nil
}

// IsRUCValidMode igual que IsRUCValid; una entrada en blanco nunca es válida y con
// strict=false se sanitiza primero.
func IsRUCValidMode(raw string, strict bool) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	if !strict {
		raw = RUC.Sanitize(raw)
	}
	return IsRUCValid(raw)
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
