package doi

import "errors"

// Errores del motor de reglas. Se envuelven con fmt.Errorf("%w") para dar contexto;
// usar errors.Is para inspeccionarlos.
var (
	// ErrInvalidArgument violación de contrato: entrada de dígito verificador con longitud
	// fuera de [10,11] o con caracteres no numéricos. El llamador debe sanitizar antes.
	ErrInvalidArgument = errors.New("doi: argumento inválido")
	// ErrUnrecognizedContext contexto de uso fuera del conjunto cerrado.
	ErrUnrecognizedContext = errors.New("doi: contexto de uso no reconocido")
	// ErrUnknownType tipo de documento no reconocido.
	ErrUnknownType = errors.New("doi: tipo de documento no reconocido")
	// ErrInvalidRUC el número no es un RUC válido (longitud, prefijo o dígito verificador).
	ErrInvalidRUC = errors.New("doi: RUC inválido")
)
