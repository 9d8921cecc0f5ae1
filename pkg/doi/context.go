package doi

import (
	"fmt"
	"strings"
)

// Context subsistema de reporte SUNAT. Conjunto cerrado.
type Context uint8

const (
	ContextPLE    Context = iota + 1 // Programa de Libros Electrónicos
	ContextPLAME                     // Planilla Mensual de Pagos
	ContextAFPNet                    // AFP Net
	ContextFV3800                    // Formulario Virtual 3800
)

var contextNames = map[Context]string{
	ContextPLE:    "PLE",
	ContextPLAME:  "PLAME",
	ContextAFPNet: "AFP_NET",
	ContextFV3800: "FV_3800",
}

// Contexts devuelve los subsistemas en orden de declaración.
func Contexts() []Context {
	return []Context{ContextPLE, ContextPLAME, ContextAFPNet, ContextFV3800}
}

// ParseContext acepta "PLE", "PLAME", "AFP_NET", "FV_3800" (sin distinguir mayúsculas;
// se admite "-" en lugar de "_").
func ParseContext(s string) (Context, error) {
	key := strings.ReplaceAll(strings.TrimSpace(s), "-", "_")
	for _, c := range Contexts() {
		if strings.EqualFold(contextNames[c], key) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedContext, s)
}

func (c Context) String() string {
	if name, ok := contextNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Context(%d)", uint8(c))
}

// ListSuitableTypes devuelve, en orden de catálogo, los tipos aptos para el subsistema.
func (c Context) ListSuitableTypes() ([]Type, error) {
	var out []Type
	for _, t := range Types() {
		ok, err := t.IsSuitableFor(c)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListSuitableTypes atajo de ctx.ListSuitableTypes().
func ListSuitableTypes(ctx Context) ([]Type, error) {
	return ctx.ListSuitableTypes()
}
