package document

import (
	"fmt"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jhoicas/validador-doi/pkg/doi"
)

// NumberRule regla ozzo-validation que exige que el valor sea un número válido para typ.
// Como las reglas estándar de ozzo, un valor vacío se considera válido (usar Required).
func NumberRule(typ doi.Type, strict bool) ozzo.Rule {
	return numberRule{typ: typ, strict: strict}
}

type numberRule struct {
	typ    doi.Type
	strict bool
}

func (r numberRule) Validate(value interface{}) error {
	s, err := ozzo.EnsureString(value)
	if err != nil {
		return err
	}
	if ozzo.IsEmpty(s) || r.typ.ValidateNumber(s, r.strict) {
		return nil
	}
	if r.typ == doi.RUC {
		v := s
		if !r.strict {
			v = doi.RUC.Sanitize(s)
		}
		if err := doi.ValidateRUC(v); err != nil {
			return ozzo.NewError("validation_doi_ruc", err.Error())
		}
	}
	return ozzo.NewError("validation_doi_pattern",
		fmt.Sprintf("%s: no cumple el patrón %s", r.typ.ShortName(), r.typ.Pattern()))
}
