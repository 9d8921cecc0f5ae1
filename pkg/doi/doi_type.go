// Package doi contiene el catálogo de tipos de Documento de Identidad (DOI) usados
// en las declaraciones y libros electrónicos SUNAT (Perú): sanitización, validación
// estructural, dígito verificador del RUC y aptitud por subsistema de reporte.
//
// Todo el paquete opera sobre tablas inmutables compiladas en el binario; es seguro
// para uso concurrente sin sincronización.
package doi

import (
	"fmt"
	"regexp"
	"strings"
)

// Type tipo de documento de identidad. Conjunto cerrado: los valores válidos son las
// constantes declaradas abajo, en el orden del catálogo SUNAT.
type Type uint8

const (
	Others     Type = iota // Otros tipos de documento
	DNI                    // Documento Nacional de Identidad
	PNP                    // Carné de la Policía Nacional / Fuerzas Armadas
	CE                     // Carné de extranjería
	RUC                    // Registro Único de Contribuyentes
	Passport               // Pasaporte
	Refugee                // Carné de solicitante de refugio
	Diplomatic             // Carné de identidad emitido por Relaciones Exteriores
	PTP                    // Permiso Temporal de Permanencia
	ID                     // Documento de identidad extranjero
	IDPTP                  // Carné de Permiso Temporal de Permanencia
	TIN                    // Tax Identification Number (no domiciliados)

	typeCount
)

// Policy política de sanitización de un tipo.
type Policy uint8

const (
	PolicyDigits Policy = iota + 1 // solo dígitos
	PolicyAlnum                    // letras y dígitos
)

func (p Policy) String() string {
	switch p {
	case PolicyDigits:
		return "digits"
	case PolicyAlnum:
		return "alnum"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Patrones estructurales. \p{L}/\p{Nd} son las mismas clases que usa el sanitizador,
// de modo que Sanitize nunca produce un valor que su propio patrón rechace.
// El RUC exige dígitos ASCII porque el dígito verificador se calcula sobre ellos.
const (
	patternAlnum12 = `[\p{L}\p{Nd}]{1,12}`
	patternAlnum15 = `[\p{L}\p{Nd}]{1,15}`
	patternDNI     = `\p{Nd}{8}`
	patternRUC     = `(10|15|16|17|20)[0-9]{9}`
)

type typeSpec struct {
	name      string
	shortName string
	plameID   string
	pleID     string
	afpID     string
	fv3800ID  string
	pattern   string
	policy    Policy
	maxLen    int
	foreign   bool
	// nonDomiciled tipos admitidos al declarar un sujeto no domiciliado.
	nonDomiciled bool
	// checksum la validación delega en el motor del dígito verificador.
	checksum bool

	re *regexp.Regexp
}

// catalog tabla SUNAT, indexada por Type. Los identificadores por subsistema se
// reproducen literalmente; vacío = no aplica en ese subsistema.
var catalog = [typeCount]typeSpec{
	Others:     {name: "OTHERS", shortName: "OTR", plameID: "", pleID: "0", afpID: "", fv3800ID: "", pattern: patternAlnum15, policy: PolicyAlnum, maxLen: 15},
	DNI:        {name: "DNI", shortName: "DNI", plameID: "01", pleID: "1", afpID: "0", fv3800ID: "01", pattern: patternDNI, policy: PolicyDigits, maxLen: 8},
	PNP:        {name: "PNP", shortName: "PNP", plameID: "02", pleID: "0", afpID: "2", fv3800ID: "", pattern: patternAlnum15, policy: PolicyAlnum, maxLen: 15},
	CE:         {name: "CE", shortName: "CEX", plameID: "04", pleID: "4", afpID: "1", fv3800ID: "04", pattern: patternAlnum12, policy: PolicyAlnum, maxLen: 12, foreign: true},
	RUC:        {name: "RUC", shortName: "RUC", plameID: "06", pleID: "6", afpID: "", fv3800ID: "06", pattern: patternRUC, policy: PolicyDigits, maxLen: rucLength, checksum: true},
	Passport:   {name: "PASSPORT", shortName: "PAS", plameID: "07", pleID: "7", afpID: "4", fv3800ID: "07", pattern: patternAlnum12, policy: PolicyAlnum, maxLen: 12, foreign: true},
	Refugee:    {name: "REFUGEE", shortName: "REF", plameID: "09", pleID: "0", afpID: "9", fv3800ID: "", pattern: patternAlnum15, policy: PolicyAlnum, maxLen: 15, foreign: true},
	Diplomatic: {name: "DIPLOMATIC", shortName: "CDI", plameID: "22", pleID: "0", afpID: "7", fv3800ID: "", pattern: patternAlnum15, policy: PolicyAlnum, maxLen: 15, foreign: true},
	PTP:        {name: "PTP", shortName: "PTP", plameID: "23", pleID: "0", afpID: "6", fv3800ID: "", pattern: patternAlnum15, policy: PolicyAlnum, maxLen: 15, foreign: true},
	ID:         {name: "ID", shortName: "ID", plameID: "24", pleID: "0", afpID: "8", fv3800ID: "02", pattern: patternAlnum15, policy: PolicyAlnum, maxLen: 15, foreign: true, nonDomiciled: true},
	IDPTP:      {name: "ID_PTP", shortName: "C. PTP", plameID: "26", pleID: "0", afpID: "10", fv3800ID: "", pattern: patternAlnum15, policy: PolicyAlnum, maxLen: 15, foreign: true},
	TIN:        {name: "TIN", shortName: "TIN", plameID: "", pleID: "0", afpID: "", fv3800ID: "01", pattern: patternAlnum15, policy: PolicyAlnum, maxLen: 15, foreign: true, nonDomiciled: true},
}

func init() {
	for i := range catalog {
		catalog[i].re = regexp.MustCompile(`^(?:` + catalog[i].pattern + `)$`)
	}
}

// Types devuelve todos los tipos en el orden de declaración del catálogo.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// ParseType busca un tipo por nombre ("PASSPORT") o nombre corto ("PAS"), sin
// distinguir mayúsculas.
func ParseType(s string) (Type, error) {
	key := strings.TrimSpace(s)
	for t := Type(0); t < typeCount; t++ {
		if strings.EqualFold(catalog[t].name, key) || strings.EqualFold(catalog[t].shortName, key) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// IsValid reporta si t pertenece al catálogo.
func (t Type) IsValid() bool { return t < typeCount }

func (t Type) spec() *typeSpec {
	if !t.IsValid() {
		panic(fmt.Sprintf("doi: tipo de documento fuera del catálogo: %d", uint8(t)))
	}
	return &catalog[t]
}

func (t Type) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return catalog[t].name
}

func (t Type) Name() string      { return t.spec().name }
func (t Type) ShortName() string { return t.spec().shortName }
func (t Type) PlameID() string   { return t.spec().plameID }
func (t Type) PleID() string     { return t.spec().pleID }
func (t Type) AfpID() string     { return t.spec().afpID }
func (t Type) Fv3800ID() string  { return t.spec().fv3800ID }
func (t Type) Pattern() string   { return t.spec().pattern }
func (t Type) Policy() Policy    { return t.spec().policy }
func (t Type) MaxLength() int    { return t.spec().maxLen }

// IsForeign documento emitido a extranjeros, con independencia del domicilio fiscal.
func (t Type) IsForeign() bool { return t.spec().foreign }

// IsAcceptedForNonDomiciled el tipo es admitido para identificar a un sujeto no domiciliado.
func (t Type) IsAcceptedForNonDomiciled() bool { return t.spec().nonDomiciled }

// Sanitize aplica la política del tipo: filtra caracteres y conserva los
// MaxLength caracteres de la derecha.
func (t Type) Sanitize(raw string) string {
	s := t.spec()
	if s.policy == PolicyDigits {
		return Digits(raw, s.maxLen)
	}
	return Alnum(raw, s.maxLen)
}

// ValidateNumber valida number contra el patrón estructural del tipo. En modo
// estricto se evalúa el valor tal cual; en modo laxo se sanitiza antes. Una entrada
// vacía o en blanco nunca es válida. El RUC además exige prefijo y dígito verificador.
func (t Type) ValidateNumber(number string, strict bool) bool {
	s := t.spec()
	if strings.TrimSpace(number) == "" {
		return false
	}
	if s.checksum {
		return IsRUCValidMode(number, strict)
	}
	if !strict {
		number = t.Sanitize(number)
	}
	return s.re.MatchString(number)
}

// SubsystemID devuelve el identificador del tipo en el subsistema ctx (vacío si no aplica).
func (t Type) SubsystemID(ctx Context) (string, error) {
	s := t.spec()
	switch ctx {
	case ContextPLE:
		return s.pleID, nil
	case ContextPLAME:
		return s.plameID, nil
	case ContextAFPNet:
		return s.afpID, nil
	case ContextFV3800:
		return s.fv3800ID, nil
	}
	return "", fmt.Errorf("%w: %s para el tipo %s", ErrUnrecognizedContext, ctx, s.name)
}

// IsSuitableFor reporta si el tipo se usa en el subsistema ctx, es decir, si su
// identificador en ese subsistema no está en blanco.
func (t Type) IsSuitableFor(ctx Context) (bool, error) {
	id, err := t.SubsystemID(ctx)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(id) != "", nil
}
