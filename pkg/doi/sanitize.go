package doi

import "unicode"

// Digits conserva solo los dígitos decimales de raw, en su orden original.
// Si el resultado supera maxLen (y maxLen > 0) se devuelven los maxLen caracteres
// de la derecha: SUNAT trunca por la izquierda, los dígitos finales son los que
// discriminan. maxLen <= 0 desactiva el truncado.
func Digits(raw string, maxLen int) string {
	return keep(raw, maxLen, unicode.IsDigit)
}

// Alnum igual que Digits pero conserva letras y dígitos.
func Alnum(raw string, maxLen int) string {
	return keep(raw, maxLen, isLetterOrDigit)
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func keep(raw string, maxLen int, accept func(rune) bool) string {
	if raw == "" {
		return ""
	}
	out := make([]rune, 0, len(raw))
	for _, r := range raw {
		if accept(r) {
			out = append(out, r)
		}
	}
	if maxLen > 0 && len(out) > maxLen {
		out = out[len(out)-maxLen:]
	}
	return string(out)
}
