package dto

// DOITypeResponse metadatos de un tipo de documento del catálogo SUNAT.
type DOITypeResponse struct {
	Name                    string            `json:"name"`
	ShortName               string            `json:"short_name"`
	SubsystemIDs            map[string]string `json:"subsystem_ids"`
	Pattern                 string            `json:"pattern"`
	Policy                  string            `json:"policy"`
	MaxLength               int               `json:"max_length"`
	Foreign                 bool              `json:"foreign"`
	AcceptedForNonDomiciled bool              `json:"accepted_for_non_domiciled"`
}

// ContextTypesResponse tipos aptos para un subsistema.
type ContextTypesResponse struct {
	Context string            `json:"context"`
	Types   []DOITypeResponse `json:"types"`
}

// SanitizeRequest entrada para sanitizar un número.
type SanitizeRequest struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// SanitizeResponse número sanitizado según la política del tipo.
type SanitizeResponse struct {
	Type      string `json:"type"`
	Sanitized string `json:"sanitized"`
}

// ValidateRequest entrada de validación. Strict nil = usar el modo por defecto configurado.
type ValidateRequest struct {
	Type   string `json:"type"`
	Number string `json:"number"`
	Strict *bool  `json:"strict,omitempty"`
}

// ValidateResponse resultado de validar un número.
type ValidateResponse struct {
	Type      string `json:"type"`
	Number    string `json:"number"`
	Sanitized string `json:"sanitized"`
	Strict    bool   `json:"strict"`
	Valid     bool   `json:"valid"`
	Reason    string `json:"reason,omitempty"`
}

// BatchValidateRequest lote de validaciones.
type BatchValidateRequest struct {
	Items []ValidateRequest `json:"items"`
}

// BatchValidateResponse resultados del lote, en el mismo orden de entrada.
type BatchValidateResponse struct {
	BatchID string             `json:"batch_id"`
	Total   int                `json:"total"`
	Valid   int                `json:"valid"`
	Results []ValidateResponse `json:"results"`
}

// CheckDigitRequest entrada para calcular el dígito verificador del RUC.
type CheckDigitRequest struct {
	Number string `json:"number"`
	Strict *bool  `json:"strict,omitempty"`
}

// CheckDigitResponse dígito verificador calculado.
type CheckDigitResponse struct {
	Number     string `json:"number"`
	CheckDigit string `json:"check_digit"`
}
