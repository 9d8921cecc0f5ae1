// Package document expone el catálogo de DOI (pkg/doi) como casos de uso: validación
// individual y por lotes, sanitización, dígito verificador del RUC y consulta de
// aptitud por subsistema.
package document

import (
	"errors"
	"fmt"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/jhoicas/validador-doi/internal/application/dto"
	"github.com/jhoicas/validador-doi/internal/domain"
	"github.com/jhoicas/validador-doi/pkg/doi"
	"github.com/jhoicas/validador-doi/pkg/logger"
)

// Config parámetros del caso de uso.
type Config struct {
	StrictDefault bool
	BatchMaxItems int
}

// UseCase casos de uso sobre documentos de identidad.
type UseCase struct {
	cfg Config
	log *logger.Logger
}

// NewUseCase construye el caso de uso. log nil = logger silencioso.
func NewUseCase(cfg Config, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{cfg: cfg, log: log.Named("document")}
}

// ListTypes devuelve el catálogo completo en orden de declaración.
func (uc *UseCase) ListTypes() []dto.DOITypeResponse {
	return toTypeResponses(doi.Types())
}

// GetType busca un tipo por nombre o nombre corto.
func (uc *UseCase) GetType(name string) (*dto.DOITypeResponse, error) {
	typ, err := doi.ParseType(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	out := toTypeResponse(typ)
	return &out, nil
}

// ListContexts devuelve los subsistemas de reporte.
func (uc *UseCase) ListContexts() []string {
	ctxs := doi.Contexts()
	out := make([]string, 0, len(ctxs))
	for _, c := range ctxs {
		out = append(out, c.String())
	}
	return out
}

// ListSuitableTypes tipos admitidos en el subsistema indicado.
func (uc *UseCase) ListSuitableTypes(context string) (*dto.ContextTypesResponse, error) {
	ctx, err := doi.ParseContext(context)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	types, err := ctx.ListSuitableTypes()
	if err != nil {
		// Contexto parseado pero sin columna en el catálogo: inconsistencia interna.
		uc.log.Error().Err(err).Str("context", ctx.String()).Msg("catálogo inconsistente")
		return nil, err
	}
	return &dto.ContextTypesResponse{Context: ctx.String(), Types: toTypeResponses(types)}, nil
}

// Sanitize aplica la política de sanitización del tipo.
func (uc *UseCase) Sanitize(in dto.SanitizeRequest) (*dto.SanitizeResponse, error) {
	typ, err := uc.requestType(in.Type)
	if err != nil {
		return nil, err
	}
	return &dto.SanitizeResponse{Type: typ.Name(), Sanitized: typ.Sanitize(in.Number)}, nil
}

// Validate valida un número contra su tipo. Un número vacío o en blanco no es un
// error: se responde valid=false.
func (uc *UseCase) Validate(in dto.ValidateRequest) (*dto.ValidateResponse, error) {
	if err := ozzo.ValidateStruct(&in,
		ozzo.Field(&in.Type, ozzo.Required.Error("el tipo de documento es obligatorio")),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	typ, err := uc.requestType(in.Type)
	if err != nil {
		return nil, err
	}
	out := uc.validate(typ, in)
	uc.log.Debug().
		Str("type", out.Type).
		Bool("strict", out.Strict).
		Bool("valid", out.Valid).
		Msg("validación de documento")
	return &out, nil
}

// ValidateBatch valida varios números. Los errores por ítem (tipo desconocido, etc.)
// se informan en el resultado de ese ítem sin abortar el lote.
func (uc *UseCase) ValidateBatch(in dto.BatchValidateRequest) (*dto.BatchValidateResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: el lote no contiene ítems", domain.ErrInvalidInput)
	}
	if uc.cfg.BatchMaxItems > 0 && len(in.Items) > uc.cfg.BatchMaxItems {
		return nil, fmt.Errorf("%w: %d ítems, máximo %d", domain.ErrBatchTooLarge, len(in.Items), uc.cfg.BatchMaxItems)
	}
	out := &dto.BatchValidateResponse{
		BatchID: uuid.New().String(),
		Total:   len(in.Items),
		Results: make([]dto.ValidateResponse, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		typ, err := uc.requestType(item.Type)
		if err != nil {
			out.Results = append(out.Results, dto.ValidateResponse{
				Type:   item.Type,
				Number: item.Number,
				Strict: uc.strict(item.Strict),
				Reason: err.Error(),
			})
			continue
		}
		res := uc.validate(typ, item)
		if res.Valid {
			out.Valid++
		}
		out.Results = append(out.Results, res)
	}
	uc.log.Info().
		Str("batch_id", out.BatchID).
		Int("total", out.Total).
		Int("valid", out.Valid).
		Msg("lote de documentos validado")
	return out, nil
}

// ComputeCheckDigit calcula el dígito verificador del RUC.
func (uc *UseCase) ComputeCheckDigit(in dto.CheckDigitRequest) (*dto.CheckDigitResponse, error) {
	strict := uc.strict(in.Strict)
	d, err := doi.ComputeRUCCheckDigitMode(in.Number, strict)
	if err != nil {
		if errors.Is(err, doi.ErrInvalidArgument) {
			uc.log.Warn().Err(err).Bool("strict", strict).Msg("entrada inválida para dígito verificador")
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return nil, err
	}
	return &dto.CheckDigitResponse{Number: in.Number, CheckDigit: string(d)}, nil
}

func (uc *UseCase) validate(typ doi.Type, in dto.ValidateRequest) dto.ValidateResponse {
	strict := uc.strict(in.Strict)
	out := dto.ValidateResponse{
		Type:      typ.Name(),
		Number:    in.Number,
		Sanitized: typ.Sanitize(in.Number),
		Strict:    strict,
	}
	if strings.TrimSpace(in.Number) == "" {
		out.Reason = "número vacío"
		return out
	}
	if err := ozzo.Validate(in.Number, NumberRule(typ, strict)); err != nil {
		out.Reason = err.Error()
		return out
	}
	out.Valid = true
	return out
}

func (uc *UseCase) requestType(name string) (doi.Type, error) {
	typ, err := doi.ParseType(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return typ, nil
}

func (uc *UseCase) strict(v *bool) bool {
	if v == nil {
		return uc.cfg.StrictDefault
	}
	return *v
}

func toTypeResponses(types []doi.Type) []dto.DOITypeResponse {
	out := make([]dto.DOITypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, toTypeResponse(t))
	}
	return out
}

func toTypeResponse(t doi.Type) dto.DOITypeResponse {
	ids := make(map[string]string, len(doi.Contexts()))
	for _, c := range doi.Contexts() {
		id, _ := t.SubsystemID(c) // contextos del conjunto cerrado
		ids[c.String()] = id
	}
	return dto.DOITypeResponse{
		Name:                    t.Name(),
		ShortName:               t.ShortName(),
		SubsystemIDs:            ids,
		Pattern:                 t.Pattern(),
		Policy:                  t.Policy().String(),
		MaxLength:               t.MaxLength(),
		Foreign:                 t.IsForeign(),
		AcceptedForNonDomiciled: t.IsAcceptedForNonDomiciled(),
	}
}
