package products

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/lojadigital/produtos/src/internal/errors"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"campo"`
	Message string `json:"mensagem"`
}

// ValidationErrors is a collection of field errors.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	parts := make([]string, 0, len(ve))
	for _, e := range ve {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// createInput is the strict schema for POST bodies.
type createInput struct {
	Name  string  `json:"nome" validate:"required,max=200"`
	Price float64 `json:"preco" validate:"finite,gte=0"`
}

// updateInput is the strict schema for PUT bodies; nil fields are absent.
type updateInput struct {
	Name  *string  `json:"nome" validate:"omitnil,min=1,max=200"`
	Price *float64 `json:"preco" validate:"omitnil,finite,gte=0"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("finite", validateFinite); err != nil {
		panic(err)
	}

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		return fmt.Sprintf("tamanho mínimo %s", e.Param())
	case "max":
		return fmt.Sprintf("tamanho máximo %s", e.Param())
	case "gte":
		return fmt.Sprintf("deve ser >= %s", e.Param())
	case "gt":
		return fmt.Sprintf("deve ser > %s", e.Param())
	case "finite":
		return "deve ser um número"
	default:
		return fmt.Sprintf("validação falhou: %s", e.Tag())
	}
}

func convertValidatorErrors(err error) ValidationErrors {
	var out ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			out = append(out, FieldError{Field: e.Field(), Message: getValidationMessage(e)})
		}
	}
	return out
}

func badRequest(err error) error {
	if verrs := convertValidatorErrors(err); len(verrs) > 0 {
		return apperrors.NewBadRequestError("invalid product", verrs)
	}
	return apperrors.NewBadRequestError("invalid product", err)
}

// strictPrice accepts JSON numbers and numeric strings. Anything else is
// reported as NaN so the finite check rejects it.
func strictPrice(raw json.RawMessage) float64 {
	return float64(CoercePrice(raw))
}

func strictName(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func decodeCreateInput(body Fields) (createInput, error) {
	var in createInput

	if body.Has(fieldName) {
		name, ok := strictName(body[fieldName])
		if !ok {
			return in, apperrors.NewBadRequestError("invalid product",
				ValidationErrors{{Field: fieldName, Message: "deve ser texto"}})
		}
		in.Name = name
	}
	in.Price = strictPrice(body[fieldPrice])

	if err := validate.Struct(in); err != nil {
		return in, badRequest(err)
	}
	return in, nil
}

func decodeUpdateInput(body Fields) (updateInput, error) {
	var in updateInput

	if body.Has(fieldName) {
		name, ok := strictName(body[fieldName])
		if !ok {
			return in, apperrors.NewBadRequestError("invalid product",
				ValidationErrors{{Field: fieldName, Message: "deve ser texto"}})
		}
		in.Name = &name
	}
	if body.Has(fieldPrice) {
		price := strictPrice(body[fieldPrice])
		in.Price = &price
	}

	if err := validate.Struct(in); err != nil {
		return in, badRequest(err)
	}
	return in, nil
}

// Problem is an invariant violation found in a stored collection.
type Problem struct {
	Index   int
	ID      int
	Field   string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("#%d (id %d) %s: %s", p.Index, p.ID, p.Field, p.Message)
}

// Problems checks every product in c and the uniqueness of ids.
func (c Collection) Problems() []Problem {
	var problems []Problem
	seen := make(map[int]int, len(c))

	for i, p := range c {
		if err := validate.Struct(p); err != nil {
			for _, fe := range convertValidatorErrors(err) {
				problems = append(problems, Problem{Index: i, ID: p.ID, Field: fe.Field, Message: fe.Message})
			}
		}

		if !p.PriceIsNumber() && p.Price.IsFinite() {
			problems = append(problems, Problem{Index: i, ID: p.ID, Field: fieldPrice, Message: "guardado como texto, não como número"})
		}

		if first, dup := seen[p.ID]; dup {
			problems = append(problems, Problem{
				Index:   i,
				ID:      p.ID,
				Field:   fieldID,
				Message: fmt.Sprintf("id duplicado (também em #%d)", first),
			})
		} else {
			seen[p.ID] = i
		}
	}
	return problems
}
