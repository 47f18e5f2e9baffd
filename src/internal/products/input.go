package products

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	apperrors "github.com/lojadigital/produtos/src/internal/errors"
)

// Mode selects how request bodies are interpreted.
type Mode string

const (
	ModeLenient Mode = "lenient"
	ModeStrict  Mode = "strict"
)

const (
	fieldID    = "id"
	fieldName  = "nome"
	fieldPrice = "preco"
)

// Fields is a request body decoded one level deep. Only the keys present in
// the body are set, which is what a shallow merge needs.
type Fields map[string]json.RawMessage

// Has reports whether the body carried key, even with a null value.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// DecodeFields reads a JSON object from r. An empty body decodes to an empty
// object; any other non-object document is rejected.
func DecodeFields(r io.Reader) (Fields, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to read request body", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Fields{}, nil
	}
	if data[0] != '{' {
		return nil, apperrors.NewBadRequestError("request body must be a JSON object", nil)
	}

	var fields Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, apperrors.NewBadRequestError("invalid JSON", err)
	}
	if fields == nil {
		fields = Fields{}
	}
	return fields, nil
}

// Policy bundles the settings that shape create and update.
type Policy struct {
	Mode       Mode
	IDStrategy IDStrategy
}

// Create builds the product a POST body describes and appends it to c.
func (p Policy) Create(c *Collection, body Fields) (Product, error) {
	var product Product
	if p.Mode == ModeStrict {
		in, err := decodeCreateInput(body)
		if err != nil {
			return Product{}, err
		}
		product = Product{Name: &in.Name, Price: Price(in.Price)}
	} else {
		product = Product{
			Name:  CoerceName(body[fieldName]),
			Price: CoercePrice(body[fieldPrice]),
		}
	}

	product.ID = c.NextID(p.IDStrategy)
	*c = append(*c, product)
	return product, nil
}

// Update shallow-merges body onto the product at position i: every field the
// body carries overwrites the stored one, the rest are kept. In lenient mode
// a non-numeric preco is stored as sent and unknown keys are kept in Extra;
// strict mode validates preco and ignores unknown keys.
func (p Policy) Update(c Collection, i int, body Fields) (Product, error) {
	current := c[i]

	if body.Has(fieldID) {
		newID, err := decodeID(body[fieldID])
		if err != nil {
			return Product{}, err
		}
		if newID != current.ID {
			if p.Mode == ModeStrict {
				return Product{}, apperrors.NewBadRequestError(
					fmt.Sprintf("id cannot be changed (path id %d, body id %d)", current.ID, newID), nil)
			}
			if c.IndexOf(newID) >= 0 {
				return Product{}, apperrors.NewConflictError(fmt.Sprintf("id %d is already in use", newID))
			}
			current.ID = newID
		}
	}

	if p.Mode == ModeStrict {
		in, err := decodeUpdateInput(body)
		if err != nil {
			return Product{}, err
		}
		if in.Name != nil {
			current.Name = in.Name
		}
		if in.Price != nil {
			current.SetPrice(Price(*in.Price))
		}
	} else {
		if body.Has(fieldName) {
			current.Name = CoerceName(body[fieldName])
		}
		if body.Has(fieldPrice) {
			current.setRawPrice(body[fieldPrice])
		}
		current.Extra = mergeExtra(current.Extra, body)
	}

	c[i] = current
	return current, nil
}

// mergeExtra returns extra with every unknown key of body laid over it.
// extra itself is not modified.
func mergeExtra(extra map[string]json.RawMessage, body Fields) map[string]json.RawMessage {
	var merged map[string]json.RawMessage
	for k, v := range body {
		if isKnownField(k) {
			continue
		}
		if merged == nil {
			merged = make(map[string]json.RawMessage, len(extra)+len(body))
			for ek, ev := range extra {
				merged[ek] = ev
			}
		}
		merged[k] = v
	}
	if merged == nil {
		return extra
	}
	return merged
}

func decodeID(raw json.RawMessage) (int, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil || f != float64(int(f)) {
		return 0, apperrors.NewBadRequestError("id must be an integer", err)
	}
	if f <= 0 {
		return 0, apperrors.NewBadRequestError("id must be positive", nil)
	}
	return int(f), nil
}
