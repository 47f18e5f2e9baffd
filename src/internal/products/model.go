package products

import (
	"bytes"
	"encoding/json"
	"math"
)

// Product is a single catalogue record.
type Product struct {
	ID    int     `json:"id" yaml:"id" toml:"id" validate:"gt=0"`
	Name  *string `json:"nome,omitempty" yaml:"nome,omitempty" toml:"nome,omitempty" validate:"required,min=1"`
	Price Price   `json:"preco" yaml:"preco" toml:"preco" validate:"finite"`

	// Extra holds any other keys of the stored record. They are written
	// back unchanged after the known fields.
	Extra map[string]json.RawMessage `json:"-" yaml:"-" toml:"-"`

	// rawPrice is the stored preco when it is not a plain JSON number or
	// null, such as a string. Price holds its coerced value.
	rawPrice json.RawMessage
}

// productFields has the same known fields as Product without its methods.
type productFields struct {
	ID    int     `json:"id"`
	Name  *string `json:"nome,omitempty"`
	Price Price   `json:"preco"`
}

func isKnownField(key string) bool {
	return key == fieldID || key == fieldName || key == fieldPrice
}

// SetPrice replaces the price, dropping any raw stored value.
func (p *Product) SetPrice(price Price) {
	p.Price = price
	p.rawPrice = nil
}

// setRawPrice stores raw as the price when it is not a number, keeping
// Price as its coerced value.
func (p *Product) setRawPrice(raw json.RawMessage) {
	p.Price = CoercePrice(raw)
	p.rawPrice = nil
	if !isNumberOrNull(raw) {
		p.rawPrice = append(json.RawMessage(nil), bytes.TrimSpace(raw)...)
	}
}

// PriceIsNumber reports whether preco is stored as a JSON number or null.
func (p Product) PriceIsNumber() bool {
	return p.rawPrice == nil
}

func isNumberOrNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return true
	}
	switch raw[0] {
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}

func (p Product) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(productFields{ID: p.ID, Name: p.Name, Price: p.Price})
	if err != nil {
		return nil, err
	}
	if p.rawPrice != nil {
		known, err = replacePrice(known, p.rawPrice)
		if err != nil {
			return nil, err
		}
	}

	extra := make(map[string]json.RawMessage, len(p.Extra))
	for k, v := range p.Extra {
		if !isKnownField(k) {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return known, nil
	}

	rest, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(known)+len(rest))
	out = append(out, known[:len(known)-1]...)
	out = append(out, ',')
	out = append(out, rest[1:]...)
	return out, nil
}

// replacePrice swaps the preco value in an encoded productFields object.
// preco is always the last key.
func replacePrice(known []byte, raw json.RawMessage) ([]byte, error) {
	key := []byte(`"preco":`)
	i := bytes.LastIndex(known, key)
	if i < 0 {
		return known, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(known)+buf.Len())
	out = append(out, known[:i+len(key)]...)
	out = append(out, buf.Bytes()...)
	out = append(out, '}')
	return out, nil
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	var known productFields
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	*p = Product{ID: known.ID, Name: known.Name, Price: known.Price}
	if raw, ok := all[fieldPrice]; ok {
		p.setRawPrice(raw)
	}
	for k, v := range all {
		if isKnownField(k) {
			continue
		}
		if p.Extra == nil {
			p.Extra = make(map[string]json.RawMessage)
		}
		p.Extra[k] = v
	}
	return nil
}

// NameOrEmpty returns the product name, or "" when it was never set.
func (p Product) NameOrEmpty() string {
	if p.Name == nil {
		return ""
	}
	return *p.Name
}

// Price is a product price. NaN and infinities have no JSON representation
// and are written as null; null reads back as NaN.
type Price float64

// NaN is the price stored when input could not be read as a number.
func NaN() Price {
	return Price(math.NaN())
}

// IsFinite reports whether the price is an ordinary number.
func (p Price) IsFinite() bool {
	f := float64(p)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.IsFinite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

func (p *Price) UnmarshalJSON(data []byte) error {
	*p = CoercePrice(data)
	return nil
}

// Collection is the full, ordered set of products. Order is insertion order.
type Collection []Product

// IndexOf returns the position of the first product with the given id, or -1.
func (c Collection) IndexOf(id int) int {
	for i, p := range c {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Lookup resolves a raw path parameter to a position in the collection.
// Parameters that do not parse as an integer never match.
func (c Collection) Lookup(rawID string) int {
	id, ok := ParseID(rawID)
	if !ok {
		return -1
	}
	return c.IndexOf(id)
}

// Remove deletes the product at position i, keeping the order of the rest.
func (c *Collection) Remove(i int) {
	*c = append((*c)[:i], (*c)[i+1:]...)
}

// IDStrategy selects how ids are assigned to new products.
type IDStrategy string

const (
	// IDFromLast uses the id of the last product plus one. It can hand out
	// an id again after the last product is deleted.
	IDFromLast IDStrategy = "last"

	// IDFromMax uses the largest id in the collection plus one.
	IDFromMax IDStrategy = "max"
)

// NextID returns the id for a product appended to c.
func (c Collection) NextID(strategy IDStrategy) int {
	if len(c) == 0 {
		return 1
	}
	if strategy == IDFromMax {
		highest := c[0].ID
		for _, p := range c[1:] {
			if p.ID > highest {
				highest = p.ID
			}
		}
		return highest + 1
	}
	return c[len(c)-1].ID + 1
}
