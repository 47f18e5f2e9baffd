package products

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCollection_NextID(t *testing.T) {
	tests := []struct {
		name     string
		ids      []int
		strategy IDStrategy
		want     int
	}{
		{"empty", nil, IDFromLast, 1},
		{"empty max", nil, IDFromMax, 1},
		{"last element", []int{1, 2, 3}, IDFromLast, 4},
		{"last is not the largest", []int{5, 2}, IDFromLast, 3},
		{"true maximum", []int{5, 2}, IDFromMax, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Collection
			for _, id := range tt.ids {
				c = append(c, Product{ID: id})
			}
			assert.Equal(t, tt.want, c.NextID(tt.strategy))
		})
	}
}

func TestCollection_NextIDReusesAfterDeletingLast(t *testing.T) {
	c := Collection{{ID: 1}, {ID: 2}}
	c.Remove(c.IndexOf(2))

	assert.Equal(t, 2, c.NextID(IDFromLast))
	assert.Equal(t, 2, c.NextID(IDFromMax))

	c = Collection{{ID: 3}, {ID: 1}}
	c.Remove(c.IndexOf(1))
	assert.Equal(t, 4, c.NextID(IDFromLast))
}

func TestCollection_Lookup(t *testing.T) {
	c := Collection{{ID: 1}, {ID: 26}, {ID: 7}}

	assert.Equal(t, 0, c.Lookup("1"))
	assert.Equal(t, 2, c.Lookup("7abc"))
	assert.Equal(t, 1, c.Lookup("0x1A"))
	assert.Equal(t, -1, c.Lookup("99"))
	assert.Equal(t, -1, c.Lookup("abc"))
	assert.Equal(t, -1, c.Lookup(""))
}

func TestCollection_RemoveKeepsOrder(t *testing.T) {
	c := Collection{{ID: 1}, {ID: 2}, {ID: 3}}
	c.Remove(1)

	require.Len(t, c, 2)
	assert.Equal(t, 1, c[0].ID)
	assert.Equal(t, 3, c[1].ID)
}

func TestPrice_JSON(t *testing.T) {
	data, err := json.Marshal(Product{ID: 1, Name: strPtr("Caneca"), Price: 5.5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"nome":"Caneca","preco":5.5}`, string(data))

	data, err = json.Marshal(Product{ID: 2, Price: NaN()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"preco":null}`, string(data))

	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"nome":"Copo","preco":null}`), &p))
	assert.True(t, math.IsNaN(float64(p.Price)))

	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"nome":"Copo","preco":"9.99"}`), &p))
	assert.Equal(t, Price(9.99), p.Price)
}

func TestProduct_JSONKeepsUnknownFields(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"nome":"A","preco":1,"categoria":"x","tags":["a","b"]}`), &p))

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "A", p.NameOrEmpty())
	assert.JSONEq(t, `"x"`, string(p.Extra["categoria"]))
	assert.NotContains(t, p.Extra, "id")

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"nome":"A","preco":1,"categoria":"x","tags":["a","b"]}`, string(data))

	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"preco":2}`), &p))
	assert.Nil(t, p.Extra)
}

func TestProduct_JSONKeepsNonNumericPrice(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"nome":"A","preco":"5.5kg"}`), &p))
	assert.Equal(t, Price(5.5), p.Price)
	assert.False(t, p.PriceIsNumber())

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"nome":"A","preco":"5.5kg"}`, string(data))

	p.SetPrice(7)
	assert.True(t, p.PriceIsNumber())
	data, err = json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"nome":"A","preco":7}`, string(data))
}
