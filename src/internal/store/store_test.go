package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lojadigital/produtos/src/internal/errors"
	"github.com/lojadigital/produtos/src/internal/products"
)

func strPtr(s string) *string { return &s }

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "db.json"))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := newTestStore(t)

	c, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Empty(t, c)
}

func TestLoad_MissingKeyIsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{}`), 0644))

	c, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestLoad_CorruptData(t *testing.T) {
	for _, content := range []string{`{"produtos": [`, `[]`, `not json`, ``, `{"produtos": [{"id": "x"}]}`} {
		s := newTestStore(t)
		require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))

		_, err := s.Load()
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeCorruptData), "content %q: %v", content, err)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	in := products.Collection{
		{ID: 1, Name: strPtr("Caneca"), Price: 5.5},
		{ID: 3, Name: strPtr("Copo"), Price: 2},
		{ID: 2, Name: strPtr("Prato"), Price: 12.75},
	}

	require.NoError(t, s.Save(in))
	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveLoad_KeepsUnknownFields(t *testing.T) {
	s := newTestStore(t)
	content := `{"produtos":[{"id":1,"nome":"A","preco":1,"categoria":"x"},{"id":2,"nome":"B","preco":"2","stock":7}],"versao":1}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))

	c, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, s.Save(c))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"produtos":[{"id":1,"nome":"A","preco":1,"categoria":"x"},{"id":2,"nome":"B","preco":"2","stock":7}]}`, string(data))
}

func TestSave_Layout(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(products.Collection{{ID: 1, Name: strPtr("Caneca"), Price: 5.5}}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"produtos":[{"id":1,"nome":"Caneca","preco":5.5}]}`, string(data))
	assert.Contains(t, string(data), "\n  \"produtos\"")
}

func TestSave_EmptyCollectionIsArray(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"produtos":[]}`, string(data))
}

func TestSave_NaNPriceBecomesNull(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save(products.Collection{{ID: 1, Price: products.NaN()}}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"produtos":[{"id":1,"preco":null}]}`, string(data))

	c, err := s.Load()
	require.NoError(t, err)
	assert.False(t, c[0].Price.IsFinite())
}

func TestSave_IOError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	s := New(filepath.Join(blocker, "db.json"))
	err := s.Save(products.Collection{})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeIO), "got %v", err)
}

func TestModify_ErrorSkipsSave(t *testing.T) {
	s := newTestStore(t)
	boom := apperrors.NewNotFoundError("product")

	err := s.Modify(func(c *products.Collection) error {
		*c = append(*c, products.Product{ID: 1})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestModify_ConcurrentWritersDoNotLoseUpdates(t *testing.T) {
	s := newTestStore(t)
	policy := products.Policy{Mode: products.ModeLenient, IDStrategy: products.IDFromLast}

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Modify(func(c *products.Collection) error {
				_, err := policy.Create(c, products.Fields{})
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c, err := s.Load()
	require.NoError(t, err)
	require.Len(t, c, writers)
	for i, p := range c {
		assert.Equal(t, i+1, p.ID)
	}
}
