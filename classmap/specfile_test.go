package classmap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmap-builder/store"
)

func TestSpecFile(t *testing.T) {
	sf, err := ParseSpecFile([]byte(`
model: store.Transaction
fields:
  - {index: 1, alias: transactionid, path: TransactionId}
  - {index: 2, alias: product_name, path: Product.Name}
  - {index: 3, alias: product_sku, path: Product.Sku}
  - {index: 4, alias: product_description, path: Product.Description}
  - {index: 5, alias: promotion_date, path: Promotion.Date}
  - {index: 6, alias: promotion_price, path: Promotion.Price}
`))
	require.NoError(t, err)
	assert.Equal(t, transactionSpecs(), sf.Fields)

	path := filepath.Join(t.TempDir(), "transaction.yaml")
	require.NoError(t, WriteSpecFile(sf, path))

	loaded, err := LoadSpecFile(path)
	require.NoError(t, err)

	def, err := AssembleFor[store.Transaction](loaded.Fields)
	require.NoError(t, err)
	assert.Equal(t, 6, def.Len())

	data, err := MarshalSpecFile(loaded)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: \"1\"")
}
