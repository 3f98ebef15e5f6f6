// Package classmap builds, at runtime, the mapping between the columns of a
// flat row and the leaf fields of a model type.
//
// Each FieldSpec names a column (its index and alias) and a dotted field path
// relative to the model, such as "TransactionId" or "Product.Name". Assemble
// resolves every path against the model type, selects a typed accessor for
// the leaf from a fixed set of kinds, and returns an immutable Definition:
//
//	def, err := classmap.AssembleFor[store.Transaction]([]classmap.FieldSpec{
//		{ColumnIndex: 1, Alias: "transactionid", Path: "TransactionId"},
//		{ColumnIndex: 2, Alias: "product_name", Path: "Product.Name"},
//	})
//
// The setter of a nested entry allocates every nil pointer on its way down,
// so writing "Product.Name" into a fresh Transaction creates the Product.
//
// A path named by more than one spec is not an error. Every entry for that
// path is kept and marked Ignored, and the first such spec supplies the alias
// and column index of all of them.
//
// Supported leaf types are string, bool, int32, float64, decimal.Decimal,
// time.Time and uuid.UUID, and a pointer to any of them for nullable columns.
// Types are matched exactly: int, float32 or a named string type are
// rejected with an *UnsupportedTypeError.
package classmap
