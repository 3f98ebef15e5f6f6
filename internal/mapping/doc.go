// Package mapping provides field-spec schema definitions, YAML loading,
// dotted path parsing, path resolution against model types and validation.
//
// # Field specs
//
// A field spec binds a column position and alias to a target field path:
//
//	version: "1"
//	model: store.Transaction
//	fields:
//	  - index: 1
//	    alias: transactionid
//	    path: TransactionId
//	  - index: 2
//	    alias: product_name
//	    path: Product.Name
//
// # Path Syntax
//
// Field paths are dot-separated field names, root-relative to the model type:
//   - Simple fields: "Name"
//   - Nested fields: "Product.Name", "Promotion.Date"
//
// Names are matched ordinally and case-sensitively against exported fields,
// including fields promoted from embedded structs. Pointers to structs are
// followed structurally, so resolution succeeds whether or not an instance
// currently holds a value there.
//
// # Ambiguity
//
// Specs are looked up by exact path equality. A path named by exactly one
// spec is mapped; a path named by several specs is kept but marked ignored,
// for every one of them. The first spec with the path supplies the alias and
// column index.
package mapping
