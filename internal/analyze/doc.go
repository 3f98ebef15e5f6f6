// Package analyze extracts structural type metadata from reflect.Type values.
//
// It builds the descriptors the path resolver walks: which fields a struct
// exposes, what type each field declares, and where nesting continues.
// Descriptors depend only on declared types, never on instance values.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (leaf/basic/struct/pointer/slice/array/map)
//   - FieldInfo: describes field name, type, tags, embedding and index path
package analyze
