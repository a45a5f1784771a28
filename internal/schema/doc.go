// Package schema extracts load schemas from annotated struct types.
//
// Two front ends produce the same StructSpec model: a go/packages +
// go/types front end used by the code generator, and a reflect front end
// used by the runtime loader. Annotations live in struct tags (`env`,
// `default`, `prefix`) and are tokenized by ParseTag.
//
// Extraction is a pure transform: it returns either a complete StructSpec
// or a SchemaError, never a partial schema.
package schema
