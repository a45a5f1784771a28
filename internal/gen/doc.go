// Package gen renders load plans into Go source files.
//
// Each root type produces one file holding an exported Load function and
// one unexported loader per struct node. Generated files reference the
// runtime facilities only through canonical import aliases, so declarations
// in the consumer package can never shadow them. Output is passed through
// go/format before it is returned.
package gen
