// Package resolve turns extracted StructSpecs into load plans.
//
// Resolution pipeline:
//  1. Classify every field's annotation set into exactly one Policy,
//     collecting all conflicts across the whole tree before failing.
//  2. Compose effective lookup keys and child prefixes; explicit overrides
//     beat name derivation, name derivation beats inheritance, and flatten
//     boundaries inherit unchanged.
//  3. Emit a LoadPlan in declaration order, consumed by the code generator
//     and by the reflection loader.
package resolve
