// Package diagnostic provides structured, aggregated schema-time messages.
//
// Resolution never fails fast: every conflicting or malformed annotation in
// a schema tree is collected into one Diagnostics value before the caller
// decides to stop.
package diagnostic
