// Package models defines the data structures that flow through the sales pipeline.
package models

// RawRow is one parsed input row before field-name reconciliation.
// Keys are trimmed, lower-cased header names. Values are string, int64,
// float64 or bool depending on what the decoder produced. A position the
// row did not reach is absent rather than empty.
type RawRow map[string]interface{}
