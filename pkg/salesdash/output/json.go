// Package output serializes analytics for the CLI and other consumers.
package output

import (
	"encoding/json"

	"github.com/ukaji3/salesdash-go/pkg/salesdash"
	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

// ToJSON serializes a bundle to JSON.
func ToJSON(b *models.AnalyticsBundle, pretty bool) ([]byte, error) {
	return marshal(b, pretty)
}

// ResultToJSON serializes a processing result, including its row counts.
func ResultToJSON(r *salesdash.Result, pretty bool) ([]byte, error) {
	return marshal(r, pretty)
}

// SnapshotToJSON serializes a store snapshot.
func SnapshotToJSON(s *salesdash.Snapshot, pretty bool) ([]byte, error) {
	return marshal(s, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
