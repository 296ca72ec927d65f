// Package sample provides the dataset a dashboard shows before any upload.
package sample

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ukaji3/salesdash-go/pkg/salesdash/models"
)

//go:embed sample.json
var raw []byte

// Bundle decodes a fresh copy of the sample dataset.
func Bundle() (*models.AnalyticsBundle, error) {
	var b models.AnalyticsBundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode sample dataset: %w", err)
	}
	return &b, nil
}

// MustBundle is like Bundle but panics if the embedded dataset is invalid.
func MustBundle() *models.AnalyticsBundle {
	b, err := Bundle()
	if err != nil {
		panic(err)
	}
	return b
}
