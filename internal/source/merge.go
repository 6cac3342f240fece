package source

import (
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/osseus-config/models"
)

// Merge deep-merges layers left to right into a new map; later layers win.
// Nested groups are merged key by key. Inputs are not modified.
func Merge(layers ...models.Map) (models.Map, error) {
	merged := make(models.Map)
	for i, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&merged, layer.Clone(), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging layer %d: %w", i, err)
		}
	}

	return merged, nil
}
