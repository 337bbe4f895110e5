package knowledge

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store is the read-only query interface over the persistent agronomy
// knowledge. All methods are pure in-memory reads.
type Store interface {
	// CropLifecycle returns the ordered stage blocks for a crop, or an
	// empty slice when the crop has no stage model.
	CropLifecycle(crop string) []StageBlock

	// SoilRules returns global soil defaults plus the regional override for
	// the location if one exists. A missing region is not an error.
	SoilRules(location string) SoilRules

	// CropCatalog returns the catalog used for intent validation.
	CropCatalog() []CatalogEntry

	// ReplanningRules returns rescheduling rules. Fields may be empty when
	// the knowledge file omits them; callers apply their own defaults.
	ReplanningRules() ReplanningRules
}

//go:embed knowledge.yaml
var defaultKnowledge []byte

type fileStore struct {
	doc document
}

// Open loads a knowledge file from path. An empty path loads the embedded
// default knowledge. The document is validated before use.
func Open(path string) (Store, error) {
	raw := defaultKnowledge
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading knowledge file: %w", err)
		}
		raw = b
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing knowledge file: %w", err)
	}
	if err := validate(&doc); err != nil {
		return nil, fmt.Errorf("invalid knowledge file: %w", err)
	}
	return &fileStore{doc: doc}, nil
}

func (s *fileStore) CropLifecycle(crop string) []StageBlock {
	key := strings.ToLower(strings.TrimSpace(crop))
	for name, stages := range s.doc.StageModels {
		if strings.ToLower(name) == key {
			return stages
		}
	}
	return nil
}

func (s *fileStore) SoilRules(location string) SoilRules {
	out := SoilRules{Defaults: s.doc.SoilRules.Defaults}
	if r, ok := s.doc.SoilRules.RegionalDefaults[location]; ok {
		out.Regional = &r
	}
	return out
}

func (s *fileStore) CropCatalog() []CatalogEntry {
	return s.doc.CropCatalog
}

func (s *fileStore) ReplanningRules() ReplanningRules {
	return s.doc.ReplanningRules
}
