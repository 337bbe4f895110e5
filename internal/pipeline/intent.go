package pipeline

import (
	"context"
	"strings"

	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/knowledge"
)

// IntentValidator checks the requested crop and location against the crop
// catalog. Validation is advisory, not a hard gate: a farmer is never
// blocked by an incomplete catalog, so an invalid intent still flows
// through the rest of the pipeline with best-effort data.
type IntentValidator struct {
	kb knowledge.Store
}

func NewIntentValidator(kb knowledge.Store) *IntentValidator {
	return &IntentValidator{kb: kb}
}

// Validate normalizes the crop/location on the state and reports whether
// the intent matches the catalog. It mutates only the echoed inputs.
func (v *IntentValidator) Validate(s *domain.FarmState) bool {
	s.Crop = strings.ToLower(strings.TrimSpace(s.Crop))
	s.Location = strings.TrimSpace(s.Location)

	for _, entry := range v.kb.CropCatalog() {
		if strings.ToLower(entry.ID) != s.Crop {
			continue
		}
		if len(entry.SuitableRegions) == 0 {
			return true
		}
		for _, region := range entry.SuitableRegions {
			if region == s.Location {
				return true
			}
		}
		return false
	}
	return false
}

func (v *IntentValidator) Run(ctx context.Context, s *domain.FarmState) error {
	v.Validate(s)
	return nil
}
