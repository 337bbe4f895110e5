package knowledge

import "fmt"

// validate rejects malformed knowledge documents at open time so the
// pipeline never sees a gapped or overlapping lifecycle.
func validate(doc *document) error {
	for crop, stages := range doc.StageModels {
		if len(stages) == 0 {
			return fmt.Errorf("crop %q: empty stage model", crop)
		}
		prevEnd := 0
		for i, st := range stages {
			if st.Stage == "" {
				return fmt.Errorf("crop %q: stage %d has no name", crop, i)
			}
			if st.DayStart != prevEnd+1 {
				return fmt.Errorf("crop %q: stage %q starts at day %d, want %d (lifecycle must be contiguous)",
					crop, st.Stage, st.DayStart, prevEnd+1)
			}
			if st.DayEnd < st.DayStart {
				return fmt.Errorf("crop %q: stage %q ends at day %d before it starts", crop, st.Stage, st.DayEnd)
			}
			prevEnd = st.DayEnd
		}
	}

	if doc.ReplanningRules.SprayDelayToleranceDays < 0 {
		return fmt.Errorf("sprayDelayToleranceDays must not be negative")
	}

	seen := make(map[string]bool, len(doc.CropCatalog))
	for _, e := range doc.CropCatalog {
		if e.ID == "" {
			return fmt.Errorf("crop catalog entry with empty id")
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate crop catalog id %q", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
