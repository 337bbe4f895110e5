package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rushi2212/agrimitra/internal/knowledge"
)

func testKB(t *testing.T) knowledge.Store {
	t.Helper()
	kb, err := knowledge.Open("")
	require.NoError(t, err)
	return kb
}

// stubKB overrides individual lookups for tests that need rules the
// default knowledge file does not carry.
type stubKB struct {
	lifecycle map[string][]knowledge.StageBlock
	catalog   []knowledge.CatalogEntry
	soil      knowledge.SoilRules
	replan    knowledge.ReplanningRules
}

func (s *stubKB) CropLifecycle(crop string) []knowledge.StageBlock { return s.lifecycle[crop] }
func (s *stubKB) SoilRules(string) knowledge.SoilRules             { return s.soil }
func (s *stubKB) CropCatalog() []knowledge.CatalogEntry            { return s.catalog }
func (s *stubKB) ReplanningRules() knowledge.ReplanningRules       { return s.replan }
