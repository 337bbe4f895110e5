package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_GappedLifecycleRejected(t *testing.T) {
	doc := &document{
		StageModels: map[string][]StageBlock{
			"rice": {
				{Stage: "Sowing", DayStart: 1, DayEnd: 5},
				{Stage: "Vegetative", DayStart: 8, DayEnd: 60}, // gap at days 6-7
			},
		},
	}
	err := validate(doc)
	assert.ErrorContains(t, err, "contiguous")
}

func TestValidate_LifecycleMustStartAtDayOne(t *testing.T) {
	doc := &document{
		StageModels: map[string][]StageBlock{
			"rice": {{Stage: "Sowing", DayStart: 2, DayEnd: 5}},
		},
	}
	assert.Error(t, validate(doc))
}

func TestValidate_InvertedStageRejected(t *testing.T) {
	doc := &document{
		StageModels: map[string][]StageBlock{
			"rice": {{Stage: "Sowing", DayStart: 1, DayEnd: 0}},
		},
	}
	assert.ErrorContains(t, validate(doc), "before it starts")
}

func TestValidate_DuplicateCatalogID(t *testing.T) {
	doc := &document{
		CropCatalog: []CatalogEntry{{ID: "rice"}, {ID: "rice"}},
	}
	assert.ErrorContains(t, validate(doc), "duplicate")
}

func TestValidate_NegativeToleranceRejected(t *testing.T) {
	doc := &document{}
	doc.ReplanningRules.SprayDelayToleranceDays = -1
	assert.Error(t, validate(doc))
}

func TestValidate_EmptyDocumentOK(t *testing.T) {
	assert.NoError(t, validate(&document{}))
}
