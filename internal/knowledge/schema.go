package knowledge

// StageBlock is one lifecycle phase of a crop, covering the inclusive day
// range [DayStart, DayEnd].
type StageBlock struct {
	Stage              string   `yaml:"stage"`
	DayStart           int      `yaml:"dayStart"`
	DayEnd             int      `yaml:"dayEnd"`
	Actions            []string `yaml:"actions"`
	Dependencies       []string `yaml:"dependencies"`
	WeatherConstraints []string `yaml:"weatherConstraints"`
}

// CatalogEntry is one crop in the validation catalog. An empty
// SuitableRegions list means no region restriction.
type CatalogEntry struct {
	ID              string   `yaml:"id"`
	SuitableRegions []string `yaml:"suitableRegions"`
}

// SoilProfile holds crop-agnostic defaults for one soil type.
type SoilProfile struct {
	PHRange        []float64 `yaml:"phRange"`
	NitrogenAdvice string    `yaml:"nitrogenAdvice"`
}

// RegionalSoil is the soil override for a known region.
type RegionalSoil struct {
	SoilType string  `yaml:"soilType"`
	PH       float64 `yaml:"ph"`
}

// SoilRules is the query result for a location: global defaults always,
// regional override only when the region is known.
type SoilRules struct {
	Defaults map[string]SoilProfile
	Regional *RegionalSoil
}

// ReplanningRules governs how blocked actions are rescheduled.
type ReplanningRules struct {
	RainBlockedActions      []string          `yaml:"rainBlockedActions"`
	SprayDelayToleranceDays int               `yaml:"sprayDelayToleranceDays"`
	AlternativeActions      map[string]string `yaml:"alternativeActions"`
}

// document is the on-disk shape of a knowledge file.
type document struct {
	CropCatalog []CatalogEntry          `yaml:"cropCatalog"`
	StageModels map[string][]StageBlock `yaml:"stageModels"`
	SoilRules   struct {
		Defaults         map[string]SoilProfile  `yaml:"defaults"`
		RegionalDefaults map[string]RegionalSoil `yaml:"regionalDefaults"`
	} `yaml:"soilRules"`
	ReplanningRules ReplanningRules `yaml:"replanningRules"`
}
