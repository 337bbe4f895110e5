package pest

// Kind separates insect pests from diseases in findings.
type Kind string

const (
	KindPest    Kind = "pest"
	KindDisease Kind = "disease"
)

// Threat describes one pest or disease and the conditions that favor it.
// Severity accrues from matched weather factors against SeverityBase.
type Threat struct {
	Name            string
	Kind            Kind
	Stages          []string
	HumidityMin     float64
	HumidityMax     float64
	TempMin         float64
	TempMax         float64
	RainfallTrigger float64
	SeverityBase    float64
	Description     string
}

// threatDB is the per-crop threat catalog, keyed by canonical crop name.
var threatDB = map[string][]Threat{
	"rice": {
		{Name: "Stem Borer", Kind: KindPest, Stages: []string{"Vegetative", "Tillering", "Panicle Initiation"},
			HumidityMin: 70, HumidityMax: 100, TempMin: 25, TempMax: 32, RainfallTrigger: 5, SeverityBase: 40,
			Description: "Larvae bore into stem causing dead hearts and white ears"},
		{Name: "Brown Planthopper", Kind: KindPest, Stages: []string{"Tillering", "Panicle Initiation", "Flowering"},
			HumidityMin: 80, HumidityMax: 100, TempMin: 25, TempMax: 30, RainfallTrigger: 0, SeverityBase: 35,
			Description: "Sucks sap from plants, causes hopper burn"},
		{Name: "Leaf Folder", Kind: KindPest, Stages: []string{"Vegetative", "Tillering"},
			HumidityMin: 75, HumidityMax: 95, TempMin: 20, TempMax: 30, RainfallTrigger: 3, SeverityBase: 25,
			Description: "Folds leaves and feeds inside, reducing photosynthesis"},
		{Name: "Blast Disease", Kind: KindDisease, Stages: []string{"Nursery", "Vegetative", "Panicle Initiation"},
			HumidityMin: 85, HumidityMax: 100, TempMin: 20, TempMax: 28, RainfallTrigger: 10, SeverityBase: 50,
			Description: "Fungal disease causing diamond-shaped lesions on leaves"},
		{Name: "Sheath Blight", Kind: KindDisease, Stages: []string{"Tillering", "Panicle Initiation", "Flowering"},
			HumidityMin: 80, HumidityMax: 100, TempMin: 28, TempMax: 35, RainfallTrigger: 5, SeverityBase: 45,
			Description: "Fungal disease affecting leaf sheaths, spreads rapidly"},
		{Name: "Bacterial Leaf Blight", Kind: KindDisease, Stages: []string{"Vegetative", "Tillering", "Panicle Initiation"},
			HumidityMin: 70, HumidityMax: 100, TempMin: 25, TempMax: 34, RainfallTrigger: 15, SeverityBase: 40,
			Description: "Bacterial infection causing water-soaked lesions"},
	},
	"wheat": {
		{Name: "Aphids", Kind: KindPest, Stages: []string{"Vegetative", "Flowering", "Grain Filling"},
			HumidityMin: 60, HumidityMax: 80, TempMin: 15, TempMax: 25, RainfallTrigger: 0, SeverityBase: 30,
			Description: "Suck plant sap, transmit viral diseases"},
		{Name: "Termites", Kind: KindPest, Stages: []string{"Germination", "Vegetative"},
			HumidityMin: 50, HumidityMax: 70, TempMin: 20, TempMax: 35, RainfallTrigger: 0, SeverityBase: 35,
			Description: "Attack roots and stems at soil level"},
		{Name: "Rust (Yellow/Brown/Black)", Kind: KindDisease, Stages: []string{"Vegetative", "Flowering", "Grain Filling"},
			HumidityMin: 70, HumidityMax: 100, TempMin: 15, TempMax: 25, RainfallTrigger: 2, SeverityBase: 55,
			Description: "Fungal disease causing rust-colored pustules on leaves"},
		{Name: "Powdery Mildew", Kind: KindDisease, Stages: []string{"Vegetative", "Flowering"},
			HumidityMin: 60, HumidityMax: 90, TempMin: 15, TempMax: 22, RainfallTrigger: 0, SeverityBase: 40,
			Description: "White powdery fungal growth on leaves"},
	},
	"cotton": {
		{Name: "Bollworm", Kind: KindPest, Stages: []string{"Flowering", "Boll Formation"},
			HumidityMin: 60, HumidityMax: 80, TempMin: 25, TempMax: 35, RainfallTrigger: 0, SeverityBase: 60,
			Description: "Larvae feed on squares, flowers, and bolls"},
		{Name: "Whitefly", Kind: KindPest, Stages: []string{"Vegetative", "Flowering"},
			HumidityMin: 70, HumidityMax: 90, TempMin: 27, TempMax: 35, RainfallTrigger: 0, SeverityBase: 45,
			Description: "Sucks sap and transmits leaf curl virus"},
		{Name: "Wilt", Kind: KindDisease, Stages: []string{"Vegetative", "Flowering"},
			HumidityMin: 70, HumidityMax: 100, TempMin: 25, TempMax: 35, RainfallTrigger: 10, SeverityBase: 50,
			Description: "Fungal disease causing wilting and plant death"},
	},
	"tomato": {
		{Name: "Fruit Borer", Kind: KindPest, Stages: []string{"Flowering", "Fruiting"},
			HumidityMin: 65, HumidityMax: 85, TempMin: 20, TempMax: 30, RainfallTrigger: 0, SeverityBase: 50,
			Description: "Larvae bore into fruits causing damage"},
		{Name: "Whitefly", Kind: KindPest, Stages: []string{"Vegetative", "Flowering", "Fruiting"},
			HumidityMin: 70, HumidityMax: 90, TempMin: 25, TempMax: 32, RainfallTrigger: 0, SeverityBase: 40,
			Description: "Transmits tomato leaf curl virus"},
		{Name: "Early Blight", Kind: KindDisease, Stages: []string{"Vegetative", "Flowering", "Fruiting"},
			HumidityMin: 80, HumidityMax: 100, TempMin: 24, TempMax: 29, RainfallTrigger: 5, SeverityBase: 45,
			Description: "Fungal disease causing concentric ring spots on leaves"},
		{Name: "Late Blight", Kind: KindDisease, Stages: []string{"Flowering", "Fruiting"},
			HumidityMin: 90, HumidityMax: 100, TempMin: 10, TempMax: 25, RainfallTrigger: 10, SeverityBase: 60,
			Description: "Devastating fungal disease affecting leaves and fruits"},
	},
	"potato": {
		{Name: "Aphids", Kind: KindPest, Stages: []string{"Vegetative", "Tuber Formation"},
			HumidityMin: 60, HumidityMax: 80, TempMin: 18, TempMax: 25, RainfallTrigger: 0, SeverityBase: 35,
			Description: "Transmit viral diseases, reduce yield"},
		{Name: "Late Blight", Kind: KindDisease, Stages: []string{"Vegetative", "Tuber Formation"},
			HumidityMin: 90, HumidityMax: 100, TempMin: 10, TempMax: 25, RainfallTrigger: 10, SeverityBase: 65,
			Description: "Most destructive potato disease, causes rapid death"},
	},
}

// preventiveActions lists the standing recommendations per risk level.
var preventiveActions = map[Level][]string{
	LevelLow: {
		"Monitor crop regularly for early signs of pests/diseases",
		"Maintain field sanitation and remove crop residues",
		"Ensure proper drainage to prevent waterlogging",
		"Use pheromone traps for pest monitoring",
	},
	LevelMedium: {
		"Increase monitoring frequency to twice weekly",
		"Remove and destroy infected plants immediately",
		"Apply recommended bio-pesticides (Neem-based products)",
		"Ensure adequate plant spacing for air circulation",
		"Apply sticky traps to monitor insect populations",
		"Spray Trichoderma for fungal disease prevention",
	},
	LevelHigh: {
		"Apply recommended chemical pesticides immediately",
		"Increase field inspection to daily monitoring",
		"Set up pheromone traps at 20-25 traps per hectare",
		"Apply systemic fungicides for disease prevention",
		"Consider emergency spraying schedule (every 7 days)",
		"Consult with agricultural extension officer",
		"Isolate affected field areas to prevent spread",
	},
	LevelCritical: {
		"URGENT: Apply emergency pest/disease control measures now",
		"Contact agricultural extension officer immediately",
		"Implement emergency spray schedule (every 3-5 days)",
		"Isolate and quarantine severely affected areas",
		"Consider crop loss mitigation and insurance claims",
		"Daily monitoring and treatment required",
		"Deploy all available integrated pest management strategies",
		"Prepare for potential crop salvage or early harvest",
	},
}
