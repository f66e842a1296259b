package health

import "aurora-app-go/internal/domain/metrics"

const (
	CategoryBasal     = "basal"
	CategoryHormonal  = "hormonal"
	CategoryBlood     = "blood"
	CategoryMetabolic = "metabolic"
)

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var categories = []Category{
	{ID: CategoryBasal, Label: "Corporal Basal"},
	{ID: CategoryHormonal, Label: "Hormonal"},
	{ID: CategoryBlood, Label: "Hemograma"},
	{ID: CategoryMetabolic, Label: "Bioquímica/Metabólico"},
}

// Metrics with Min == Max == 0 have no reference range and are never flagged.
var references = []metrics.Reference{
	{ID: "weight", Label: "Peso Corporal", Unit: "kg", Category: CategoryBasal},

	{ID: "testo_total", Label: "Testosterona Total", Unit: "ng/dL", Category: CategoryHormonal, Min: 240.24, Max: 870.68},
	{ID: "testo_livre", Label: "Testosterona Livre", Unit: "ng/dL", Category: CategoryHormonal},
	{ID: "estradiol", Label: "Estradiol", Unit: "pg/mL", Category: CategoryHormonal},
	{ID: "prolactina", Label: "Prolactina", Unit: "ng/mL", Category: CategoryHormonal},
	{ID: "tsh", Label: "TSH", Unit: "µUI/mL", Category: CategoryHormonal, Min: 0.4, Max: 4.5},
	{ID: "t3", Label: "T3 (Triiodotironina)", Unit: "ng/dL", Category: CategoryHormonal, Min: 64, Max: 152},
	{ID: "t4", Label: "T4 (Tiroxina)", Unit: "ng/dL", Category: CategoryHormonal, Min: 0.7, Max: 1.48},
	{ID: "psa_total", Label: "PSA Total", Unit: "ng/dL", Category: CategoryHormonal, Max: 4},

	{ID: "hemoglobina", Label: "Hemoglobina", Unit: "g/dL", Category: CategoryBlood, Min: 13, Max: 17},
	{ID: "hematocritos", Label: "Hematócritos", Unit: "%", Category: CategoryBlood, Min: 40, Max: 50},
	{ID: "leucocitos", Label: "Leucócitos", Unit: "/µL", Category: CategoryBlood, Min: 4000, Max: 10000},
	{ID: "plaquetas", Label: "Plaquetas", Unit: "/µL", Category: CategoryBlood, Min: 150000, Max: 450000},

	{ID: "glicose", Label: "Glicose", Unit: "mg/dL", Category: CategoryMetabolic, Min: 70, Max: 99},
	{ID: "colesterol_total", Label: "Colesterol Total", Unit: "mg/dL", Category: CategoryMetabolic, Max: 190},
	{ID: "hdl", Label: "HDL Colesterol", Unit: "mg/dL", Category: CategoryMetabolic, Min: 40, Max: 999},
	{ID: "ldl", Label: "LDL Colesterol", Unit: "mg/dL", Category: CategoryMetabolic, Max: 130},
	{ID: "triglicerides", Label: "Triglicérides", Unit: "mg/dL", Category: CategoryMetabolic, Max: 150},
	{ID: "creatinina", Label: "Creatinina", Unit: "mg/dL", Category: CategoryMetabolic, Min: 0.66, Max: 1.25},
	{ID: "ureia", Label: "Uréia", Unit: "mg/dL", Category: CategoryMetabolic, Min: 15, Max: 36},
	{ID: "tgo", Label: "TGO (AST)", Unit: "U/L", Category: CategoryMetabolic, Max: 40},
	{ID: "tgp", Label: "TGP (ALT)", Unit: "U/L", Category: CategoryMetabolic, Max: 45},
	{ID: "gama_gt", Label: "Gama GT", Unit: "U/L", Category: CategoryMetabolic, Min: 3, Max: 65},
}

var referenceByID = func() map[string]metrics.Reference {
	byID := make(map[string]metrics.Reference, len(references))
	for _, ref := range references {
		byID[ref.ID] = ref
	}
	return byID
}()

func References() []metrics.Reference {
	out := make([]metrics.Reference, len(references))
	copy(out, references)
	return out
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func LookupReference(id string) (metrics.Reference, bool) {
	ref, ok := referenceByID[id]
	return ref, ok
}
