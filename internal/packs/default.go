package packs

// PracticeAreaHousingDisrepair is the practice area served by the built-in pack.
const PracticeAreaHousingDisrepair = "housing_disrepair"

// DefaultHousingDisrepair returns the indicator pack that ships with the
// service. Pack files in the configured packs directory override it.
func DefaultHousingDisrepair() IndicatorPack {
	return IndicatorPack{
		PracticeArea: PracticeAreaHousingDisrepair,
		DampMouldFactors: []string{
			"damp",
			"mould",
			"mold",
			"condensation",
			"black spots",
			"water ingress",
			"leak",
			"rising damp",
			"penetrating damp",
			"musty smell",
			"wet walls",
			"peeling wallpaper",
		},
		VulnerableOccupantFactors: []string{
			"child",
			"children",
			"baby",
			"infant",
			"elderly",
			"pensioner",
			"disabled",
			"disability",
			"asthma",
			"copd",
			"respiratory",
			"immunocompromised",
			"pregnant",
		},
		SymptomKeywords: []string{
			"cough",
			"wheezing",
			"breathing difficulties",
			"chest infection",
			"skin rash",
			"eczema",
			"headache",
			"hospital admission",
			"gp visit",
			"inhaler",
		},
		DelayPatterns: []string{
			"no response",
			"ignored",
			"failed to attend",
			"missed appointment",
			"still waiting",
			"repeated complaint",
			"chased",
			"no repair",
			"unresolved",
		},
	}
}
