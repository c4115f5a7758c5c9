package engine

// genericProfileKey is the fallback profile for waste types without a
// dedicated entry. It must always be present in the table; startup
// validation enforces this.
const genericProfileKey = "crop_residues"

// All supported regions share one agro-climatic default; the selector
// accepts an explicit zone but no current rule conditions on it.
const defaultClimateZone = "tropical"

func defaultProfiles() map[string]WasteProfile {
	profiles := map[string]WasteProfile{
		"cow_dung":          {Category: "Animal Waste", PercentCarbon: 38, PercentNitrogen: 0.5, DecompositionSpeed: DecompositionFast, TypicalMoisture: MoistureWet},
		"buffalo_dung":      {Category: "Animal Waste", PercentCarbon: 36, PercentNitrogen: 0.5, DecompositionSpeed: DecompositionFast, TypicalMoisture: MoistureWet},
		"chicken_manure":    {Category: "Animal Waste", PercentCarbon: 35, PercentNitrogen: 1.8, DecompositionSpeed: DecompositionFast, TypicalMoisture: MoistureWet},
		"fruit_veg_peels":   {Category: "Organic Waste", PercentCarbon: 28, PercentNitrogen: 1.0, DecompositionSpeed: DecompositionFast, TypicalMoisture: MoistureWet},
		"vegetable_scraps":  {Category: "Organic Waste", PercentCarbon: 28, PercentNitrogen: 1.0, DecompositionSpeed: DecompositionFast, TypicalMoisture: MoistureWet},
		"fruit_peels":       {Category: "Organic Waste", PercentCarbon: 27, PercentNitrogen: 1.1, DecompositionSpeed: DecompositionFast, TypicalMoisture: MoistureWet},
		"food_waste":        {Category: "Organic Waste", PercentCarbon: 26, PercentNitrogen: 1.2, DecompositionSpeed: DecompositionFast, TypicalMoisture: MoistureWet},
		"banana_leaves":     {Category: "Organic Waste", PercentCarbon: 30, PercentNitrogen: 1.0, DecompositionSpeed: DecompositionFast, TypicalMoisture: MoistureMoist},
		"crop_residues":     {Category: "Crop Residue", PercentCarbon: 45, PercentNitrogen: 0.7, DecompositionSpeed: DecompositionMedium, TypicalMoisture: MoistureDry},
		"rice_straw":        {Category: "Crop Residue", PercentCarbon: 45, PercentNitrogen: 0.7, DecompositionSpeed: DecompositionMedium, TypicalMoisture: MoistureDry},
		"wheat_straw":       {Category: "Crop Residue", PercentCarbon: 45, PercentNitrogen: 0.6, DecompositionSpeed: DecompositionMedium, TypicalMoisture: MoistureDry},
		"corn_stalks":       {Category: "Crop Residue", PercentCarbon: 42, PercentNitrogen: 0.8, DecompositionSpeed: DecompositionMedium, TypicalMoisture: MoistureDry},
		"cotton_waste":      {Category: "Crop Residue", PercentCarbon: 40, PercentNitrogen: 0.5, DecompositionSpeed: DecompositionSlow, TypicalMoisture: MoistureDry},
		"sugarcane_bagasse": {Category: "Agricultural Byproduct", PercentCarbon: 48, PercentNitrogen: 0.3, DecompositionSpeed: DecompositionSlow, TypicalMoisture: MoistureMoist},
		"agricultural_waste": {Category: "Agricultural Waste", PercentCarbon: 45, PercentNitrogen: 0.7, DecompositionSpeed: DecompositionMedium, TypicalMoisture: MoistureMoist},
	}

	for key, p := range profiles {
		p.Type = key
		p.DisplayName = displayName(key)
		p.ClimateZone = defaultClimateZone
		if p.PercentNitrogen > 0 {
			p.CNRatio = round2(p.PercentCarbon / p.PercentNitrogen)
		}
		profiles[key] = p
	}
	return profiles
}

func defaultCategoryTypes() map[string][]string {
	return map[string][]string{
		"Crop Residue":           {"Rice Straw", "Wheat Straw", "Corn Stalks", "Cotton Waste"},
		"Animal Waste":           {"Cow Dung", "Buffalo Dung", "Chicken Manure"},
		"Organic Waste":          {"Vegetable Scraps", "Fruit Peels", "Food Waste", "Banana Leaves"},
		"Agricultural Byproduct": {"Sugarcane Bagasse", "Rice Husk", "Coconut Husk"},
		"Agricultural Waste":     {"Rice Straw", "Wheat Straw", "Corn Stalks"},
	}
}

// Attributes looks up the physicochemical profile for a waste type.
// Unknown types resolve to the generic crop_residues profile so that
// downstream stages stay total.
func (e *Engine) Attributes(wasteType string) WasteProfile {
	key := Canonicalize(wasteType)
	if p, ok := e.profiles[key]; ok {
		return p
	}
	generic := e.profiles[genericProfileKey]
	generic.Type = key
	generic.DisplayName = displayName(key)
	return generic
}

// SupportedCategories returns the waste category vocabulary.
func (e *Engine) SupportedCategories() map[string][]string {
	out := make(map[string][]string, len(e.categoryTypes))
	for k, v := range e.categoryTypes {
		out[k] = append([]string(nil), v...)
	}
	return out
}
