package engine

// Fixed step templates per method family. Six steps each, with duration
// and tooling hints.

func stepsForFamily(family MethodFamily) []ProcessingStep {
	switch family {
	case FamilyBiogas:
		return biogasSteps()
	case FamilyThermal:
		return thermalSteps()
	default:
		return compostSteps()
	}
}

func toolsForFamily(family MethodFamily) []string {
	switch family {
	case FamilyBiogas:
		return []string{
			"Biogas digester (5-10 m³ capacity)",
			"Gas collection system",
			"pH and temperature monitoring tools",
			"Safety equipment",
			"Slurry storage tanks",
		}
	case FamilyThermal:
		return []string{
			"Thermal reactor or combustion unit",
			"Feedstock drying area",
			"Temperature monitoring instruments",
			"Gas/oil collection system",
			"Fire safety equipment",
		}
	default:
		return []string{
			"Composting area (covered)",
			"Shredding/chopping equipment",
			"Turning tools (pitchfork, shovel)",
			"Moisture monitoring equipment",
			"Thermometer for temperature monitoring",
		}
	}
}

func biogasSteps() []ProcessingStep {
	return []ProcessingStep{
		{1, "Waste Collection & Sorting", "Collect fresh organic waste and sort by type. Remove any non-organic materials.", "1-2 hours", []string{"Collection containers", "Sorting area", "Gloves"}},
		{2, "Feedstock Preparation", "Chop/shred waste into small pieces (2-5 cm) for better digestion. Mix with water if needed.", "2-3 hours", []string{"Chopping machine", "Water source", "Mixing equipment"}},
		{3, "Biogas Digester Loading", "Load prepared feedstock into biogas digester. Maintain C:N ratio of 25-30:1.", "1 hour", []string{"Biogas digester", "Loading equipment", "pH meter"}},
		{4, "Fermentation Monitoring", "Monitor temperature (35-40°C), pH (6.8-7.2), and gas production daily.", "30-45 days", []string{"Thermometer", "pH meter", "Gas flow meter"}},
		{5, "Biogas Collection", "Collect biogas through pipeline system. Store in gas holder or use directly.", "Daily collection", []string{"Gas pipeline", "Gas holder", "Safety equipment"}},
		{6, "Slurry Management", "Remove digested slurry and use as high-quality organic fertilizer.", "Weekly", []string{"Slurry outlet", "Storage tanks", "Application equipment"}},
	}
}

func compostSteps() []ProcessingStep {
	return []ProcessingStep{
		{1, "Raw Material Collection", "Collect dry organic waste materials. Ensure carbon-rich materials dominate.", "1-2 hours", []string{"Collection area", "Tarpaulin", "Storage containers"}},
		{2, "Material Preparation", "Shred materials to 2-5 cm pieces. Mix carbon and nitrogen sources in 30:1 ratio.", "3-4 hours", []string{"Shredding machine", "Mixing area", "Measuring tools"}},
		{3, "Pile Construction", "Build compost pile in layers. Maintain pile height of 1-1.5 meters.", "2-3 hours", []string{"Pitchfork", "Measuring tape", "Water sprayer"}},
		{4, "Moisture Management", "Maintain moisture level at 40-60%. Add water or dry materials as needed.", "Weekly", []string{"Moisture meter", "Water source", "Dry materials"}},
		{5, "Turning & Aeration", "Turn pile every 2-3 weeks to ensure proper aeration and decomposition.", "2-3 months", []string{"Pitchfork", "Shovel", "Thermometer"}},
		{6, "Maturation & Harvesting", "Allow compost to mature. Harvest when dark, crumbly, and earthy-smelling.", "1-2 weeks", []string{"Sieve", "Storage bags", "Quality testing kit"}},
	}
}

func thermalSteps() []ProcessingStep {
	return []ProcessingStep{
		{1, "Feedstock Collection", "Collect and weigh dry biomass. Remove stones, soil and non-combustible material.", "1-2 hours", []string{"Collection area", "Weighing scale", "Sorting tools"}},
		{2, "Drying & Size Reduction", "Sun-dry feedstock below 15% moisture and chop to uniform 2-5 cm pieces.", "1-3 days", []string{"Drying yard", "Chopping machine", "Moisture meter"}},
		{3, "Reactor Loading", "Load prepared biomass into the reactor or combustion chamber in measured batches.", "1 hour", []string{"Loading equipment", "Batch containers"}},
		{4, "Thermal Conversion", "Run the unit at the target temperature with controlled air supply. Monitor continuously.", "0.5-3 hours", []string{"Temperature probes", "Air flow control", "Safety gear"}},
		{5, "Product Recovery", "Collect syngas, bio-oil, char or heat output through the recovery system.", "Continuous", []string{"Collection system", "Storage vessels"}},
		{6, "Residue Handling", "Cool and store ash or biochar. Apply biochar to soil or dispose of ash safely.", "1-2 hours", []string{"Ash containers", "Cooling area", "Application tools"}},
	}
}
