package engine

import "regexp"

// keywordEntry associates a canonical waste type with its bilingual keyword
// list. Entries are scored in declaration order and ties resolve to the
// earliest entry, so the order of this table is part of the contract.
type keywordEntry struct {
	wasteType string
	keywords  []string
}

func defaultKeywordTable() []keywordEntry {
	return []keywordEntry{
		{"rice_straw", []string{
			"rice", "paddy", "straw", "chawal", "dhan", "धान", "चावल",
			"rice stubble", "paddy straw", "rice residue", "rice waste",
		}},
		{"wheat_straw", []string{
			"wheat", "gehun", "straw", "गेहूं", "wheat stubble",
			"wheat residue", "wheat waste", "गेहुँ",
		}},
		{"corn_stalks", []string{
			"corn", "maize", "makka", "stalks", "मक्का", "भुट्टा",
			"corn residue", "maize stalks", "corn waste", "makkai",
		}},
		{"cotton_waste", []string{
			"cotton", "kapas", "कपास", "cotton waste", "cotton residue",
			"cotton stalks", "कॉटन",
		}},
		{"sugarcane_bagasse", []string{
			"sugarcane", "bagasse", "ganna", "गन्ना", "sugar cane",
			"cane waste", "sugarcane residue", "गन्ने", "ikhu",
		}},
		{"cow_dung", []string{
			"cow dung", "dung", "gobar", "गोबर", "cattle manure",
			"cow manure", "cattle dung", "गाय",
		}},
		{"buffalo_dung", []string{
			"buffalo dung", "buffalo manure", "bhains", "भैंस",
		}},
		{"chicken_manure", []string{
			"chicken manure", "poultry", "chicken litter", "murgi", "मुर्गी",
			"poultry waste",
		}},
		{"vegetable_scraps", []string{
			"vegetable scraps", "vegetable waste", "sabzi", "सब्जी",
			"vegetable peels", "veggie waste",
		}},
		{"fruit_peels", []string{
			"fruit peels", "fruit waste", "peels", "फल", "banana peel",
			"fruit scraps",
		}},
		{"food_waste", []string{
			"food waste", "kitchen waste", "leftover", "खाना", "kitchen scraps",
		}},
		{"banana_leaves", []string{
			"banana leaves", "banana leaf", "kela", "केला", "banana waste",
		}},
		{"agricultural_waste", []string{
			"farm waste", "crop waste", "agricultural", "farming",
			"खेती", "कृषि", "फसल", "किसान", "agricultural residue",
		}},
	}
}

// unitPattern converts a numeric quantity expression to kilograms. Patterns
// are tried in declaration order; the first pattern matching anywhere in
// the text wins.
type unitPattern struct {
	re       *regexp.Regexp
	toKg     float64
	unitName string
}

func defaultUnitPatterns() []unitPattern {
	num := `(\d+(?:\.\d+)?)`
	return []unitPattern{
		{regexp.MustCompile(num + `\s*(?:kg|किलो|kilo)`), 1, "kg"},
		{regexp.MustCompile(num + `\s*(?:tonnes|tons|ton|टन)`), 1000, "ton"},
		{regexp.MustCompile(num + `\s*(?:quintals|quintal|क्विंटल)`), 100, "quintal"},
		{regexp.MustCompile(num + `\s*(?:pounds|pound|lb)`), 0.453592, "pound"},
		{regexp.MustCompile(num + `\s*(?:grams|gram|ग्राम|gm)`), 0.001, "gram"},
		{regexp.MustCompile(num + `\s*(?:sacks|sack|बोरी|bags)`), 50, "sack"},
		{regexp.MustCompile(num + `\s*(?:bundles|bundle|गट्ठर)`), 25, "bundle"},
		{regexp.MustCompile(num + `\s*(?:acres|acre|एकड़)`), 2000, "acre"},
		{regexp.MustCompile(num + `\s*(?:hectares|hectare|हेक्टेयर)`), 5000, "hectare"},
	}
}

// sizeTerm maps qualitative quantity words onto kg estimates. Substring
// match, first entry wins.
type sizeTerm struct {
	term string
	kg   float64
}

func defaultSizeTerms() []sizeTerm {
	return []sizeTerm{
		{"small", 100}, {"छोटा", 100}, {"little", 100}, {"few", 150},
		{"medium", 500}, {"मध्यम", 500}, {"moderate", 500}, {"some", 300},
		{"large", 1500}, {"बड़ा", 1500}, {"big", 1500}, {"huge", 2000},
		{"massive", 3000}, {"enormous", 3000}, {"lots", 2000}, {"many", 1000},
		{"truck", 5000}, {"ट्रक", 5000}, {"tractor", 3000}, {"ट्रैक्टर", 3000},
	}
}

func defaultLocations() []string {
	return []string{
		"punjab", "haryana", "uttar pradesh", "up", "bihar", "rajasthan",
		"maharashtra", "gujarat", "karnataka", "andhra pradesh", "telangana",
		"tamil nadu", "kerala", "odisha", "west bengal", "jharkhand",
		"chhattisgarh", "madhya pradesh", "mp", "assam", "delhi",
		"पंजाब", "हरियाणा", "उत्तर प्रदेश", "बिहार", "राजस्थान",
	}
}
