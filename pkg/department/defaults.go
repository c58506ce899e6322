package department

// Default returns the institute's built-in departments.
// Declaration order is the matcher's tie-break order.
func Default() *Catalog {
	return MustCatalog([]Department{
		{
			Code:          "CST",
			FullName:      "Computer Science & Technology",
			Aliases:       []string{"CST", "Computer Science", "Computer Technology", "CS", "Computer"},
			SubCategories: []string{"Computer Components", "Hardware", "Software", "Sensors"},
			Keywords:      []string{"laptop", "computer", "microcontroller", "arduino", "raspberry pi", "sensor", "software", "hardware", "processor", "ram", "memory"},
		},
		{
			Code:          "Civil",
			FullName:      "Civil Technology",
			Aliases:       []string{"Civil", "Civil Engineering", "Civil Tech"},
			SubCategories: []string{"Surveying Tools", "Drafting Gear", "Materials"},
			Keywords:      []string{"cement", "surveying", "theodolite", "drafting", "construction", "materials", "steel", "concrete", "ruler", "measurement"},
		},
		{
			Code:          "Electronics",
			FullName:      "Electronics Technology",
			Aliases:       []string{"Electronics", "Electronics Engineering", "ENT", "Electronics & Telecommunication"},
			SubCategories: []string{"Components", "Devices", "Testing Equipment"},
			Keywords:      []string{"multimeter", "oscilloscope", "circuit", "electronic", "component", "device", "testing", "equipment"},
		},
		{
			Code:          "RAC",
			FullName:      "Refrigeration and Air Conditioning",
			Aliases:       []string{"RAC", "Refrigeration", "Air Conditioning", "HVAC"},
			SubCategories: []string{"HVAC Systems", "RAC Components", "Tools"},
			Keywords:      []string{"refrigeration", "air conditioning", "hvac", "compressor", "cooling", "climate control"},
		},
	})
}
