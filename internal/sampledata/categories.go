package sampledata

// Categories is the fixed category vocabulary for the ad classifier.
// Detection is substring-based and intentionally recall-oriented, so the
// entries stay lower-case.
func Categories() []string {
	return []string{
		"technology",
		"health and fitness",
		"education",
		"travel",
		"fashion",
		"finance",
		"food and beverages",
		"entertainment",
		"home and garden",
		"beauty",
		"automotive",
		"pets",
		"business",
		"environment",
		"lifestyle",
	}
}
