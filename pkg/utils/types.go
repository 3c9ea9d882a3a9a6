package utils

// Constants
const (
	DATE_LAYOUT = "2006-01-02"

	// Placeholder values the front-end sends when a dropdown is untouched.
	SELECT_IMPORTER = "Select Importer"
	SELECT_ICD      = "Select ICD"
	ALL_ICDS        = "All ICDs"
	ALL             = "all"
)
