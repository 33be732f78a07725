package refdata

// Countries maps nationality labels to ISO country codes for the
// nationality selector.
var Countries = []Country{
	{Label: "Nepalese", Value: "NP"},
	{Label: "Australian", Value: "AU"},
	{Label: "Indian", Value: "IN"},
	{Label: "American", Value: "US"},
	{Label: "British", Value: "GB"},
	{Label: "Canadian", Value: "CA"},
	{Label: "Chinese", Value: "CN"},
	{Label: "Japanese", Value: "JP"},
	{Label: "Korean", Value: "KR"},
	{Label: "Singaporean", Value: "SG"},
	{Label: "Malaysian", Value: "MY"},
	{Label: "Thai", Value: "TH"},
	{Label: "Indonesian", Value: "ID"},
	{Label: "Filipino", Value: "PH"},
	{Label: "Vietnamese", Value: "VN"},
	{Label: "Bangladeshi", Value: "BD"},
	{Label: "Sri Lankan", Value: "LK"},
	{Label: "Pakistani", Value: "PK"},
	{Label: "Bhutanese", Value: "BT"},
	{Label: "Emirati", Value: "AE"},
	{Label: "Qatari", Value: "QA"},
	{Label: "German", Value: "DE"},
	{Label: "French", Value: "FR"},
	{Label: "Dutch", Value: "NL"},
	{Label: "Italian", Value: "IT"},
	{Label: "Spanish", Value: "ES"},
	{Label: "Turkish", Value: "TR"},
	{Label: "New Zealander", Value: "NZ"},
	{Label: "Brazilian", Value: "BR"},
	{Label: "South African", Value: "ZA"},
}
