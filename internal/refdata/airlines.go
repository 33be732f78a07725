package refdata

var Airlines = []Airline{
	{Name: "Nepal Airlines", IATA: "RA"},
	{Name: "Himalaya Airlines", IATA: "H9"},
	{Name: "Qatar Airways", IATA: "QR"},
	{Name: "Emirates", IATA: "EK"},
	{Name: "Etihad Airways", IATA: "EY"},
	{Name: "Singapore Airlines", IATA: "SQ"},
	{Name: "Malaysia Airlines", IATA: "MH"},
	{Name: "Thai Airways", IATA: "TG"},
	{Name: "Cathay Pacific", IATA: "CX"},
	{Name: "Qantas", IATA: "QF"},
	{Name: "Virgin Australia", IATA: "VA"},
	{Name: "Jetstar Airways", IATA: "JQ"},
	{Name: "Air India", IATA: "AI"},
	{Name: "IndiGo", IATA: "6E"},
	{Name: "Vistara", IATA: "UK"},
	{Name: "British Airways", IATA: "BA"},
	{Name: "Lufthansa", IATA: "LH"},
	{Name: "KLM Royal Dutch Airlines", IATA: "KL"},
	{Name: "Air France", IATA: "AF"},
	{Name: "Turkish Airlines", IATA: "TK"},
	{Name: "United Airlines", IATA: "UA"},
	{Name: "American Airlines", IATA: "AA"},
	{Name: "Delta Air Lines", IATA: "DL"},
	{Name: "Air Canada", IATA: "AC"},
	{Name: "Japan Airlines", IATA: "JL"},
	{Name: "All Nippon Airways", IATA: "NH"},
	{Name: "Korean Air", IATA: "KE"},
	{Name: "China Southern Airlines", IATA: "CZ"},
	{Name: "Air New Zealand", IATA: "NZ"},
	{Name: "Fly Dubai", IATA: "FZ"},
}
