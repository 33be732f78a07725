package refdata

// Airports is the static airport list, ordered by route popularity.
var Airports = []Airport{
	{Name: "Tribhuvan International Airport", IATA: "KTM", City: "Kathmandu"},
	{Name: "Sydney Kingsford Smith Airport", IATA: "SYD", City: "Sydney"},
	{Name: "Melbourne Airport", IATA: "MEL", City: "Melbourne"},
	{Name: "Brisbane Airport", IATA: "BNE", City: "Brisbane"},
	{Name: "Perth Airport", IATA: "PER", City: "Perth"},
	{Name: "Adelaide Airport", IATA: "ADL", City: "Adelaide"},
	{Name: "Singapore Changi Airport", IATA: "SIN", City: "Singapore"},
	{Name: "Kuala Lumpur International Airport", IATA: "KUL", City: "Kuala Lumpur"},
	{Name: "Suvarnabhumi Airport", IATA: "BKK", City: "Bangkok"},
	{Name: "Hong Kong International Airport", IATA: "HKG", City: "Hong Kong"},
	{Name: "Hamad International Airport", IATA: "DOH", City: "Doha"},
	{Name: "Dubai International Airport", IATA: "DXB", City: "Dubai"},
	{Name: "Abu Dhabi International Airport", IATA: "AUH", City: "Abu Dhabi"},
	{Name: "Indira Gandhi International Airport", IATA: "DEL", City: "New Delhi"},
	{Name: "Chhatrapati Shivaji Maharaj International Airport", IATA: "BOM", City: "Mumbai"},
	{Name: "Kempegowda International Airport", IATA: "BLR", City: "Bengaluru"},
	{Name: "Netaji Subhas Chandra Bose International Airport", IATA: "CCU", City: "Kolkata"},
	{Name: "London Heathrow Airport", IATA: "LHR", City: "London"},
	{Name: "London Gatwick Airport", IATA: "LGW", City: "London"},
	{Name: "Paris Charles de Gaulle Airport", IATA: "CDG", City: "Paris"},
	{Name: "Frankfurt Airport", IATA: "FRA", City: "Frankfurt"},
	{Name: "Amsterdam Airport Schiphol", IATA: "AMS", City: "Amsterdam"},
	{Name: "Istanbul Airport", IATA: "IST", City: "Istanbul"},
	{Name: "John F. Kennedy International Airport", IATA: "JFK", City: "New York"},
	{Name: "Los Angeles International Airport", IATA: "LAX", City: "Los Angeles"},
	{Name: "San Francisco International Airport", IATA: "SFO", City: "San Francisco"},
	{Name: "Dallas/Fort Worth International Airport", IATA: "DFW", City: "Dallas"},
	{Name: "Toronto Pearson International Airport", IATA: "YYZ", City: "Toronto"},
	{Name: "Narita International Airport", IATA: "NRT", City: "Tokyo"},
	{Name: "Incheon International Airport", IATA: "ICN", City: "Seoul"},
	{Name: "Guangzhou Baiyun International Airport", IATA: "CAN", City: "Guangzhou"},
	{Name: "Gautam Buddha International Airport", IATA: "BWA", City: "Bhairahawa"},
	{Name: "Pokhara International Airport", IATA: "PKR", City: "Pokhara"},
	{Name: "Auckland Airport", IATA: "AKL", City: "Auckland"},
	{Name: "Christchurch International Airport", IATA: "CHC", City: "Christchurch"},
}
