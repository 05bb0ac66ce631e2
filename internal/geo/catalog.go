package geo

import (
	"math"
	"strings"
)

// catalogEntry is a compact row in the bundled city table.
type catalogEntry struct {
	name    string
	country string
	lat     float64
	lon     float64
}

// catalog is the bundled fallback city list, covering all inhabited
// continents. It backs search suggestions when no geocoding credential is
// configured or every upstream request fails.
var catalog = []catalogEntry{
	// Europe
	{"London", "GB", 51.5074, -0.1278},
	{"Birmingham", "GB", 52.4862, -1.8904},
	{"Manchester", "GB", 53.4808, -2.2426},
	{"Glasgow", "GB", 55.8642, -4.2518},
	{"Edinburgh", "GB", 55.9533, -3.1883},
	{"Dublin", "IE", 53.3498, -6.2603},
	{"Paris", "FR", 48.8566, 2.3522},
	{"Marseille", "FR", 43.2965, 5.3698},
	{"Lyon", "FR", 45.7640, 4.8357},
	{"Toulouse", "FR", 43.6047, 1.4442},
	{"Nice", "FR", 43.7102, 7.2620},
	{"Berlin", "DE", 52.5200, 13.4050},
	{"Hamburg", "DE", 53.5511, 9.9937},
	{"Munich", "DE", 48.1351, 11.5820},
	{"Cologne", "DE", 50.9375, 6.9603},
	{"Frankfurt", "DE", 50.1109, 8.6821},
	{"Stuttgart", "DE", 48.7758, 9.1829},
	{"Madrid", "ES", 40.4168, -3.7038},
	{"Barcelona", "ES", 41.3874, 2.1686},
	{"Valencia", "ES", 39.4699, -0.3763},
	{"Seville", "ES", 37.3891, -5.9845},
	{"Lisbon", "PT", 38.7223, -9.1393},
	{"Porto", "PT", 41.1579, -8.6291},
	{"Rome", "IT", 41.9028, 12.4964},
	{"Milan", "IT", 45.4642, 9.1900},
	{"Naples", "IT", 40.8518, 14.2681},
	{"Turin", "IT", 45.0703, 7.6869},
	{"Florence", "IT", 43.7696, 11.2558},
	{"Venice", "IT", 45.4408, 12.3155},
	{"Amsterdam", "NL", 52.3676, 4.9041},
	{"Rotterdam", "NL", 51.9244, 4.4777},
	{"Brussels", "BE", 50.8503, 4.3517},
	{"Antwerp", "BE", 51.2194, 4.4025},
	{"Luxembourg", "LU", 49.6116, 6.1319},
	{"Vienna", "AT", 48.2082, 16.3738},
	{"Zurich", "CH", 47.3769, 8.5417},
	{"Geneva", "CH", 46.2044, 6.1432},
	{"Bern", "CH", 46.9480, 7.4474},
	{"Copenhagen", "DK", 55.6761, 12.5683},
	{"Stockholm", "SE", 59.3293, 18.0686},
	{"Gothenburg", "SE", 57.7089, 11.9746},
	{"Oslo", "NO", 59.9139, 10.7522},
	{"Bergen", "NO", 60.3913, 5.3221},
	{"Helsinki", "FI", 60.1699, 24.9384},
	{"Reykjavik", "IS", 64.1466, -21.9426},
	{"Warsaw", "PL", 52.2297, 21.0122},
	{"Krakow", "PL", 50.0647, 19.9450},
	{"Wroclaw", "PL", 51.1079, 17.0385},
	{"Gdansk", "PL", 54.3520, 18.6466},
	{"Prague", "CZ", 50.0755, 14.4378},
	{"Brno", "CZ", 49.1951, 16.6068},
	{"Bratislava", "SK", 48.1486, 17.1077},
	{"Budapest", "HU", 47.4979, 19.0402},
	{"Bucharest", "RO", 44.4268, 26.1025},
	{"Cluj-Napoca", "RO", 46.7712, 23.6236},
	{"Sofia", "BG", 42.6977, 23.3219},
	{"Athens", "GR", 37.9838, 23.7275},
	{"Thessaloniki", "GR", 40.6401, 22.9444},
	{"Belgrade", "RS", 44.7866, 20.4489},
	{"Zagreb", "HR", 45.8150, 15.9819},
	{"Split", "HR", 43.5081, 16.4402},
	{"Ljubljana", "SI", 46.0569, 14.5058},
	{"Sarajevo", "BA", 43.8563, 18.4131},
	{"Podgorica", "ME", 42.4304, 19.2594},
	{"Skopje", "MK", 41.9973, 21.4280},
	{"Tirana", "AL", 41.3275, 19.8187},
	{"Valletta", "MT", 35.8989, 14.5146},
	{"Nicosia", "CY", 35.1856, 33.3823},
	{"Vilnius", "LT", 54.6872, 25.2797},
	{"Riga", "LV", 56.9496, 24.1052},
	{"Tallinn", "EE", 59.4370, 24.7536},
	{"Minsk", "BY", 53.9006, 27.5590},
	{"Kyiv", "UA", 50.4501, 30.5234},
	{"Lviv", "UA", 49.8397, 24.0297},
	{"Odesa", "UA", 46.4825, 30.7233},
	{"Chisinau", "MD", 47.0105, 28.8638},
	{"Moscow", "RU", 55.7558, 37.6173},
	{"Saint Petersburg", "RU", 59.9311, 30.3609},
	{"Novosibirsk", "RU", 55.0084, 82.9357},
	{"Yekaterinburg", "RU", 56.8389, 60.6057},

	// Asia
	{"Istanbul", "TR", 41.0082, 28.9784},
	{"Ankara", "TR", 39.9334, 32.8597},
	{"Izmir", "TR", 38.4237, 27.1428},
	{"Tbilisi", "GE", 41.7151, 44.8271},
	{"Yerevan", "AM", 40.1792, 44.4991},
	{"Baku", "AZ", 40.4093, 49.8671},
	{"Tehran", "IR", 35.6892, 51.3890},
	{"Baghdad", "IQ", 33.3152, 44.3661},
	{"Damascus", "SY", 33.5138, 36.2765},
	{"Beirut", "LB", 33.8938, 35.5018},
	{"Amman", "JO", 31.9454, 35.9284},
	{"Jerusalem", "IL", 31.7683, 35.2137},
	{"Tel Aviv", "IL", 32.0853, 34.7818},
	{"Riyadh", "SA", 24.7136, 46.6753},
	{"Jeddah", "SA", 21.4858, 39.1925},
	{"Kuwait City", "KW", 29.3759, 47.9774},
	{"Doha", "QA", 25.2854, 51.5310},
	{"Dubai", "AE", 25.2048, 55.2708},
	{"Abu Dhabi", "AE", 24.4539, 54.3773},
	{"Muscat", "OM", 23.5880, 58.3829},
	{"Sanaa", "YE", 15.3694, 44.1910},
	{"Kabul", "AF", 34.5553, 69.2075},
	{"Karachi", "PK", 24.8607, 67.0011},
	{"Lahore", "PK", 31.5204, 74.3587},
	{"Islamabad", "PK", 33.6844, 73.0479},
	{"Delhi", "IN", 28.7041, 77.1025},
	{"Mumbai", "IN", 19.0760, 72.8777},
	{"Bangalore", "IN", 12.9716, 77.5946},
	{"Chennai", "IN", 13.0827, 80.2707},
	{"Kolkata", "IN", 22.5726, 88.3639},
	{"Hyderabad", "IN", 17.3850, 78.4867},
	{"Colombo", "LK", 6.9271, 79.8612},
	{"Kathmandu", "NP", 27.7172, 85.3240},
	{"Dhaka", "BD", 23.8103, 90.4125},
	{"Yangon", "MM", 16.8661, 96.1951},
	{"Bangkok", "TH", 13.7563, 100.5018},
	{"Chiang Mai", "TH", 18.7883, 98.9853},
	{"Phnom Penh", "KH", 11.5564, 104.9282},
	{"Hanoi", "VN", 21.0278, 105.8342},
	{"Ho Chi Minh City", "VN", 10.8231, 106.6297},
	{"Kuala Lumpur", "MY", 3.1390, 101.6869},
	{"Singapore", "SG", 1.3521, 103.8198},
	{"Jakarta", "ID", -6.2088, 106.8456},
	{"Surabaya", "ID", -7.2575, 112.7521},
	{"Manila", "PH", 14.5995, 120.9842},
	{"Cebu City", "PH", 10.3157, 123.8854},
	{"Hong Kong", "HK", 22.3193, 114.1694},
	{"Taipei", "TW", 25.0330, 121.5654},
	{"Beijing", "CN", 39.9042, 116.4074},
	{"Shanghai", "CN", 31.2304, 121.4737},
	{"Guangzhou", "CN", 23.1291, 113.2644},
	{"Shenzhen", "CN", 22.5431, 114.0579},
	{"Chengdu", "CN", 30.5728, 104.0668},
	{"Seoul", "KR", 37.5665, 126.9780},
	{"Busan", "KR", 35.1796, 129.0756},
	{"Tokyo", "JP", 35.6762, 139.6503},
	{"Osaka", "JP", 34.6937, 135.5023},
	{"Kyoto", "JP", 35.0116, 135.7681},
	{"Sapporo", "JP", 43.0618, 141.3545},
	{"Ulaanbaatar", "MN", 47.8864, 106.9057},
	{"Almaty", "KZ", 43.2220, 76.8512},
	{"Astana", "KZ", 51.1605, 71.4704},
	{"Tashkent", "UZ", 41.2995, 69.2401},

	// Africa
	{"Cairo", "EG", 30.0444, 31.2357},
	{"Alexandria", "EG", 31.2001, 29.9187},
	{"Tripoli", "LY", 32.8872, 13.1913},
	{"Tunis", "TN", 36.8065, 10.1815},
	{"Algiers", "DZ", 36.7538, 3.0588},
	{"Casablanca", "MA", 33.5731, -7.5898},
	{"Rabat", "MA", 34.0209, -6.8416},
	{"Marrakesh", "MA", 31.6295, -7.9811},
	{"Dakar", "SN", 14.7167, -17.4677},
	{"Abidjan", "CI", 5.3600, -4.0083},
	{"Accra", "GH", 5.6037, -0.1870},
	{"Lagos", "NG", 6.5244, 3.3792},
	{"Abuja", "NG", 9.0765, 7.3986},
	{"Douala", "CM", 4.0511, 9.7679},
	{"Kinshasa", "CD", -4.4419, 15.2663},
	{"Luanda", "AO", -8.8390, 13.2894},
	{"Khartoum", "SD", 15.5007, 32.5599},
	{"Addis Ababa", "ET", 9.0320, 38.7469},
	{"Nairobi", "KE", -1.2921, 36.8219},
	{"Mombasa", "KE", -4.0435, 39.6682},
	{"Kampala", "UG", 0.3476, 32.5825},
	{"Kigali", "RW", -1.9441, 30.0619},
	{"Dar es Salaam", "TZ", -6.7924, 39.2083},
	{"Lusaka", "ZM", -15.3875, 28.3228},
	{"Harare", "ZW", -17.8252, 31.0335},
	{"Maputo", "MZ", -25.9692, 32.5732},
	{"Antananarivo", "MG", -18.8792, 47.5079},
	{"Johannesburg", "ZA", -26.2041, 28.0473},
	{"Cape Town", "ZA", -33.9249, 18.4241},
	{"Durban", "ZA", -29.8587, 31.0218},
	{"Pretoria", "ZA", -25.7479, 28.2293},

	// North America
	{"New York", "US", 40.7128, -74.0060},
	{"Los Angeles", "US", 34.0522, -118.2437},
	{"Chicago", "US", 41.8781, -87.6298},
	{"Houston", "US", 29.7604, -95.3698},
	{"Phoenix", "US", 33.4484, -112.0740},
	{"Philadelphia", "US", 39.9526, -75.1652},
	{"San Antonio", "US", 29.4241, -98.4936},
	{"San Diego", "US", 32.7157, -117.1611},
	{"Dallas", "US", 32.7767, -96.7970},
	{"San Francisco", "US", 37.7749, -122.4194},
	{"Seattle", "US", 47.6062, -122.3321},
	{"Denver", "US", 39.7392, -104.9903},
	{"Boston", "US", 42.3601, -71.0589},
	{"Miami", "US", 25.7617, -80.1918},
	{"Atlanta", "US", 33.7490, -84.3880},
	{"Washington", "US", 38.9072, -77.0369},
	{"New Orleans", "US", 29.9511, -90.0715},
	{"Portland", "US", 45.5152, -122.6784},
	{"Minneapolis", "US", 44.9778, -93.2650},
	{"Anchorage", "US", 61.2181, -149.9003},
	{"Honolulu", "US", 21.3069, -157.8583},
	{"Toronto", "CA", 43.6532, -79.3832},
	{"Montreal", "CA", 45.5019, -73.5674},
	{"Vancouver", "CA", 49.2827, -123.1207},
	{"Calgary", "CA", 51.0447, -114.0719},
	{"Ottawa", "CA", 45.4215, -75.6972},
	{"Mexico City", "MX", 19.4326, -99.1332},
	{"Guadalajara", "MX", 20.6597, -103.3496},
	{"Monterrey", "MX", 25.6866, -100.3161},
	{"Cancun", "MX", 21.1619, -86.8515},
	{"Guatemala City", "GT", 14.6349, -90.5069},
	{"San Salvador", "SV", 13.6929, -89.2182},
	{"Tegucigalpa", "HN", 14.0723, -87.1921},
	{"Managua", "NI", 12.1150, -86.2362},
	{"San Jose", "CR", 9.9281, -84.0907},
	{"Panama City", "PA", 8.9824, -79.5199},
	{"Havana", "CU", 23.1136, -82.3666},
	{"Kingston", "JM", 17.9714, -76.7923},
	{"Santo Domingo", "DO", 18.4861, -69.9312},

	// South America
	{"Bogota", "CO", 4.7110, -74.0721},
	{"Medellin", "CO", 6.2442, -75.5812},
	{"Caracas", "VE", 10.4806, -66.9036},
	{"Quito", "EC", -0.1807, -78.4678},
	{"Guayaquil", "EC", -2.1710, -79.9224},
	{"Lima", "PE", -12.0464, -77.0428},
	{"La Paz", "BO", -16.4897, -68.1193},
	{"Santiago", "CL", -33.4489, -70.6693},
	{"Valparaiso", "CL", -33.0472, -71.6127},
	{"Buenos Aires", "AR", -34.6037, -58.3816},
	{"Cordoba", "AR", -31.4201, -64.1888},
	{"Mendoza", "AR", -32.8895, -68.8458},
	{"Montevideo", "UY", -34.9011, -56.1645},
	{"Asuncion", "PY", -25.2637, -57.5759},
	{"Sao Paulo", "BR", -23.5505, -46.6333},
	{"Rio de Janeiro", "BR", -22.9068, -43.1729},
	{"Brasilia", "BR", -15.8267, -47.9218},
	{"Salvador", "BR", -12.9777, -38.5016},
	{"Fortaleza", "BR", -3.7319, -38.5267},
	{"Recife", "BR", -8.0476, -34.8770},
	{"Porto Alegre", "BR", -30.0346, -51.2177},
	{"Manaus", "BR", -3.1190, -60.0217},

	// Oceania
	{"Sydney", "AU", -33.8688, 151.2093},
	{"Melbourne", "AU", -37.8136, 144.9631},
	{"Brisbane", "AU", -27.4698, 153.0251},
	{"Perth", "AU", -31.9505, 115.8605},
	{"Adelaide", "AU", -34.9285, 138.6007},
	{"Canberra", "AU", -35.2809, 149.1300},
	{"Hobart", "AU", -42.8821, 147.3272},
	{"Darwin", "AU", -12.4634, 130.8456},
	{"Auckland", "NZ", -36.8509, 174.7645},
	{"Wellington", "NZ", -41.2924, 174.7787},
	{"Christchurch", "NZ", -43.5321, 172.6362},
	{"Suva", "FJ", -18.1416, 178.4419},
	{"Port Moresby", "PG", -9.4438, 147.1803},
}

func (e catalogEntry) location() Location {
	return Location{
		Name:      e.name,
		Country:   e.country,
		Continent: ContinentOf(e.country),
		Lat:       e.lat,
		Lon:       e.lon,
	}
}

// SearchCatalog filters the bundled city list by case-insensitive substring
// match on the city name, returning at most limit results.
func SearchCatalog(query string, limit int) []Location {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return nil
	}

	var results []Location
	for _, e := range catalog {
		if !strings.Contains(strings.ToLower(e.name), query) {
			continue
		}
		results = append(results, e.location())
		if len(results) >= limit {
			break
		}
	}
	return results
}

// NearestCatalog returns the catalog city closest to the given coordinate.
func NearestCatalog(lat, lon float64) Location {
	best := catalog[0]
	bestDist := math.Inf(1)
	for _, e := range catalog {
		d := haversineKm(lat, lon, e.lat, e.lon)
		if d < bestDist {
			bestDist = d
			best = e
		}
	}
	return best.location()
}

// haversineKm computes the great-circle distance between two coordinates.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
