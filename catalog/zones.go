package catalog

// Region ordering used for grouped listings.
var regionOrder = []string{
	"Americas",
	"Europe",
	"Asia",
	"Pacific",
	"Australia",
	"Africa",
	"Universal",
}

type entry struct {
	zone   string
	label  string
	region string
}

var zoneTable = []entry{
	// Americas
	{"America/New_York", "New York", "Americas"},
	{"America/Chicago", "Chicago", "Americas"},
	{"America/Denver", "Denver", "Americas"},
	{"America/Los_Angeles", "San Francisco", "Americas"},
	{"America/Anchorage", "Anchorage", "Americas"},
	{"America/Phoenix", "Phoenix", "Americas"},
	{"America/Toronto", "Toronto", "Americas"},
	{"America/Vancouver", "Vancouver", "Americas"},
	{"America/Mexico_City", "Mexico City", "Americas"},
	{"America/Sao_Paulo", "São Paulo", "Americas"},
	{"America/Buenos_Aires", "Buenos Aires", "Americas"},
	{"America/Lima", "Lima", "Americas"},
	{"America/Bogota", "Bogotá", "Americas"},
	{"America/Santiago", "Santiago", "Americas"},

	// Europe
	{"Europe/London", "London", "Europe"},
	{"Europe/Paris", "Paris", "Europe"},
	{"Europe/Berlin", "Berlin", "Europe"},
	{"Europe/Rome", "Rome", "Europe"},
	{"Europe/Madrid", "Madrid", "Europe"},
	{"Europe/Amsterdam", "Amsterdam", "Europe"},
	{"Europe/Brussels", "Brussels", "Europe"},
	{"Europe/Vienna", "Vienna", "Europe"},
	{"Europe/Zurich", "Zurich", "Europe"},
	{"Europe/Stockholm", "Stockholm", "Europe"},
	{"Europe/Oslo", "Oslo", "Europe"},
	{"Europe/Copenhagen", "Copenhagen", "Europe"},
	{"Europe/Helsinki", "Helsinki", "Europe"},
	{"Europe/Warsaw", "Warsaw", "Europe"},
	{"Europe/Prague", "Prague", "Europe"},
	{"Europe/Athens", "Athens", "Europe"},
	{"Europe/Moscow", "Moscow", "Europe"},
	{"Europe/Istanbul", "Istanbul", "Europe"},
	{"Europe/Lisbon", "Lisbon", "Europe"},
	{"Europe/Dublin", "Dublin", "Europe"},

	// Asia
	{"Asia/Tokyo", "Tokyo", "Asia"},
	{"Asia/Shanghai", "Shanghai", "Asia"},
	{"Asia/Hong_Kong", "Hong Kong", "Asia"},
	{"Asia/Singapore", "Singapore", "Asia"},
	{"Asia/Seoul", "Seoul", "Asia"},
	{"Asia/Taipei", "Taipei", "Asia"},
	{"Asia/Bangkok", "Bangkok", "Asia"},
	{"Asia/Jakarta", "Jakarta", "Asia"},
	{"Asia/Manila", "Manila", "Asia"},
	{"Asia/Kuala_Lumpur", "Kuala Lumpur", "Asia"},
	{"Asia/Ho_Chi_Minh", "Ho Chi Minh", "Asia"},
	{"Asia/Kolkata", "Mumbai", "Asia"},
	{"Asia/Dubai", "Dubai", "Asia"},
	{"Asia/Riyadh", "Riyadh", "Asia"},
	{"Asia/Tel_Aviv", "Tel Aviv", "Asia"},
	{"Asia/Karachi", "Karachi", "Asia"},
	{"Asia/Dhaka", "Dhaka", "Asia"},

	// Pacific
	{"Pacific/Honolulu", "Honolulu", "Pacific"},
	{"Pacific/Auckland", "Auckland", "Pacific"},
	{"Pacific/Fiji", "Fiji", "Pacific"},
	{"Pacific/Guam", "Guam", "Pacific"},

	// Australia
	{"Australia/Sydney", "Sydney", "Australia"},
	{"Australia/Melbourne", "Melbourne", "Australia"},
	{"Australia/Brisbane", "Brisbane", "Australia"},
	{"Australia/Perth", "Perth", "Australia"},
	{"Australia/Adelaide", "Adelaide", "Australia"},

	// Africa
	{"Africa/Cairo", "Cairo", "Africa"},
	{"Africa/Johannesburg", "Johannesburg", "Africa"},
	{"Africa/Lagos", "Lagos", "Africa"},
	{"Africa/Nairobi", "Nairobi", "Africa"},
	{"Africa/Casablanca", "Casablanca", "Africa"},

	{"UTC", "UTC", "Universal"},
}
