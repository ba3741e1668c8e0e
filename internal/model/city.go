package model

// City is a named launch market with its base coordinate.
type City struct {
	Name string
	Lat  float64
	Lon  float64
}

// Timezone is the single timezone label applied to all generated users.
const Timezone = "Asia/Kolkata"

// Cities is the fixed list of 20 target markets. Coordinates are approximate
// city centers; generated users are jittered around them.
var Cities = []City{
	{"Mumbai", 19.0760, 72.8777},
	{"Delhi", 28.7041, 77.1025},
	{"Bengaluru", 12.9716, 77.5946},
	{"Hyderabad", 17.3850, 78.4867},
	{"Ahmedabad", 23.0225, 72.5714},
	{"Chennai", 13.0827, 80.2707},
	{"Kolkata", 22.5726, 88.3639},
	{"Pune", 18.5204, 73.8567},
	{"Jaipur", 26.9124, 75.7873},
	{"Surat", 21.1702, 72.8311},
	{"Lucknow", 26.8467, 80.9462},
	{"Kanpur", 26.4499, 80.3319},
	{"Nagpur", 21.1458, 79.0882},
	{"Indore", 22.7196, 75.8577},
	{"Bhopal", 23.2599, 77.4126},
	{"Patna", 25.5941, 85.1376},
	{"Vadodara", 22.3072, 73.1812},
	{"Coimbatore", 11.0168, 76.9558},
	{"Kochi", 9.9312, 76.2673},
	{"Visakhapatnam", 17.6868, 83.2185},
}
