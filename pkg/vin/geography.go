// SPDX-License-Identifier: MPL-2.0

package vin

import "strings"

// charOrder is the ordering the WMI country assignments are published
// in: letters A-Z (minus I, O, Q), then digits 1-9, then 0. Country
// ranges such as "WA-W0" are contiguous runs over this sequence.
const charOrder = "ABCDEFGHJKLMNPRSTUVWXYZ1234567890"

// countryRange assigns one country name to a run of second-position
// characters under a fixed first character, e.g. {'W', 'A', '0', ...}
// covers every code from WA through W0.
type countryRange struct {
	first    byte
	from, to byte
	name     string
}

// countries holds the ISO 3780 WMI country assignments, grouped by
// region block. Codes not listed here resolve to the empty string.
var countries = []countryRange{
	// Africa
	{'A', 'A', 'H', "South Africa"},
	{'A', 'J', 'N', "Ivory Coast"},
	{'B', 'A', 'E', "Angola"},
	{'B', 'F', 'K', "Kenya"},
	{'B', 'L', 'R', "Tanzania"},
	{'C', 'A', 'E', "Benin"},
	{'C', 'F', 'K', "Madagascar"},
	{'C', 'L', 'R', "Tunisia"},
	{'D', 'A', 'E', "Egypt"},
	{'D', 'F', 'K', "Morocco"},
	{'D', 'L', 'R', "Zambia"},
	{'E', 'A', 'E', "Ethiopia"},
	{'E', 'F', 'K', "Mozambique"},
	{'F', 'A', 'E', "Ghana"},
	{'F', 'F', 'K', "Nigeria"},

	// Asia
	{'J', 'A', '0', "Japan"},
	{'K', 'A', 'E', "Sri Lanka"},
	{'K', 'F', 'K', "Israel"},
	{'K', 'L', 'R', "South Korea"},
	{'K', 'S', '0', "Kazakhstan"},
	{'L', 'A', '0', "China"},
	{'M', 'A', 'E', "India"},
	{'M', 'F', 'K', "Indonesia"},
	{'M', 'L', 'R', "Thailand"},
	{'N', 'A', 'E', "Iran"},
	{'N', 'F', 'K', "Pakistan"},
	{'N', 'L', 'R', "Turkey"},
	{'P', 'A', 'E', "Philippines"},
	{'P', 'F', 'K', "Singapore"},
	{'P', 'L', 'R', "Malaysia"},
	{'R', 'A', 'E', "United Arab Emirates"},
	{'R', 'F', 'K', "Taiwan"},
	{'R', 'L', 'R', "Vietnam"},
	{'R', 'S', '0', "Saudi Arabia"},

	// Europe
	{'S', 'A', 'M', "United Kingdom"},
	{'S', 'N', 'T', "Germany/East Germany"},
	{'S', 'U', 'Z', "Poland"},
	{'S', '1', '4', "Latvia"},
	{'T', 'A', 'H', "Switzerland"},
	{'T', 'J', 'P', "Czech Republic"},
	{'T', 'R', 'V', "Hungary"},
	{'T', 'W', '1', "Portugal"},
	{'U', 'H', 'M', "Denmark"},
	{'U', 'N', 'T', "Ireland"},
	{'U', 'U', 'Z', "Romania"},
	{'U', '5', '7', "Slovakia"},
	{'V', 'A', 'E', "Austria"},
	{'V', 'F', 'R', "France"},
	{'V', 'S', 'W', "Spain"},
	{'V', 'X', '2', "Serbia"},
	{'V', '3', '5', "Croatia"},
	{'V', '6', '0', "Estonia"},
	{'W', 'A', '0', "Germany/West Germany"},
	{'X', 'A', 'E', "Bulgaria"},
	{'X', 'F', 'K', "Greece"},
	{'X', 'L', 'R', "Netherlands"},
	{'X', 'S', 'W', "USSR/CIS"},
	{'X', 'X', '2', "Luxembourg"},
	{'X', '3', '0', "Russia"},
	{'Y', 'A', 'E', "Belgium"},
	{'Y', 'F', 'K', "Finland"},
	{'Y', 'L', 'R', "Malta"},
	{'Y', 'S', 'W', "Sweden"},
	{'Y', 'X', '2', "Norway"},
	{'Y', '3', '5', "Belarus"},
	{'Y', '6', '0', "Ukraine"},
	{'Z', 'A', 'R', "Italy"},
	{'Z', 'X', '2', "Slovenia"},
	{'Z', '3', '5', "Lithuania"},
	{'Z', '6', '0', "Russia"},

	// North America
	{'1', 'A', '0', "United States"},
	{'2', 'A', '0', "Canada"},
	{'3', 'A', 'W', "Mexico"},
	{'3', 'X', '7', "Costa Rica"},
	{'3', '8', '0', "Cayman Islands"},
	{'4', 'A', '0', "United States"},
	{'5', 'A', '0', "United States"},

	// Oceania
	{'6', 'A', 'W', "Australia"},
	{'7', 'A', 'E', "New Zealand"},

	// South America
	{'8', 'A', 'E', "Argentina"},
	{'8', 'F', 'K', "Chile"},
	{'8', 'L', 'R', "Ecuador"},
	{'8', 'S', 'W', "Peru"},
	{'8', 'X', '2', "Venezuela"},
	{'9', 'A', 'E', "Brazil"},
	{'9', 'F', 'K', "Colombia"},
	{'9', 'L', 'R', "Paraguay"},
	{'9', 'S', 'W', "Uruguay"},
	{'9', 'X', '9', "Brazil"},
}

// regionRange assigns one region name to a run of first-position
// characters, again ordered by charOrder.
type regionRange struct {
	from, to byte
	name     string
}

var regions = []regionRange{
	{'A', 'H', "Africa"},
	{'J', 'R', "Asia"},
	{'S', 'Z', "Europe"},
	{'1', '5', "North America"},
	{'6', '7', "Oceania"},
	{'8', '9', "South America"},
}

// manufacturers maps registered 3-character WMIs to manufacturer names.
// A WMI whose third character is '9' belongs to a small-volume
// manufacturer without a dedicated registration; those and any other
// unlisted codes resolve to the empty string.
var manufacturers = map[string]string{
	"AAV": "Volkswagen South Africa",
	"AFA": "Ford South Africa",
	"AHT": "Toyota South Africa",
	"JA3": "Mitsubishi car",
	"JA4": "Mitsubishi SUV",
	"JF1": "Subaru car",
	"JF2": "Subaru SUV",
	"JH4": "Acura car",
	"JHM": "Honda car",
	"JMB": "Mitsubishi car",
	"JMZ": "Mazda car",
	"JN1": "Nissan car",
	"JN8": "Nissan SUV",
	"JS1": "Suzuki motorcycle",
	"JS3": "Suzuki SUV",
	"JT2": "Toyota car",
	"JT3": "Toyota SUV",
	"JT4": "Toyota truck",
	"JTD": "Toyota car",
	"JTH": "Lexus car",
	"JTJ": "Lexus SUV",
	"JYA": "Yamaha motorcycle",
	"KL1": "GM Daewoo car",
	"KMH": "Hyundai car",
	"KM8": "Hyundai SUV",
	"KNA": "Kia car",
	"KND": "Kia SUV",
	"KPT": "SsangYong SUV",
	"LFV": "FAW-Volkswagen car",
	"LSV": "Shanghai Volkswagen car",
	"LVS": "Changan Ford car",
	"MA1": "Mahindra car",
	"MA3": "Maruti Suzuki car",
	"MHR": "Honda Indonesia car",
	"MM8": "Mazda Thailand car",
	"NLE": "Mercedes-Benz Turkey bus",
	"NM0": "Ford Turkey car",
	"NMT": "Toyota Turkey car",
	"PE1": "Ford Philippines car",
	"PL1": "Proton car",
	"RFB": "Kymco motorcycle",
	"RL4": "Honda Vietnam motorcycle",
	"SAJ": "Jaguar car",
	"SAL": "Land Rover SUV",
	"SAR": "Rover car",
	"SB1": "Toyota UK car",
	"SCA": "Rolls-Royce car",
	"SCC": "Lotus car",
	"SCF": "Aston Martin car",
	"SFD": "Alexander Dennis bus",
	"SHS": "Honda UK car",
	"TMB": "Skoda car",
	"TRU": "Audi Hungary car",
	"TSM": "Suzuki Hungary car",
	"UU1": "Dacia car",
	"VF1": "Renault car",
	"VF3": "Peugeot car",
	"VF7": "Citroen car",
	"VNE": "Irisbus bus",
	"VSS": "SEAT car",
	"VWV": "Volkswagen Spain car",
	"WAU": "Audi car",
	"WA1": "Audi SUV",
	"WBA": "BMW car",
	"WBS": "BMW M car",
	"WDB": "Mercedes-Benz car",
	"WDC": "Mercedes-Benz SUV",
	"WDD": "Mercedes-Benz car",
	"WF0": "Ford Germany car",
	"WMW": "MINI car",
	"WP0": "Porsche car",
	"WP1": "Porsche SUV",
	"WVG": "Volkswagen MPV",
	"WVW": "Volkswagen car",
	"WV1": "Volkswagen commercial vehicle",
	"WV2": "Volkswagen bus/van",
	"W0L": "Opel car",
	"XTA": "Lada/AvtoVAZ car",
	"YK1": "Saab Finland car",
	"YS3": "Saab car",
	"YV1": "Volvo car",
	"YV4": "Volvo SUV",
	"ZAM": "Maserati car",
	"ZAR": "Alfa Romeo car",
	"ZCF": "Iveco truck",
	"ZFA": "Fiat car",
	"ZFF": "Ferrari car",
	"ZHW": "Lamborghini car",
	"1C3": "Chrysler car",
	"1C4": "Chrysler SUV",
	"1FA": "Ford car",
	"1FT": "Ford truck",
	"1FU": "Freightliner truck",
	"1G1": "Chevrolet car",
	"1GC": "Chevrolet truck",
	"1GM": "Pontiac car",
	"1G6": "Cadillac car",
	"1HD": "Harley-Davidson motorcycle",
	"1HG": "Honda USA car",
	"1J4": "Jeep SUV",
	"1L1": "Lincoln car",
	"1M1": "Mack truck",
	"1M8": "Motor Coach Industries bus",
	"1N4": "Nissan USA car",
	"1VW": "Volkswagen USA car",
	"1XK": "Kenworth truck",
	"1YV": "Mazda USA car",
	"2FA": "Ford Canada car",
	"2G1": "Chevrolet Canada car",
	"2HG": "Honda Canada car",
	"2HM": "Hyundai Canada car",
	"2T1": "Toyota Canada car",
	"2WK": "Western Star truck",
	"3FA": "Ford Mexico car",
	"3G1": "Chevrolet Mexico car",
	"3HG": "Honda Mexico car",
	"3N1": "Nissan Mexico car",
	"3VW": "Volkswagen Mexico car",
	"4F2": "Mazda USA SUV",
	"4S3": "Subaru USA car",
	"4T1": "Toyota USA car",
	"4US": "BMW USA car",
	"5FN": "Honda USA MPV",
	"5L1": "Lincoln USA car",
	"5N1": "Nissan USA SUV",
	"5TD": "Toyota USA SUV",
	"5YJ": "Tesla car",
	"6F4": "Nissan Australia car",
	"6G1": "Holden car",
	"6MM": "Mitsubishi Australia car",
	"6T1": "Toyota Australia car",
	"8AG": "Chevrolet Argentina car",
	"8AP": "Fiat Argentina car",
	"8AW": "Volkswagen Argentina car",
	"93H": "Honda Brazil car",
	"93Y": "Renault Brazil car",
	"9BD": "Fiat Brazil car",
	"9BG": "Chevrolet Brazil car",
	"9BM": "Mercedes-Benz Brazil truck",
	"9BW": "Volkswagen Brazil car",
	"9FB": "Renault Colombia car",
}

// orderIndex returns the position of c in charOrder, or -1 for
// characters outside the VIN alphabet's first-position set.
func orderIndex(c byte) int { return strings.IndexByte(charOrder, c) }

// countryName resolves a 2-character WMI prefix to a country name.
// Unassigned codes resolve to "".
func countryName(code string) string {
	if len(code) != 2 {
		return ""
	}
	pos := orderIndex(code[1])
	if pos < 0 {
		return ""
	}
	for _, r := range countries {
		if r.first != code[0] {
			continue
		}
		if pos >= orderIndex(r.from) && pos <= orderIndex(r.to) {
			return r.name
		}
	}
	return ""
}

// regionName resolves the first WMI character to a region name.
// Unassigned characters resolve to "".
func regionName(code string) string {
	if len(code) != 1 {
		return ""
	}
	pos := orderIndex(code[0])
	if pos < 0 {
		return ""
	}
	for _, r := range regions {
		if pos >= orderIndex(r.from) && pos <= orderIndex(r.to) {
			return r.name
		}
	}
	return ""
}

// manufacturerName resolves a full 3-character WMI to a manufacturer
// name. Unregistered WMIs resolve to "".
func manufacturerName(code string) string { return manufacturers[code] }
