package catalog

import "strings"

var coloradoCounties = []string{
	"Adams", "Alamosa", "Arapahoe", "Archuleta", "Baca", "Bent", "Boulder",
	"Broomfield", "Chaffee", "Cheyenne", "Clear Creek", "Conejos", "Costilla",
	"Crowley", "Custer", "Delta", "Denver", "Dolores", "Douglas", "Eagle",
	"El Paso", "Elbert", "Fremont", "Garfield", "Gilpin", "Grand", "Gunnison",
	"Hinsdale", "Huerfano", "Jackson", "Jefferson", "Kiowa", "Kit Carson",
	"La Plata", "Lake", "Larimer", "Las Animas", "Lincoln", "Logan", "Mesa",
	"Mineral", "Moffat", "Montezuma", "Montrose", "Morgan", "Otero", "Ouray",
	"Park", "Phillips", "Pitkin", "Prowers", "Pueblo", "Rio Blanco", "Rio Grande",
	"Routt", "Saguache", "San Juan", "San Miguel", "Sedgwick", "Summit", "Teller",
	"Washington", "Weld", "Yuma",
}

// ColoradoCounties returns the 64 county names in alphabetical order.
func ColoradoCounties() []string {
	return append([]string(nil), coloradoCounties...)
}

// CanonicalCounty returns the catalog spelling of name, matched without
// regard to case or surrounding space.
func CanonicalCounty(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, county := range coloradoCounties {
		if strings.EqualFold(county, name) {
			return county, true
		}
	}
	return "", false
}
