package matching

import "strings"

// Curated attribute groups. Two free-text values that are not exactly equal
// still count as "similar" when they share a group. The tables carry the
// vocabulary of the seed dataset, which mixes Spanish breed and color names.
var breedGroups = [][]string{
	{"Golden Retriever", "Labrador", "Labrador Retriever"},
	{"Bulldog Francés", "Bulldog Inglés", "Bulldog"},
	{"Gato doméstico", "Gato Persa", "Gato Siamés"},
}

var colorGroups = [][]string{
	{"Negro", "Negro y blanco", "Gris oscuro"},
	{"Blanco", "Blanco y gris", "Crema"},
	{"Dorado", "Amarillo", "Rubio"},
	{"Chocolate", "Marrón", "Canela"},
}

// SimilarBreeds reports whether two breed names share a curated group.
// Exact equality is not considered here; callers check that first.
func SimilarBreeds(a, b string) bool {
	return sameGroup(breedGroups, a, b)
}

// SimilarColors reports whether two color names share a curated group.
func SimilarColors(a, b string) bool {
	return sameGroup(colorGroups, a, b)
}

func sameGroup(groups [][]string, a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	for _, group := range groups {
		if contains(group, a) && contains(group, b) {
			return true
		}
	}
	return false
}

func contains(group []string, v string) bool {
	for _, g := range group {
		if g == v {
			return true
		}
	}
	return false
}

// NearbyLocations applies the crude city-substring heuristic: each location
// is split on the first comma and the raw post-comma segment (the "city"
// part, leading space included) is tested for containment in the other
// location string, in either direction. No geodistance is involved.
func NearbyLocations(a, b string) bool {
	cityA, okA := citySegment(a)
	cityB, okB := citySegment(b)
	if okB && strings.Contains(a, cityB) {
		return true
	}
	if okA && strings.Contains(b, cityA) {
		return true
	}
	return false
}

func citySegment(location string) (string, bool) {
	_, rest, found := strings.Cut(location, ",")
	return rest, found
}
