package utils

import (
	"math"
	"strconv"
	"strings"
)

// defaultSizes is used when a lookingFor token is unrecognized.
var defaultSizes = []int{2, 3}

// openEndedMax caps the "5+" token; groups larger than 8 are not supported.
const openEndedMax = 8

// LookingForSizes parses a lookingFor size-range token ("1", "2", "2-3",
// "3-4", "4-5", "5+") into the set of group sizes it covers. Unrecognized
// tokens fall back to {2, 3}.
func LookingForSizes(token string) []int {
	token = strings.TrimSpace(token)

	if strings.HasSuffix(token, "+") {
		min, err := strconv.Atoi(strings.TrimSuffix(token, "+"))
		if err != nil || min < 1 {
			return defaultSizes
		}
		sizes := make([]int, 0, openEndedMax-min+1)
		for n := min; n <= openEndedMax; n++ {
			sizes = append(sizes, n)
		}
		return sizes
	}

	if lo, hi, ok := strings.Cut(token, "-"); ok {
		min, errLo := strconv.Atoi(lo)
		max, errHi := strconv.Atoi(hi)
		if errLo != nil || errHi != nil || min < 1 || max < min {
			return defaultSizes
		}
		sizes := make([]int, 0, max-min+1)
		for n := min; n <= max; n++ {
			sizes = append(sizes, n)
		}
		return sizes
	}

	n, err := strconv.Atoi(token)
	if err != nil || n < 1 {
		return defaultSizes
	}
	return []int{n}
}

// SizesOverlap reports whether two size sets share at least one group size.
func SizesOverlap(a, b []int) bool {
	set := make(map[int]struct{}, len(a))
	for _, n := range a {
		set[n] = struct{}{}
	}
	for _, n := range b {
		if _, ok := set[n]; ok {
			return true
		}
	}
	return false
}

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// coordinates.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
