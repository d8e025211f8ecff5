package model

// Profile is one of the five ordinal investor profiles
type Profile string

const (
	ProfileConservative           Profile = "Conservative"
	ProfileModeratelyConservative Profile = "Moderately Conservative"
	ProfileModerate               Profile = "Moderate"
	ProfileModeratelyAggressive   Profile = "Moderately Aggressive"
	ProfileAggressive             Profile = "Aggressive"
)

// Profiles lists every profile from least to most risk tolerant
var Profiles = []Profile{
	ProfileConservative,
	ProfileModeratelyConservative,
	ProfileModerate,
	ProfileModeratelyAggressive,
	ProfileAggressive,
}

// Valid reports whether p is a known profile
func (p Profile) Valid() bool {
	for _, known := range Profiles {
		if p == known {
			return true
		}
	}
	return false
}
