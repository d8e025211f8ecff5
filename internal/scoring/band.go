package scoring

import "moneybrief/internal/model"

var bands = []struct {
	below int
	band  model.Band
}{
	{30, model.Band{Start: "#3B82F6", End: "#2563EB", Glow: "rgba(59, 130, 246, 0.5)"}}, // blue
	{50, model.Band{Start: "#14B8A6", End: "#0D9488", Glow: "rgba(20, 184, 166, 0.5)"}}, // teal
	{70, model.Band{Start: "#10B981", End: "#059669", Glow: "rgba(16, 185, 129, 0.5)"}}, // green
	{85, model.Band{Start: "#F59E0B", End: "#D97706", Glow: "rgba(245, 158, 11, 0.5)"}}, // amber
}

var topBand = model.Band{Start: "#F43F5E", End: "#E11D48", Glow: "rgba(244, 63, 94, 0.5)"} // rose

// BandFor returns the display colors for a risk score
func BandFor(score int) model.Band {
	for _, b := range bands {
		if score < b.below {
			return b.band
		}
	}
	return topBand
}
