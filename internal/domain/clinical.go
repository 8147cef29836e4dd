package domain

// SeverityBandDefinition is an inclusive PHQ-9 score range.
type SeverityBandDefinition struct {
	Min   float64
	Max   float64
	Label string
	Color string
}

// Contains reports whether score falls inside the band.
func (b SeverityBandDefinition) Contains(score float64) bool {
	return score >= b.Min && score <= b.Max
}

// PHQ9SeverityBands are ordered from least to most severe and cover [0,27].
var PHQ9SeverityBands = []SeverityBandDefinition{
	{Min: 0, Max: 4, Label: "Minimal", Color: "#10B981"},
	{Min: 5, Max: 9, Label: "Mild", Color: "#84CC16"},
	{Min: 10, Max: 14, Label: "Moderate", Color: "#F59E0B"},
	{Min: 15, Max: 19, Label: "Moderately Severe", Color: "#F97316"},
	{Min: 20, Max: 27, Label: "Severe", Color: "#EF4444"},
}

const (
	// PHQ9MeaningfulImprovement is the minimum PHQ-9 reduction counted as clinical improvement.
	PHQ9MeaningfulImprovement = 5
	// GAD7MeaningfulImprovement is the minimum GAD-7 reduction counted as clinical improvement.
	GAD7MeaningfulImprovement = 4
	// WHO5MeaningfulImprovement is the minimum WHO-5 increase counted as meaningful.
	WHO5MeaningfulImprovement = 10
	// MinimumCohortSize is the privacy threshold for reporting a group.
	MinimumCohortSize = 5
)

// PHQ9SeverityIndex returns the band index for score, or -1 when no band matches.
func PHQ9SeverityIndex(score float64) int {
	for i, band := range PHQ9SeverityBands {
		if band.Contains(score) {
			return i
		}
	}
	return -1
}

// PHQ9SeverityLabel returns the band label for score, or "Unknown".
func PHQ9SeverityLabel(score float64) string {
	if i := PHQ9SeverityIndex(score); i >= 0 {
		return PHQ9SeverityBands[i].Label
	}
	return "Unknown"
}
