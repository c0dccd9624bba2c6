package features

// Weighted tally points for the structural format score. Contact presence is
// the strongest signal an ATS can parse a header; section breaks and bullet
// structure indicate a machine-readable layout.
const (
	formatBasePoints     = 20.0
	formatEmailPoints    = 25.0
	formatPhonePoints    = 15.0
	formatSectionPoints  = 20.0
	formatBulletPoints   = 20.0
	densitySaturation    = 0.2 // density at which structure points max out
	completenessImpactW  = 60.0
	completenessLengthW  = 40.0
	adequateWordFraction = 0.3 // wordCount feature value of a ~300 word document
)

// FormatScore derives a 0-100 structural score from the feature vector:
// a weighted tally over contact presence, section breaks, and bullet
// structure. An empty document scores zero.
func FormatScore(v Vector) float64 {
	if v[FeatureTextLength] == 0 {
		return 0
	}

	score := formatBasePoints
	score += formatEmailPoints * v[FeatureHasEmail]
	score += formatPhonePoints * v[FeatureHasPhone]
	score += formatSectionPoints * clamp01(v[FeatureSectionDensity]/densitySaturation)
	score += formatBulletPoints * clamp01(v[FeatureBulletDensity]/densitySaturation)

	return clamp01(score/100) * 100
}

// CompletenessScore derives a 0-100 completeness score from the impact
// quantification rate and document length adequacy. It is architecturally
// separate from the keyword dimension: a resume can be fully quantified and
// still miss critical keywords.
func CompletenessScore(quantificationRate float64, v Vector) float64 {
	if v[FeatureTextLength] == 0 {
		return 0
	}

	lengthAdequacy := clamp01(v[FeatureWordCount] / adequateWordFraction)
	score := completenessImpactW*clamp01(quantificationRate) + completenessLengthW*lengthAdequacy
	return clamp01(score/100) * 100
}
