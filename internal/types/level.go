package types

// UserLevel is a derived seniority level. It is a closed enum: values are
// produced by the classifier, never taken from client input directly.
type UserLevel string

// Seniority levels, ordered from least to most experienced.
const (
	LevelBeginner     UserLevel = "beginner"
	LevelIntermediate UserLevel = "intermediate"
	LevelAdvanced     UserLevel = "advanced"
)

// String returns the level label.
func (l UserLevel) String() string {
	return string(l)
}
