package types

import "strings"

// JobRecommendation is a recommended role for the candidate.
type JobRecommendation struct {
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	Level           string   `json:"level,omitempty"`
	MatchPercentage float64  `json:"match_percentage"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	Description     string   `json:"description,omitempty"`
	Location        string   `json:"location,omitempty"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	MissingSkills   []string `json:"missing_skills,omitempty"`
}

// Key returns the identity key used for deduplication.
func (j JobRecommendation) Key() string {
	return identityKey(j.JobTitle, j.Company)
}

// CourseRecommendation is a recommended course.
type CourseRecommendation struct {
	Title       string   `json:"title"`
	Provider    string   `json:"provider"`
	Level       string   `json:"level,omitempty"`
	MatchScore  float64  `json:"match_score"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Topics      []string `json:"topics,omitempty"`
}

// Key returns the identity key used for deduplication.
func (c CourseRecommendation) Key() string {
	return identityKey(c.Title, c.Provider)
}

// CertificationRecommendation is a recommended professional certification.
type CertificationRecommendation struct {
	Title       string  `json:"title"`
	Provider    string  `json:"provider"`
	Level       string  `json:"level,omitempty"`
	MatchScore  float64 `json:"match_score"`
	Description string  `json:"description,omitempty"`
	Link        string  `json:"link,omitempty"`
}

// Key returns the identity key used for deduplication.
func (c CertificationRecommendation) Key() string {
	return identityKey(c.Title, c.Provider)
}

// MarketAnalysis summarizes job market signals for the candidate's field.
type MarketAnalysis struct {
	CurrentDemand    string `json:"current_demand,omitempty"`
	GrowthProjection string `json:"growth_projection,omitempty"`
	SalaryTrend      string `json:"salary_trends,omitempty"`
}

// RecommendationSet holds the three recommendation lists plus the market
// summary. It is the shape the generator must produce and the shape the
// normalizer emits.
type RecommendationSet struct {
	Jobs           []JobRecommendation           `json:"job_recommendations"`
	Courses        []CourseRecommendation        `json:"course_recommendations"`
	Certifications []CertificationRecommendation `json:"certification_recommendations"`
	Market         MarketAnalysis                `json:"market_analysis"`
}

// identityKey builds the case-insensitive name+provider key. The pipe
// separator keeps ("ab","c") and ("a","bc") distinct.
func identityKey(name, provider string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(provider))
}
