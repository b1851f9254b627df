package types

// SkillMatchResult is the outcome of comparing a candidate skill set
// against a requirement set. MatchedSkills and MissingSkills are disjoint,
// case-normalized sets.
type SkillMatchResult struct {
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

// TextQuality holds readability metrics for the resume text.
type TextQuality struct {
	ReadabilityScore float64 `json:"readability_score"`
	SentenceCount    int     `json:"sentence_count"`
	WordCount        int     `json:"word_count"`
	AvgWordLength    float64 `json:"avg_word_length"`
	SentimentScore   float64 `json:"sentiment_score"`
}

// AnalysisResponse is the full analysis result for one candidate profile.
type AnalysisResponse struct {
	OverallScore    float64           `json:"overall_score"`
	UserLevel       UserLevel         `json:"user_level"`
	TextQuality     TextQuality       `json:"text_quality"`
	SkillsAnalysis  SkillMatchResult  `json:"skills_analysis"`
	EducationScore  float64           `json:"education_score"`
	ExperienceScore float64           `json:"experience_score"`
	Recommendations RecommendationSet `json:"recommendations"`
	Fallback        bool              `json:"fallback,omitempty"`
}
