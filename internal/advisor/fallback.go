package advisor

import (
	"context"
	"strings"

	"github.com/careersphere/career-advisor/internal/matching"
	"github.com/careersphere/career-advisor/internal/types"
)

// fallbackMatchFloor keeps the fallback job from looking like a non-match
// when the candidate lists none of the table skills.
const fallbackMatchFloor = 30.0

// marketEntry is one row of the static job market table used when no
// generator is available or generation fails.
type marketEntry struct {
	Industry       string
	Level          string
	RequiredSkills []string
	SalaryRange    string
	Description    string
	Demand         string
	Growth         string
}

// jobMarketTable maps normalized job types to market data. Keys match the
// job_type values the frontend sends.
var jobMarketTable = map[string]marketEntry{
	"web_development": {
		Industry:       "Technology",
		Level:          "entry",
		RequiredSkills: []string{"html", "css", "javascript", "react", "node.js"},
		SalaryRange:    "$55,000 - $95,000",
		Description:    "Build and maintain websites and web applications.",
		Demand:         "high",
		Growth:         "13% over the next decade",
	},
	"software_development": {
		Industry:       "Technology",
		Level:          "entry",
		RequiredSkills: []string{"python", "java", "git", "sql", "algorithms"},
		SalaryRange:    "$65,000 - $110,000",
		Description:    "Design, implement, and ship software systems.",
		Demand:         "high",
		Growth:         "17% over the next decade",
	},
	"data_science": {
		Industry:       "Technology",
		Level:          "entry",
		RequiredSkills: []string{"python", "statistics", "machine learning", "sql", "pandas"},
		SalaryRange:    "$70,000 - $120,000",
		Description:    "Extract insight from data with statistical and ML methods.",
		Demand:         "high",
		Growth:         "22% over the next decade",
	},
	"data_analysis": {
		Industry:       "Business Intelligence",
		Level:          "entry",
		RequiredSkills: []string{"sql", "excel", "tableau", "python", "statistics"},
		SalaryRange:    "$50,000 - $85,000",
		Description:    "Turn raw business data into reports and dashboards.",
		Demand:         "moderate",
		Growth:         "9% over the next decade",
	},
	"devops": {
		Industry:       "Infrastructure",
		Level:          "entry",
		RequiredSkills: []string{"linux", "docker", "kubernetes", "ci/cd", "aws"},
		SalaryRange:    "$75,000 - $125,000",
		Description:    "Automate build, deployment, and operations pipelines.",
		Demand:         "high",
		Growth:         "20% over the next decade",
	},
	"cybersecurity": {
		Industry:       "Security",
		Level:          "entry",
		RequiredSkills: []string{"networking", "linux", "security fundamentals", "python", "incident response"},
		SalaryRange:    "$70,000 - $120,000",
		Description:    "Protect systems and data from security threats.",
		Demand:         "high",
		Growth:         "32% over the next decade",
	},
}

// genericMarketEntry covers job types missing from the table.
var genericMarketEntry = marketEntry{
	Industry:       "General",
	Level:          "entry",
	RequiredSkills: []string{"communication", "problem solving", "teamwork"},
	SalaryRange:    "$40,000 - $70,000",
	Description:    "Entry-level role in the candidate's chosen field.",
	Demand:         "moderate",
	Growth:         "steady",
}

// fallbackRecommendations builds a recommendation set from the static
// market table. The single job carries the candidate's job type as its
// title; the normalizer tops up the course and certification lists from
// its default pools.
func fallbackRecommendations(ctx context.Context, profile *types.CandidateProfile, matcher *matching.Matcher) types.RecommendationSet {
	jobType := strings.ToLower(strings.TrimSpace(profile.JobType))
	entry, known := jobMarketTable[jobType]
	if !known {
		entry = genericMarketEntry
	}

	match := matcher.Match(ctx, profile.SkillNames(), entry.RequiredSkills)
	pct := match.MatchPercentage
	if pct < fallbackMatchFloor {
		pct = fallbackMatchFloor
	}

	job := types.JobRecommendation{
		JobTitle:        profile.JobType,
		Industry:        entry.Industry,
		Level:           entry.Level,
		MatchPercentage: pct,
		SalaryRange:     entry.SalaryRange,
		Description:     entry.Description,
		Location:        profile.Location,
		RequiredSkills:  entry.RequiredSkills,
		MissingSkills:   match.MissingSkills,
	}

	return types.RecommendationSet{
		Jobs: []types.JobRecommendation{job},
		Market: types.MarketAnalysis{
			CurrentDemand:    entry.Demand,
			GrowthProjection: entry.Growth,
			SalaryTrend:      entry.SalaryRange,
		},
	}
}
