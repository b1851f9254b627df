package recommend

import (
	"strings"

	"github.com/careersphere/career-advisor/internal/types"
)

// defaultPools returns the built-in fallback courses and certifications
// appended when the generated lists come up short. Pool scores are modest
// and mutually spaced; they still pass through the spacing adjustment
// against whatever the generator produced.
func defaultPools() Pools {
	return Pools{
		Courses: []types.CourseRecommendation{
			{
				Title:       "Programming Fundamentals",
				Provider:    "Coursera",
				Level:       "beginner",
				MatchScore:  65,
				Description: "Core programming concepts, data structures, and problem solving.",
				Duration:    "6 weeks",
				Topics:      []string{"programming", "data structures", "algorithms"},
			},
			{
				Title:       "Web Development Basics",
				Provider:    "Udemy",
				Level:       "beginner",
				MatchScore:  58,
				Description: "HTML, CSS, and JavaScript from the ground up.",
				Duration:    "8 weeks",
				Topics:      []string{"html", "css", "javascript"},
			},
			{
				Title:       "System Architecture & Design",
				Provider:    "PluralSight",
				Level:       "intermediate",
				MatchScore:  51,
				Description: "Designing scalable and maintainable software systems.",
				Duration:    "5 weeks",
				Topics:      []string{"architecture", "design patterns", "scalability"},
			},
			{
				Title:       "Enterprise Development",
				Provider:    "edX",
				Level:       "advanced",
				MatchScore:  44,
				Description: "Building and operating large enterprise applications.",
				Duration:    "10 weeks",
				Topics:      []string{"enterprise", "microservices", "devops"},
			},
		},
		Certifications: []types.CertificationRecommendation{
			{
				Title:       "AWS Cloud Practitioner",
				Provider:    "Amazon",
				Level:       "beginner",
				MatchScore:  65,
				Description: "Foundational understanding of AWS cloud services.",
			},
			{
				Title:       "Google Cloud Associate Engineer",
				Provider:    "Google",
				Level:       "intermediate",
				MatchScore:  58,
				Description: "Deploying and managing workloads on Google Cloud.",
			},
			{
				Title:       "Azure Developer Associate",
				Provider:    "Microsoft",
				Level:       "intermediate",
				MatchScore:  51,
				Description: "Designing and building solutions on Microsoft Azure.",
			},
			{
				Title:       "Docker Certified Associate",
				Provider:    "Docker",
				Level:       "intermediate",
				MatchScore:  44,
				Description: "Containerization and image management with Docker.",
			},
		},
	}
}

// fold lowercases and trims a diversity dimension value.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
