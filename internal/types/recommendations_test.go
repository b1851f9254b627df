package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_CaseAndWhitespaceInsensitive(t *testing.T) {
	a := CourseRecommendation{Title: "Go Fundamentals", Provider: "Coursera"}
	b := CourseRecommendation{Title: "  go fundamentals ", Provider: "COURSERA"}
	assert.Equal(t, a.Key(), b.Key())
}

func TestKey_DistinguishesProviders(t *testing.T) {
	a := CertificationRecommendation{Title: "Cloud Practitioner", Provider: "Amazon"}
	b := CertificationRecommendation{Title: "Cloud Practitioner", Provider: "Google"}
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestKey_SeparatorPreventsCollisions(t *testing.T) {
	a := CourseRecommendation{Title: "ab", Provider: "c"}
	b := CourseRecommendation{Title: "a", Provider: "bc"}
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestJobKey_UsesCompany(t *testing.T) {
	a := JobRecommendation{JobTitle: "Backend Engineer", Company: "Acme"}
	b := JobRecommendation{JobTitle: "Backend Engineer", Company: "Globex"}
	assert.NotEqual(t, a.Key(), b.Key())
}
