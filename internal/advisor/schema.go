package advisor

// recommendationSchema constrains generated recommendation payloads before
// they reach the normalizer. It checks structure only; dedup, spacing, and
// diversity are the normalizer's job.
const recommendationSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["job_recommendations", "course_recommendations", "certification_recommendations"],
  "properties": {
    "job_recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["job_title", "match_percentage"],
        "properties": {
          "job_title": {"type": "string", "minLength": 1},
          "company": {"type": "string"},
          "industry": {"type": "string"},
          "level": {"type": "string"},
          "match_percentage": {"type": "number", "minimum": 0, "maximum": 100},
          "salary_range": {"type": "string"},
          "description": {"type": "string"},
          "location": {"type": "string"},
          "required_skills": {"type": "array", "items": {"type": "string"}},
          "missing_skills": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "course_recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "provider", "match_score"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "provider": {"type": "string"},
          "level": {"type": "string"},
          "match_score": {"type": "number", "minimum": 0, "maximum": 100},
          "description": {"type": "string"},
          "link": {"type": "string"},
          "duration": {"type": "string"},
          "topics": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "certification_recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "provider", "match_score"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "provider": {"type": "string"},
          "level": {"type": "string"},
          "match_score": {"type": "number", "minimum": 0, "maximum": 100},
          "description": {"type": "string"},
          "link": {"type": "string"}
        }
      }
    },
    "market_analysis": {
      "type": "object",
      "properties": {
        "current_demand": {"type": "string"},
        "growth_projection": {"type": "string"},
        "salary_trends": {"type": "string"}
      }
    }
  }
}`
