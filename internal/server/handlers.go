package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careersphere/career-advisor/internal/ingestion"
	"github.com/careersphere/career-advisor/internal/types"
)

// maxUploadBytes bounds resume uploads on /extracttext.
const maxUploadBytes = 10 << 20

// handleAnalyze runs a full analysis for a candidate profile
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	logger := s.logger.With(zap.String("request_id", requestID))

	var profile types.CandidateProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		logger.Warn("invalid analyze payload", zap.Error(err))
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := profile.Validate(); err != nil {
		logger.Warn("analyze validation failed", zap.Error(err))
		verr := &ErrValidation{Field: "profile", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	result, err := s.advisor.Produce(r.Context(), &profile)
	if err != nil {
		logger.Warn("analysis rejected", zap.Error(err))
		verr := &ErrValidation{Field: "job_type", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	logger.Info("analysis served",
		zap.String("job_type", profile.JobType),
		zap.Bool("fallback", result.Fallback))
	s.jsonResponse(w, http.StatusOK, result)
}

// handleExtractText extracts plain text from an uploaded resume document
func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	logger := s.logger.With(zap.String("request_id", requestID))

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.Warn("failed to parse upload", zap.Error(err))
		perr := &ErrPayloadTooLarge{Limit: maxUploadBytes}
		s.errorResponse(w, HTTPStatus(perr), "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		verr := &ErrValidation{Field: "resume", Message: "missing resume file"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("failed to read upload", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "failed to read upload")
		return
	}

	contentType := header.Header.Get("Content-Type")
	text, err := ingestion.ExtractText(data, contentType)
	if err != nil {
		logger.Warn("text extraction failed",
			zap.String("content_type", contentType),
			zap.Error(err))
		merr := &ErrUnsupportedMedia{ContentType: contentType}
		s.errorResponse(w, HTTPStatus(merr), merr.Error())
		return
	}

	logger.Info("text extracted",
		zap.String("filename", header.Filename),
		zap.Int("chars", len(text)))
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}

// handleHealth returns server health and capability status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":       "ok",
		"llm_enabled":  s.hasLLM,
		"capabilities": s.capabilities(),
	})
}

func (s *Server) capabilities() []string {
	caps := []string{"fallback_recommendations", "set_overlap_matching", "text_extraction"}
	if s.hasLLM {
		caps = append(caps, "generated_recommendations", "embedding_matching", "sentiment_analysis")
	}
	return caps
}
