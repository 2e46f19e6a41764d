// ABOUTME: Public and admin content handlers for the portfolio API
// ABOUTME: Public reads are open; admin writes run behind the auth middleware

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/devfolio/portfolio-api/internal/content"
)

// StatusResponse is the JSON response for GET /.
type StatusResponse struct {
	Message     string   `json:"message"`
	Database    string   `json:"database"`
	Collections []string `json:"collections"`
}

// handleStatus handles GET / requests with service and database status.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		Message:     "Portfolio API running",
		Database:    "ok",
		Collections: []string{},
	}

	if err := s.store.Ping(r.Context()); err != nil {
		resp.Database = "unavailable"
		writeJSON(w, http.StatusOK, resp)
		return
	}

	if names, err := s.store.ListCollections(r.Context()); err == nil && names != nil {
		resp.Collections = names
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleHealth handles GET /healthz requests.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": "unavailable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "ok",
	})
}

// handleListCertifications handles GET /certifications requests.
func (s *Server) handleListCertifications(w http.ResponseWriter, r *http.Request) {
	certs, err := s.content.ListCertifications(r.Context())
	if err != nil {
		s.logger.Error("listing certifications", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, certs)
}

// handleListProjects handles GET /projects requests.
// Supports an optional ?featured=true|false query parameter.
func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	var featured *bool
	if raw := r.URL.Query().Get("featured"); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "featured must be true or false")
			return
		}
		featured = &val
	}

	projects, err := s.content.ListProjects(r.Context(), featured)
	if err != nil {
		s.logger.Error("listing projects", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// handleListPosts handles GET /blog requests.
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.content.ListPosts(r.Context())
	if err != nil {
		s.logger.Error("listing posts", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// handleGetSocial handles GET /social requests. Returns an empty object when
// no links have been set.
func (s *Server) handleGetSocial(w http.ResponseWriter, r *http.Request) {
	links, err := s.content.SocialLinks(r.Context())
	if err != nil {
		s.logger.Error("getting social links", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, links)
}

// handleGetResume handles GET /resume requests.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	resume, err := s.content.Resume(r.Context())
	if errors.Is(err, content.ErrResumeNotFound) {
		writeJSONError(w, http.StatusNotFound, "resume not found")
		return
	}
	if err != nil {
		s.logger.Error("getting resume", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

// handleAddCertification handles POST /admin/certifications requests.
func (s *Server) handleAddCertification(w http.ResponseWriter, r *http.Request) {
	var cert content.Certification
	if err := json.NewDecoder(r.Body).Decode(&cert); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.content.AddCertification(r.Context(), cert)
	if err != nil {
		s.writeContentError(w, err, "adding certification")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleAddProject handles POST /admin/projects requests.
func (s *Server) handleAddProject(w http.ResponseWriter, r *http.Request) {
	var project content.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.content.AddProject(r.Context(), project)
	if err != nil {
		s.writeContentError(w, err, "adding project")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleAddPost handles POST /admin/blog requests.
func (s *Server) handleAddPost(w http.ResponseWriter, r *http.Request) {
	var post content.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.content.AddPost(r.Context(), post)
	if err != nil {
		s.writeContentError(w, err, "adding post")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// handleSetSocial handles POST /admin/social requests, replacing any stored links.
func (s *Server) handleSetSocial(w http.ResponseWriter, r *http.Request) {
	var links content.SocialLinks
	if err := json.NewDecoder(r.Body).Decode(&links); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.content.SetSocialLinks(r.Context(), links)
	if err != nil {
		s.writeContentError(w, err, "setting social links")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// handleSetResume handles POST /admin/resume requests, replacing any stored resume.
func (s *Server) handleSetResume(w http.ResponseWriter, r *http.Request) {
	var resume content.Resume
	if err := json.NewDecoder(r.Body).Decode(&resume); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	id, err := s.content.SetResume(r.Context(), resume)
	if err != nil {
		s.writeContentError(w, err, "setting resume")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// writeContentError maps content service errors to HTTP responses.
func (s *Server) writeContentError(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, content.ErrInvalidDocument) {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error(action, "error", err)
	writeJSONError(w, http.StatusInternalServerError, "internal server error")
}
