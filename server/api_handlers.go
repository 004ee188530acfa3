package server

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/jobiq/jobiq/pkg/digest"
	"github.com/jobiq/jobiq/pkg/domain"
)

// header carrying the shared secret from the external cron
const cronSecretHeader = "X-Cron-Secret" //nolint:gosec // header name, not a credential

// digestRunHandler triggers a full digest pass. Guarded by the cron
// secret; an unset secret rejects every caller.
func (s *Server) digestRunHandler(w http.ResponseWriter, r *http.Request) {
	if !s.cronAuthorized(r) {
		renderError(w, r, fmt.Errorf("unauthorized"), http.StatusUnauthorized)
		return
	}

	result := s.digester.Run(r.Context())
	if !result.Success {
		lgr.Printf("[ERROR] digest run failed: %s", result.Error)
		renderJSON(w, r, http.StatusInternalServerError, result)
		return
	}

	lgr.Printf("[INFO] digest run complete: processed %d, sent %d, errors %d",
		result.Stats.UsersProcessed, result.Stats.EmailsSent, result.Stats.Errors)
	renderJSON(w, r, http.StatusOK, result)
}

// cronAuthorized checks the caller's secret in constant time
func (s *Server) cronAuthorized(r *http.Request) bool {
	if s.cronSecret == "" {
		return false
	}
	given := r.Header.Get(cronSecretHeader)
	return subtle.ConstantTimeCompare([]byte(given), []byte(s.cronSecret)) == 1
}

// listJobsHandler returns active jobs, optionally filtered by type
func (s *Server) listJobsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			renderError(w, r, fmt.Errorf("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = n
	}

	jobType := ""
	if v := r.URL.Query().Get("type"); v != "" {
		jobType = digest.NormalizeJobType(v)
	}

	jobs, err := s.jobs.ListActive(r.Context(), jobType, limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list jobs: %v", err)
		renderError(w, r, fmt.Errorf("failed to list jobs"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"jobs": toJobResponses(jobs)})
}

// getJobHandler returns a single job by ID
func (s *Server) getJobHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid job ID"), http.StatusBadRequest)
		return
	}

	job, err := s.jobs.GetJob(r.Context(), id)
	if err != nil {
		renderError(w, r, fmt.Errorf("job not found"), http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, toJobResponse(job))
}

// getUserHandler returns a user with parsed preferences
func (s *Server) getUserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		renderError(w, r, fmt.Errorf("user not found"), http.StatusNotFound)
		return
	}

	prefs, err := digest.ParsePreferences(user.Preferences)
	if err != nil {
		// surface the stored blob as-is but report defaults
		lgr.Printf("[WARN] user %s has malformed preferences: %v", user.ID, err)
	}

	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"id":           user.ID,
		"email":        user.Email,
		"display_name": user.DisplayName,
		"preferences":  prefs,
		"created_at":   user.CreatedAt,
	})
}

// updatePreferencesHandler replaces a user's preference blob
func (s *Server) updatePreferencesHandler(w http.ResponseWriter, r *http.Request) {
	var prefs domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		renderError(w, r, fmt.Errorf("invalid preferences payload"), http.StatusBadRequest)
		return
	}

	// normalize job type tags before storing
	for i, jt := range prefs.JobTypes {
		prefs.JobTypes[i] = digest.NormalizeJobType(jt)
	}

	blob, err := json.Marshal(prefs)
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	userID := r.PathValue("id")
	if err := s.users.UpdatePreferences(r.Context(), userID, blob); err != nil {
		lgr.Printf("[ERROR] failed to update preferences for %s: %v", userID, err)
		renderError(w, r, fmt.Errorf("failed to update preferences"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"preferences": prefs})
}

// listSavedJobsHandler returns a user's bookmarked jobs
func (s *Server) listSavedJobsHandler(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.users.GetSavedJobs(r.Context(), r.PathValue("id"))
	if err != nil {
		lgr.Printf("[ERROR] failed to get saved jobs: %v", err)
		renderError(w, r, fmt.Errorf("failed to get saved jobs"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"jobs": toJobResponses(jobs)})
}

// saveJobHandler bookmarks a job for a user
func (s *Server) saveJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(r.PathValue("jobID"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid job ID"), http.StatusBadRequest)
		return
	}

	if err := s.users.SaveJob(r.Context(), r.PathValue("id"), jobID); err != nil {
		lgr.Printf("[ERROR] failed to save job: %v", err)
		renderError(w, r, fmt.Errorf("failed to save job"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, map[string]string{"status": "saved"})
}

// removeSavedJobHandler removes a bookmark
func (s *Server) removeSavedJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseInt(r.PathValue("jobID"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid job ID"), http.StatusBadRequest)
		return
	}

	if err := s.users.RemoveSavedJob(r.Context(), r.PathValue("id"), jobID); err != nil {
		lgr.Printf("[ERROR] failed to remove saved job: %v", err)
		renderError(w, r, fmt.Errorf("failed to remove saved job"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"status": "removed"})
}

// jobResponse is the wire shape of a job posting
type jobResponse struct {
	ID           int64   `json:"id"`
	URL          string  `json:"url"`
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Location     string  `json:"location,omitempty"`
	SalaryMin    int64   `json:"salary_min,omitempty"`
	SalaryMax    int64   `json:"salary_max,omitempty"`
	Currency     string  `json:"currency"`
	JobType      string  `json:"job_type"`
	Source       string  `json:"source"`
	QualityScore float64 `json:"quality_score"`
	GhostScore   float64 `json:"ghost_score"`
	PostedAt     string  `json:"posted_at"`
}

func toJobResponse(job *domain.Job) jobResponse {
	return jobResponse{
		ID:           job.ID,
		URL:          job.URL,
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		SalaryMin:    job.SalaryMin,
		SalaryMax:    job.SalaryMax,
		Currency:     job.Currency,
		JobType:      job.JobType,
		Source:       job.Source,
		QualityScore: job.QualityScore,
		GhostScore:   job.GhostScore,
		PostedAt:     job.PostedAt.Format("2006-01-02"),
	}
}

func toJobResponses(jobs []*domain.Job) []jobResponse {
	out := make([]jobResponse, len(jobs))
	for i, job := range jobs {
		out[i] = toJobResponse(job)
	}
	return out
}
