package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jobiq/jobiq/pkg/domain"
)

const (
	maxTitleLen   = 500
	maxCompanyLen = 255
	maxURLLen     = 2000

	fullTimeHoursPerYear = 2080 // used to annualize hourly rates
)

var (
	salaryRangeRe  = regexp.MustCompile(`(?i)\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?)\s*k?\s*(?:-|–|to)\s*\$?\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?)\s*(k)?`)
	salarySingleRe = regexp.MustCompile(`(?i)\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?)\s*(k)?`)
	relativeAgoRe  = regexp.MustCompile(`(?i)(\d+)\s*(minute|hour|day|week|month)s?\s+ago`)

	stripTags = bluemonday.StrictPolicy()
)

// Normalize converts a parsed posting into a storable job. Best effort:
// missing fields stay at their zero values, never an error.
func Normalize(p ParsedPosting, source string, now time.Time) *domain.Job {
	title, company := splitTitleCompany(p.Title)
	if p.Author != "" {
		company = p.Author
	}
	if company == "" {
		company = source
	}

	plain := stripTags.Sanitize(p.Description)
	plain = strings.TrimSpace(plain)

	job := &domain.Job{
		URL:         truncate(p.Link, maxURLLen),
		Title:       truncate(strings.TrimSpace(title), maxTitleLen),
		Company:     truncate(strings.TrimSpace(company), maxCompanyLen),
		Description: plain,
		Currency:    "USD",
		JobType:     detectJobType(p.Title + " " + plain),
		Source:      source,
		Active:      true,
		PostedAt:    p.Published,
		FetchedAt:   now,
	}

	job.SalaryMin, job.SalaryMax = parseSalary(plain)

	if job.PostedAt.IsZero() {
		job.PostedAt = parsePostedDate(plain, now)
	}
	if job.PostedAt.IsZero() {
		job.PostedAt = now
	}

	return job
}

// splitTitleCompany handles the common "Senior Engineer at Acme" feed
// title shape. Returns the full title and empty company when the
// pattern is absent.
func splitTitleCompany(title string) (jobTitle, company string) {
	if idx := strings.LastIndex(title, " at "); idx > 0 {
		return title[:idx], title[idx+4:]
	}
	return title, ""
}

// parseSalary extracts an annual salary range from free text. Values
// under 500 are treated as hourly rates and annualized; a trailing "k"
// multiplies by a thousand. Returns zeros when nothing parses.
func parseSalary(text string) (minSalary, maxSalary int64) {
	if m := salaryRangeRe.FindStringSubmatch(text); m != nil {
		lo := parseAmount(m[1], m[3] != "")
		hi := parseAmount(m[2], m[3] != "")
		if lo > 0 && hi >= lo {
			return lo, hi
		}
	}
	if m := salarySingleRe.FindStringSubmatch(text); m != nil {
		v := parseAmount(m[1], m[2] != "")
		if v > 0 {
			return v, v
		}
	}
	return 0, 0
}

func parseAmount(s string, thousands bool) int64 {
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return 0
	}
	if thousands {
		f *= 1000
	}
	if f < 500 { // hourly rate, annualize
		f *= fullTimeHoursPerYear
	}
	return int64(f)
}

// parsePostedDate resolves relative markers like "3 days ago" that job
// boards embed in the posting body. Zero time when nothing matches.
func parsePostedDate(text string, now time.Time) time.Time {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "just posted"), strings.Contains(lower, "posted today"):
		return now
	case strings.Contains(lower, "posted yesterday"):
		return now.AddDate(0, 0, -1)
	}

	m := relativeAgoRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}
	}
	switch strings.ToLower(m[2]) {
	case "minute":
		return now.Add(-time.Duration(n) * time.Minute)
	case "hour":
		return now.Add(-time.Duration(n) * time.Hour)
	case "day":
		return now.AddDate(0, 0, -n)
	case "week":
		return now.AddDate(0, 0, -7*n)
	case "month":
		return now.AddDate(0, -n, 0)
	}
	return time.Time{}
}

// detectJobType maps employment keywords to a canonical type,
// defaulting to full-time
func detectJobType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "freelance"):
		return domain.JobTypeFreelance
	case strings.Contains(lower, "part-time"), strings.Contains(lower, "part time"):
		return domain.JobTypePartTime
	case strings.Contains(lower, "contract"):
		return domain.JobTypeContract
	default:
		return domain.JobTypeFullTime
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
