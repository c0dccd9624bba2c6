// Package contact extracts email, phone, LinkedIn, and GitHub details from
// resume text using ordered pattern tables.
package contact

import (
	"regexp"
	"strings"
)

// Info holds whatever contact fields were found. Absent fields are empty.
type Info struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// fieldPattern pairs a regex with an optional validator. Patterns within a
// field are tried in order and the first validated match wins.
type fieldPattern struct {
	re       *regexp.Regexp
	validate func(string) bool
}

var emailPatterns = []fieldPattern{
	{re: regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9._-]+\.[a-zA-Z0-9_-]+`), validate: validEmail},
}

var phonePatterns = []fieldPattern{
	// +1 (555) 123-4567 and close variants.
	{re: regexp.MustCompile(`\+?\d{1,3}[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`), validate: validPhone},
	// (555) 123-4567 or 555-123-4567.
	{re: regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`), validate: validPhone},
	// +44 20 7123 4567.
	{re: regexp.MustCompile(`\+\d{1,3}\s?\d{2,4}\s?\d{4}\s?\d{4}`), validate: validPhone},
	// 555.123.4567.
	{re: regexp.MustCompile(`\d{3}[.-]\d{3}[.-]\d{4}`), validate: validPhone},
}

var linkedinPatterns = []fieldPattern{
	{re: regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/in/[a-zA-Z0-9_-]+`)},
	{re: regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9_-]+`)},
	{re: regexp.MustCompile(`(?i)linkedin[:\s]+/?[a-zA-Z0-9_-]+`)},
}

var githubPatterns = []fieldPattern{
	{re: regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/[a-zA-Z0-9_-]+`)},
	{re: regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9_-]+`)},
	{re: regexp.MustCompile(`(?i)github[:\s]+/?[a-zA-Z0-9_-]+`)},
}

var (
	emailJunk    = strings.NewReplacer("<", "", ">", "", "(", "", ")", "", "[", "", "]", "", "{", "", "}", "")
	nonDigitRe   = regexp.MustCompile(`\D`)
	trailingWord = regexp.MustCompile(`[a-zA-Z0-9_-]+$`)
)

// Extract scans text for the four contact fields. Each field takes the first
// match of the first pattern that produces a valid value; later occurrences
// are ignored.
func Extract(text string) Info {
	return Info{
		Email:    firstMatch(text, emailPatterns, cleanEmail),
		Phone:    firstMatch(text, phonePatterns, strings.TrimSpace),
		LinkedIn: firstMatch(text, linkedinPatterns, normalizeLinkedIn),
		GitHub:   firstMatch(text, githubPatterns, normalizeGitHub),
	}
}

func firstMatch(text string, patterns []fieldPattern, clean func(string) string) string {
	for _, p := range patterns {
		m := p.re.FindString(text)
		if m == "" {
			continue
		}
		v := clean(m)
		if p.validate != nil && !p.validate(v) {
			continue
		}
		return v
	}
	return ""
}

func cleanEmail(s string) string {
	return strings.TrimSpace(emailJunk.Replace(s))
}

func validEmail(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".") && len(s) > 5
}

// validPhone accepts 10 to 15 digits, covering national numbers up to the
// E.164 maximum.
func validPhone(s string) bool {
	n := len(nonDigitRe.ReplaceAllString(s, ""))
	return n >= 10 && n <= 15
}

func normalizeLinkedIn(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "http"):
		return s
	case strings.Contains(lower, "linkedin.com/in/"):
		return "https://" + s
	default:
		// A "LinkedIn: username" mention. Rebuild the canonical URL.
		if u := trailingWord.FindString(s); u != "" {
			return "https://linkedin.com/in/" + u
		}
		return s
	}
}

func normalizeGitHub(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "http"):
		return s
	case strings.Contains(lower, "github.com/"):
		return "https://" + s
	default:
		if u := trailingWord.FindString(s); u != "" {
			return "https://github.com/" + u
		}
		return s
	}
}
