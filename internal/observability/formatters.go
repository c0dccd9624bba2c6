// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-match-engine/internal/engine"
	"github.com/jonathan/resume-match-engine/internal/fluff"
	"github.com/jonathan/resume-match-engine/internal/saturation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintReport renders the full analysis in reading order.
func (p *Printer) PrintReport(report *engine.Report) {
	if report == nil {
		return
	}
	p.PrintScore(report)
	p.PrintSaturation(&report.Saturation)
	p.PrintImpact(report)
	p.PrintSuggestions(report)
	p.PrintFluff(&report.Fluff)
	p.PrintContact(report)
}

// PrintScore outputs the compatibility score and its sub-scores.
func (p *Printer) PrintScore(report *engine.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Final Score:   %d / 100\n", report.Score.FinalScore))
	sb.WriteString(fmt.Sprintf("Tier:          %s\n", report.Score.Tier))
	sb.WriteString(fmt.Sprintf("Industry:      %s\n", report.Industry))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keyword:       %.1f (weight %.2f)\n", report.Score.KeywordScore, report.Score.Weights.Keyword))
	sb.WriteString(fmt.Sprintf("Format:        %.1f (weight %.2f)\n", report.Score.FormatScore, report.Score.Weights.Format))
	sb.WriteString(fmt.Sprintf("Completeness:  %.1f (weight %.2f)", report.Score.CompletenessScore, report.Score.Weights.Completeness))

	p.printBox("COMPATIBILITY SCORE", sb.String())
}

// PrintSaturation outputs matched and missing keywords with weights.
func (p *Printer) PrintSaturation(result *saturation.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Saturation: %.1f%%  (%d matched, %d missing)\n", result.OverallScore, len(result.Matched), len(result.Missing)))

	if len(result.Matched) > 0 {
		sb.WriteString("\nMatched:\n")
		count := min(len(result.Matched), maxItemsToShow)
		for i := 0; i < count; i++ {
			kw := result.Matched[i]
			sb.WriteString(fmt.Sprintf("  ✓ %s (%.1f, ×%d)\n", kw.Term, kw.Weight, kw.ResumeCount))
		}
		if len(result.Matched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Matched)-maxItemsToShow))
		}
	}

	if len(result.Missing) > 0 {
		sb.WriteString("\nMissing:\n")
		count := min(len(result.Missing), maxItemsToShow)
		for i := 0; i < count; i++ {
			kw := result.Missing[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s (%.1f)\n", kw.Term, kw.Weight))
		}
		if len(result.Missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Missing)-maxItemsToShow))
		}
	}

	p.printBox("KEYWORD SATURATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintImpact outputs bullet quantification metrics.
func (p *Printer) PrintImpact(report *engine.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Bullets:        %d\n", report.Impact.TotalBullets))
	sb.WriteString(fmt.Sprintf("Quantified:     %d\n", report.Impact.QuantifiedBullets))
	sb.WriteString(fmt.Sprintf("Quantification: %.0f%%", report.Impact.QuantificationRate*100))

	p.printBox("IMPACT METRICS", sb.String())
}

// PrintSuggestions outputs ranked missing-keyword suggestions with examples.
func (p *Printer) PrintSuggestions(report *engine.Report) {
	if report == nil || len(report.Suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(report.Suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := report.Suggestions[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, s.Term, s.Category))
		example := s.Example
		if len(example) > 50 {
			example = example[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", example))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(report.Suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", len(report.Suggestions)-maxItemsToShow))
	}

	p.printBox("SUGGESTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintFluff outputs weak-phrase findings, or a clean bill of health.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFluff(report *fluff.Report) {
	if report == nil || len(report.WeakPhrases) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO WEAK PHRASES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fluff score: %d / 100  (severity: %s)\n\n", report.FluffScore, report.Severity))

	count := min(len(report.WeakPhrases), maxItemsToShow)
	for i := 0; i < count; i++ {
		hit := report.WeakPhrases[i]
		sb.WriteString(fmt.Sprintf("⚠ %q ×%d (%s)\n", hit.Phrase, hit.Count, hit.Category))
		replacement := hit.Replacement
		if len(replacement) > 45 {
			replacement = replacement[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("  → %s\n", replacement))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(report.WeakPhrases) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more phrases", len(report.WeakPhrases)-maxItemsToShow))
	}

	p.printBox("WEAK PHRASES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContact outputs extracted contact fields that were found.
func (p *Printer) PrintContact(report *engine.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	if report.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", report.Contact.Email))
	}
	if report.Contact.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", report.Contact.Phone))
	}
	if report.Contact.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", report.Contact.LinkedIn))
	}
	if report.Contact.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:   %s\n", report.Contact.GitHub))
	}
	if sb.Len() == 0 {
		sb.WriteString("No contact information detected")
	}

	p.printBox("CONTACT INFO", strings.TrimSuffix(sb.String(), "\n"))
}
