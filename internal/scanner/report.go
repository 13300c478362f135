package scanner

import (
	"fmt"
	"strings"

	"github.com/rchan/rchan/internal/common/output"
)

// FormatResult renders one per-package status line.
func FormatResult(r Result) string {
	switch r.Status {
	case StatusUpdated:
		return fmt.Sprintf("%s %s %s -> %s",
			output.Sprint(output.Updated, "UPDATED"),
			output.Sprint(output.Package, r.Name),
			output.Sprint(output.Dim, r.LocalVersion),
			output.Sprint(output.Success, r.RemoteVersion))
	case StatusUpToDate:
		return fmt.Sprintf("%s %s (%s)",
			output.Sprint(output.UpToDate, "OK"),
			r.Name,
			output.Sprint(output.Dim, r.LocalVersion))
	default:
		return fmt.Sprintf("%s %s - %s",
			output.Sprint(output.Failed, "ERROR"),
			r.Name,
			r.Message)
	}
}

// FormatReport renders all per-package lines followed by a summary.
func FormatReport(results []Result) string {
	var sb strings.Builder

	for _, r := range results {
		sb.WriteString(FormatResult(r))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(FormatSummary(results))
	sb.WriteString("\n")

	return sb.String()
}

// FormatSummary renders the closing tally line.
func FormatSummary(results []Result) string {
	var updated, upToDate, failed int
	for _, r := range results {
		switch r.Status {
		case StatusUpdated:
			updated++
		case StatusUpToDate:
			upToDate++
		case StatusFailed:
			failed++
		}
	}

	return fmt.Sprintf("%s: %d checked, %s updated, %s up-to-date, %s errors",
		output.Sprint(output.Header, "Summary"),
		len(results),
		output.Sprint(output.Success, fmt.Sprintf("%d", updated)),
		output.Sprint(output.UpToDate, fmt.Sprintf("%d", upToDate)),
		output.Sprint(output.Error, fmt.Sprintf("%d", failed)))
}
