package classifier

import (
	"strings"

	"logsense/internal/model"
)

// severityRules is evaluated in order of decreasing severity; the first
// band with a keyword hit wins.
var severityRules = []struct {
	Severity model.Severity
	Keywords []string
}{
	{model.SeverityCritical, []string{
		"fatal", "panic", "critical", "segfault", "core dump",
		"out of memory", "data loss", "outage",
	}},
	{model.SeverityError, []string{
		"exception", "error", "traceback", "stack trace", "fail",
		"crash", "refused",
	}},
	{model.SeverityWarning, []string{
		"warn", "deprecated", "timeout", "slow", "leak", "retry",
	}},
}

// AssessSeverity guesses how severe the submitted text is. The result is
// advisory output for the caller and never feeds model selection.
func (c *Classifier) AssessSeverity(text string) model.Severity {
	lower := strings.ToLower(text)

	for _, band := range severityRules {
		for _, kw := range band.Keywords {
			if strings.Contains(lower, kw) {
				return band.Severity
			}
		}
	}

	return model.SeverityInfo
}
