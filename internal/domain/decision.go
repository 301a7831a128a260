package domain

import "strings"

// Decision represents the diagnostic decision signal produced upstream
type Decision string

const (
	DecisionBatteryIssue   Decision = "BATTERY ISSUE"
	DecisionEngineIssue    Decision = "ENGINE ISSUE"
	DecisionMaintenanceDue Decision = "MAINTENANCE DUE"
	DecisionNoService      Decision = "NO SERVICE"
)

// ParseDecision normalizes the signal and reports whether it is known
func ParseDecision(s string) (Decision, bool) {
	d := Decision(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case DecisionBatteryIssue, DecisionEngineIssue, DecisionMaintenanceDue, DecisionNoService:
		return d, true
	}
	return "", false
}

// RequiresService returns true if the decision should lead to a booking attempt
func (d Decision) RequiresService() bool {
	switch d {
	case DecisionBatteryIssue, DecisionEngineIssue, DecisionMaintenanceDue:
		return true
	}
	return false
}

// Reason returns the lower-case phrase used in customer messages
func (d Decision) Reason() string {
	return strings.ToLower(string(d))
}
