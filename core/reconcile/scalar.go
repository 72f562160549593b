package reconcile

import (
	"strconv"
	"strings"
)

// CompareScalar reconciles a string attribute. Nil values normalize to "".
func CompareScalar(key, label string, oldValue, newValue *string) AttributeDiff {
	o := deref(oldValue)
	n := deref(newValue)
	return AttributeDiff{
		Key:        key,
		Label:      label,
		OldDisplay: displayOrNone(o),
		NewDisplay: displayOrNone(n),
		Changed:    o != n,
		Kind:       KindScalar,
	}
}

// CompareBool reconciles a yes/no attribute by truthiness.
func CompareBool(key, label string, oldValue, newValue bool) AttributeDiff {
	return AttributeDiff{
		Key:        key,
		Label:      label,
		OldDisplay: yesNo(oldValue),
		NewDisplay: yesNo(newValue),
		Changed:    oldValue != newValue,
		Kind:       KindBoolean,
	}
}

// compareProposedScalar keeps the old value when nothing is proposed.
func compareProposedScalar(key, label, oldValue string, proposal Optional[string]) AttributeDiff {
	newValue := proposal.OrElse(oldValue)
	return CompareScalar(key, label, &oldValue, &newValue)
}

// compareCoordinate reconciles one axis of the coordinates. Numeric proposals
// are re-rendered so "38.90" and 38.9 compare equal.
func compareCoordinate(key, label string, oldValue *float64, proposal Optional[CoordinateText]) AttributeDiff {
	o := formatCoordinate(oldValue)
	if !proposal.Present {
		return CompareScalar(key, label, &o, &o)
	}
	n := strings.TrimSpace(string(proposal.Value))
	if f, err := strconv.ParseFloat(n, 64); err == nil {
		n = formatCoordinate(&f)
	}
	return CompareScalar(key, label, &o, &n)
}

func formatCoordinate(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func displayOrNone(s string) string {
	if s == "" {
		return None
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
