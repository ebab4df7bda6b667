package task

// Priority represents the importance level of a task.
type Priority string

const (
	// PriorityLow is the lowest importance level.
	PriorityLow Priority = "low"

	// PriorityMedium is the default importance level.
	PriorityMedium Priority = "medium"

	// PriorityHigh is the highest importance level.
	PriorityHigh Priority = "high"
)

// ValidPriorities returns all valid priority values.
func ValidPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range ValidPriorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Rank returns the sort rank for a priority. Lower ranks sort first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Uncategorized is the label tasks without a category are grouped under.
const Uncategorized = "Uncategorized"

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
