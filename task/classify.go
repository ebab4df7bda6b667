package task

import (
	"sort"
	"time"
)

// Buckets holds the mutually exclusive display groups for a task collection.
// Every task appears in exactly one bucket.
type Buckets struct {
	Today []Task
	Old   []Task
	Other []Task
}

// IsOld reports whether a task's anchor date falls on a calendar day
// strictly before now's calendar day. The comparison uses day boundaries,
// not elapsed time: a task due at 23:59 yesterday is old, a task due at
// 00:01 today is not.
func IsOld(t Task, now time.Time) bool {
	return dayOf(t.AnchorDate()).Before(dayOf(now))
}

// IsToday reports whether a task belongs in the "today" bucket: created on
// now's calendar day, or due today or later. The predicate is deliberately
// permissive and is not the complement of IsOld; tasks matching neither
// fall into the "other" bucket.
func IsToday(t Task, now time.Time) bool {
	if sameDay(t.CreatedAt, now) {
		return true
	}
	if t.DueDate == nil {
		return false
	}
	return !t.DueDate.Before(now) || sameDay(*t.DueDate, now)
}

// Partition splits tasks into today/old/other buckets. Today and old are
// computed by their predicates; other is the remainder by ID, so the three
// buckets are exclusive and exhaustive by construction.
func Partition(tasks []Task, now time.Time) Buckets {
	var buckets Buckets
	claimed := make(map[string]bool, len(tasks))

	for _, t := range tasks {
		if IsToday(t, now) {
			buckets.Today = append(buckets.Today, t)
			claimed[t.ID] = true
		}
	}
	for _, t := range tasks {
		if claimed[t.ID] {
			continue
		}
		if IsOld(t, now) {
			buckets.Old = append(buckets.Old, t)
			claimed[t.ID] = true
		}
	}
	for _, t := range tasks {
		if !claimed[t.ID] {
			buckets.Other = append(buckets.Other, t)
		}
	}

	return buckets
}

// ByCompletion splits tasks into completed and incomplete groups.
func ByCompletion(tasks []Task) (completed, incomplete []Task) {
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}
	return completed, incomplete
}

// CategoryGroup is a category label and its tasks.
type CategoryGroup struct {
	Category string
	Tasks    []Task
}

// ByCategory groups tasks by category, preserving first-seen category
// order. Tasks without a category are grouped under Uncategorized.
func ByCategory(tasks []Task) []CategoryGroup {
	index := make(map[string]int)
	var groups []CategoryGroup

	for _, t := range tasks {
		category := t.Category
		if category == "" {
			category = Uncategorized
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, CategoryGroup{Category: category})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}

	return groups
}

// DateGroup is a calendar day and the tasks anchored to it.
type DateGroup struct {
	Day   time.Time
	Tasks []Task
}

// ByDateBucket groups tasks by the calendar day of their anchor date,
// with groups sorted most recent first.
func ByDateBucket(tasks []Task) []DateGroup {
	index := make(map[time.Time]int)
	var groups []DateGroup

	for _, t := range tasks {
		day := dayOf(t.AnchorDate())
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DateGroup{Day: day})
		}
		groups[i].Tasks = append(groups[i].Tasks, t)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})

	return groups
}

// Overdue returns incomplete tasks whose due date is strictly before now.
// Unlike IsOld this is an instant comparison: a task due earlier today is
// overdue but not old.
func Overdue(tasks []Task, now time.Time) []Task {
	var overdue []Task
	for _, t := range tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}
		if t.DueDate.Before(now) {
			overdue = append(overdue, t)
		}
	}
	return overdue
}

// TaskStats summarizes a task collection.
type TaskStats struct {
	Total          int
	Completed      int
	Pending        int
	Overdue        int
	CompletionRate float64
}

// Stats computes summary statistics for a task collection.
func Stats(tasks []Task, now time.Time) TaskStats {
	completed, pending := ByCompletion(tasks)
	stats := TaskStats{
		Total:     len(tasks),
		Completed: len(completed),
		Pending:   len(pending),
		Overdue:   len(Overdue(tasks, now)),
	}
	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}

// dayOf truncates a time to its local day boundary.
func dayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return dayOf(a).Equal(dayOf(b))
}
