package task

// Collection is an explicitly owned task list. The CLI holds exactly one
// and reconciles server responses into it: full replacement after list
// calls and bulk operations, single-entry replacement by ID after
// confirmed per-task mutations. Collection is not safe for concurrent
// use; callers follow a single-writer discipline.
type Collection struct {
	tasks []Task
}

// NewCollection returns a collection holding the given tasks.
func NewCollection(tasks []Task) *Collection {
	return &Collection{tasks: append([]Task(nil), tasks...)}
}

// All returns a copy of the collection's tasks.
func (c *Collection) All() []Task {
	return append([]Task(nil), c.tasks...)
}

// Len returns the number of tasks in the collection.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// Get returns the task with the given ID.
func (c *Collection) Get(id string) (Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// ReplaceAll replaces the entire collection with a fresh server snapshot.
func (c *Collection) ReplaceAll(tasks []Task) {
	c.tasks = append([]Task(nil), tasks...)
}

// Upsert replaces the matching entry by ID, or appends the task if no
// entry matches.
func (c *Collection) Upsert(t Task) {
	for i := range c.tasks {
		if c.tasks[i].ID == t.ID {
			c.tasks[i] = t
			return
		}
	}
	c.tasks = append(c.tasks, t)
}

// Remove deletes the entry with the given ID. Returns ErrTaskNotFound if
// no entry matches.
func (c *Collection) Remove(id string) error {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return nil
		}
	}
	return ErrTaskNotFound
}
