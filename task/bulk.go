package task

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Gateway is the remote collaborator surface the bulk coordinator needs.
// The server applies each bulk transition atomically; the client never
// patches individual entries after one.
type Gateway interface {
	// List returns the full active task collection.
	List(ctx context.Context) ([]Task, error)

	// CompleteAllOld marks every old incomplete task completed and
	// returns how many tasks changed.
	CompleteAllOld(ctx context.Context) (int, error)

	// DeleteAllOld soft-deletes every old task and returns how many
	// tasks changed.
	DeleteAllOld(ctx context.Context) (int, error)

	// DeleteCompletedOld soft-deletes every old completed task and
	// returns how many tasks changed.
	DeleteCompletedOld(ctx context.Context) (int, error)
}

// BulkResult is the outcome of a bulk transition: the server's affected
// count and the refreshed full collection that replaces local state.
type BulkResult struct {
	Count int
	Tasks []Task
}

// Bulk applies lifecycle transitions to the whole "old" bucket at once.
// Each operation issues the matching server command and then refetches the
// full collection rather than patching entries, so local state either
// reflects the confirmed outcome or is untouched. Only one bulk operation
// may run at a time.
type Bulk struct {
	gateway Gateway

	mu   sync.Mutex
	busy bool
}

// NewBulk returns a bulk coordinator backed by the given gateway.
func NewBulk(gateway Gateway) *Bulk {
	return &Bulk{gateway: gateway}
}

// CompleteAllOld marks every old incomplete task as completed.
func (b *Bulk) CompleteAllOld(ctx context.Context) (*BulkResult, error) {
	return b.run(ctx, "complete old tasks", b.gateway.CompleteAllOld)
}

// DeleteAllOld soft-deletes every old task regardless of completion.
func (b *Bulk) DeleteAllOld(ctx context.Context) (*BulkResult, error) {
	return b.run(ctx, "delete old tasks", b.gateway.DeleteAllOld)
}

// DeleteCompletedOld soft-deletes only the old completed tasks.
func (b *Bulk) DeleteCompletedOld(ctx context.Context) (*BulkResult, error) {
	return b.run(ctx, "delete completed old tasks", b.gateway.DeleteCompletedOld)
}

func (b *Bulk) run(ctx context.Context, what string, op func(context.Context) (int, error)) (*BulkResult, error) {
	if err := b.acquire(); err != nil {
		return nil, err
	}
	defer b.release()

	count, err := op(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	tasks, err := b.gateway.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh tasks after %s: %w", what, err)
	}

	return &BulkResult{Count: count, Tasks: tasks}, nil
}

func (b *Bulk) acquire() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.busy {
		return ErrBulkInFlight
	}
	b.busy = true
	return nil
}

func (b *Bulk) release() {
	b.mu.Lock()
	b.busy = false
	b.mu.Unlock()
}

// CompleteAllOldCount returns how many tasks CompleteAllOld would touch:
// the old incomplete subset. Used for confirmation prompts.
func CompleteAllOldCount(tasks []Task, now time.Time) int {
	count := 0
	for _, t := range Partition(tasks, now).Old {
		if !t.Completed {
			count++
		}
	}
	return count
}

// DeleteAllOldCount returns how many tasks DeleteAllOld would touch: the
// whole old bucket.
func DeleteAllOldCount(tasks []Task, now time.Time) int {
	return len(Partition(tasks, now).Old)
}

// DeleteCompletedOldCount returns how many tasks DeleteCompletedOld would
// touch: the old completed subset.
func DeleteCompletedOldCount(tasks []Task, now time.Time) int {
	count := 0
	for _, t := range Partition(tasks, now).Old {
		if t.Completed {
			count++
		}
	}
	return count
}
