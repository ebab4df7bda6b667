package task

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeGateway applies bulk transitions to an in-memory store the way the
// server would, using the same classification rules.
type fakeGateway struct {
	tasks   []Task
	now     time.Time
	listErr error
	opErr   error

	blocked chan struct{} // when set, List blocks until closed
}

func (g *fakeGateway) List(ctx context.Context) ([]Task, error) {
	if g.blocked != nil {
		<-g.blocked
	}
	if g.listErr != nil {
		return nil, g.listErr
	}
	var active []Task
	for _, t := range g.tasks {
		if !t.Deleted() {
			active = append(active, t)
		}
	}
	return active, nil
}

func (g *fakeGateway) CompleteAllOld(ctx context.Context) (int, error) {
	if g.opErr != nil {
		return 0, g.opErr
	}
	count := 0
	for i := range g.tasks {
		if IsOld(g.tasks[i], g.now) && !g.tasks[i].Completed && !g.tasks[i].Deleted() {
			g.tasks[i].Completed = true
			count++
		}
	}
	return count, nil
}

func (g *fakeGateway) DeleteAllOld(ctx context.Context) (int, error) {
	if g.opErr != nil {
		return 0, g.opErr
	}
	count := 0
	for i := range g.tasks {
		if IsOld(g.tasks[i], g.now) && !g.tasks[i].Deleted() {
			deletedAt := g.now
			g.tasks[i].DeletedAt = &deletedAt
			count++
		}
	}
	return count, nil
}

func (g *fakeGateway) DeleteCompletedOld(ctx context.Context) (int, error) {
	if g.opErr != nil {
		return 0, g.opErr
	}
	count := 0
	for i := range g.tasks {
		if IsOld(g.tasks[i], g.now) && g.tasks[i].Completed && !g.tasks[i].Deleted() {
			deletedAt := g.now
			g.tasks[i].DeletedAt = &deletedAt
			count++
		}
	}
	return count, nil
}

func bulkFixture() *fakeGateway {
	old := testNow.Add(-72 * time.Hour)
	fresh := testNow.Add(-time.Hour)
	return &fakeGateway{
		now: testNow,
		tasks: []Task{
			{ID: "old-1", Title: "old incomplete", CreatedAt: old},
			{ID: "old-2", Title: "old incomplete too", CreatedAt: old},
			{ID: "old-done", Title: "old completed", CreatedAt: old, Completed: true},
			{ID: "new-1", Title: "created today", CreatedAt: fresh},
			{ID: "new-2", Title: "also today", CreatedAt: fresh, Completed: true},
		},
	}
}

func TestBulk_CompleteAllOld(t *testing.T) {
	gateway := bulkFixture()
	bulk := NewBulk(gateway)

	result, err := bulk.CompleteAllOld(context.Background())
	if err != nil {
		t.Fatalf("CompleteAllOld() error = %v", err)
	}
	if result.Count != 2 {
		t.Errorf("Count = %d, want 2", result.Count)
	}

	// Exactly the two old incomplete tasks flip, nothing else changes.
	byID := make(map[string]Task)
	for _, item := range result.Tasks {
		byID[item.ID] = item
	}
	for _, id := range []string{"old-1", "old-2", "old-done", "new-2"} {
		if !byID[id].Completed {
			t.Errorf("task %s should be completed", id)
		}
	}
	if byID["new-1"].Completed {
		t.Error("task new-1 was not old and should remain incomplete")
	}
	if len(result.Tasks) != 5 {
		t.Errorf("refreshed collection has %d tasks, want 5", len(result.Tasks))
	}
}

func TestBulk_DeleteAllOld(t *testing.T) {
	gateway := bulkFixture()
	bulk := NewBulk(gateway)

	result, err := bulk.DeleteAllOld(context.Background())
	if err != nil {
		t.Fatalf("DeleteAllOld() error = %v", err)
	}
	if result.Count != 3 {
		t.Errorf("Count = %d, want 3", result.Count)
	}
	if len(result.Tasks) != 2 {
		t.Errorf("refreshed collection = %v, want the two fresh tasks", ids(result.Tasks))
	}
}

func TestBulk_DeleteCompletedOld(t *testing.T) {
	gateway := bulkFixture()
	bulk := NewBulk(gateway)

	result, err := bulk.DeleteCompletedOld(context.Background())
	if err != nil {
		t.Fatalf("DeleteCompletedOld() error = %v", err)
	}
	if result.Count != 1 {
		t.Errorf("Count = %d, want 1", result.Count)
	}
	for _, item := range result.Tasks {
		if item.ID == "old-done" {
			t.Error("old-done should have been deleted")
		}
	}
	if len(result.Tasks) != 4 {
		t.Errorf("refreshed collection has %d tasks, want 4", len(result.Tasks))
	}
}

func TestBulk_OperationError(t *testing.T) {
	gateway := bulkFixture()
	gateway.opErr = errors.New("server says no")
	bulk := NewBulk(gateway)

	_, err := bulk.CompleteAllOld(context.Background())
	if err == nil || !errors.Is(err, gateway.opErr) {
		t.Fatalf("CompleteAllOld() error = %v, want wrapped server error", err)
	}
}

func TestBulk_RefreshError(t *testing.T) {
	gateway := bulkFixture()
	gateway.listErr = errors.New("network down")
	bulk := NewBulk(gateway)

	_, err := bulk.DeleteAllOld(context.Background())
	if err == nil || !errors.Is(err, gateway.listErr) {
		t.Fatalf("DeleteAllOld() error = %v, want wrapped refresh error", err)
	}
}

func TestBulk_InFlightGuard(t *testing.T) {
	gateway := bulkFixture()
	gateway.blocked = make(chan struct{})
	bulk := NewBulk(gateway)

	started := make(chan struct{})
	done := make(chan struct{})
	go func() {
		close(started)
		bulk.CompleteAllOld(context.Background())
		close(done)
	}()

	<-started
	// Give the first call time to reach the blocked List.
	time.Sleep(10 * time.Millisecond)

	if _, err := bulk.DeleteAllOld(context.Background()); !errors.Is(err, ErrBulkInFlight) {
		t.Errorf("second bulk call error = %v, want ErrBulkInFlight", err)
	}

	close(gateway.blocked)
	<-done

	// Once the first call completes, bulk operations are allowed again.
	if _, err := bulk.DeleteCompletedOld(context.Background()); err != nil {
		t.Errorf("bulk call after release error = %v", err)
	}
}

func TestBulkCounts(t *testing.T) {
	gateway := bulkFixture()
	tasks := gateway.tasks

	if got := CompleteAllOldCount(tasks, testNow); got != 2 {
		t.Errorf("CompleteAllOldCount = %d, want 2", got)
	}
	if got := DeleteAllOldCount(tasks, testNow); got != 3 {
		t.Errorf("DeleteAllOldCount = %d, want 3", got)
	}
	if got := DeleteCompletedOldCount(tasks, testNow); got != 1 {
		t.Errorf("DeleteCompletedOldCount = %d, want 1", got)
	}
}
