package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/amonks/daytask/api"
	"github.com/amonks/daytask/task"
)

// resolveTaskID expands an ID prefix to a full task ID, checking active
// tasks first and then the recoverable deleted ones.
func resolveTaskID(ctx context.Context, client *api.Client, prefix string) (string, error) {
	snapshot, err := fetchSnapshot(ctx, client)
	if err != nil {
		return "", err
	}
	return matchTaskID(snapshot.All(), prefix)
}

// fetchSnapshot pulls the active and recoverable tasks into one
// collection.
func fetchSnapshot(ctx context.Context, client *api.Client) (*task.Collection, error) {
	active, err := client.List(ctx)
	if err != nil {
		return nil, err
	}
	deleted, err := client.ListDeleted(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := task.NewCollection(active)
	for _, t := range deleted {
		snapshot.Upsert(t)
	}
	return snapshot, nil
}

func matchTaskID(tasks []task.Task, prefix string) (string, error) {
	needle := strings.ToLower(prefix)
	var matches []string
	for _, t := range tasks {
		id := strings.ToLower(t.ID)
		if id == needle {
			return t.ID, nil
		}
		if strings.HasPrefix(id, needle) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no task matches %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("ambiguous ID %q matches %s", prefix, strings.Join(matches, ", "))
	}
}
