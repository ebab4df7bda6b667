package main

import (
	"strings"

	"github.com/amonks/daytask/task"
	"github.com/spf13/pflag"
)

// priorityValue is a pflag.Value that validates priorities at parse
// time, so bad values fail before any request is built.
type priorityValue task.Priority

var _ pflag.Value = (*priorityValue)(nil)

func (p *priorityValue) String() string {
	return string(*p)
}

func (p *priorityValue) Set(value string) error {
	priority := task.Priority(strings.ToLower(value))
	if err := task.ValidatePriority(priority); err != nil {
		return err
	}
	*p = priorityValue(priority)
	return nil
}

func (p *priorityValue) Type() string {
	return "priority"
}
