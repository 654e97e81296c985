// Copyright (C) 2026  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

// Package task runs named targets, in the Makefile sense: each target is a
// unit of work with declared prerequisites that must complete before the
// target itself runs.
package task

import (
	"context"
	"fmt"

	"github.com/datawire/dlib/dlog"
)

// A Target is a named unit of work.  Deps names the targets that must
// complete successfully before Run is called.
type Target struct {
	Name string
	Deps []string
	Run  func(ctx context.Context) error
}

// A Set is a validated collection of targets.  Construct one with NewSet;
// the zero value is not useful.
type Set struct {
	targets map[string]*Target
}

// NewSet validates the targets and returns a Set.  It rejects empty or
// duplicate target names, prerequisites that name an unknown target, and
// dependency cycles.
func NewSet(targets ...*Target) (*Set, error) {
	set := &Set{
		targets: make(map[string]*Target, len(targets)),
	}
	for _, target := range targets {
		if target.Name == "" {
			return nil, fmt.Errorf("task: target with empty name")
		}
		if _, exists := set.targets[target.Name]; exists {
			return nil, fmt.Errorf("task: duplicate target %q", target.Name)
		}
		set.targets[target.Name] = target
	}
	for _, target := range targets {
		for _, dep := range target.Deps {
			if _, known := set.targets[dep]; !known {
				return nil, fmt.Errorf("task: target %q depends on unknown target %q",
					target.Name, dep)
			}
		}
	}
	// Cycle check; visiting in the order given keeps error messages stable.
	state := make(map[string]int, len(targets)) // 0=unseen 1=on-stack 2=done
	for _, target := range targets {
		if err := set.cycleCheck(target.Name, state); err != nil {
			return nil, err
		}
	}
	return set, nil
}

func (s *Set) cycleCheck(name string, state map[string]int) error {
	switch state[name] {
	case 1:
		return fmt.Errorf("task: dependency cycle through target %q", name)
	case 2:
		return nil
	}
	state[name] = 1
	for _, dep := range s.targets[name].Deps {
		if err := s.cycleCheck(dep, state); err != nil {
			return err
		}
	}
	state[name] = 2
	return nil
}

// Run executes the named target, running its prerequisites first.  Targets
// run serially, each at most once per Run call; the first error aborts
// everything downstream of it.
func (s *Set) Run(ctx context.Context, name string) error {
	if _, known := s.targets[name]; !known {
		return fmt.Errorf("task: no such target %q", name)
	}
	return s.run(ctx, name, make(map[string]bool))
}

func (s *Set) run(ctx context.Context, name string, done map[string]bool) error {
	if done[name] {
		return nil
	}
	target := s.targets[name]
	for _, dep := range target.Deps {
		if err := s.run(ctx, dep, done); err != nil {
			return err
		}
	}
	dlog.Infof(ctx, "=> %s", name)
	if target.Run != nil {
		if err := target.Run(ctx); err != nil {
			return fmt.Errorf("target %s: %w", name, err)
		}
	}
	done[name] = true
	return nil
}
