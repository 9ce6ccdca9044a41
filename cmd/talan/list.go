package main

import (
	"fmt"
	"slices"
	"strings"
)

// job is a crafting class.
type job string

var jobs = []job{
	"Carpenter",
	"Blacksmith",
	"Armorer",
	"Goldsmith",
	"Leatherworker",
	"Weaver",
	"Alchemist",
	"Culinarian",
}

type entry struct {
	job  job
	item string
	done bool
}

func (e entry) String() string {
	return fmt.Sprintf("%s (%s)", e.item, e.job)
}

// craftList keeps open tasks before finished ones, each group in the order
// it was added.
type craftList struct {
	entries []entry
}

// add appends a task. Blank item names and exact duplicates of an open
// task are ignored.
func (l *craftList) add(j job, item string) bool {
	item = strings.TrimSpace(item)
	if item == "" {
		return false
	}
	dup := slices.ContainsFunc(l.entries, func(e entry) bool {
		return !e.done && e.job == j && strings.EqualFold(e.item, item)
	})
	if dup {
		return false
	}
	l.entries = append(l.entries, entry{job: j, item: item})
	l.sort()
	return true
}

func (l *craftList) remove(i int) {
	if i >= 0 && i < len(l.entries) {
		l.entries = slices.Delete(l.entries, i, i+1)
	}
}

func (l *craftList) sort() {
	slices.SortStableFunc(l.entries, func(a, b entry) int {
		switch {
		case a.done == b.done:
			return 0
		case a.done:
			return 1
		default:
			return -1
		}
	})
}

// filter selects which tasks the list shows.
type filter int

const (
	showAll filter = iota
	showOpen
	showDone
)

var filterNames = []string{"All", "Open", "Done"}

func (f filter) match(e entry) bool {
	switch f {
	case showOpen:
		return !e.done
	case showDone:
		return e.done
	default:
		return true
	}
}

func (l *craftList) len() int {
	return len(l.entries)
}

// progress returns the finished fraction, 0 for an empty list.
func (l *craftList) progress() float32 {
	if len(l.entries) == 0 {
		return 0
	}
	done := 0
	for _, e := range l.entries {
		if e.done {
			done++
		}
	}
	return float32(done) / float32(len(l.entries))
}
