package action

import "sync/atomic"

// Simple implements the Action interface.
// It models a simple action as a func() which is called on Do.
type Simple struct {
	action  func()
	explain func() string
}

// Do performs this simple action.
func (a *Simple) Do() {
	a.action()
}

// Explain returns the explanation for this simple action's Do member.
func (a *Simple) Explain() string {
	return a.explain()
}

// NewSimple returns a pointer to a new simple action, which stores the given
// action function and the given explainer to use when prompted with Do or
// Explain respectively.
func NewSimple(explainer func() string, action func()) *Simple {
	return &Simple{
		action:  action,
		explain: explainer,
	}
}

// Counted wraps an action and counts how often it was done.
// The count may be read concurrently with Do.
type Counted struct {
	Action
	count atomic.Int64
}

// NewCounted returns a new Counted wrapping the given action.
func NewCounted(a Action) *Counted {
	return &Counted{Action: a}
}

// Do performs the wrapped action and increments the count.
func (c *Counted) Do() {
	c.count.Add(1)
	c.Action.Do()
}

// Count returns how often Do was called.
func (c *Counted) Count() int { return int(c.count.Load()) }
