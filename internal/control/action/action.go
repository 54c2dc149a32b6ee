// Package action provides the actions run by hat scripts and control keys.
package action

// Action is something that can be done, and explained.
type Action interface {
	// Do performs the action.
	Do()

	// Explain returns a short human-readable description of what Do does.
	Explain() string
}
