package domain

import "fmt"

// UsageError is returned when a trip command is not exactly two tokens.
type UsageError struct {
	Text string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: expected <from> <to>, got %q", e.Text)
}

// StationNotFoundError means the station search succeeded but returned nothing.
type StationNotFoundError struct {
	Name string
}

func (e *StationNotFoundError) Error() string {
	return fmt.Sprintf("station %q not found", e.Name)
}

// StationLookupError means the station search itself failed.
type StationLookupError struct {
	Name string
	Err  error
}

func (e *StationLookupError) Error() string {
	return fmt.Sprintf("station lookup %q: %v", e.Name, e.Err)
}

func (e *StationLookupError) Unwrap() error { return e.Err }

// TripRetrievalError carries the user-facing station names, not site ids.
type TripRetrievalError struct {
	From string
	To   string
	Err  error
}

func (e *TripRetrievalError) Error() string {
	return fmt.Sprintf("list trips %q -> %q: %v", e.From, e.To, e.Err)
}

func (e *TripRetrievalError) Unwrap() error { return e.Err }
