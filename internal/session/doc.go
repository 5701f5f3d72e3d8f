// Package session drives a single study session: it selects and orders the
// cards to review, then steps through them as an explicit state machine
// (reveal, grade, advance) that invokes the srs scheduler on every graded
// card. A Session is not safe for concurrent use; the caller serializes
// access and owns persistence of the updated scheduling state.
package session
