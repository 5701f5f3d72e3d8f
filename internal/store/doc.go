// Package store defines interfaces for card persistence operations and an
// in-memory implementation of them. The interfaces abstract the underlying
// storage mechanism from the scheduling engine, which only ever reads a
// snapshot of the collection and writes back scheduling state.
package store
