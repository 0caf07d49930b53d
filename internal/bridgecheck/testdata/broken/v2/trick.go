// Package semvertrick is the new layout used by the broken-bridge fixture.
package semvertrick

type Unchanged struct{}

type Added struct{}
