// internal/models/event.go
package models

import "strings"

type EventKind string

const (
	KindClockIn   EventKind = "clock-in"
	KindFieldWork EventKind = "field-work"
	KindClockOut  EventKind = "clock-out"
)

// ParseEventKind maps a slash-command type (the command with its leading "/"
// removed) onto an event kind. Comparison is exact: anything outside the three
// known commands is rejected here, before it can reach the ledger.
func ParseEventKind(commandType string) (EventKind, bool) {
	switch EventKind(commandType) {
	case KindClockIn, KindFieldWork, KindClockOut:
		return EventKind(commandType), true
	}
	return "", false
}

// Column returns the ledger column letter holding this kind's time.
func (k EventKind) Column() string {
	switch k {
	case KindClockIn:
		return "D"
	case KindFieldWork:
		return "E"
	case KindClockOut:
		return "F"
	}
	return ""
}

func (k EventKind) Label() string {
	switch k {
	case KindClockIn:
		return "Clock-in"
	case KindFieldWork:
		return "Field work"
	case KindClockOut:
		return "Clock-out"
	}
	return string(k)
}

func (k EventKind) Emoji() string {
	switch k {
	case KindClockIn:
		return "\U0001F3E2" // office building
	case KindFieldWork:
		return "\U0001F697" // car
	case KindClockOut:
		return "\U0001F3E0" // house
	}
	return ""
}

// SlashCommand is the subset of Slack's slash-command form payload the
// backend cares about.
type SlashCommand struct {
	Command  string
	Text     string
	UserID   string
	UserName string
}

// CommandType strips the leading slash marker, e.g. "/clock-in" -> "clock-in".
func (c SlashCommand) CommandType() string {
	return strings.TrimPrefix(c.Command, "/")
}
