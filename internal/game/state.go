// Package game provides the session rules and the main game loop.
package game

// State represents the current session state.
type State int

const (
	// StatePlaying is the only state in which moves have an effect.
	StatePlaying State = iota
	// StateLost is reached when the last life is spent.
	StateLost
	// StateWon is reached when the player steps on the key.
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// IsTerminal returns true once the session has been decided.
func (s State) IsTerminal() bool {
	return s == StateLost || s == StateWon
}

// Event describes the outcome of a single move.
type Event int

const (
	// EventNone means the move was ignored because the session is over.
	EventNone Event = iota
	// EventBlocked means the player did not move (edge of grid or wall).
	EventBlocked
	// EventMoved means the player stepped onto a new cell.
	EventMoved
	// EventFell means a hazard cost a life and the player was sent back to start.
	EventFell
	// EventTeleported means a portal relocated the player.
	EventTeleported
	// EventLost means the last life was spent.
	EventLost
	// EventWon means the player reached the key.
	EventWon
)

// String returns a human-readable event name.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventBlocked:
		return "blocked"
	case EventMoved:
		return "moved"
	case EventFell:
		return "fell"
	case EventTeleported:
		return "teleported"
	case EventLost:
		return "lost"
	case EventWon:
		return "won"
	default:
		return "unknown"
	}
}

// Notice is a message shown to the player above the map.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeFell
	NoticeTeleported
	NoticeRegenerated
	NoticeWon
	NoticeLost
)

// Key returns the translation key of the notice, or "" for NoticeNone.
func (n Notice) Key() string {
	switch n {
	case NoticeFell:
		return "NOTICE_FELL"
	case NoticeTeleported:
		return "NOTICE_TELEPORTED"
	case NoticeRegenerated:
		return "NOTICE_REGENERATED"
	case NoticeWon:
		return "NOTICE_WON"
	case NoticeLost:
		return "NOTICE_LOST"
	default:
		return ""
	}
}
