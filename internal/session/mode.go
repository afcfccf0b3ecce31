package session

// Mode is the single enumerated session mode. At most one mode is active
// at a time, which makes command interception order and mutual
// exclusivity a checkable invariant instead of a pile of booleans.
type Mode int

const (
	ModeNormal Mode = iota

	// ModeDisconnecting marks a session whose teardown runs on the next
	// tick. Queued commands are discarded.
	ModeDisconnecting

	// ModeAwaitingRespawn holds a defeated player until they choose to
	// respawn or disconnect.
	ModeAwaitingRespawn

	// ModePasswordChange routes input through the staged password flow.
	ModePasswordChange

	// ModePendingInput consumes the next command as the message body of
	// a shout or tell issued without one.
	ModePendingInput

	// ModeSleeping rejects everything except a wake command.
	ModeSleeping

	// ModeConverse rewrites bare text as a say command.
	ModeConverse
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDisconnecting:
		return "disconnecting"
	case ModeAwaitingRespawn:
		return "awaiting-respawn"
	case ModePasswordChange:
		return "password-change"
	case ModePendingInput:
		return "pending-input"
	case ModeSleeping:
		return "sleeping"
	case ModeConverse:
		return "converse"
	default:
		return "unknown"
	}
}

// PasswordStage tracks progress through the password-change flow.
type PasswordStage int

const (
	StageCurrent PasswordStage = iota
	StageNew
	StageConfirm
)

// PendingKind selects what a pending-input message body is for.
type PendingKind int

const (
	PendingShout PendingKind = iota
	PendingTell
)

// PendingInput records a communication command awaiting its message.
type PendingInput struct {
	Kind      PendingKind
	Recipient string
}
