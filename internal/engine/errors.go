package engine

import "errors"

// Reason is the stable code attached to every rejected action.
type Reason string

const (
	ReasonNoAP                 Reason = "NoAP"
	ReasonNoHero               Reason = "NoHero"
	ReasonInvalidSlot          Reason = "InvalidSlot"
	ReasonSlotOccupied         Reason = "SlotOccupied"
	ReasonTargetRequired       Reason = "TargetRequired"
	ReasonAlreadyUsedThisRound Reason = "AlreadyUsedThisRound"
	ReasonUnsupportedAction    Reason = "UnsupportedAction"
	ReasonNoSupportAction      Reason = "NoSupportAction"
	ReasonInvalid              Reason = "Invalid"
	ReasonNoTarget             Reason = "NoTarget"
	ReasonAlreadyUsed          Reason = "AlreadyUsed"
	ReasonOnCooldown           Reason = "OnCooldown"
)

// Failure is a recoverable rejection of a player action. A rejected action
// leaves the encounter state untouched.
type Failure struct {
	Reason Reason
	msg    string
	parent *Failure
}

func (f *Failure) Error() string { return f.msg }

// Unwrap exposes the broader failure a specific one refines, if any.
func (f *Failure) Unwrap() error {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

var (
	ErrNoAP                 = &Failure{Reason: ReasonNoAP, msg: "not enough action points"}
	ErrNoHero               = &Failure{Reason: ReasonNoHero, msg: "no hero in slot"}
	ErrInvalidSlot          = &Failure{Reason: ReasonInvalidSlot, msg: "invalid slot"}
	ErrSlotOccupied         = &Failure{Reason: ReasonSlotOccupied, msg: "slot occupied"}
	ErrTargetRequired       = &Failure{Reason: ReasonTargetRequired, msg: "a valid target is required"}
	ErrAlreadyUsedThisRound = &Failure{Reason: ReasonAlreadyUsedThisRound, msg: "support already used this round"}
	ErrUnsupportedAction    = &Failure{Reason: ReasonUnsupportedAction, msg: "unsupported action"}
	ErrNoSupportAction      = &Failure{Reason: ReasonNoSupportAction, msg: "hero has no support action", parent: ErrUnsupportedAction}
	ErrInvalid              = &Failure{Reason: ReasonInvalid, msg: "invalid summon"}
	ErrNoTarget             = &Failure{Reason: ReasonNoTarget, msg: "no valid target"}
	ErrAlreadyUsed          = &Failure{Reason: ReasonAlreadyUsed, msg: "summon already used"}
	ErrOnCooldown           = &Failure{Reason: ReasonOnCooldown, msg: "summon on cooldown"}
)

// ReasonOf returns the failure reason carried by err, or "" when err is not
// an engine failure.
func ReasonOf(err error) Reason {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return ""
}
