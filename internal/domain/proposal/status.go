package proposal

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Status string

const (
	StatusPending      Status = "pending"
	StatusAccepted     Status = "accepted"
	StatusRejected     Status = "rejected"
	StatusOutbid       Status = "outbid"
	StatusWon          Status = "won"
	StatusAwaitingBank Status = "awaiting_bank"
	StatusBankApproved Status = "bank_approved"
	StatusBankRejected Status = "bank_rejected"
	StatusInWithdrawal Status = "in_withdrawal"
	StatusCompleted    Status = "completed"
)

var AllStatuses = []Status{
	StatusPending, StatusAccepted, StatusRejected, StatusOutbid, StatusWon,
	StatusAwaitingBank, StatusBankApproved, StatusBankRejected, StatusInWithdrawal, StatusCompleted,
}

func ParseStatus(s string) (Status, error) {
	for _, st := range AllStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrInvalidStatus
}

type RefundReason string

const (
	ReasonRejected     RefundReason = "rejected"
	ReasonOutbid       RefundReason = "outbid"
	ReasonBankRejected RefundReason = "bank rejected"
)

// Effect is what a status change implies besides the status write itself.
type Effect struct {
	Refund         bool
	RefundReason   RefundReason
	MarkVehicleWon bool
}

type pair struct{ from, to Status }

var refunds = map[pair]RefundReason{
	{StatusPending, StatusRejected}:          ReasonRejected,
	{StatusAccepted, StatusRejected}:         ReasonRejected,
	{StatusPending, StatusOutbid}:            ReasonOutbid,
	{StatusAccepted, StatusOutbid}:           ReasonOutbid,
	{StatusWon, StatusBankRejected}:          ReasonBankRejected,
	{StatusAwaitingBank, StatusBankRejected}: ReasonBankRejected,
}

// next statuses reachable from each status. Rejected, outbid, bank_rejected
// and completed are terminal, so a proposal is refunded at most once.
var transitions = map[Status][]Status{
	StatusPending:      {StatusAccepted, StatusRejected, StatusOutbid, StatusWon},
	StatusAccepted:     {StatusRejected, StatusOutbid, StatusWon},
	StatusWon:          {StatusAwaitingBank, StatusBankApproved, StatusBankRejected, StatusInWithdrawal, StatusCompleted},
	StatusAwaitingBank: {StatusBankApproved, StatusBankRejected},
	StatusBankApproved: {StatusInWithdrawal, StatusCompleted},
	StatusInWithdrawal: {StatusCompleted},
}

// CanTransition reports whether old may move to next. Re-applying the
// current status is allowed and has no effect beyond the timestamp.
func CanTransition(old, next Status) bool {
	if old == next {
		return true
	}
	for _, s := range transitions[old] {
		if s == next {
			return true
		}
	}
	return false
}

func IsTerminal(s Status) bool { return len(transitions[s]) == 0 }

// Transition checks the pair against the table and returns its effect.
func Transition(old, next Status) (Effect, error) {
	if !CanTransition(old, next) {
		return Effect{}, ErrInvalidTransition
	}
	return Evaluate(old, next), nil
}

// Evaluate is a pure function of the (old, new) pair.
func Evaluate(old, next Status) Effect {
	var eff Effect
	if reason, ok := refunds[pair{old, next}]; ok {
		eff.Refund = true
		eff.RefundReason = reason
	}
	eff.MarkVehicleWon = next == StatusWon && old != StatusWon
	return eff
}
