package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaxPayoutRecipients caps how many recipients a payout plan may name.
const MaxPayoutRecipients = 10

// ErrMalformedPayout marks a payout plan that failed validation. It is never
// surfaced to callers: the settlement protocol absorbs it into the refund path.
var ErrMalformedPayout = errors.New("malformed payout plan")

// PayoutPlan maps recipient identities to owed amounts. It is ephemeral:
// computed by the asset registry during settlement and discarded after
// distribution.
type PayoutPlan map[string]Amount

// payoutEnvelope mirrors the registry's wire format: {"payout": {acct: "amt"}}.
type payoutEnvelope struct {
	Payout map[string]Amount `json:"payout"`
}

// ParsePayoutPlan decodes the registry's payout envelope. A body that does not
// parse is reported as ErrMalformedPayout.
func ParsePayoutPlan(raw []byte) (PayoutPlan, error) {
	var env payoutEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayout, err)
	}
	if env.Payout == nil {
		return nil, fmt.Errorf("%w: missing payout field", ErrMalformedPayout)
	}
	return PayoutPlan(env.Payout), nil
}

// Validate checks the plan against the settlement total: it must have between
// 1 and MaxPayoutRecipients entries, no entry may push the running remainder
// negative, and the final remainder must be 0 or 1 (one indivisible unit of
// rounding slack). Anything else is malformed, not clamped.
func (p PayoutPlan) Validate(total Amount) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty plan", ErrMalformedPayout)
	}
	if len(p) > MaxPayoutRecipients {
		return fmt.Errorf("%w: %d recipients exceeds cap of %d", ErrMalformedPayout, len(p), MaxPayoutRecipients)
	}

	remainder := total
	for recipient, amount := range p {
		next, ok := remainder.Sub(amount)
		if !ok {
			return fmt.Errorf("%w: payouts exceed total at recipient %s", ErrMalformedPayout, recipient)
		}
		remainder = next
	}
	if remainder.Cmp(NewAmount(1)) > 0 {
		return fmt.Errorf("%w: payouts fall short of total by %s", ErrMalformedPayout, remainder)
	}
	return nil
}
