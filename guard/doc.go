// Package guard provides guard clauses: checks placed at the top of a function
// that reject an invalid argument before it can spread.
//
// Every check has the same shape. It takes the value, the parameter name and
// any bounds, and returns the value unchanged with a nil error when the
// precondition holds:
//
//	func NewAccount(owner string, balance decimal.Decimal, tier Tier) (*Account, error) {
//	    if _, err := guard.NotWhitespace(owner, "owner"); err != nil {
//	        return nil, err
//	    }
//
//	    if _, err := guard.NonNegativeDecimal(balance, "balance"); err != nil {
//	        return nil, err
//	    }
//
//	    if _, err := guard.ValidEnumMember(tier, "tier", Tiers); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// On failure the zero value and a *Error are returned. The error's kind is one
// of the sentinels in the errors package, so callers classify it with
// errors.Is. Checks are pure: they keep no state and are safe to call from any
// goroutine. Use Must to turn a failure into a panic where an error cannot be
// returned, for example in package-level initialization.
package guard
