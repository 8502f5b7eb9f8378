package kbest

import "errors"

// ErrBudgetExhausted is returned when K == 0 is requested (K < 0 means
// "all"; K == 0 asks for nothing, which is a caller error rather than a
// valid "emit zero matchings" request).
var ErrBudgetExhausted = errors.New("kbest: K must be positive, or -1 for all matchings")
