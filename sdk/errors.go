package sdk

import "errors"

var errAddressLength = errors.New("address must decode to 32 bytes")

// RevertError carries a stable error symbol out of an aborted transaction.
// On chain the symbol is what Revert surfaces to the client; in the
// in-process ledger it is what Execute returns after rolling state back.
type RevertError struct {
	Symbol string
	Msg    string
}

func (e *RevertError) Error() string {
	if e.Msg == "" {
		return e.Symbol
	}
	return e.Symbol + ": " + e.Msg
}

// SymbolOf extracts the stable code from an error returned by Execute,
// or "" when the error is not a revert.
func SymbolOf(err error) string {
	var re *RevertError
	if errors.As(err, &re) {
		return re.Symbol
	}
	return ""
}
