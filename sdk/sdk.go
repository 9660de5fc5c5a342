package sdk

// Host is the ledger ABI the contract runs against: an authenticated
// key-value store plus a transaction environment with a signed caller set,
// a clock and atomic asset transfers. The wasm build routes every call to
// host imports; other builds run against the in-process Ledger.
type Host interface {
	Log(msg string)
	Abort(msg string)
	Revert(msg, symbol string)

	StateSet(key, value string)
	StateGet(key string) *string
	StateDelete(key string)

	Env() Env

	LamportBalance(a Address) uint64
	LamportTransfer(from, to Address, amount uint64)
	TokenAccount(a Address) *TokenAccountInfo
	TokenTransfer(from, to Address, amount uint64)
	RentExemptMinimum() uint64
}

var activeHost Host

// SetHost installs the host implementation. The wasm build does this at
// init; tests install an in-process Ledger.
func SetHost(h Host) {
	activeHost = h
}

func host() Host {
	if activeHost == nil {
		panic("sdk: no host installed")
	}
	return activeHost
}

// Log writes one event line to the host console so indexers can follow
// contract activity without scanning storage diffs.
// Example payload: sdk.Log("pc|p:...|id:3|vend:...|rend:...")
func Log(msg string) {
	host().Log(msg)
}

// Abort stops execution immediately; the enclosing transaction is discarded.
func Abort(msg string) {
	host().Abort(msg)
}

// Revert throws a named error back to the caller with a stable symbol.
// Example payload: sdk.Revert("commit window over", "CommitPhaseClosed")
func Revert(msg string, symbol string) {
	host().Revert(msg, symbol)
}

// StateSetObject stores a key/value pair into contract kv storage.
func StateSetObject(key string, value string) {
	host().StateSet(key, value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return host().StateGet(key)
}

// StateDeleteObject removes the key entirely.
func StateDeleteObject(key string) {
	host().StateDelete(key)
}

// GetEnv returns the current transaction environment.
func GetEnv() Env {
	return host().Env()
}

// GetLamportBalance reads the native-unit balance of any account.
func GetLamportBalance(a Address) uint64 {
	return host().LamportBalance(a)
}

// LamportTransfer moves native units between accounts atomically. The host
// reverts with InsufficientBalance when the source cannot cover the amount.
func LamportTransfer(from, to Address, amount uint64) {
	host().LamportTransfer(from, to, amount)
}

// GetTokenAccount reads a token account, or nil when the address holds none.
func GetTokenAccount(a Address) *TokenAccountInfo {
	return host().TokenAccount(a)
}

// TokenTransfer moves token units between two accounts of the same mint.
func TokenTransfer(from, to Address, amount uint64) {
	host().TokenTransfer(from, to, amount)
}

// RentExemptMinimum is the lamport floor an account must keep to stay live.
func RentExemptMinimum() uint64 {
	return host().RentExemptMinimum()
}
