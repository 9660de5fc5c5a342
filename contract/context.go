package contract

import "private_dao/sdk"

// cachedEnv is scoped to the currently executing transaction. Whenever the
// tx id changes we refresh sdk.GetEnv() so every helper in one transaction
// sees the same snapshot.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
)

func currentEnv() *sdk.Env {
	probe := sdk.GetEnv()
	if !cachedEnvLoaded || cachedEnv.TxId != probe.TxId {
		cachedEnv = probe
		cachedEnvLoaded = true
	}
	return &cachedEnv
}

// senderAddress returns the address of the current transaction signer.
func senderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// nowUnix returns the chain clock for the current transaction.
func nowUnix() int64 {
	return currentEnv().Timestamp
}

// currentSlot returns the chain slot for the current transaction.
func currentSlot() uint64 {
	return currentEnv().Slot
}

// requireSigner aborts unless the transaction was signed by addr.
func requireSigner(addr sdk.Address) {
	if senderAddress() != addr {
		abortWith(ErrNotAuthorized)
	}
}
