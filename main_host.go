//go:build !wasm

////////////////////////////////////////////////////////////////////////////////
// Private DAO: commit-reveal governance with a concealed tally
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"go.uber.org/zap"

	"private_dao/sdk"
)

// The non-wasm build wires the in-process ledger so the contract can be
// poked locally; the real deployment target is the wasm export surface.
func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	sdk.NewTestLedger(sdk.WithLogger(log))
	log.Info("in-process ledger ready")
}
