package contract

import (
	"strconv"

	"private_dao/sdk"
)

// strptr is a convenience helper for instruction return values.
func strptr(s string) *string { return &s }

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// tokenBalance reads the owner's associated token account for the mint,
// treating a missing account as a zero balance.
func tokenBalance(owner, mint sdk.Address) uint64 {
	acct := sdk.GetTokenAccount(sdk.AssociatedTokenAddress(owner, mint))
	if acct == nil {
		return 0
	}
	return acct.Amount
}

// resolveProposal loads a proposal by (dao, id) and returns its address too.
func resolveProposal(dao sdk.Address, id uint64) (sdk.Address, *Proposal) {
	addr := proposalAddress(dao, id)
	return addr, loadProposal(addr)
}
