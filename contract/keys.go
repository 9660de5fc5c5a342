package contract

import "private_dao/sdk"

// Deterministic account addresses are derived from labeled seed tuples so
// every record can be located without a registry.

// daoAddress derives the DAO account from (authority, name).
func daoAddress(authority sdk.Address, name string) sdk.Address {
	return sdk.DeriveAddress([]byte(seedDao), authority.Bytes(), []byte(name))
}

// proposalAddress derives the proposal account from (dao, id little-endian).
func proposalAddress(dao sdk.Address, id uint64) sdk.Address {
	return sdk.DeriveAddress([]byte(seedProposal), dao.Bytes(), packU64LE(id, nil))
}

// voterRecordAddress derives the per-voter commitment account.
func voterRecordAddress(proposal, voter sdk.Address) sdk.Address {
	return sdk.DeriveAddress([]byte(seedVote), proposal.Bytes(), voter.Bytes())
}

// delegationAddress derives the per-delegator grant account.
func delegationAddress(proposal, delegator sdk.Address) sdk.Address {
	return sdk.DeriveAddress([]byte(seedDelegation), proposal.Bytes(), delegator.Bytes())
}

// treasuryAddress derives the DAO's asset-holding account.
func treasuryAddress(dao sdk.Address) sdk.Address {
	return sdk.DeriveAddress([]byte(seedTreasury), dao.Bytes())
}

// voterWeightRecordAddress derives the plugin export account.
func voterWeightRecordAddress(realm, mint, voter sdk.Address) sdk.Address {
	return sdk.DeriveAddress([]byte(seedVoterWeight), realm.Bytes(), mint.Bytes(), voter.Bytes())
}

// packU64LE appends the little-endian encoding of x to dst.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// Storage keys mix a one-byte type prefix with the account address so each
// record kind lives in its own keyspace.

func daoKey(addr sdk.Address) string {
	return accountKey(kDaoAccount, addr)
}

func proposalKey(addr sdk.Address) string {
	return accountKey(kProposalAccount, addr)
}

func voterRecordKey(addr sdk.Address) string {
	return accountKey(kVoterRecordAccount, addr)
}

func delegationKey(addr sdk.Address) string {
	return accountKey(kDelegationAccount, addr)
}

func voterWeightKey(addr sdk.Address) string {
	return accountKey(kVoterWeightAccount, addr)
}

func accountKey(prefix byte, addr sdk.Address) string {
	buf := make([]byte, 0, 33)
	buf = append(buf, prefix)
	buf = append(buf, addr.Bytes()...)
	return string(buf)
}
