package contract

import (
	"fmt"

	"private_dao/sdk"
)

// Event lines are terse pipe-delimited strings so indexers can follow the
// protocol without scanning storage diffs.

// emitDaoCreated pings watchers that a fresh DAO account exists.
func emitDaoCreated(dao sdk.Address, name string, authority sdk.Address) {
	sdk.Log(fmt.Sprintf("dc|dao:%s|name:%s|by:%s", dao, name, authority))
}

// emitDaoMigrated records the provenance link of a mirrored Realms DAO.
func emitDaoMigrated(dao sdk.Address, name string, source sdk.Address) {
	sdk.Log(fmt.Sprintf("dm|dao:%s|name:%s|src:%s", dao, name, source))
}

// emitProposalCreated carries the window bounds so clients can schedule.
func emitProposalCreated(proposal sdk.Address, id uint64, votingEnd, revealEnd int64) {
	sdk.Log(fmt.Sprintf("pc|p:%s|id:%d|vend:%d|rend:%d", proposal, id, votingEnd, revealEnd))
}

// emitProposalCancelled logs an authority cancel during the commit phase.
func emitProposalCancelled(proposal sdk.Address, by sdk.Address) {
	sdk.Log(fmt.Sprintf("pk|p:%s|by:%s", proposal, by))
}

// emitProposalVetoed logs an authority veto during the timelock.
func emitProposalVetoed(proposal sdk.Address, by sdk.Address) {
	sdk.Log(fmt.Sprintf("pv|p:%s|by:%s", proposal, by))
}

// emitVoteCommitted deliberately carries no vote content, only the count.
func emitVoteCommitted(proposal, voter sdk.Address, commitCount uint64) {
	sdk.Log(fmt.Sprintf("vc|p:%s|by:%s|n:%d", proposal, voter, commitCount))
}

// emitVoteDelegated includes the granted capital weight for replay.
func emitVoteDelegated(proposal, delegator, delegatee sdk.Address, weight uint64) {
	sdk.Log(fmt.Sprintf("vd|p:%s|from:%s|to:%s|w:%d", proposal, delegator, delegatee, weight))
}

// emitVoteRevealed is the first moment a ballot's direction becomes public.
func emitVoteRevealed(proposal, voter sdk.Address, vote bool, revealCount uint64) {
	v := 0
	if vote {
		v = 1
	}
	sdk.Log(fmt.Sprintf("vr|p:%s|by:%s|v:%d|n:%d", proposal, voter, v, revealCount))
}

// emitProposalFinalized snapshots the tally outcome and the timelock stamp.
func emitProposalFinalized(proposal sdk.Address, status ProposalStatus, reason string, unlocksAt int64) {
	sdk.Log(fmt.Sprintf("pf|p:%s|s:%s|r:%s|unlock:%d", proposal, status, reason, unlocksAt))
}

// emitProposalExecuted logs the treasury movement after the timelock.
func emitProposalExecuted(proposal sdk.Address, amount uint64, recipient sdk.Address) {
	sdk.Log(fmt.Sprintf("pe|p:%s|amt:%d|to:%s", proposal, amount, recipient))
}

// emitCustomCPIRequested is the relayer hook; no assets move inline.
func emitCustomCPIRequested(proposal sdk.Address, recipient sdk.Address) {
	sdk.Log(fmt.Sprintf("cpi|p:%s|to:%s", proposal, recipient))
}

// emitTreasuryDeposit lets indexing bots trace treasury funding.
func emitTreasuryDeposit(dao, from sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("td|dao:%s|from:%s|amt:%d", dao, from, amount))
}
