package contract

import "private_dao/sdk"

// -----------------------------------------------------------------------------
// Phase 2: Reveal
// -----------------------------------------------------------------------------

// RevealVote verifies the (vote, salt) preimage against the stored
// commitment and folds the snapshotted weights into the tally. The caller
// must be the voter or the record's reveal authority; the preimage is always
// recomputed over the record's voter key, so a keeper cannot alter the vote.
// A fixed lamport rebate goes to the caller when the proposal account can
// afford it without dipping below the rent floor.
func RevealVote(payload *string) *string {
	args := &RevealVoteArgs{}
	decodePayload(payload, args)

	addr, p := resolveProposal(args.Dao, args.ProposalId)
	requireRevealOpen(p, nowUnix())

	vrAddr := voterRecordAddress(addr, args.Voter)
	vr := loadVoterRecordIfExists(vrAddr)
	if vr == nil {
		abortWith(ErrNotCommitted)
	}
	if vr.Revealed {
		abortWith(ErrAlreadyRevealed)
	}

	caller := senderAddress()
	isVoter := caller == vr.Voter
	isKeeper := vr.RevealAuthority != nil && *vr.RevealAuthority == caller
	if !isVoter && !isKeeper {
		abortWith(ErrNotAuthorizedToReveal)
	}

	computed := ComputeCommitment(args.Vote, args.Salt, vr.Voter)
	if !CommitmentEqual(computed, vr.Commitment) {
		abortWith(ErrCommitmentMismatch)
	}

	if args.Vote {
		p.YesCapital = checkedAdd(p.YesCapital, vr.WeightCapital)
		p.YesCommunity = checkedAdd(p.YesCommunity, vr.WeightCommunity)
	} else {
		p.NoCapital = checkedAdd(p.NoCapital, vr.WeightCapital)
		p.NoCommunity = checkedAdd(p.NoCommunity, vr.WeightCommunity)
	}
	vr.Revealed = true
	vr.VotedYes = args.Vote
	p.RevealCount = checkedAdd(p.RevealCount, 1)

	saveVoterRecord(vrAddr, vr)
	saveProposal(addr, p)

	// Rent-safe rebate: skipped silently when it would endanger the account.
	if sdk.GetLamportBalance(addr) >= RevealRebateLamports+sdk.RentExemptMinimum() {
		sdk.LamportTransfer(addr, caller, RevealRebateLamports)
	}

	emitVoteRevealed(addr, vr.Voter, args.Vote, p.RevealCount)
	return strptr("revealed")
}
