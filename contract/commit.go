package contract

// -----------------------------------------------------------------------------
// Phase 1: Commit & delegation
// -----------------------------------------------------------------------------

// CommitVote stores an opaque 32-byte commitment and snapshots the voter's
// weight. Snapshotting at commit time neutralizes buy-vote-sell: token
// movement after this point does not change the voter's contribution. The
// optional reveal authority is a keeper who may submit the reveal later and
// earn the rebate; the vote itself is fixed by the hash.
func CommitVote(payload *string) *string {
	args := &CommitVoteArgs{}
	decodePayload(payload, args)

	dao := loadDao(args.Dao)
	addr, p := resolveProposal(args.Dao, args.ProposalId)
	requireCommitOpen(p, nowUnix())

	voter := senderAddress()
	balance := tokenBalance(voter, dao.GovernanceTokenMint)
	if dao.MinTokensToVote > 0 && balance < dao.MinTokensToVote {
		abortWith(ErrInsufficientBalance)
	}

	vrAddr := voterRecordAddress(addr, voter)
	if loadVoterRecordIfExists(vrAddr) != nil {
		abortWith(ErrAlreadyCommitted)
	}
	// A delegator already granted this weight away for the proposal.
	if delegationExists(delegationAddress(addr, voter)) {
		abortWith(ErrAlreadyCommitted)
	}

	capital, community := chamberWeights(dao.Voting.Mode, balance)
	vr := &VoterRecord{
		Proposal:        addr,
		Voter:           voter,
		Commitment:      args.Commitment,
		WeightCapital:   capital,
		WeightCommunity: community,
		RevealAuthority: args.RevealAuthority,
	}
	saveVoterRecord(vrAddr, vr)

	p.CommitCount = checkedAdd(p.CommitCount, 1)
	saveProposal(addr, p)

	emitVoteCommitted(addr, voter, p.CommitCount)
	return strptr("committed")
}

// DelegateVote grants the delegator's snapshotted weight to a delegatee for
// exactly this proposal. The delegator never picks a direction; the
// delegatee chooses vote and salt alone, so even they cannot tell how the
// delegator "would have voted".
func DelegateVote(payload *string) *string {
	args := &DelegateVoteArgs{}
	decodePayload(payload, args)

	dao := loadDao(args.Dao)
	addr, p := resolveProposal(args.Dao, args.ProposalId)
	requireCommitOpen(p, nowUnix())

	delegator := senderAddress()
	balance := tokenBalance(delegator, dao.GovernanceTokenMint)
	if balance == 0 {
		abortWith(ErrInsufficientBalance)
	}
	// Weight must flow into the tally exactly once per holder.
	if loadVoterRecordIfExists(voterRecordAddress(addr, delegator)) != nil {
		abortWith(ErrAlreadyCommitted)
	}
	delAddr := delegationAddress(addr, delegator)
	if delegationExists(delAddr) {
		abortWith(ErrAccountAlreadyExists)
	}

	capital, community := chamberWeights(dao.Voting.Mode, balance)
	del := &Delegation{
		Proposal:           addr,
		Delegator:          delegator,
		Delegatee:          args.Delegatee,
		DelegatedCapital:   capital,
		DelegatedCommunity: community,
	}
	saveDelegation(delAddr, del)

	emitVoteDelegated(addr, delegator, args.Delegatee, capital)
	return strptr("delegated")
}

// CommitDelegatedVote lets the delegatee commit while folding exactly one
// delegation into their record. On first use the record snapshots the
// delegatee's own balance too; later calls with further delegations only add
// the delegated weight. The preimage binds the delegatee's key, so reveal
// works exactly like a normal reveal.
func CommitDelegatedVote(payload *string) *string {
	args := &CommitDelegatedVoteArgs{}
	decodePayload(payload, args)

	dao := loadDao(args.Dao)
	addr, p := resolveProposal(args.Dao, args.ProposalId)
	requireCommitOpen(p, nowUnix())

	delegatee := senderAddress()
	delAddr := delegationAddress(addr, args.Delegator)
	del := loadDelegation(delAddr)
	if del.Delegatee != delegatee {
		abortWith(ErrNotDelegatee)
	}
	if del.Proposal != addr {
		abortWith(ErrWrongProposal)
	}
	if del.IsUsed {
		abortWith(ErrDelegationAlreadyUsed)
	}

	vrAddr := voterRecordAddress(addr, delegatee)
	vr := loadVoterRecordIfExists(vrAddr)
	created := vr == nil
	if created {
		balance := tokenBalance(delegatee, dao.GovernanceTokenMint)
		capital, community := chamberWeights(dao.Voting.Mode, balance)
		vr = &VoterRecord{
			Proposal:        addr,
			Voter:           delegatee,
			Commitment:      args.Commitment,
			WeightCapital:   checkedAdd(capital, del.DelegatedCapital),
			WeightCommunity: checkedAdd(community, del.DelegatedCommunity),
			RevealAuthority: args.RevealAuthority,
		}
	} else {
		if vr.Revealed {
			abortWith(ErrAlreadyRevealed)
		}
		// Folding more weight must not reopen the vote choice.
		if !CommitmentEqual(vr.Commitment, args.Commitment) {
			abortWith(ErrCommitmentMismatch)
		}
		vr.WeightCapital = checkedAdd(vr.WeightCapital, del.DelegatedCapital)
		vr.WeightCommunity = checkedAdd(vr.WeightCommunity, del.DelegatedCommunity)
	}
	saveVoterRecord(vrAddr, vr)

	del.IsUsed = true
	saveDelegation(delAddr, del)

	if created {
		p.CommitCount = checkedAdd(p.CommitCount, 1)
		saveProposal(addr, p)
	}

	emitVoteCommitted(addr, delegatee, p.CommitCount)
	return strptr("committed")
}
