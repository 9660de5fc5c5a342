package contract

import "github.com/holiman/uint256"

// -----------------------------------------------------------------------------
// Phase 3a: Finalize
// -----------------------------------------------------------------------------

// FinalizeProposal tallies a ballot after the reveal window closes. It is
// permissionless: whoever calls first settles the status, later callers hit
// the terminal guard. Quorum is the ratio of reveals to commits; unrevealed
// commitments count as abstentions, holders are not tracked on chain.
func FinalizeProposal(payload *string) *string {
	args := &ProposalRefArgs{}
	decodePayload(payload, args)

	dao := loadDao(args.Dao)
	addr, p := resolveProposal(args.Dao, args.ProposalId)
	now := nowUnix()
	requireFinalizeEligible(p, now)

	quorumMet := p.CommitCount > 0 && ratioAtLeast(p.RevealCount, 100, p.CommitCount, uint64(dao.QuorumPercentage))

	passed := false
	if quorumMet {
		switch dao.Voting.Mode {
		case ModeTokenWeighted:
			total := checkedAdd(p.YesCapital, p.NoCapital)
			passed = total > 0 && p.YesCapital > p.NoCapital
		case ModeQuadratic:
			total := checkedAdd(p.YesCommunity, p.NoCommunity)
			passed = total > 0 && p.YesCommunity > p.NoCommunity
		case ModeDualChamber:
			capTotal := checkedAdd(p.YesCapital, p.NoCapital)
			capitalPasses := capTotal > 0 &&
				ratioAtLeast(p.YesCapital, 100, capTotal, uint64(dao.Voting.CapitalThreshold))
			comTotal := checkedAdd(p.YesCommunity, p.NoCommunity)
			communityPasses := comTotal > 0 &&
				ratioAtLeast(p.YesCommunity, 100, comTotal, uint64(dao.Voting.CommunityThreshold))
			passed = capitalPasses && communityPasses
		}
	}

	reason := ""
	if passed {
		p.Status = StatusPassed
		p.ExecutionUnlocksAt = now + dao.ExecutionDelaySecs
	} else {
		p.Status = StatusFailed
		reason = "TallyRejected"
		if !quorumMet {
			reason = ErrQuorumNotReached.Code
		}
	}
	saveProposal(addr, p)

	emitProposalFinalized(addr, p.Status, reason, p.ExecutionUnlocksAt)
	if reason != "" {
		return strptr(p.Status.String() + ":" + reason)
	}
	return strptr(p.Status.String())
}

// ratioAtLeast reports a*b >= c*d without 64-bit overflow; the products are
// taken over 256-bit integers since tallies can sit near the uint64 ceiling.
func ratioAtLeast(a, b, c, d uint64) bool {
	lhs := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	rhs := new(uint256.Int).Mul(uint256.NewInt(c), uint256.NewInt(d))
	return !lhs.Lt(rhs)
}
