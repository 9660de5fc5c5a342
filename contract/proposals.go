package contract

import "private_dao/sdk"

// -----------------------------------------------------------------------------
// Proposal lifecycle: create, cancel, veto
// -----------------------------------------------------------------------------

// CreateProposal opens a new ballot. Authority-only. The proposal id is the
// DAO's running counter, and the proposer seeds the proposal account with
// the rent floor. Reveal rebates are paid only from lamports above that
// floor, so the seed by itself funds none.
func CreateProposal(payload *string) *string {
	args := &CreateProposalArgs{}
	decodePayload(payload, args)

	dao := loadDao(args.Dao)
	requireSigner(dao.Authority)
	proposer := senderAddress()

	if len(args.Title) > MaxTitleLength {
		abortWith(ErrTitleTooLong)
	}
	if len(args.Description) > MaxDescriptionLength {
		abortWith(ErrDescriptionTooLong)
	}
	if args.VotingDurationSecs < MinVotingDurationSeconds {
		abortWith(ErrVotingDurationTooShort)
	}
	action := parseTreasuryAction(args.TreasuryAction, treasuryAddress(args.Dao))

	now := nowUnix()
	p := &Proposal{
		Dao:         args.Dao,
		Proposer:    proposer,
		ProposalId:  dao.ProposalCount,
		Title:       args.Title,
		Description: args.Description,
		Status:      StatusVoting,
		VotingEnd:   now + args.VotingDurationSecs,
		RevealEnd:   now + args.VotingDurationSecs + dao.RevealWindowSecs,
		TreasuryAction: action,
	}
	addr := proposalAddress(args.Dao, p.ProposalId)

	dao.ProposalCount = checkedAdd(dao.ProposalCount, 1)
	saveDao(args.Dao, dao)
	saveProposal(addr, p)

	// Account liveness deposit, paid by the proposer.
	sdk.LamportTransfer(proposer, addr, sdk.RentExemptMinimum())

	emitProposalCreated(addr, p.ProposalId, p.VotingEnd, p.RevealEnd)
	return strptr(addr.String())
}

// CancelProposal collapses an open ballot before the commit window closes.
// Authority-only; meant for catching mistakes before reveals begin.
func CancelProposal(payload *string) *string {
	args := &ProposalRefArgs{}
	decodePayload(payload, args)

	dao := loadDao(args.Dao)
	requireSigner(dao.Authority)

	addr, p := resolveProposal(args.Dao, args.ProposalId)
	if p.Status != StatusVoting || nowUnix() >= p.VotingEnd {
		abortWith(ErrCancelOnlyDuringVoting)
	}

	p.Status = StatusCancelled
	saveProposal(addr, p)

	emitProposalCancelled(addr, senderAddress())
	return strptr(p.Status.String())
}

// VetoProposal blocks a passed ballot during its timelock window. The last
// line of defense before funds move; once the timelock expires or execution
// happened, the authority cannot block anymore.
func VetoProposal(payload *string) *string {
	args := &ProposalRefArgs{}
	decodePayload(payload, args)

	dao := loadDao(args.Dao)
	requireSigner(dao.Authority)

	addr, p := resolveProposal(args.Dao, args.ProposalId)
	if p.Status != StatusPassed {
		abortWith(ErrVetoOnlyDuringTimelock)
	}
	if p.IsExecuted {
		abortWith(ErrAlreadyExecuted)
	}
	if nowUnix() >= p.ExecutionUnlocksAt {
		abortWith(ErrVetoOnlyDuringTimelock)
	}

	p.Status = StatusVetoed
	saveProposal(addr, p)

	emitProposalVetoed(addr, senderAddress())
	return strptr(p.Status.String())
}
