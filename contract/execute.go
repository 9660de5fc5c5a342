package contract

import "private_dao/sdk"

// -----------------------------------------------------------------------------
// Phase 3b: Execute & treasury funding
// -----------------------------------------------------------------------------

// ExecuteProposal fires the treasury action of a passed proposal once the
// timelock has expired. Permissionless; the idempotence flag is persisted
// before any asset moves, and the whole transaction is atomic either way,
// so a repeat invocation can only fail with AlreadyExecuted.
func ExecuteProposal(payload *string) *string {
	args := &ExecuteProposalArgs{}
	decodePayload(payload, args)

	loadDao(args.Dao)
	addr, p := resolveProposal(args.Dao, args.ProposalId)
	requireExecutable(p, nowUnix())

	action := p.TreasuryAction
	if action == nil {
		abortWith(ErrInvalidTreasuryAction)
	}

	p.IsExecuted = true
	saveProposal(addr, p)

	// The executor-supplied recipient must be the one the voters approved.
	if args.Recipient != action.Recipient {
		abortWith(ErrTreasuryRecipientMismatch)
	}
	treasury := treasuryAddress(args.Dao)

	switch action.Kind {
	case ActionSendSol:
		sdk.LamportTransfer(treasury, action.Recipient, action.AmountLamports)
		emitProposalExecuted(addr, action.AmountLamports, action.Recipient)

	case ActionSendToken:
		if args.TreasuryTokenAccount == nil || args.RecipientTokenAccount == nil {
			abortWith(ErrInvalidTreasuryAction)
		}
		src := sdk.GetTokenAccount(*args.TreasuryTokenAccount)
		if src == nil {
			abortWith(ErrAccountNotFound)
		}
		if src.Owner != treasury {
			abortWith(ErrTreasuryAuthorityMismatch)
		}
		if src.Mint != *action.TokenMint {
			abortWith(ErrTokenMintMismatch)
		}
		dst := sdk.GetTokenAccount(*args.RecipientTokenAccount)
		if dst == nil {
			abortWith(ErrAccountNotFound)
		}
		if dst.Mint != *action.TokenMint {
			abortWith(ErrTokenMintMismatch)
		}
		if dst.Owner != action.Recipient {
			abortWith(ErrTreasuryRecipientMismatch)
		}
		sdk.TokenTransfer(src.Address, dst.Address, action.AmountLamports)
		emitProposalExecuted(addr, action.AmountLamports, action.Recipient)

	case ActionCustomCPI:
		// No inline asset movement: an off-chain relayer observes and enacts.
		emitCustomCPIRequested(addr, action.Recipient)
		emitProposalExecuted(addr, 0, action.Recipient)

	default:
		abortWith(ErrInvalidTreasuryAction)
	}

	return strptr("executed")
}

// DepositTreasury credits the DAO treasury from the signer. Permissionless.
func DepositTreasury(payload *string) *string {
	args := &DepositTreasuryArgs{}
	decodePayload(payload, args)

	loadDao(args.Dao)
	depositor := senderAddress()
	treasury := treasuryAddress(args.Dao)

	sdk.LamportTransfer(depositor, treasury, args.Amount)

	emitTreasuryDeposit(args.Dao, depositor, args.Amount)
	return strptr("deposited")
}
