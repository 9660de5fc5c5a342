package contract

import (
	"errors"

	"private_dao/sdk"
)

var errHashLength = errors.New("digest must decode to 32 bytes")

// ProgramError pairs a stable error code with a human message. The code is
// what clients match on; the message is advisory.
type ProgramError struct {
	Code string
	Msg  string
}

func (e *ProgramError) Error() string {
	return e.Code + ": " + e.Msg
}

func progErr(code, msg string) *ProgramError {
	return &ProgramError{Code: code, Msg: msg}
}

// Phase violations.
var (
	ErrCommitPhaseClosed = progErr("CommitPhaseClosed", "commit phase has closed")
	ErrRevealTooEarly    = progErr("RevealTooEarly", "reveal phase has not started yet")
	ErrRevealPhaseClosed = progErr("RevealPhaseClosed", "reveal window has closed")
	ErrFinalizeTooEarly  = progErr("FinalizeTooEarly", "reveal phase is still open")
	ErrExecutionLocked   = progErr("ExecutionLocked", "execution timelock has not yet expired")
	ErrProposalTerminal  = progErr("ProposalTerminal", "proposal is in a terminal state")
)

// Integrity violations.
var (
	ErrCommitmentMismatch        = progErr("CommitmentMismatch", "commitment hash does not match")
	ErrTreasuryRecipientMismatch = progErr("TreasuryRecipientMismatch", "executor must use the action recipient")
	ErrTokenMintMismatch         = progErr("TokenMintMismatch", "provided token mint does not match the action")
	ErrTreasuryAuthorityMismatch = progErr("TreasuryAuthorityMismatch", "treasury token account must be treasury-owned")
)

// State violations.
var (
	ErrAlreadyCommitted      = progErr("AlreadyCommitted", "already committed a vote")
	ErrAlreadyRevealed       = progErr("AlreadyRevealed", "vote already revealed")
	ErrAlreadyExecuted       = progErr("AlreadyExecuted", "treasury action already executed")
	ErrDelegationAlreadyUsed = progErr("DelegationAlreadyUsed", "this delegation has already been used")
	ErrNotCommitted          = progErr("NotCommitted", "no commitment found for this voter")
	ErrAccountAlreadyExists  = progErr("AccountAlreadyExists", "account already in use")
)

// Authorization violations.
var (
	ErrNotAuthorized         = progErr("NotAuthorized", "signer is not permitted to do this")
	ErrNotAuthorizedToReveal = progErr("NotAuthorizedToReveal", "not authorized to reveal this vote")
	ErrNotDelegatee          = progErr("NotDelegatee", "caller is not the designated delegatee")
	ErrWrongProposal         = progErr("WrongProposal", "delegation belongs to a different proposal")
	ErrCancelOnlyDuringVoting = progErr("CancelOnlyDuringVoting", "can only cancel proposals that are voting")
	ErrVetoOnlyDuringTimelock = progErr("VetoOnlyDuringTimelock", "veto is only valid during the timelock window")
)

// Configuration violations.
var (
	ErrNameTooLong            = progErr("NameTooLong", "dao name too long")
	ErrInvalidQuorum          = progErr("InvalidQuorum", "quorum must be 1-100")
	ErrRevealWindowTooShort   = progErr("RevealWindowTooShort", "reveal window below minimum")
	ErrVotingDurationTooShort = progErr("VotingDurationTooShort", "voting duration below minimum")
	ErrInvalidExecutionDelay  = progErr("InvalidExecutionDelay", "execution delay must be non-negative")
	ErrTitleTooLong           = progErr("TitleTooLong", "title too long")
	ErrDescriptionTooLong     = progErr("DescriptionTooLong", "description too long")
	ErrInvalidThreshold       = progErr("InvalidThreshold", "threshold must be 1-100")
	ErrInvalidTreasuryAction  = progErr("InvalidTreasuryAction", "treasury action payload is invalid")
	ErrTokenMintRequired      = progErr("TokenMintRequired", "send_token action requires a token mint")
	ErrInvalidPayload         = progErr("InvalidPayload", "payload could not be decoded")
	ErrInvalidAccountData     = progErr("InvalidAccountData", "stored account bytes are malformed")
	ErrAccountNotFound        = progErr("AccountNotFound", "account does not exist")
)

// Arithmetic and resource violations.
var (
	ErrArithmeticOverflow  = progErr("ArithmeticOverflow", "arithmetic overflow")
	ErrInsufficientBalance = progErr("InsufficientBalance", "balance below required amount")
	ErrQuorumNotReached    = progErr("QuorumNotReached", "quorum not reached")
)

// abortWith surfaces a stable-coded failure and discards the transaction.
func abortWith(err *ProgramError) {
	sdk.Revert(err.Msg, err.Code)
	panic(err)
}
