package contract

// -----------------------------------------------------------------------------
// DAO Initialization
// -----------------------------------------------------------------------------

// InitializeDao creates the root governance account for (authority, name).
// Every field except the proposal counter is immutable afterwards.
// Example payload: {"name":"nova","governanceTokenMint":"...","quorumPercentage":51,
//
//	"minTokensToVote":0,"revealWindowSecs":3600,"executionDelaySecs":86400,
//	"voting":{"mode":"token_weighted"}}
func InitializeDao(payload *string) *string {
	args := &InitializeDaoArgs{}
	decodePayload(payload, args)

	validateDaoConfig(args.Name, args.QuorumPercentage, args.RevealWindowSecs, args.ExecutionDelaySecs)
	voting := parseVotingConfig(args.Voting)

	authority := senderAddress()
	addr := daoAddress(authority, args.Name)
	if daoExists(addr) {
		abortWith(ErrAccountAlreadyExists)
	}

	dao := &Dao{
		Authority:           authority,
		Name:                args.Name,
		GovernanceTokenMint: args.GovernanceTokenMint,
		QuorumPercentage:    args.QuorumPercentage,
		MinTokensToVote:     args.MinTokensToVote,
		RevealWindowSecs:    args.RevealWindowSecs,
		ExecutionDelaySecs:  args.ExecutionDelaySecs,
		Voting:              voting,
	}
	saveDao(addr, dao)

	emitDaoCreated(addr, args.Name, authority)
	return strptr(addr.String())
}

// MigrateFromRealms mirrors an existing Realms governance into a fresh DAO.
// Identical to InitializeDao except the source governance account is kept as
// provenance and the token floor starts at zero. Non-destructive: nothing is
// consumed on the source side.
func MigrateFromRealms(payload *string) *string {
	args := &MigrateFromRealmsArgs{}
	decodePayload(payload, args)

	validateDaoConfig(args.Name, args.QuorumPercentage, args.RevealWindowSecs, args.ExecutionDelaySecs)
	voting := parseVotingConfig(args.Voting)

	authority := senderAddress()
	addr := daoAddress(authority, args.Name)
	if daoExists(addr) {
		abortWith(ErrAccountAlreadyExists)
	}

	source := args.RealmsGovernance
	dao := &Dao{
		Authority:           authority,
		Name:                args.Name,
		GovernanceTokenMint: args.GovernanceToken,
		QuorumPercentage:    args.QuorumPercentage,
		RevealWindowSecs:    args.RevealWindowSecs,
		ExecutionDelaySecs:  args.ExecutionDelaySecs,
		Voting:              voting,
		MigratedFrom:        &source,
	}
	saveDao(addr, dao)

	emitDaoMigrated(addr, args.Name, source)
	return strptr(addr.String())
}

func validateDaoConfig(name string, quorum uint8, revealWindow, execDelay int64) {
	if len(name) == 0 || len(name) > MaxDaoNameLength {
		abortWith(ErrNameTooLong)
	}
	if quorum < 1 || quorum > 100 {
		abortWith(ErrInvalidQuorum)
	}
	if revealWindow < MinRevealWindowSeconds {
		abortWith(ErrRevealWindowTooShort)
	}
	if execDelay < 0 {
		abortWith(ErrInvalidExecutionDelay)
	}
}
