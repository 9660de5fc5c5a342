package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenWeighted() VotingConfigArgs {
	return VotingConfigArgs{Mode: "token_weighted"}
}

func TestInitializeDao(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 1_000)

	d := loadDao(dao)
	assert.Equal(t, te.authority, d.Authority)
	assert.Equal(t, daoName, d.Name)
	assert.Equal(t, te.mint, d.GovernanceTokenMint)
	assert.Equal(t, testQuorum, d.QuorumPercentage)
	assert.Equal(t, uint64(1_000), d.MinTokensToVote)
	assert.Equal(t, testReveal, d.RevealWindowSecs)
	assert.Equal(t, testDelay, d.ExecutionDelaySecs)
	assert.Equal(t, ModeTokenWeighted, d.Voting.Mode)
	assert.Zero(t, d.ProposalCount)
	assert.Nil(t, d.MigratedFrom)
}

func TestInitializeDaoValidation(t *testing.T) {
	te := newTestEnv(t)

	base := InitializeDaoArgs{
		Name:                "ok",
		GovernanceTokenMint: te.mint,
		QuorumPercentage:    51,
		RevealWindowSecs:    8,
		ExecutionDelaySecs:  0,
		Voting:              tokenWeighted(),
	}

	long := base
	long.Name = strings.Repeat("x", MaxDaoNameLength+1)
	te.expectRevert("NameTooLong", te.authority, InitializeDao, long)

	empty := base
	empty.Name = ""
	te.expectRevert("NameTooLong", te.authority, InitializeDao, empty)

	quorum := base
	quorum.QuorumPercentage = 0
	te.expectRevert("InvalidQuorum", te.authority, InitializeDao, quorum)
	quorum.QuorumPercentage = 101
	te.expectRevert("InvalidQuorum", te.authority, InitializeDao, quorum)

	window := base
	window.RevealWindowSecs = MinRevealWindowSeconds - 1
	te.expectRevert("RevealWindowTooShort", te.authority, InitializeDao, window)

	delay := base
	delay.ExecutionDelaySecs = -1
	te.expectRevert("InvalidExecutionDelay", te.authority, InitializeDao, delay)

	threshold := base
	threshold.Voting = VotingConfigArgs{Mode: "dual_chamber", CapitalThreshold: 0, CommunityThreshold: 50}
	te.expectRevert("InvalidThreshold", te.authority, InitializeDao, threshold)
	threshold.Voting = VotingConfigArgs{Mode: "dual_chamber", CapitalThreshold: 50, CommunityThreshold: 101}
	te.expectRevert("InvalidThreshold", te.authority, InitializeDao, threshold)

	mode := base
	mode.Voting = VotingConfigArgs{Mode: "plural"}
	te.expectRevert("InvalidPayload", te.authority, InitializeDao, mode)
}

func TestInitializeDaoTwiceFails(t *testing.T) {
	te := newTestEnv(t)
	te.initDao(tokenWeighted(), 0)

	te.expectRevert("AccountAlreadyExists", te.authority, InitializeDao, InitializeDaoArgs{
		Name:                daoName,
		GovernanceTokenMint: te.mint,
		QuorumPercentage:    testQuorum,
		RevealWindowSecs:    testReveal,
		Voting:              tokenWeighted(),
	})
}

func TestMigrateFromRealms(t *testing.T) {
	te := newTestEnv(t)
	source := actor("realms-governance")

	res := te.mustExec(te.authority, MigrateFromRealms, MigrateFromRealmsArgs{
		Name:               "mirrored",
		RealmsGovernance:   source,
		GovernanceToken:    te.mint,
		QuorumPercentage:   60,
		RevealWindowSecs:   3600,
		ExecutionDelaySecs: 86_400,
		Voting:             VotingConfigArgs{Mode: "quadratic"},
	})

	dao := daoAddress(te.authority, "mirrored")
	assert.Equal(t, dao.String(), res)

	d := loadDao(dao)
	require.NotNil(t, d.MigratedFrom)
	assert.Equal(t, source, *d.MigratedFrom)
	assert.Zero(t, d.MinTokensToVote, "migration starts without a token floor")
	assert.Equal(t, ModeQuadratic, d.Voting.Mode)
}

func TestCreateProposalValidation(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)

	base := CreateProposalArgs{
		Dao:                dao,
		Title:              "ok",
		Description:        "ok",
		VotingDurationSecs: defaultDura,
	}

	outsider := te.fundedActor("outsider")
	te.expectRevert("NotAuthorized", outsider, CreateProposal, base)

	long := base
	long.Title = strings.Repeat("t", MaxTitleLength+1)
	te.expectRevert("TitleTooLong", te.authority, CreateProposal, long)

	long = base
	long.Description = strings.Repeat("d", MaxDescriptionLength+1)
	te.expectRevert("DescriptionTooLong", te.authority, CreateProposal, long)

	short := base
	short.VotingDurationSecs = MinVotingDurationSeconds - 1
	te.expectRevert("VotingDurationTooShort", te.authority, CreateProposal, short)
}

func TestCreateProposalAssignsSequentialIds(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)

	_, id0 := te.createProposal(dao, nil)
	_, id1 := te.createProposal(dao, nil)
	assert.Equal(t, uint64(0), id0)
	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), loadDao(dao).ProposalCount)
}

func TestTreasuryActionValidation(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)
	recipient := actor("grantee")
	mint := actor("spend-mint")

	mk := func(action TreasuryActionArgs) CreateProposalArgs {
		return CreateProposalArgs{
			Dao:                dao,
			Title:              "spend",
			Description:        "spend",
			VotingDurationSecs: defaultDura,
			TreasuryAction:     &action,
		}
	}

	te.expectRevert("InvalidTreasuryAction", te.authority, CreateProposal,
		mk(TreasuryActionArgs{Kind: "send_sol", AmountLamports: 0, Recipient: recipient}))
	te.expectRevert("InvalidTreasuryAction", te.authority, CreateProposal,
		mk(TreasuryActionArgs{Kind: "send_sol", AmountLamports: 5, Recipient: recipient, TokenMint: &mint}))
	te.expectRevert("TokenMintRequired", te.authority, CreateProposal,
		mk(TreasuryActionArgs{Kind: "send_token", AmountLamports: 5, Recipient: recipient}))
	te.expectRevert("InvalidTreasuryAction", te.authority, CreateProposal,
		mk(TreasuryActionArgs{Kind: "custom_cpi", AmountLamports: 5, Recipient: recipient}))
	te.expectRevert("InvalidTreasuryAction", te.authority, CreateProposal,
		mk(TreasuryActionArgs{Kind: "send_sol", AmountLamports: 5}))
	te.expectRevert("InvalidTreasuryAction", te.authority, CreateProposal,
		mk(TreasuryActionArgs{Kind: "send_sol", AmountLamports: 5, Recipient: treasuryAddress(dao)}))
	te.expectRevert("InvalidTreasuryAction", te.authority, CreateProposal,
		mk(TreasuryActionArgs{Kind: "burn", AmountLamports: 5, Recipient: recipient}))
}
