package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"private_dao/sdk"
)

// passProposal drives a single-voter ballot to Passed and past the timelock.
func passProposal(te *testEnv, dao sdk.Address, action *TreasuryActionArgs, name string) (sdk.Address, uint64) {
	te.t.Helper()
	voter := te.fundedActor("ballot-" + name)
	te.ledger.MintTokens(voter, te.mint, 100)

	pAddr, id := te.createProposal(dao, action)
	salt := saltFor("ballot-" + name)
	te.commitAs(dao, id, voter, true, salt, nil)
	te.advance(defaultDura)
	te.revealAs(dao, id, voter, voter, true, salt)
	te.advance(testReveal)
	res := te.mustExec(actor("anyone"), FinalizeProposal, ProposalRefArgs{Dao: dao, ProposalId: id})
	require.Equal(te.t, "passed", res)
	te.advance(testDelay)
	return pAddr, id
}

// Scenario: recipient substitution is rejected and leaves everything intact;
// the legal execute then debits exactly the configured amount.
func TestRecipientSubstitutionRejected(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)
	recipient := actor("grantee")
	imposter := actor("imposter")

	pAddr, id := passProposal(te, dao, &TreasuryActionArgs{
		Kind: "send_sol", AmountLamports: 75_000, Recipient: recipient,
	}, "substitution")
	te.mustExec(te.authority, DepositTreasury, DepositTreasuryArgs{Dao: dao, Amount: 200_000})

	te.expectRevert("TreasuryRecipientMismatch", actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: imposter,
	})
	assert.Equal(t, uint64(200_000), te.ledger.LamportBalance(treasuryAddress(dao)), "treasury untouched")
	assert.False(t, loadProposal(pAddr).IsExecuted, "idempotence flag rolled back with the abort")

	te.mustExec(actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: recipient,
	})
	assert.Equal(t, uint64(125_000), te.ledger.LamportBalance(treasuryAddress(dao)))
	assert.Equal(t, uint64(75_000), te.ledger.LamportBalance(recipient))
}

func TestExecuteSendToken(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)
	treasury := treasuryAddress(dao)
	spendMint := actor("spend-mint")
	grantee := actor("grantee")

	treasuryATA := te.ledger.MintTokens(treasury, spendMint, 10_000)
	granteeATA := te.ledger.MintTokens(grantee, spendMint, 0)

	_, id := passProposal(te, dao, &TreasuryActionArgs{
		Kind: "send_token", AmountLamports: 2_500, Recipient: grantee, TokenMint: &spendMint,
	}, "token")

	te.mustExec(actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao:                   dao,
		ProposalId:            id,
		Recipient:             grantee,
		TreasuryTokenAccount:  &treasuryATA,
		RecipientTokenAccount: &granteeATA,
	})

	assert.Equal(t, uint64(7_500), sdk.GetTokenAccount(treasuryATA).Amount)
	assert.Equal(t, uint64(2_500), sdk.GetTokenAccount(granteeATA).Amount)
}

func TestExecuteSendTokenIntegrityChecks(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)
	treasury := treasuryAddress(dao)
	spendMint := actor("spend-mint")
	otherMint := actor("other-mint")
	grantee := actor("grantee")
	imposter := actor("imposter")

	treasuryATA := te.ledger.MintTokens(treasury, spendMint, 10_000)
	granteeATA := te.ledger.MintTokens(grantee, spendMint, 0)
	wrongMintATA := te.ledger.MintTokens(grantee, otherMint, 0)
	imposterATA := te.ledger.MintTokens(imposter, spendMint, 5_000)

	_, id := passProposal(te, dao, &TreasuryActionArgs{
		Kind: "send_token", AmountLamports: 2_500, Recipient: grantee, TokenMint: &spendMint,
	}, "integrity")

	// Source not owned by the treasury authority.
	te.expectRevert("TreasuryAuthorityMismatch", actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: grantee,
		TreasuryTokenAccount: &imposterATA, RecipientTokenAccount: &granteeATA,
	})

	// Destination on the wrong mint.
	te.expectRevert("TokenMintMismatch", actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: grantee,
		TreasuryTokenAccount: &treasuryATA, RecipientTokenAccount: &wrongMintATA,
	})

	// Destination owned by someone other than the approved recipient.
	te.expectRevert("TreasuryRecipientMismatch", actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: grantee,
		TreasuryTokenAccount: &treasuryATA, RecipientTokenAccount: &imposterATA,
	})

	// Token accounts are mandatory for send_token.
	te.expectRevert("InvalidTreasuryAction", actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: grantee,
	})

	assert.Equal(t, uint64(10_000), sdk.GetTokenAccount(treasuryATA).Amount, "nothing moved")
}

func TestExecuteCustomCPIEmitsOnly(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)
	relayTarget := actor("relay-target")

	pAddr, id := passProposal(te, dao, &TreasuryActionArgs{
		Kind: "custom_cpi", Recipient: relayTarget,
	}, "cpi")
	te.mustExec(te.authority, DepositTreasury, DepositTreasuryArgs{Dao: dao, Amount: 9_999})

	p := payloadOf(t, ExecuteProposalArgs{Dao: dao, ProposalId: id, Recipient: relayTarget})
	_, events, err := te.ledger.Execute(actor("anyone"), func() *string { return ExecuteProposal(p) })
	require.NoError(t, err)

	assert.Equal(t, uint64(9_999), te.ledger.LamportBalance(treasuryAddress(dao)), "no inline asset movement")
	assert.True(t, loadProposal(pAddr).IsExecuted)

	var sawRequest bool
	for _, line := range events {
		if strings.HasPrefix(line, "cpi|") {
			sawRequest = true
		}
	}
	assert.True(t, sawRequest, "relayer event emitted")

	te.expectRevert("AlreadyExecuted", actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: relayTarget,
	})
}

func TestExecuteWithoutActionRejected(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)

	_, id := passProposal(te, dao, nil, "signal")
	te.expectRevert("InvalidTreasuryAction", actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: actor("anyone"),
	})
}

func TestExecuteInsufficientTreasury(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)
	recipient := actor("grantee")

	pAddr, id := passProposal(te, dao, &TreasuryActionArgs{
		Kind: "send_sol", AmountLamports: 500_000, Recipient: recipient,
	}, "broke")
	te.mustExec(te.authority, DepositTreasury, DepositTreasuryArgs{Dao: dao, Amount: 400_000})

	te.expectRevert("InsufficientBalance", actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: recipient,
	})
	assert.False(t, loadProposal(pAddr).IsExecuted)
	assert.Equal(t, uint64(400_000), te.ledger.LamportBalance(treasuryAddress(dao)))

	// Topping the treasury up lets the same call through.
	te.mustExec(te.authority, DepositTreasury, DepositTreasuryArgs{Dao: dao, Amount: 100_000})
	te.mustExec(actor("anyone"), ExecuteProposal, ExecuteProposalArgs{
		Dao: dao, ProposalId: id, Recipient: recipient,
	})
	assert.Equal(t, uint64(500_000), te.ledger.LamportBalance(recipient))
}

func TestDepositTreasury(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)

	donor := te.fundedActor("donor")
	te.mustExec(donor, DepositTreasury, DepositTreasuryArgs{Dao: dao, Amount: 123})
	te.mustExec(te.authority, DepositTreasury, DepositTreasuryArgs{Dao: dao, Amount: 77})
	assert.Equal(t, uint64(200), te.ledger.LamportBalance(treasuryAddress(dao)))

	broke := actor("broke")
	te.expectRevert("InsufficientBalance", broke, DepositTreasury, DepositTreasuryArgs{Dao: dao, Amount: 1})
}
