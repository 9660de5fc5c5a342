package contract

import (
	"testing"
	"time"

	"github.com/CosmWasm/tinyjson"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"private_dao/sdk"
)

const (
	startUnix   = int64(1_700_000_000)
	actorFunds  = uint64(10_000_000_000)
	daoName     = "testdao"
	testQuorum  = uint8(51)
	testReveal  = int64(8)
	testDelay   = int64(5)
	defaultDura = int64(1000)
)

// testEnv bundles an in-process ledger with the standing fixtures every
// lifecycle test needs: a funded authority and a governance mint.
type testEnv struct {
	t         *testing.T
	ledger    *sdk.Ledger
	authority sdk.Address
	mint      sdk.Address
}

func newTestEnv(t *testing.T) *testEnv {
	te := &testEnv{
		t: t,
		ledger: sdk.NewTestLedger(
			sdk.WithStartTime(time.Unix(startUnix, 0)),
			sdk.WithLogger(zaptest.NewLogger(t)),
		),
		authority: actor("authority"),
		mint:      actor("governance-mint"),
	}
	te.ledger.Fund(te.authority, actorFunds)
	return te
}

// actor derives a stable test address from a label.
func actor(name string) sdk.Address {
	return sdk.DeriveAddress([]byte("test-actor"), []byte(name))
}

// fundedActor derives an address and gives it lamports for fees and rent.
func (te *testEnv) fundedActor(name string) sdk.Address {
	a := actor(name)
	te.ledger.Fund(a, actorFunds)
	return a
}

func payloadOf(t *testing.T, m tinyjson.Marshaler) *string {
	t.Helper()
	raw, err := tinyjson.Marshal(m)
	require.NoError(t, err)
	s := string(raw)
	return &s
}

// exec runs one instruction as signer and returns its result or the
// stable-coded revert.
func (te *testEnv) exec(signer sdk.Address, fn func(*string) *string, m tinyjson.Marshaler) (*string, error) {
	te.t.Helper()
	p := payloadOf(te.t, m)
	res, _, err := te.ledger.Execute(signer, func() *string { return fn(p) })
	return res, err
}

func (te *testEnv) mustExec(signer sdk.Address, fn func(*string) *string, m tinyjson.Marshaler) string {
	te.t.Helper()
	res, err := te.exec(signer, fn, m)
	require.NoError(te.t, err)
	require.NotNil(te.t, res)
	return *res
}

func (te *testEnv) expectRevert(code string, signer sdk.Address, fn func(*string) *string, m tinyjson.Marshaler) {
	te.t.Helper()
	_, err := te.exec(signer, fn, m)
	require.Error(te.t, err)
	require.Equal(te.t, code, sdk.SymbolOf(err))
}

// advance steps the mock clock by whole seconds.
func (te *testEnv) advance(secs int64) {
	te.ledger.Clock().Add(time.Duration(secs) * time.Second)
}

// setTime pins the mock clock to an absolute unix timestamp.
func (te *testEnv) setTime(unix int64) {
	te.ledger.Clock().Set(time.Unix(unix, 0))
}

// initDao spins up a DAO under the standing authority.
func (te *testEnv) initDao(voting VotingConfigArgs, minTokens uint64) sdk.Address {
	te.t.Helper()
	te.mustExec(te.authority, InitializeDao, InitializeDaoArgs{
		Name:                daoName,
		GovernanceTokenMint: te.mint,
		QuorumPercentage:    testQuorum,
		MinTokensToVote:     minTokens,
		RevealWindowSecs:    testReveal,
		ExecutionDelaySecs:  testDelay,
		Voting:              voting,
	})
	return daoAddress(te.authority, daoName)
}

// createProposal opens a ballot and returns its address and id.
func (te *testEnv) createProposal(dao sdk.Address, action *TreasuryActionArgs) (sdk.Address, uint64) {
	te.t.Helper()
	d := loadDao(dao)
	id := d.ProposalCount
	te.mustExec(te.authority, CreateProposal, CreateProposalArgs{
		Dao:                dao,
		Title:              "treasury spend",
		Description:        "move funds per the attached action",
		VotingDurationSecs: defaultDura,
		TreasuryAction:     action,
	})
	return proposalAddress(dao, id), id
}

// saltFor builds a deterministic per-voter salt.
func saltFor(name string) Hash32 {
	var h Hash32
	copy(h[:], sdk.DeriveAddress([]byte("salt"), []byte(name)).Bytes())
	return h
}

// commitAs computes and submits a commitment for the voter.
func (te *testEnv) commitAs(dao sdk.Address, id uint64, voter sdk.Address, vote bool, salt Hash32, keeper *sdk.Address) {
	te.t.Helper()
	te.mustExec(voter, CommitVote, CommitVoteArgs{
		Dao:             dao,
		ProposalId:      id,
		Commitment:      ComputeCommitment(vote, salt, voter),
		RevealAuthority: keeper,
	})
}

// revealAs submits the matching reveal signed by the revealer.
func (te *testEnv) revealAs(dao sdk.Address, id uint64, voter, revealer sdk.Address, vote bool, salt Hash32) {
	te.t.Helper()
	te.mustExec(revealer, RevealVote, RevealVoteArgs{
		Dao:        dao,
		ProposalId: id,
		Voter:      voter,
		Vote:       vote,
		Salt:       salt,
	})
}
