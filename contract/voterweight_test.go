package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateVoterWeightRecordTokenWeighted(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)
	realm := actor("realm")

	voter := te.fundedActor("voter")
	te.ledger.MintTokens(voter, te.mint, 12_345)

	slotBefore := te.ledger.Slot()
	res := te.mustExec(voter, UpdateVoterWeightRecord, UpdateVoterWeightArgs{Dao: dao, Realm: realm})
	assert.Equal(t, "12345", res)

	rec := loadVoterWeightRecordIfExists(voterWeightRecordAddress(realm, te.mint, voter))
	require.NotNil(t, rec)
	assert.Equal(t, realm, rec.Realm)
	assert.Equal(t, te.mint, rec.GoverningTokenMint)
	assert.Equal(t, voter, rec.GoverningTokenOwner)
	assert.Equal(t, uint64(12_345), rec.VoterWeight)
	require.NotNil(t, rec.VoterWeightExpiry)
	assert.Equal(t, slotBefore+VoterWeightExpirySlots, *rec.VoterWeightExpiry, "expiry bounded to 100 slots")
	assert.Nil(t, rec.WeightAction)
	assert.Nil(t, rec.WeightActionTarget)
}

func TestUpdateVoterWeightRecordQuadraticModes(t *testing.T) {
	for _, mode := range []string{"quadratic", "dual_chamber"} {
		t.Run(mode, func(t *testing.T) {
			te := newTestEnv(t)
			voting := VotingConfigArgs{Mode: mode}
			if mode == "dual_chamber" {
				voting.CapitalThreshold = 50
				voting.CommunityThreshold = 50
			}
			dao := te.initDao(voting, 0)

			voter := te.fundedActor("voter")
			te.ledger.MintTokens(voter, te.mint, 10_000)

			res := te.mustExec(voter, UpdateVoterWeightRecord, UpdateVoterWeightArgs{
				Dao: dao, Realm: actor("realm"),
			})
			assert.Equal(t, "100", res, "community chamber weight exported")
		})
	}
}

func TestUpdateVoterWeightRecordRefreshes(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(tokenWeighted(), 0)
	realm := actor("realm")

	voter := te.fundedActor("voter")
	te.ledger.MintTokens(voter, te.mint, 100)
	te.mustExec(voter, UpdateVoterWeightRecord, UpdateVoterWeightArgs{Dao: dao, Realm: realm})

	te.ledger.MintTokens(voter, te.mint, 900)
	te.ledger.AdvanceSlot(40)
	res := te.mustExec(voter, UpdateVoterWeightRecord, UpdateVoterWeightArgs{Dao: dao, Realm: realm})
	assert.Equal(t, "1000", res)

	rec := loadVoterWeightRecordIfExists(voterWeightRecordAddress(realm, te.mint, voter))
	require.NotNil(t, rec)
	assert.Equal(t, te.ledger.Slot()-1+VoterWeightExpirySlots, *rec.VoterWeightExpiry)
}

func TestGetVoterWeightRecord(t *testing.T) {
	te := newTestEnv(t)
	dao := te.initDao(VotingConfigArgs{Mode: "quadratic"}, 0)

	voter := te.fundedActor("voter")
	te.ledger.MintTokens(voter, te.mint, 400)

	_, id := te.createProposal(dao, nil)

	res := te.mustExec(actor("anyone"), GetVoterWeightRecord, VoterWeightQueryArgs{
		Dao: dao, ProposalId: id, Voter: voter,
	})
	assert.Equal(t, "0", res, "no commitment yet")

	te.commitAs(dao, id, voter, true, saltFor("voter"), nil)
	res = te.mustExec(actor("anyone"), GetVoterWeightRecord, VoterWeightQueryArgs{
		Dao: dao, ProposalId: id, Voter: voter,
	})
	assert.Equal(t, "20", res, "committed community weight")
}
