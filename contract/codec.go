package contract

import (
	"bytes"
	"encoding/binary"

	"github.com/minio/sha256-simd"
	"github.com/pkg/errors"

	"private_dao/sdk"
)

// Account bytes start with an 8-byte type discriminant, then little-endian
// fields with length-prefixed variable strings.

// accountDiscriminator tags each record kind so a key-space mixup surfaces
// as InvalidAccountData instead of a silently misread struct.
func accountDiscriminator(name string) [8]byte {
	sum := sha256.Sum256([]byte("account:" + name))
	var d [8]byte
	copy(d[:], sum[:8])
	return d
}

var (
	daoDiscriminator         = accountDiscriminator("Dao")
	proposalDiscriminator    = accountDiscriminator("Proposal")
	voterRecordDiscriminator = accountDiscriminator("VoterRecord")
	delegationDiscriminator  = accountDiscriminator("Delegation")
	voterWeightDiscriminator = accountDiscriminator("VoterWeightRecord")
)

type binWriter struct {
	buf bytes.Buffer
}

func newWriter(disc [8]byte) *binWriter {
	w := &binWriter{}
	w.buf.Write(disc[:])
	return w
}

func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

func (w *binWriter) writeByte(v byte) {
	w.buf.WriteByte(v)
}

func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) writeAddress(a sdk.Address) {
	w.buf.Write(a.Bytes())
}

func (w *binWriter) writeHash(h Hash32) {
	w.buf.Write(h[:])
}

func (w *binWriter) writeOptionalAddress(ptr *sdk.Address) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeAddress(*ptr)
}

func (w *binWriter) writeOptionalUint64(ptr *uint64) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeUint64(*ptr)
}

func (w *binWriter) writeOptionalByte(ptr *uint8) {
	if ptr == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeByte(*ptr)
}

type binReader struct {
	data []byte
	pos  int
}

func newReader(data []byte, disc [8]byte) (*binReader, error) {
	if len(data) < 8 || !bytes.Equal(data[:8], disc[:]) {
		return nil, errors.New("account discriminant mismatch")
	}
	return &binReader{data: data, pos: 8}, nil
}

func (r *binReader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, errors.New("unexpected EOF")
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *binReader) readByte() (byte, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.readByte()
	return b == 1, err
}

func (r *binReader) readUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readVarUint() (uint64, error) {
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("bad varint")
	}
	r.pos += n
	return v, nil
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *binReader) readAddress() (sdk.Address, error) {
	var a sdk.Address
	b, err := r.take(32)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

func (r *binReader) readHash() (Hash32, error) {
	var h Hash32
	b, err := r.take(32)
	if err != nil {
		return h, err
	}
	copy(h[:], b)
	return h, nil
}

func (r *binReader) readOptionalAddress() (*sdk.Address, error) {
	present, err := r.readBool()
	if err != nil || !present {
		return nil, err
	}
	a, err := r.readAddress()
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *binReader) readOptionalUint64() (*uint64, error) {
	present, err := r.readBool()
	if err != nil || !present {
		return nil, err
	}
	v, err := r.readUint64()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *binReader) readOptionalByte() (*uint8, error) {
	present, err := r.readBool()
	if err != nil || !present {
		return nil, err
	}
	v, err := r.readByte()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ------------------------------------------------------------------
// Record encoders
// ------------------------------------------------------------------

// EncodeDao serializes a Dao record into deterministic storage bytes.
func EncodeDao(d *Dao) []byte {
	w := newWriter(daoDiscriminator)
	w.writeAddress(d.Authority)
	w.writeString(d.Name)
	w.writeAddress(d.GovernanceTokenMint)
	w.writeByte(d.QuorumPercentage)
	w.writeUint64(d.MinTokensToVote)
	w.writeInt64(d.RevealWindowSecs)
	w.writeInt64(d.ExecutionDelaySecs)
	w.writeByte(byte(d.Voting.Mode))
	w.writeByte(d.Voting.CapitalThreshold)
	w.writeByte(d.Voting.CommunityThreshold)
	w.writeUint64(d.ProposalCount)
	w.writeOptionalAddress(d.MigratedFrom)
	return w.bytes()
}

// DecodeDao parses storage bytes back into a Dao record.
func DecodeDao(data []byte) (*Dao, error) {
	r, err := newReader(data, daoDiscriminator)
	if err != nil {
		return nil, errors.Wrap(err, "dao")
	}
	d := &Dao{}
	if d.Authority, err = r.readAddress(); err != nil {
		return nil, err
	}
	if d.Name, err = r.readString(); err != nil {
		return nil, err
	}
	if d.GovernanceTokenMint, err = r.readAddress(); err != nil {
		return nil, err
	}
	if d.QuorumPercentage, err = r.readByte(); err != nil {
		return nil, err
	}
	if d.MinTokensToVote, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.RevealWindowSecs, err = r.readInt64(); err != nil {
		return nil, err
	}
	if d.ExecutionDelaySecs, err = r.readInt64(); err != nil {
		return nil, err
	}
	mode, err := r.readByte()
	if err != nil {
		return nil, err
	}
	d.Voting.Mode = VotingMode(mode)
	if d.Voting.CapitalThreshold, err = r.readByte(); err != nil {
		return nil, err
	}
	if d.Voting.CommunityThreshold, err = r.readByte(); err != nil {
		return nil, err
	}
	if d.ProposalCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.MigratedFrom, err = r.readOptionalAddress(); err != nil {
		return nil, err
	}
	return d, nil
}

func encodeTreasuryAction(w *binWriter, a *TreasuryAction) {
	if a == nil {
		w.writeBool(false)
		return
	}
	w.writeBool(true)
	w.writeByte(byte(a.Kind))
	w.writeUint64(a.AmountLamports)
	w.writeAddress(a.Recipient)
	w.writeOptionalAddress(a.TokenMint)
}

func decodeTreasuryAction(r *binReader) (*TreasuryAction, error) {
	present, err := r.readBool()
	if err != nil || !present {
		return nil, err
	}
	a := &TreasuryAction{}
	kind, err := r.readByte()
	if err != nil {
		return nil, err
	}
	a.Kind = TreasuryActionKind(kind)
	if a.AmountLamports, err = r.readUint64(); err != nil {
		return nil, err
	}
	if a.Recipient, err = r.readAddress(); err != nil {
		return nil, err
	}
	if a.TokenMint, err = r.readOptionalAddress(); err != nil {
		return nil, err
	}
	return a, nil
}

// EncodeProposal serializes a Proposal record into storage bytes.
func EncodeProposal(p *Proposal) []byte {
	w := newWriter(proposalDiscriminator)
	w.writeAddress(p.Dao)
	w.writeAddress(p.Proposer)
	w.writeUint64(p.ProposalId)
	w.writeString(p.Title)
	w.writeString(p.Description)
	w.writeByte(byte(p.Status))
	w.writeInt64(p.VotingEnd)
	w.writeInt64(p.RevealEnd)
	w.writeUint64(p.YesCapital)
	w.writeUint64(p.NoCapital)
	w.writeUint64(p.YesCommunity)
	w.writeUint64(p.NoCommunity)
	w.writeUint64(p.CommitCount)
	w.writeUint64(p.RevealCount)
	encodeTreasuryAction(w, p.TreasuryAction)
	w.writeInt64(p.ExecutionUnlocksAt)
	w.writeBool(p.IsExecuted)
	return w.bytes()
}

// DecodeProposal parses storage bytes back into a Proposal record.
func DecodeProposal(data []byte) (*Proposal, error) {
	r, err := newReader(data, proposalDiscriminator)
	if err != nil {
		return nil, errors.Wrap(err, "proposal")
	}
	p := &Proposal{}
	if p.Dao, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.Proposer, err = r.readAddress(); err != nil {
		return nil, err
	}
	if p.ProposalId, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.Title, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	status, err := r.readByte()
	if err != nil {
		return nil, err
	}
	p.Status = ProposalStatus(status)
	if p.VotingEnd, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.RevealEnd, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.YesCapital, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.NoCapital, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.YesCommunity, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.NoCommunity, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.CommitCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.RevealCount, err = r.readUint64(); err != nil {
		return nil, err
	}
	if p.TreasuryAction, err = decodeTreasuryAction(r); err != nil {
		return nil, err
	}
	if p.ExecutionUnlocksAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.IsExecuted, err = r.readBool(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeVoterRecord serializes a VoterRecord into storage bytes.
func EncodeVoterRecord(v *VoterRecord) []byte {
	w := newWriter(voterRecordDiscriminator)
	w.writeAddress(v.Proposal)
	w.writeAddress(v.Voter)
	w.writeHash(v.Commitment)
	w.writeUint64(v.WeightCapital)
	w.writeUint64(v.WeightCommunity)
	w.writeOptionalAddress(v.RevealAuthority)
	w.writeBool(v.Revealed)
	w.writeBool(v.VotedYes)
	return w.bytes()
}

// DecodeVoterRecord parses storage bytes back into a VoterRecord.
func DecodeVoterRecord(data []byte) (*VoterRecord, error) {
	r, err := newReader(data, voterRecordDiscriminator)
	if err != nil {
		return nil, errors.Wrap(err, "voter record")
	}
	v := &VoterRecord{}
	if v.Proposal, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.Voter, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.Commitment, err = r.readHash(); err != nil {
		return nil, err
	}
	if v.WeightCapital, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.WeightCommunity, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.RevealAuthority, err = r.readOptionalAddress(); err != nil {
		return nil, err
	}
	if v.Revealed, err = r.readBool(); err != nil {
		return nil, err
	}
	if v.VotedYes, err = r.readBool(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeDelegation serializes a Delegation into storage bytes.
func EncodeDelegation(d *Delegation) []byte {
	w := newWriter(delegationDiscriminator)
	w.writeAddress(d.Proposal)
	w.writeAddress(d.Delegator)
	w.writeAddress(d.Delegatee)
	w.writeUint64(d.DelegatedCapital)
	w.writeUint64(d.DelegatedCommunity)
	w.writeBool(d.IsUsed)
	return w.bytes()
}

// DecodeDelegation parses storage bytes back into a Delegation.
func DecodeDelegation(data []byte) (*Delegation, error) {
	r, err := newReader(data, delegationDiscriminator)
	if err != nil {
		return nil, errors.Wrap(err, "delegation")
	}
	d := &Delegation{}
	if d.Proposal, err = r.readAddress(); err != nil {
		return nil, err
	}
	if d.Delegator, err = r.readAddress(); err != nil {
		return nil, err
	}
	if d.Delegatee, err = r.readAddress(); err != nil {
		return nil, err
	}
	if d.DelegatedCapital, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.DelegatedCommunity, err = r.readUint64(); err != nil {
		return nil, err
	}
	if d.IsUsed, err = r.readBool(); err != nil {
		return nil, err
	}
	return d, nil
}

// EncodeVoterWeightRecord serializes the export record into storage bytes.
func EncodeVoterWeightRecord(v *VoterWeightRecord) []byte {
	w := newWriter(voterWeightDiscriminator)
	w.writeAddress(v.Realm)
	w.writeAddress(v.GoverningTokenMint)
	w.writeAddress(v.GoverningTokenOwner)
	w.writeUint64(v.VoterWeight)
	w.writeOptionalUint64(v.VoterWeightExpiry)
	w.writeOptionalByte(v.WeightAction)
	w.writeOptionalAddress(v.WeightActionTarget)
	return w.bytes()
}

// DecodeVoterWeightRecord parses storage bytes back into the export record.
func DecodeVoterWeightRecord(data []byte) (*VoterWeightRecord, error) {
	r, err := newReader(data, voterWeightDiscriminator)
	if err != nil {
		return nil, errors.Wrap(err, "voter weight record")
	}
	v := &VoterWeightRecord{}
	if v.Realm, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.GoverningTokenMint, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.GoverningTokenOwner, err = r.readAddress(); err != nil {
		return nil, err
	}
	if v.VoterWeight, err = r.readUint64(); err != nil {
		return nil, err
	}
	if v.VoterWeightExpiry, err = r.readOptionalUint64(); err != nil {
		return nil, err
	}
	if v.WeightAction, err = r.readOptionalByte(); err != nil {
		return nil, err
	}
	if v.WeightActionTarget, err = r.readOptionalAddress(); err != nil {
		return nil, err
	}
	return v, nil
}
