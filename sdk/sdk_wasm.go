//go:build wasm

package sdk

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jlexer"
)

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostStateSet(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostStateGet(key *string) *string

//go:wasmimport sdk db.rm_object
func hostStateDelete(key *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk ledger.get_balance
func hostLamportBalance(addr *string) *string

//go:wasmimport sdk ledger.transfer
func hostLamportTransfer(from *string, to *string, amount *string) *string

//go:wasmimport sdk token.get_account
func hostTokenAccount(addr *string) *string

//go:wasmimport sdk token.transfer
func hostTokenTransfer(from *string, to *string, amount *string) *string

//go:wasmimport sdk system.rent_minimum
func hostRentMinimum(arg *string) *string

//go:wasmimport env abort
func hostAbort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func hostRevert(msg, symbol *string)

type wasmHost struct{}

func init() {
	SetHost(wasmHost{})
}

func (wasmHost) Log(msg string) {
	hostLog(&msg)
}

func (wasmHost) Abort(msg string) {
	ln := int32(0)
	hostAbort(&msg, nil, &ln, &ln)
	panic(msg)
}

func (wasmHost) Revert(msg, symbol string) {
	hostRevert(&msg, &symbol)
	panic(symbol)
}

func (wasmHost) StateSet(key, value string) {
	hostStateSet(&key, &value)
}

func (wasmHost) StateGet(key string) *string {
	return hostStateGet(&key)
}

func (wasmHost) StateDelete(key string) {
	hostStateDelete(&key)
}

func (wasmHost) Env() Env {
	raw := hostGetEnv(nil)
	env := Env{}
	if raw == nil {
		return env
	}
	lex := jlexer.Lexer{Data: []byte(*raw)}
	decodeEnv(&lex, &env)
	return env
}

func (wasmHost) LamportBalance(a Address) uint64 {
	addr := a.String()
	return parseHostUint(hostLamportBalance(&addr))
}

func (wasmHost) LamportTransfer(from, to Address, amount uint64) {
	f, t := from.String(), to.String()
	amt := strconv.FormatUint(amount, 10)
	hostLamportTransfer(&f, &t, &amt)
}

func (wasmHost) TokenAccount(a Address) *TokenAccountInfo {
	addr := a.String()
	raw := hostTokenAccount(&addr)
	if raw == nil || *raw == "" {
		return nil
	}
	info := TokenAccountInfo{}
	lex := jlexer.Lexer{Data: []byte(*raw)}
	decodeTokenAccount(&lex, &info)
	return &info
}

func (wasmHost) TokenTransfer(from, to Address, amount uint64) {
	f, t := from.String(), to.String()
	amt := strconv.FormatUint(amount, 10)
	hostTokenTransfer(&f, &t, &amt)
}

func (wasmHost) RentExemptMinimum() uint64 {
	return parseHostUint(hostRentMinimum(nil))
}

func parseHostUint(ptr *string) uint64 {
	if ptr == nil || *ptr == "" {
		return 0
	}
	v, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		wasmHost{}.Abort("host returned a non-numeric amount")
	}
	return v
}

func decodeEnv(in *jlexer.Lexer, out *Env) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "contract.id":
			out.ContractId = string(in.String())
		case "tx.id":
			out.TxId = string(in.String())
		case "block.height":
			out.BlockHeight = in.Uint64()
		case "block.slot":
			out.Slot = in.Uint64()
		case "block.timestamp":
			out.Timestamp = in.Int64()
		case "msg.sender":
			in.AddError(out.Sender.Address.UnmarshalJSON(in.Raw()))
		case "msg.required_auths":
			if in.IsNull() {
				in.Skip()
				break
			}
			in.Delim('[')
			for !in.IsDelim(']') {
				var a Address
				in.AddError(a.UnmarshalJSON(in.Raw()))
				out.Sender.RequiredAuths = append(out.Sender.RequiredAuths, a)
				in.WantComma()
			}
			in.Delim(']')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func decodeTokenAccount(in *jlexer.Lexer, out *TokenAccountInfo) {
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "address":
			in.AddError(out.Address.UnmarshalJSON(in.Raw()))
		case "mint":
			in.AddError(out.Mint.UnmarshalJSON(in.Raw()))
		case "owner":
			in.AddError(out.Owner.UnmarshalJSON(in.Raw()))
		case "amount":
			out.Amount = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}
