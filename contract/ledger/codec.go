package ledger

import (
	"ucic_contracts/codec"
	"ucic_contracts/state"
)

// EncodeAccount packs an Account into bytes so storage stays lean and no json noise leaks.
// Example payload: EncodeAccount(&Account{Address: "hive:alice", Balance: 5 * Unit})
func EncodeAccount(a *Account) []byte {
	w := codec.NewWriter()
	w.WriteString(a.Address.String())
	w.WriteUint64(a.Balance)
	w.WriteInt64(a.CreatedAt)
	w.WriteUint64(a.TxCount)
	return w.Bytes()
}

// DecodeAccount reads back the fields emitted by EncodeAccount in exact order.
// Example payload: DecodeAccount(EncodeAccount(&Account{Address: "hive:alice"}))
func DecodeAccount(data []byte) (*Account, error) {
	r := codec.NewReader(data)
	a := &Account{}
	addr, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	a.Address = state.Address(addr)
	if a.Balance, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if a.TxCount, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	return a, nil
}

// EncodeTxEntry serializes one history line for the paginated per-account log.
func EncodeTxEntry(e *TxEntry) []byte {
	w := codec.NewWriter()
	w.WriteUint64(e.Seq)
	w.WriteUint8(byte(e.Kind))
	w.WriteString(e.From.String())
	w.WriteString(e.To.String())
	w.WriteUint64(e.Amount)
	w.WriteInt64(e.Timestamp)
	return w.Bytes()
}

// DecodeTxEntry is handy for explorers reading stored history directly.
func DecodeTxEntry(data []byte) (*TxEntry, error) {
	r := codec.NewReader(data)
	e := &TxEntry{}
	var err error
	if e.Seq, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	kind, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	e.Kind = TxKind(kind)
	from, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	e.From = state.Address(from)
	to, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	e.To = state.Address(to)
	if e.Amount, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if e.Timestamp, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return e, nil
}
