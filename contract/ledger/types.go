package ledger

import "ucic_contracts/state"

// Account is the stored record per address. Balances are unsigned base
// units; the math below never lets them wrap.
type Account struct {
	Address   state.Address
	Balance   uint64
	CreatedAt int64
	TxCount   uint64
}

type TxKind byte

const (
	TxTransfer TxKind = iota + 1
	TxMint
	TxBurn
	TxReward
	TxTreasuryIn
	TxTreasuryOut
)

func (k TxKind) String() string {
	switch k {
	case TxTransfer:
		return "transfer"
	case TxMint:
		return "mint"
	case TxBurn:
		return "burn"
	case TxReward:
		return "reward"
	case TxTreasuryIn:
		return "treasury_in"
	case TxTreasuryOut:
		return "treasury_out"
	default:
		return "unknown"
	}
}

// TxEntry is one line of an account's transaction history. Seq numbers are
// per account and start at 1.
type TxEntry struct {
	Seq       uint64
	Kind      TxKind
	From      state.Address
	To        state.Address
	Amount    uint64
	Timestamp int64
}
