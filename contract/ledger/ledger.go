// Package ledger implements the UC utility token: balances, allowances,
// treasury movements, reward payouts, and a per-account transaction log.
// Every mutating call is a single deterministic step over host-owned state
// and reports success as a bool; nothing panics on bad input.
package ledger

import (
	"strconv"

	"ucic_contracts/state"
)

type Ledger struct {
	st  state.Store
	log state.LogFunc
}

// New wires the ledger onto its store and mints the initial supply to the
// treasury if the store is fresh. Passing the same store again resumes the
// existing ledger untouched.
func New(st state.Store, log state.LogFunc, now int64) *Ledger {
	l := &Ledger{st: st, log: log}
	if st.Get(supplyKey()) == nil {
		l.setSupply(InitialSupply)
		a := &Account{Address: TreasuryAddress, Balance: InitialSupply, CreatedAt: now}
		state.AddToIndex(st, idxAccounts, TreasuryAddress.String())
		l.recordTx(a, TxMint, "", TreasuryAddress, InitialSupply, now)
		l.emitMint(TreasuryAddress.String(), InitialSupply)
	}
	return l
}

// ------------------------------------------------------------------
// account storage
// ------------------------------------------------------------------

func (l *Ledger) getAccount(addr state.Address) *Account {
	ptr := l.st.Get(accountKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	a, err := DecodeAccount([]byte(*ptr))
	if err != nil {
		return nil
	}
	return a
}

func (l *Ledger) putAccount(a *Account) {
	l.st.Set(accountKey(a.Address), string(EncodeAccount(a)))
}

// ensureAccount auto-registers on first touch, mirroring how transfers to
// fresh addresses behave on chain.
func (l *Ledger) ensureAccount(addr state.Address, now int64) *Account {
	if a := l.getAccount(addr); a != nil {
		return a
	}
	a := &Account{Address: addr, CreatedAt: now}
	l.putAccount(a)
	state.AddToIndex(l.st, idxAccounts, addr.String())
	return a
}

func (l *Ledger) setSupply(n uint64) {
	l.st.Set(supplyKey(), strconv.FormatUint(n, 10))
}

// TotalSupply reports the current circulating supply in base units.
func (l *Ledger) TotalSupply() uint64 {
	ptr := l.st.Get(supplyKey())
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// RegisterAccount creates an empty account explicitly. Fails on malformed
// addresses and on addresses that already exist.
func (l *Ledger) RegisterAccount(addr state.Address, now int64) bool {
	if !addr.IsValid() {
		return false
	}
	if l.getAccount(addr) != nil {
		return false
	}
	l.ensureAccount(addr, now)
	return true
}

// AccountExists reports whether the address has ever held or received funds.
func (l *Ledger) AccountExists(addr state.Address) bool {
	return l.getAccount(addr) != nil
}

// BalanceOf returns the balance in base units, zero for unknown addresses.
func (l *Ledger) BalanceOf(addr state.Address) uint64 {
	a := l.getAccount(addr)
	if a == nil {
		return 0
	}
	return a.Balance
}

// TreasuryBalance is a convenience lookup for the reward pool account.
func (l *Ledger) TreasuryBalance() uint64 {
	return l.BalanceOf(TreasuryAddress)
}

// ------------------------------------------------------------------
// transfers
// ------------------------------------------------------------------

// move debits from and credits to after every guard has passed. Callers
// validated addresses already; this is the single place balances change.
func (l *Ledger) move(from, to state.Address, amount uint64, kind TxKind, now int64) bool {
	if amount == 0 || from == to {
		return false
	}
	src := l.getAccount(from)
	if src == nil || src.Balance < amount {
		return false
	}
	dst := l.ensureAccount(to, now)
	src.Balance -= amount
	dst.Balance += amount
	l.putAccount(src)
	l.putAccount(dst)
	l.recordTx(src, kind, from, to, amount, now)
	l.recordTx(dst, kind, from, to, amount, now)
	return true
}

// Transfer pays base units out of the treasury, auto-registering the
// recipient on first touch. All circulating tokens originate here or in
// the reward path; accounts move funds between each other only through
// the allowance mechanism.
func (l *Ledger) Transfer(to state.Address, amount uint64, now int64) bool {
	if !to.IsValid() {
		return false
	}
	if !l.move(TreasuryAddress, to, amount, TxTransfer, now) {
		return false
	}
	l.emitTransfer(TreasuryAddress.String(), to.String(), amount)
	return true
}

// ------------------------------------------------------------------
// allowances
// ------------------------------------------------------------------

func (l *Ledger) getAllowance(owner, spender state.Address) uint64 {
	ptr := l.st.Get(allowanceKey(owner, spender))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func (l *Ledger) setAllowance(owner, spender state.Address, amount uint64) {
	key := allowanceKey(owner, spender)
	if amount == 0 {
		l.st.Delete(key)
		return
	}
	l.st.Set(key, strconv.FormatUint(amount, 10))
}

// Allowance reports how much spender may still move on owner's behalf.
func (l *Ledger) Allowance(owner, spender state.Address) uint64 {
	return l.getAllowance(owner, spender)
}

// Approve overwrites the allowance to exactly amount.
func (l *Ledger) Approve(owner, spender state.Address, amount uint64) bool {
	if !owner.IsValid() || !spender.IsValid() || owner == spender {
		return false
	}
	l.setAllowance(owner, spender, amount)
	l.emitApproval(owner.String(), spender.String(), amount)
	return true
}

// IncreaseAllowance bumps the allowance, failing on uint64 overflow.
func (l *Ledger) IncreaseAllowance(owner, spender state.Address, amount uint64) bool {
	if !owner.IsValid() || !spender.IsValid() || owner == spender || amount == 0 {
		return false
	}
	cur := l.getAllowance(owner, spender)
	if cur+amount < cur {
		return false
	}
	l.setAllowance(owner, spender, cur+amount)
	l.emitApproval(owner.String(), spender.String(), cur+amount)
	return true
}

// DecreaseAllowance lowers the allowance and fails when it would go negative.
func (l *Ledger) DecreaseAllowance(owner, spender state.Address, amount uint64) bool {
	if !owner.IsValid() || !spender.IsValid() || amount == 0 {
		return false
	}
	cur := l.getAllowance(owner, spender)
	if cur < amount {
		return false
	}
	l.setAllowance(owner, spender, cur-amount)
	l.emitApproval(owner.String(), spender.String(), cur-amount)
	return true
}

// TransferFrom spends an allowance: the allowance is decremented by exactly
// the moved amount, and nothing changes when the balance check fails.
func (l *Ledger) TransferFrom(owner, spender, to state.Address, amount uint64, now int64) bool {
	if !owner.IsValid() || !spender.IsValid() || !to.IsValid() {
		return false
	}
	if l.getAllowance(owner, spender) < amount {
		return false
	}
	if !l.move(owner, to, amount, TxTransfer, now) {
		return false
	}
	l.setAllowance(owner, spender, l.getAllowance(owner, spender)-amount)
	l.emitTransfer(owner.String(), to.String(), amount)
	return true
}

// ------------------------------------------------------------------
// supply changes
// ------------------------------------------------------------------

// Mint creates new base units for an account. The host gates who may call
// this; the ledger only enforces arithmetic sanity.
func (l *Ledger) Mint(to state.Address, amount uint64, now int64) bool {
	if !to.IsValid() || amount == 0 {
		return false
	}
	supply := l.TotalSupply()
	if supply+amount < supply {
		return false
	}
	a := l.ensureAccount(to, now)
	a.Balance += amount
	l.putAccount(a)
	l.setSupply(supply + amount)
	l.recordTx(a, TxMint, "", to, amount, now)
	l.emitMint(to.String(), amount)
	return true
}

// Burn destroys base units held by an account, shrinking total supply.
func (l *Ledger) Burn(from state.Address, amount uint64, now int64) bool {
	if !from.IsValid() || amount == 0 {
		return false
	}
	a := l.getAccount(from)
	if a == nil || a.Balance < amount {
		return false
	}
	a.Balance -= amount
	l.putAccount(a)
	l.setSupply(l.TotalSupply() - amount)
	l.recordTx(a, TxBurn, from, "", amount, now)
	l.emitBurn(from.String(), amount)
	return true
}

// ------------------------------------------------------------------
// treasury
// ------------------------------------------------------------------

// DistributeReward pays out of the treasury. This is the only entry point
// the governance engine holds a capability for.
func (l *Ledger) DistributeReward(to state.Address, amount uint64, now int64) bool {
	if !to.IsValid() || to == TreasuryAddress {
		return false
	}
	if !l.move(TreasuryAddress, to, amount, TxReward, now) {
		return false
	}
	l.emitReward(to.String(), amount)
	return true
}

// TreasuryWithdraw moves funds out of the treasury for non-reward purposes.
func (l *Ledger) TreasuryWithdraw(to state.Address, amount uint64, now int64) bool {
	if !to.IsValid() || to == TreasuryAddress {
		return false
	}
	if !l.move(TreasuryAddress, to, amount, TxTreasuryOut, now) {
		return false
	}
	l.emitTransfer(TreasuryAddress.String(), to.String(), amount)
	return true
}

// TreasuryDeposit returns funds from an account into the treasury.
func (l *Ledger) TreasuryDeposit(from state.Address, amount uint64, now int64) bool {
	if !from.IsValid() || from == TreasuryAddress {
		return false
	}
	if !l.move(from, TreasuryAddress, amount, TxTreasuryIn, now) {
		return false
	}
	l.emitTransfer(from.String(), TreasuryAddress.String(), amount)
	return true
}

// ------------------------------------------------------------------
// integrity and history
// ------------------------------------------------------------------

// VerifyIntegrity walks every registered account and checks that balances
// still sum to the recorded total supply.
func (l *Ledger) VerifyIntegrity() bool {
	var sum uint64
	for _, member := range state.IndexMembers(l.st, idxAccounts) {
		a := l.getAccount(state.Address(member))
		if a == nil {
			return false
		}
		next := sum + a.Balance
		if next < sum {
			return false
		}
		sum = next
	}
	return sum == l.TotalSupply()
}

// recordTx appends one history line under the account's own sequence. The
// caller already holds the up-to-date record and persists it afterwards.
func (l *Ledger) recordTx(a *Account, kind TxKind, from, to state.Address, amount uint64, now int64) {
	a.TxCount++
	entry := &TxEntry{Seq: a.TxCount, Kind: kind, From: from, To: to, Amount: amount, Timestamp: now}
	l.st.Set(txLogKey(a.Address, a.TxCount), string(EncodeTxEntry(entry)))
	l.putAccount(a)
}

// TransactionLog pages through an account's history starting at seq from
// (1-based, 0 means from the beginning), returning at most limit entries.
func (l *Ledger) TransactionLog(addr state.Address, from uint64, limit int) []TxEntry {
	a := l.getAccount(addr)
	if a == nil || limit <= 0 {
		return nil
	}
	if from == 0 {
		from = 1
	}
	out := make([]TxEntry, 0, limit)
	for seq := from; seq <= a.TxCount && len(out) < limit; seq++ {
		ptr := l.st.Get(txLogKey(addr, seq))
		if ptr == nil || *ptr == "" {
			continue
		}
		e, err := DecodeTxEntry([]byte(*ptr))
		if err != nil {
			continue
		}
		out = append(out, *e)
	}
	return out
}

// AccountCount reports how many addresses the ledger tracks.
func (l *Ledger) AccountCount() int {
	return state.IndexLen(l.st, idxAccounts)
}
