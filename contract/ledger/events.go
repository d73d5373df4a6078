package ledger

import "fmt"

// emit forwards one terse line to the host sink, dropping it when unset.
func (l *Ledger) emit(line string) {
	if l.log != nil {
		l.log(line)
	}
}

// emitTransfer writes a tiny "tx" log so watchers can replay balances from logs only.
func (l *Ledger) emitTransfer(from, to string, amount uint64) {
	l.emit(fmt.Sprintf("tx|from:%s|to:%s|am:%d", from, to, amount))
}

// emitApproval records allowance changes with the post-change value.
func (l *Ledger) emitApproval(owner, spender string, amount uint64) {
	l.emit(fmt.Sprintf("ap|ow:%s|sp:%s|am:%d", owner, spender, amount))
}

// emitMint and emitBurn mark the only two places total supply moves.
func (l *Ledger) emitMint(to string, amount uint64) {
	l.emit(fmt.Sprintf("mint|to:%s|am:%d", to, amount))
}

func (l *Ledger) emitBurn(from string, amount uint64) {
	l.emit(fmt.Sprintf("burn|from:%s|am:%d", from, amount))
}

// emitReward keeps reward payouts distinguishable from plain transfers.
func (l *Ledger) emitReward(to string, amount uint64) {
	l.emit(fmt.Sprintf("rw|to:%s|am:%d", to, amount))
}
