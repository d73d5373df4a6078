package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucic_contracts/state"
)

const t0 int64 = 1_700_000_000

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(state.NewMemoryStore(), nil, t0)
}

func TestGenesis(t *testing.T) {
	l := newTestLedger(t)
	assert.Equal(t, InitialSupply, l.TotalSupply())
	assert.Equal(t, InitialSupply, l.TreasuryBalance())
	assert.True(t, l.AccountExists(TreasuryAddress))
	assert.True(t, l.VerifyIntegrity())

	// the supply origin shows up as the treasury's first history entry
	log := l.TransactionLog(TreasuryAddress, 0, 10)
	require.Len(t, log, 1)
	assert.Equal(t, TxMint, log[0].Kind)
	assert.Equal(t, InitialSupply, log[0].Amount)
	assert.Equal(t, t0, log[0].Timestamp)
}

func TestGenesisRunsOnce(t *testing.T) {
	st := state.NewMemoryStore()
	l := New(st, nil, t0)
	require.True(t, l.TreasuryWithdraw("hive:alice", 5*Unit, t0))

	// reattaching to the same store must not remint
	l2 := New(st, nil, t0+100)
	assert.Equal(t, InitialSupply, l2.TotalSupply())
	assert.Equal(t, 5*Unit, l2.BalanceOf("hive:alice"))
}

func TestTransferPaysFromTreasury(t *testing.T) {
	l := newTestLedger(t)

	assert.True(t, l.Transfer("hive:alice", 100*Unit, t0))
	assert.Equal(t, 100*Unit, l.BalanceOf("hive:alice"))
	assert.Equal(t, InitialSupply-100*Unit, l.TreasuryBalance())
	assert.Equal(t, InitialSupply, l.TotalSupply())
	assert.True(t, l.AccountExists("hive:alice"), "recipient auto-registered")
	assert.True(t, l.VerifyIntegrity())
}

func TestTransferGuards(t *testing.T) {
	l := newTestLedger(t)

	assert.False(t, l.Transfer("hive:alice", 0, t0), "zero amount")
	assert.False(t, l.Transfer(TreasuryAddress, Unit, t0), "treasury to itself")
	assert.False(t, l.Transfer("hive:alice", InitialSupply+1, t0), "beyond supply")
	assert.False(t, l.Transfer("", Unit, t0), "empty recipient")

	// nothing moved
	assert.Equal(t, uint64(0), l.BalanceOf("hive:alice"))
	assert.Equal(t, InitialSupply, l.TreasuryBalance())
	assert.True(t, l.VerifyIntegrity())
}

func TestAllowanceLifecycle(t *testing.T) {
	l := newTestLedger(t)
	require.True(t, l.TreasuryWithdraw("hive:owner", 50*Unit, t0))

	assert.True(t, l.Approve("hive:owner", "hive:spender", 20*Unit))
	assert.Equal(t, 20*Unit, l.Allowance("hive:owner", "hive:spender"))

	assert.True(t, l.IncreaseAllowance("hive:owner", "hive:spender", 5*Unit))
	assert.Equal(t, 25*Unit, l.Allowance("hive:owner", "hive:spender"))

	assert.True(t, l.DecreaseAllowance("hive:owner", "hive:spender", 10*Unit))
	assert.Equal(t, 15*Unit, l.Allowance("hive:owner", "hive:spender"))

	assert.False(t, l.DecreaseAllowance("hive:owner", "hive:spender", 999*Unit))
	assert.False(t, l.Approve("hive:owner", "hive:owner", Unit), "self approval")
}

func TestTransferFromSpendsExactly(t *testing.T) {
	l := newTestLedger(t)
	require.True(t, l.TreasuryWithdraw("hive:owner", 50*Unit, t0))
	require.True(t, l.Approve("hive:owner", "hive:spender", 30*Unit))

	assert.True(t, l.TransferFrom("hive:owner", "hive:spender", "hive:bob", 12*Unit, t0+1))
	assert.Equal(t, 18*Unit, l.Allowance("hive:owner", "hive:spender"))
	assert.Equal(t, 38*Unit, l.BalanceOf("hive:owner"))
	assert.Equal(t, 12*Unit, l.BalanceOf("hive:bob"))

	// over the remaining allowance
	assert.False(t, l.TransferFrom("hive:owner", "hive:spender", "hive:bob", 19*Unit, t0+2))
	assert.Equal(t, 18*Unit, l.Allowance("hive:owner", "hive:spender"))

	// allowance sufficient but balance is not: allowance must stay untouched
	require.True(t, l.TreasuryDeposit("hive:owner", 37*Unit, t0+3))
	assert.False(t, l.TransferFrom("hive:owner", "hive:spender", "hive:bob", 18*Unit, t0+4))
	assert.Equal(t, 18*Unit, l.Allowance("hive:owner", "hive:spender"))
	assert.True(t, l.VerifyIntegrity())
}

func TestMintAndBurn(t *testing.T) {
	l := newTestLedger(t)

	assert.True(t, l.Mint("hive:alice", 7*Unit, t0))
	assert.Equal(t, InitialSupply+7*Unit, l.TotalSupply())
	assert.Equal(t, 7*Unit, l.BalanceOf("hive:alice"))
	assert.True(t, l.VerifyIntegrity())

	assert.True(t, l.Burn("hive:alice", 3*Unit, t0+1))
	assert.Equal(t, InitialSupply+4*Unit, l.TotalSupply())
	assert.Equal(t, 4*Unit, l.BalanceOf("hive:alice"))
	assert.True(t, l.VerifyIntegrity())

	assert.False(t, l.Burn("hive:alice", 5*Unit, t0+2), "burn above balance")
	assert.False(t, l.Mint("hive:alice", 0, t0+3), "zero mint")
}

func TestRewardDistribution(t *testing.T) {
	l := newTestLedger(t)
	before := l.TreasuryBalance()

	assert.True(t, l.DistributeReward("hive:carol", 2*Unit, t0))
	assert.Equal(t, before-2*Unit, l.TreasuryBalance())
	assert.Equal(t, 2*Unit, l.BalanceOf("hive:carol"))
	assert.True(t, l.VerifyIntegrity())

	assert.False(t, l.DistributeReward(TreasuryAddress, Unit, t0), "treasury to itself")
	assert.False(t, l.DistributeReward("hive:carol", l.TreasuryBalance()+1, t0), "over pool")
}

func TestTreasuryDeposit(t *testing.T) {
	l := newTestLedger(t)
	require.True(t, l.TreasuryWithdraw("hive:alice", 10*Unit, t0))

	assert.True(t, l.TreasuryDeposit("hive:alice", 4*Unit, t0+1))
	assert.Equal(t, 6*Unit, l.BalanceOf("hive:alice"))
	assert.Equal(t, InitialSupply-6*Unit, l.TreasuryBalance())
	assert.True(t, l.VerifyIntegrity())
}

func TestRegisterAccount(t *testing.T) {
	l := newTestLedger(t)

	assert.True(t, l.RegisterAccount("hive:newbie", t0))
	assert.True(t, l.AccountExists("hive:newbie"))
	assert.Equal(t, uint64(0), l.BalanceOf("hive:newbie"))
	assert.False(t, l.RegisterAccount("hive:newbie", t0), "already registered")
	assert.False(t, l.RegisterAccount("", t0), "empty address")
	assert.Equal(t, 2, l.AccountCount())
}

func TestTransactionLogPagination(t *testing.T) {
	l := newTestLedger(t)
	require.True(t, l.TreasuryWithdraw("hive:alice", 100*Unit, t0))

	for i := int64(0); i < 5; i++ {
		require.True(t, l.Transfer("hive:alice", Unit, t0+i))
	}

	// alice has the withdraw plus five treasury payments
	all := l.TransactionLog("hive:alice", 0, 100)
	require.Len(t, all, 6)
	assert.Equal(t, TxTreasuryOut, all[0].Kind)
	assert.Equal(t, TxTransfer, all[1].Kind)
	assert.Equal(t, uint64(1), all[0].Seq)

	page := l.TransactionLog("hive:alice", 3, 2)
	require.Len(t, page, 2)
	assert.Equal(t, uint64(3), page[0].Seq)
	assert.Equal(t, uint64(4), page[1].Seq)

	assert.Nil(t, l.TransactionLog("hive:nobody", 0, 10))
	assert.Nil(t, l.TransactionLog("hive:alice", 0, 0))
}

func TestEventEmission(t *testing.T) {
	var lines []string
	sink := func(line string) { lines = append(lines, line) }
	l := New(state.NewMemoryStore(), sink, t0)

	require.True(t, l.TreasuryWithdraw("hive:alice", 3*Unit, t0))
	require.True(t, l.Transfer("hive:bob", Unit, t0+1))
	require.True(t, l.DistributeReward("hive:bob", Unit, t0+2))

	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[0], "mint|to:system:ucic.treasury")
	assert.Contains(t, lines[1], "tx|from:system:ucic.treasury|to:hive:alice")
	assert.Contains(t, lines[2], "tx|from:system:ucic.treasury|to:hive:bob")
	assert.Contains(t, lines[3], "rw|to:hive:bob")
}

func TestAccountCodecRoundTrip(t *testing.T) {
	a := &Account{Address: "hive:alice", Balance: 123 * Unit, CreatedAt: t0, TxCount: 9}
	got, err := DecodeAccount(EncodeAccount(a))
	require.NoError(t, err)
	assert.Equal(t, a, got)

	e := &TxEntry{Seq: 4, Kind: TxReward, From: TreasuryAddress, To: "hive:bob", Amount: 2 * Unit, Timestamp: t0}
	gotE, err := DecodeTxEntry(EncodeTxEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, gotE)

	_, err = DecodeAccount([]byte{0x01})
	assert.Error(t, err)
}
