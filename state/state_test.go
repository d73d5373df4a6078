package state

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreBasics(t *testing.T) {
	s := NewMemoryStore()
	assert.Nil(t, s.Get("missing"))

	s.Set("k", "v")
	got := s.Get("k")
	require.NotNil(t, got)
	assert.Equal(t, "v", *got)
	assert.Equal(t, 1, s.Len())

	s.Delete("k")
	assert.Nil(t, s.Get("k"))
	assert.Equal(t, 0, s.Len())
}

func TestAddressValidation(t *testing.T) {
	assert.True(t, Address("hive:alice").IsValid())
	assert.False(t, Address("").IsValid())

	long := make([]byte, MaxAddressLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, Address(long).IsValid())
	assert.True(t, Address(long[:MaxAddressLength]).IsValid())
}

func TestAddressDomain(t *testing.T) {
	assert.Equal(t, AddressDomainSystem, Address("system:ucic.treasury").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:oracle").Domain())
	assert.Equal(t, AddressDomainUser, Address("hive:bob").Domain())
}

func TestIndexAddRemoveContains(t *testing.T) {
	s := NewMemoryStore()
	AddToIndex(s, "acct", "hive:alice")
	AddToIndex(s, "acct", "hive:bob")
	AddToIndex(s, "acct", "hive:alice") // duplicate, ignored

	assert.Equal(t, 2, IndexLen(s, "acct"))
	assert.True(t, IndexContains(s, "acct", "hive:alice"))
	assert.True(t, IndexContains(s, "acct", "hive:bob"))
	assert.False(t, IndexContains(s, "acct", "hive:carol"))
	assert.ElementsMatch(t, []string{"hive:alice", "hive:bob"}, IndexMembers(s, "acct"))

	RemoveFromIndex(s, "acct", "hive:alice")
	assert.False(t, IndexContains(s, "acct", "hive:alice"))
	assert.Equal(t, 1, IndexLen(s, "acct"))

	// removing a missing member is a no-op
	RemoveFromIndex(s, "acct", "hive:nobody")
	assert.Equal(t, 1, IndexLen(s, "acct"))
}

func TestIndexSpansChunks(t *testing.T) {
	s := NewMemoryStore()
	total := maxChunkSize + 10
	for i := 0; i < total; i++ {
		AddToIndex(s, "big", "m"+strconv.Itoa(i))
	}
	assert.Equal(t, total, IndexLen(s, "big"))
	assert.Equal(t, 2, getChunkCount(s, "big"))
	assert.True(t, IndexContains(s, "big", "m"+strconv.Itoa(total-1)))
}

func TestCountersAndIDs(t *testing.T) {
	s := NewMemoryStore()
	assert.Equal(t, uint64(0), GetCount(s, "count:p"))

	// ids start at 1 so zero stays a sentinel
	assert.Equal(t, uint64(1), NextID(s, "count:p"))
	assert.Equal(t, uint64(2), NextID(s, "count:p"))
	assert.Equal(t, uint64(2), GetCount(s, "count:p"))

	SetCount(s, "count:p", 99)
	assert.Equal(t, uint64(99), GetCount(s, "count:p"))
	assert.Equal(t, "99", UInt64ToString(99))
}
