package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripScalars(t *testing.T) {
	w := NewWriter()
	w.WriteBool(true)
	w.WriteBool(false)
	w.WriteUint8(42)
	w.WriteUint64(0xDEADBEEF)
	w.WriteInt64(-77)
	w.WriteVarUint(300)
	w.WriteString("hive:alice")

	r := NewReader(w.Bytes())

	b1, err := r.ReadBool()
	require.NoError(t, err)
	assert.True(t, b1)
	b2, err := r.ReadBool()
	require.NoError(t, err)
	assert.False(t, b2)
	tag, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(42), tag)
	u, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xDEADBEEF), u)
	i, err := r.ReadInt64()
	require.NoError(t, err)
	assert.Equal(t, int64(-77), i)
	v, err := r.ReadVarUint()
	require.NoError(t, err)
	assert.Equal(t, uint64(300), v)
	s, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "hive:alice", s)
	assert.False(t, r.Remaining())
}

func TestOptionalString(t *testing.T) {
	val := "notes"
	w := NewWriter()
	w.WriteOptionalString(nil)
	w.WriteOptionalString(&val)

	r := NewReader(w.Bytes())
	none, err := r.ReadOptionalString()
	require.NoError(t, err)
	assert.Nil(t, none)
	some, err := r.ReadOptionalString()
	require.NoError(t, err)
	require.NotNil(t, some)
	assert.Equal(t, "notes", *some)
}

func TestStringMapDeterministic(t *testing.T) {
	m := map[string]string{"zeta": "1", "alpha": "2", "mid": "3"}

	w1 := NewWriter()
	w1.WriteStringMap(m)
	w2 := NewWriter()
	w2.WriteStringMap(map[string]string{"mid": "3", "zeta": "1", "alpha": "2"})
	// same content must produce identical bytes regardless of insertion order
	assert.Equal(t, w1.Bytes(), w2.Bytes())

	r := NewReader(w1.Bytes())
	got, err := r.ReadStringMap()
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestStringSliceAndBytes(t *testing.T) {
	w := NewWriter()
	w.WriteStringSlice([]string{"a", "bb", "ccc"})
	w.WriteBytes([]byte{0x01, 0x02, 0x03})

	r := NewReader(w.Bytes())
	ss, err := r.ReadStringSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "bb", "ccc"}, ss)
	bs, err := r.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, bs)
}

func TestTruncatedInputErrors(t *testing.T) {
	w := NewWriter()
	w.WriteUint64(12345)
	blob := w.Bytes()

	r := NewReader(blob[:4])
	_, err := r.ReadUint64()
	assert.Error(t, err)

	w2 := NewWriter()
	w2.WriteString("a longer string payload")
	short := NewReader(w2.Bytes()[:3])
	_, err = short.ReadString()
	assert.Error(t, err)

	empty := NewReader(nil)
	_, err = empty.ReadByte()
	assert.Error(t, err)
	_, err = empty.ReadVarUint()
	assert.Error(t, err)
}
