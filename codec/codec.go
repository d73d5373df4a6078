// Package codec implements the deterministic binary encoding every stored
// record passes through. Determinism matters because stored bytes feed the
// audit hashing: the same record must always produce the same blob.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sort"
)

type Writer struct {
	buf bytes.Buffer
}

// NewWriter spins up a fresh writer so we dont leak old bytes between encodes.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// WriteUint8 emits a single raw byte, used for enum tags.
func (w *Writer) WriteUint8(b byte) {
	w.buf.WriteByte(b)
}

// WriteBool squashes bools into a single byte flag for deterministic payloads.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// WriteUint64 writes big endian numbers so tooling can read them without guessing.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

// WriteVarUint uses varints to keep counts and lens compact.
func (w *Writer) WriteVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// WriteString prefixes its length then dumps UTF-8 directly.
func (w *Writer) WriteString(s string) {
	w.WriteVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

// WriteOptionalString writes a presence bit so decoders know if data follows.
func (w *Writer) WriteOptionalString(ptr *string) {
	if ptr == nil {
		w.WriteBool(false)
		return
	}
	w.WriteBool(true)
	w.WriteString(*ptr)
}

// WriteStringSlice length-prefixes and dumps each element in order.
func (w *Writer) WriteStringSlice(ss []string) {
	w.WriteVarUint(uint64(len(ss)))
	for _, s := range ss {
		w.WriteString(s)
	}
}

// WriteStringMap iterates keys in sorted order so binary blobs are stable.
func (w *Writer) WriteStringMap(m map[string]string) {
	if m == nil {
		w.WriteVarUint(0)
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	w.WriteVarUint(uint64(len(keys)))
	for _, k := range keys {
		w.WriteString(k)
		w.WriteString(m[k])
	}
}

// WriteBytes length-prefixes an opaque blob such as a hash digest.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteVarUint(uint64(len(b)))
	w.buf.Write(b)
}

// ------------------------------------------------------------------
// Decoder helpers
// ------------------------------------------------------------------

type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps raw bytes so we can peek sequentially w/out copying.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining tells whether more bytes follow, used for optional trailing fields.
func (r *Reader) Remaining() bool { return r.pos < len(r.data) }

// ReadByte grabs the next byte and bumps the cursor, errors on EOF.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadBool restores bools stored via WriteBool above.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	return b == 1, nil
}

// ReadUint64 decodes big endian integers for ids and totals.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.pos+8 > len(r.data) {
		return 0, errors.New("unexpected EOF")
	}
	val := binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return val, nil
}

// ReadInt64 simply casts the unsigned read, matching the writer logic.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// ReadVarUint undoes the compact varint encoding for lengths/counts.
func (r *Reader) ReadVarUint() (uint64, error) {
	val, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		return 0, errors.New("invalid varuint")
	}
	r.pos += n
	return val, nil
}

// ReadString reads the varint length then slices out the utf8 chunk.
func (r *Reader) ReadString() (string, error) {
	l, err := r.ReadVarUint()
	if err != nil {
		return "", err
	}
	if r.pos+int(l) > len(r.data) {
		return "", errors.New("unexpected EOF")
	}
	s := string(r.data[r.pos : r.pos+int(l)])
	r.pos += int(l)
	return s, nil
}

// ReadOptionalString checks the presence byte, then returns pointer so callers know nil.
func (r *Reader) ReadOptionalString() (*string, error) {
	ok, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	str, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return &str, nil
}

// ReadStringSlice rebuilds a slice written by WriteStringSlice.
func (r *Reader) ReadStringSlice() ([]string, error) {
	count, err := r.ReadVarUint()
	if err != nil {
		return nil, err
	}
	out := make([]string, count)
	for i := uint64(0); i < count; i++ {
		if out[i], err = r.ReadString(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ReadStringMap loops len times and rebuilds the deterministic meta map.
func (r *Reader) ReadStringMap() (map[string]string, error) {
	count, err := r.ReadVarUint()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return map[string]string{}, nil
	}
	result := make(map[string]string, count)
	for i := uint64(0); i < count; i++ {
		key, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		val, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		result[key] = val
	}
	return result, nil
}

// ReadBytes slices out a blob written by WriteBytes.
func (r *Reader) ReadBytes() ([]byte, error) {
	l, err := r.ReadVarUint()
	if err != nil {
		return nil, err
	}
	if r.pos+int(l) > len(r.data) {
		return nil, errors.New("unexpected EOF")
	}
	b := make([]byte, l)
	copy(b, r.data[r.pos:r.pos+int(l)])
	r.pos += int(l)
	return b, nil
}
