package state

// maintaining index keys for querying data in various ways

import (
	"encoding/json"
	"strconv"
)

// maxChunkSize splits every index into chunks of X entries to avoid
// overflowing the max size of a key/value in the contract state.
const maxChunkSize = 2500

// chunkCounterKey stores number of chunks for a base index
func chunkCounterKey(base string) string {
	return base + ":chunks"
}

func chunkKey(base string, chunk int) string {
	return base + ":" + strconv.Itoa(chunk)
}

// getChunkCount reads the number of chunks for an index
func getChunkCount(s Store, baseKey string) int {
	ptr := s.Get(chunkCounterKey(baseKey))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.Atoi(*ptr)
	return n
}

func setChunkCount(s Store, baseKey string, n int) {
	s.Set(chunkCounterKey(baseKey), strconv.Itoa(n))
}

func readChunk(s Store, key string) []string {
	ptr := s.Get(key)
	if ptr == nil || *ptr == "" {
		return nil
	}
	var members []string
	if err := json.Unmarshal([]byte(*ptr), &members); err != nil {
		return nil
	}
	return members
}

func writeChunk(s Store, key string, members []string) {
	b, err := json.Marshal(members)
	if err != nil {
		return
	}
	s.Set(key, string(b))
}

// AddToIndex ensures member exists across all chunks (no duplicates).
func AddToIndex(s Store, baseKey string, member string) {
	chunks := getChunkCount(s, baseKey)
	// search existing chunks for duplicates or free space
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		members := readChunk(s, key)
		for _, e := range members {
			if e == member {
				return // already present
			}
		}
		if len(members) > 0 && len(members) < maxChunkSize {
			writeChunk(s, key, append(members, member))
			return
		}
	}
	// not found / no space -> create new chunk
	writeChunk(s, chunkKey(baseKey, chunks), []string{member})
	setChunkCount(s, baseKey, chunks+1)
}

// RemoveFromIndex removes member from whichever chunk it is in.
func RemoveFromIndex(s Store, baseKey string, member string) {
	chunks := getChunkCount(s, baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		members := readChunk(s, key)
		if len(members) == 0 {
			continue
		}
		kept := members[:0]
		found := false
		for _, e := range members {
			if e == member {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		if found {
			writeChunk(s, key, kept)
			return
		}
	}
}

// IndexMembers collects all members across all chunks.
func IndexMembers(s Store, baseKey string) []string {
	all := []string{}
	chunks := getChunkCount(s, baseKey)
	for i := 0; i < chunks; i++ {
		all = append(all, readChunk(s, chunkKey(baseKey, i))...)
	}
	return all
}

// IndexContains checks all chunks for a specific member.
func IndexContains(s Store, baseKey string, member string) bool {
	chunks := getChunkCount(s, baseKey)
	for i := 0; i < chunks; i++ {
		for _, e := range readChunk(s, chunkKey(baseKey, i)) {
			if e == member {
				return true
			}
		}
	}
	return false
}

// IndexLen counts members without materializing one big slice.
func IndexLen(s Store, baseKey string) int {
	total := 0
	chunks := getChunkCount(s, baseKey)
	for i := 0; i < chunks; i++ {
		total += len(readChunk(s, chunkKey(baseKey, i)))
	}
	return total
}

// GetCount reads the string counter under the key and defaults to zero.
func GetCount(s Store, key string) uint64 {
	ptr := s.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// SetCount stores uint64 counters back as decimal strings for the host kv.
func SetCount(s Store, key string, n uint64) {
	s.Set(key, strconv.FormatUint(n, 10))
}

// NextID bumps the counter under key and returns the new value. IDs start
// at 1 so zero stays free as the "no id" sentinel.
func NextID(s Store, key string) uint64 {
	n := GetCount(s, key) + 1
	SetCount(s, key, n)
	return n
}

// UInt64ToString turns an id back into decimal text for logs.
// Example payload: state.UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}
