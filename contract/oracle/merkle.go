package oracle

import (
	"bytes"

	"lukechampine.com/blake3"
)

// Domain separation bytes keep leaf hashes from ever colliding with
// interior node hashes.
const (
	tagLeaf byte = 0x00
	tagNode byte = 0x01
)

// ProofStep is one sibling on the path from a leaf to the root. Left marks
// whether the sibling sits left of the running hash.
type ProofStep struct {
	Hash []byte
	Left bool
}

// hashLeaf digests one field for the submission tree.
func hashLeaf(data []byte) []byte {
	h := blake3.New(HashSize, nil)
	h.Write([]byte{tagLeaf})
	h.Write(data)
	return h.Sum(nil)
}

func hashNode(left, right []byte) []byte {
	h := blake3.New(HashSize, nil)
	h.Write([]byte{tagNode})
	h.Write(left)
	h.Write(right)
	return h.Sum(nil)
}

// merkleRoot folds the leaf layer upward. An odd node is carried up
// unchanged rather than paired with itself.
func merkleRoot(leaves [][]byte) []byte {
	if len(leaves) == 0 {
		return nil
	}
	level := leaves
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashNode(level[i], level[i+1]))
			} else {
				next = append(next, level[i])
			}
		}
		level = next
	}
	return level[0]
}

// merkleProof collects the sibling path for the leaf at index.
func merkleProof(leaves [][]byte, index int) []ProofStep {
	if index < 0 || index >= len(leaves) {
		return nil
	}
	proof := []ProofStep{}
	level := leaves
	for len(level) > 1 {
		next := make([][]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				if i == index || i+1 == index {
					if i == index {
						proof = append(proof, ProofStep{Hash: level[i+1], Left: false})
					} else {
						proof = append(proof, ProofStep{Hash: level[i], Left: true})
					}
					index = len(next)
				}
				next = append(next, hashNode(level[i], level[i+1]))
			} else {
				if i == index {
					index = len(next)
				}
				next = append(next, level[i])
			}
		}
		level = next
	}
	return proof
}

// VerifyMerkleProof replays the sibling path and compares against root.
// Example payload: VerifyMerkleProof(root, leaf, proof)
func VerifyMerkleProof(root, leaf []byte, proof []ProofStep) bool {
	if len(root) != HashSize || len(leaf) != HashSize {
		return false
	}
	cur := leaf
	for _, step := range proof {
		if len(step.Hash) != HashSize {
			return false
		}
		if step.Left {
			cur = hashNode(step.Hash, cur)
		} else {
			cur = hashNode(cur, step.Hash)
		}
	}
	return bytes.Equal(cur, root)
}
