package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// solutionKey hashes the length-prefixed varint encoding of arrivals.
func solutionKey(arrivals []int) string {
	buf := binary.AppendUvarint(make([]byte, 0, 8+len(arrivals)*2), uint64(len(arrivals)))
	for _, id := range arrivals {
		buf = binary.AppendUvarint(buf, uint64(id))
	}
	return "solution:" + Hash(buf)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
