package hash

import (
	"github.com/cespare/xxhash/v2"
)

// XXHashAlgorithm - An alternative bucket selection algorithm implemented using xxhash.Sum64 to create
// a hash value over the key and then applying bucket = hash % tableSize to get the bucket number.
// It gives a much better spread over buckets than the AdditiveHashAlgorithm, at the price of a changed
// bucket distribution compared to that original algorithm.
type XXHashAlgorithm struct {
	tableSize int64
}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm(tableSize int64) *XXHashAlgorithm {
	ha := &XXHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation the requested table size is used as is.
//   - tableSize is the number of buckets the hash map will address
func (X *XXHashAlgorithm) SetTableSize(tableSize int64) {
	X.tableSize = tableSize
}

// BucketNumber - Given key it generates a bucket number between 0 and table size - 1
func (X *XXHashAlgorithm) BucketNumber(key []byte) int64 {
	h := xxhash.Sum64(key)
	return int64(h % uint64(X.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (X *XXHashAlgorithm) GetTableSize() int64 {
	return X.tableSize
}
