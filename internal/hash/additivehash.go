package hash

// AdditiveHashAlgorithm - The internally used bucket selection algorithm is implemented by summing the byte
// values of the key and applying bucket = sum % tableSize to get the bucket number.
// It is a deliberately simple checksum hash, the sum is insensitive to the order of characters within the
// key, hence keys that are anagrams of each other will end up in the same bucket.
type AdditiveHashAlgorithm struct {
	tableSize int64
}

// NewAdditiveHashAlgorithm - Returns a pointer to a new AdditiveHashAlgorithm instance
func NewAdditiveHashAlgorithm(tableSize int64) *AdditiveHashAlgorithm {
	ha := &AdditiveHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// In this implementation the requested table size is used as is.
//   - tableSize is the number of buckets the hash map will address
func (A *AdditiveHashAlgorithm) SetTableSize(tableSize int64) {
	A.tableSize = tableSize
}

// BucketNumber - Given key it generates a bucket number between 0 and table size - 1
func (A *AdditiveHashAlgorithm) BucketNumber(key []byte) int64 {
	var sum int64
	for _, b := range key {
		sum += int64(b)
	}
	return sum % A.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (A *AdditiveHashAlgorithm) GetTableSize() int64 {
	return A.tableSize
}
