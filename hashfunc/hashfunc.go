package hashfunc

// HashAlgorithm - Interface that permits an implementation using the MemHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash map. Hence, if a custom hash algorithm is supplied that
	// implements this interface and the instance is already having a table size, it will be overwritten
	// by the number of buckets that was requested when creating the hash map.
	//   - tableSize is the number of buckets the hash map will address
	SetTableSize(tableSize int64)

	// BucketNumber - Given key it generates a bucket number between 0 and table size - 1.
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// The function must be deterministic, i.e. the same key must always render the same bucket number
	// for a given table size.
	BucketNumber(key []byte) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// It is very important that this function return the actual table size and not just the table size given
	// in a call to SetTableSize. Some algorithms are implemented by rounding up to nearest 2 to the power of x,
	// or to the nearest prime, and if such operations are built in the implementation of this interface it
	// must be covered in the GetTableSize.
	GetTableSize() int64
}
