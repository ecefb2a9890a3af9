package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/chain"
	"github.com/gostonefire/memhashmap/internal/hash"
)

// DefaultNumberOfBuckets - The number of buckets used when no explicit number is given in the call to NewMemHashMap
const DefaultNumberOfBuckets int64 = 100

// DefaultKeyLength - The key length used when no explicit length is given in the call to NewMemHashMap.
// Keys must be strictly shorter than the key length to be accepted.
const DefaultKeyLength int64 = 32

// HashMapInfo - Information structure containing some information about the hash map created
//   - NumberOfBuckets is the total number of available buckets in the hash map, it may be higher than the requested number if the hash algorithm rounds table sizes up
//   - KeyLength is the key length the hash map was created with, keys must be strictly shorter than this to be accepted
type HashMapInfo struct {
	NumberOfBuckets int64
	KeyLength       int64
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - BucketDistribution is the number of records stored in each available bucket
type HashMapStat struct {
	Records            int64
	BucketDistribution []int64
}

// MemHashMap - The main implementation struct.
// It holds a fixed size array of bucket chains where each chain is a singly linked list of records
// that share bucket due to hash collision.
//
// A MemHashMap is not safe for concurrent use, simultaneous calls from several goroutines must be
// synchronized by the caller.
type MemHashMap struct {
	buckets       []*chain.Node
	keyLength     int64
	nBuckets      int64
	hashAlgorithm hashfunc.HashAlgorithm
	freed         bool
}

// NewMemHashMap - Returns a new in-memory hash map with all buckets empty.
//   - numberOfBuckets is the number of buckets to distribute records over, zero selects DefaultNumberOfBuckets
//   - keyLength is the key capacity, keys must be strictly shorter than this to be accepted, zero selects DefaultKeyLength
//   - hashAlgorithm is an optional entry to provide a custom bucket selection algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal additive algorithm
//
// It returns:
//   - memHashMap is a pointer to a MemHashMap struct
//   - hashMapInfo is a HashMapInfo struct containing some data regarding the hash map created
//   - err is a normal Go error which should be nil if everything went ok
func NewMemHashMap(
	numberOfBuckets int64,
	keyLength int64,
	hashAlgorithm hashfunc.HashAlgorithm,
) (
	memHashMap *MemHashMap,
	hashMapInfo HashMapInfo,
	err error,
) {

	// Check if numberOfBuckets is valid, zero selects the default
	if numberOfBuckets < 0 {
		err = fmt.Errorf("numberOfBuckets can not be a negative value")
		return
	}
	if numberOfBuckets == 0 {
		numberOfBuckets = DefaultNumberOfBuckets
	}

	// Check if keyLength is valid, zero selects the default
	if keyLength < 0 {
		err = fmt.Errorf("keyLength can not be a negative value")
		return
	}
	if keyLength == 0 {
		keyLength = DefaultKeyLength
	}

	// If no HashAlgorithm was given then use the default internal
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewAdditiveHashAlgorithm(numberOfBuckets)
	} else {
		hashAlgorithm.SetTableSize(numberOfBuckets)
	}

	// The hash algorithm has the final say on table size, it may have rounded the requested number up
	nBuckets := hashAlgorithm.GetTableSize()
	if nBuckets < numberOfBuckets {
		err = fmt.Errorf("hash algorithm table size is smaller than the requested number of buckets")
		return
	}

	memHashMap = &MemHashMap{
		buckets:       make([]*chain.Node, nBuckets),
		keyLength:     keyLength,
		nBuckets:      nBuckets,
		hashAlgorithm: hashAlgorithm,
	}

	hashMapInfo = HashMapInfo{
		NumberOfBuckets: nBuckets,
		KeyLength:       keyLength,
	}

	return
}
