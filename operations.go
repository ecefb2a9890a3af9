package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/internal/chain"
)

// Get - Gets the value stored for the given key.
//   - key is the identifier of a record, it has to be strictly shorter than the key length given in call to NewMemHashMap
//
// It returns:
//   - value is the stored value if the key is found, otherwise 0 (zero). An absent key and a stored value of 0 are indistinguishable through Get.
//   - err is a MapFreed error if the hash map has been freed, otherwise nil. Absence of the key is not an error.
func (M *MemHashMap) Get(key []byte) (value int64, err error) {
	if M == nil || M.freed {
		err = MapFreed{}
		return
	}

	// A key that can not fit can never have been stored, hence treated as not found
	if int64(len(key)) >= M.keyLength {
		return
	}

	bucketNo, err := M.GetBucketNo(key)
	if err != nil {
		return
	}

	node := chain.FindByKey(M.buckets[bucketNo], key)
	if node != nil {
		value = node.Value
	}

	return
}

// Set - Updates an existing record with a new value or adds the record if no existing is found with same key.
// The key is looked up first and a new node is allocated only when the key is confirmed new, an update
// mutates the existing node in place.
//   - key is the identifier of a record, it has to be strictly shorter than the key length given in call to NewMemHashMap
//   - value is the value to store along with the key
//
// It returns:
//   - err is a MapFreed error if the hash map has been freed, a standard error if the key is too long, otherwise nil
func (M *MemHashMap) Set(key []byte, value int64) (err error) {
	if M == nil || M.freed {
		err = MapFreed{}
		return
	}

	// Check validity of the key
	if int64(len(key)) >= M.keyLength {
		err = fmt.Errorf("too long key, should be less than %d bytes", M.keyLength)
		return
	}

	bucketNo, err := M.GetBucketNo(key)
	if err != nil {
		return
	}

	// An empty bucket gets the new record as its sole chain head
	head := M.buckets[bucketNo]
	if head == nil {
		M.buckets[bucketNo] = chain.NewNode(key, value)
		return
	}

	// Try to find an existing record with matching key, update in place if found, otherwise
	// append a new record to the tail of the chain
	node := chain.FindByKey(head, key)
	if node != nil {
		node.Value = value
	} else {
		chain.Append(head, chain.NewNode(key, value))
	}

	return
}

// Free - Releases every record in every bucket chain and drops the bucket array.
// The hash map is terminally freed after the call, any subsequent operation on it will
// return a MapFreed error.
//
// It returns:
//   - err is a MapFreed error if the hash map is absent or already freed, in which case the call is a no-op, otherwise nil
func (M *MemHashMap) Free() (err error) {
	if M == nil || M.freed {
		err = MapFreed{msg: "cannot free an absent or already freed hash map"}
		return
	}

	for i := range M.buckets {
		_ = chain.Release(M.buckets[i])
		M.buckets[i] = nil
	}

	M.buckets = nil
	M.freed = true

	return
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
//
// It returns:
//   - hashMapStat is a pointer to a HashMapStat struct
//   - err is a MapFreed error if the hash map has been freed, otherwise nil
func (M *MemHashMap) Stat(includeDistribution bool) (hashMapStat *HashMapStat, err error) {
	if M == nil || M.freed {
		err = MapFreed{}
		return
	}

	var hms HashMapStat

	if includeDistribution {
		hms.BucketDistribution = make([]int64, M.nBuckets)
	}

	// Iterate over every available bucket
	for i := int64(0); i < M.nBuckets; i++ {
		n := chain.Count(M.buckets[i])
		hms.Records += n
		if includeDistribution {
			hms.BucketDistribution[i] = n
		}
	}

	hashMapStat = &hms
	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a record
func (M *MemHashMap) GetBucketNo(key []byte) (bucketNo int64, err error) {
	bucketNo = M.hashAlgorithm.BucketNumber(key)
	if bucketNo < 0 || bucketNo >= M.nBuckets {
		err = fmt.Errorf("received bucket number from bucket algorithm is outside permitted range")
		return
	}

	return
}
