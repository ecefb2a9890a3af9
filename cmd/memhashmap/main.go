package main

import (
	"fmt"
	"github.com/gostonefire/memhashmap"
	"os"
)

// main - A small demonstration of the hash map, stores three records, reads them back together
// with one absent key and prints the result.
func main() {
	mhm, info, err := memhashmap.NewMemHashMap(0, 0, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error while creating hash map: %s\n", err)
		os.Exit(1)
	}

	records := map[string]int64{
		"eric": 111,
		"erhd": 222,
		"john": 333,
	}

	for key, value := range records {
		err = mhm.Set([]byte(key), value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error while setting key '%s': %s\n", key, err)
			os.Exit(1)
		}
	}

	fmt.Printf("hash map with %d buckets and key length %d\n", info.NumberOfBuckets, info.KeyLength)

	for _, key := range []string{"eric", "erhd", "john", "missing"} {
		value, err := mhm.Get([]byte(key))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error while getting key '%s': %s\n", key, err)
			os.Exit(1)
		}
		fmt.Printf("%s = %d\n", key, value)
	}

	err = mhm.Free()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error while freeing hash map: %s\n", err)
		os.Exit(1)
	}
}
