package memhashmap

// MapFreed - Custom error to inform that an operation was attempted on a freed or absent hash map
type MapFreed struct {
	msg string
}

// Error - Used to notify that the hash map is freed or absent
func (E MapFreed) Error() string {
	if E.msg == "" {
		return "hash map is freed"
	}
	return E.msg
}
