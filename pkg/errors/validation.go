package errors

// MaxShipID is the largest accepted ship id (32-bit unsigned).
const MaxShipID = 1<<32 - 1

// DefaultMaxContainers bounds the length of a single arrival sequence
// accepted over the API.
const DefaultMaxContainers = 100000

// ValidateShipID rejects ids outside [0, MaxShipID].
func ValidateShipID(id int) error {
	if id < 0 {
		return New(ErrCodeInvalidInput, "ship id %d is negative", id)
	}
	if int64(id) > MaxShipID {
		return New(ErrCodeInvalidInput, "ship id %d exceeds %d", id, MaxShipID)
	}
	return nil
}

// ValidateArrivals checks every id of an arrival sequence and its length.
// A max of zero or less disables the length check.
func ValidateArrivals(arrivals []int, max int) error {
	if max > 0 && len(arrivals) > max {
		return New(ErrCodeInvalidInput, "too many containers: %d (max %d)", len(arrivals), max)
	}
	for i, id := range arrivals {
		if err := ValidateShipID(id); err != nil {
			return Wrap(ErrCodeInvalidInput, err, "container %d", i+1)
		}
	}
	return nil
}

// ValidateStacks checks every id of a candidate partition.
func ValidateStacks(stacks [][]int) error {
	for i, s := range stacks {
		for j, id := range s {
			if err := ValidateShipID(id); err != nil {
				return Wrap(ErrCodeInvalidInput, err, "stack %d position %d", i+1, j+1)
			}
		}
	}
	return nil
}
