package util

import (
	"fmt"
	"sync"
)

// CreateAsyncErrorChannel produces a buffered channel for errors from
// concurrent planning passes. size should be the number of goroutines which
// may send, so that no sender ever blocks.
func CreateAsyncErrorChannel(size int) chan error {
	return make(chan error, size)
}

// WaitAndFetchError waits for all async goroutines to finish and returns the
// first error any of them produced, or nil if all succeeded.
func WaitAndFetchError(wg *sync.WaitGroup, errors chan error) error {
	go func() {
		defer close(errors)
		wg.Wait()
	}()
	var result error
	for err := range errors {
		if err != nil && result == nil {
			result = err
		}
	}
	return result
}

// FormatMultiError formats multierrors for presentation to the caller
func FormatMultiError(merrs []error) string {
	var msg = ""
	for i := 0; i < len(merrs); i++ {
		msg += fmt.Sprintf("%+v\n", merrs[i])
	}
	return msg
}
