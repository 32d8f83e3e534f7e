package orion

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// surfaceErrors counts how often each distinct error message was seen.
// Only the most recent messages are tracked.
type surfaceErrors struct {
	counts *lru.Cache[string, int]
}

func newSurfaceErrors() *surfaceErrors {
	counts, err := lru.New[string, int](32)
	Handle(err, "create error cache")

	return &surfaceErrors{counts: counts}
}

// Record returns the number of times the message of err was seen, including this time.
func (s *surfaceErrors) Record(err error) int {
	msg := err.Error()

	count, _ := s.counts.Get(msg)
	count += 1

	s.counts.Add(msg, count)

	return count
}

// Handle panics if err is not nil. Use for errors that can not be recovered from.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
