package allocation

import (
	"time"

	"candidate-assistance/internal/domain/resource"
)

const (
	ResultSuccess  = "success"
	ResultConflict = "conflict"
	ResultFailed   = "failed"
)

// Recorder receives allocation outcomes for metrics.
type Recorder interface {
	ObserveAssign(key resource.Key, result string, elapsed time.Duration)
	ObserveReassign(key resource.Key, result string)
	ObserveExpired(key resource.Key, count int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAssign(resource.Key, string, time.Duration) {}
func (nopRecorder) ObserveReassign(resource.Key, string)              {}
func (nopRecorder) ObserveExpired(resource.Key, int)                  {}

func NopRecorder() Recorder {
	return nopRecorder{}
}
