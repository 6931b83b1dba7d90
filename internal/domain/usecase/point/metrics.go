package point

import "time"

// noopMetrics is used when no metrics sink is wired
type noopMetrics struct{}

func (noopMetrics) ObserveMutation(string, string, time.Duration) {}
func (noopMetrics) ObserveLockWait(time.Duration)                 {}
func (noopMetrics) SetActiveUserSlots(int)                        {}
