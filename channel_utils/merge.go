package channel_utils

import (
	"sync"

	"github.com/laiba2005shahzad/BuildWAI/application/ports/outbound"
)

// MergeChannels fans the given channels into one, running each drain on the
// worker pool. The merged channel closes once every input closes.
func MergeChannels[T any](workerPool outbound.TaskDispatcher, channels ...<-chan T) (<-chan T, error) {
	var wg sync.WaitGroup
	merged := make(chan T)

	drain := func(c <-chan T) {
		for val := range c {
			merged <- val
		}
		wg.Done()
	}

	wg.Add(len(channels))
	for _, c := range channels {
		ch := c
		if err := workerPool.Submit(func() {
			drain(ch)
		}); err != nil {
			return nil, err
		}
	}

	if err := workerPool.Submit(func() {
		wg.Wait()
		close(merged)
	}); err != nil {
		return nil, err
	}

	return merged, nil
}
