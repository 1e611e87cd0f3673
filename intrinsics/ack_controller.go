package intrinsics

import (
	"sync"

	"github.com/katalvlaran/nodegraph/core"
)

// AckController is the singleton acknowledgement-control bracket:
// Disable lets a region issue a batch of remote writes
// without waiting on per-write acknowledgement, and ReenableAndFence
// re-enables them and blocks until every write issued while disabled (and
// since) has completed.
//
// Grounded on the reference's ack_controller: one replicated marker word per
// nodelet, written once on reenable, used purely to anchor the fence behind
// every previously queued remote write.
type AckController struct {
	mu       sync.Mutex
	disabled bool
}

var ackController AckController

// Acks returns the process-wide AckController.
func Acks() *AckController {
	return &ackController
}

// Disable begins a region of unacknowledged remote writes.
func (a *AckController) Disable() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.disabled = true
}

// Disabled reports whether the controller is currently in a disabled
// region. Exposed for tests and for callers that want to assert they're
// inside (or outside) a bracket before issuing writes.
func (a *AckController) Disabled() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.disabled
}

// ReenableAndFence re-enables acknowledgements, then issues one remote
// write per nodelet and blocks until all remote writes issued up to and
// including those have completed. Callers must not observe the
// destinations of writes issued inside the disabled region until this
// returns.
func (a *AckController) ReenableAndFence() {
	a.mu.Lock()
	a.disabled = false
	a.mu.Unlock()

	n := core.NodeletCount()
	markers := make([]int64, n)
	for nlet := 0; nlet < n; nlet++ {
		RemoteAdd(&markers[nlet], 1)
	}
	Fence()
}
