package signal

// Scheme selects how a connected slot is invoked when its signal is emitted.
type Scheme int

const (
	// Synchronous slots run inline on the emitting goroutine; Emit returns
	// only after they complete.
	Synchronous Scheme = iota

	// Asynchronous slots each run on a fresh goroutine, admitted through the
	// engine's counting semaphore.
	Asynchronous

	// Strand slots run on a dedicated worker goroutine per slot; invocations
	// of one slot never overlap and arrive in emission order.
	Strand

	// Pooled slots run on the engine's worker pool, shared process-wide
	// unless the signal carries its own.
	Pooled

	schemeCount = 4
)

// String implements fmt.Stringer.
func (s Scheme) String() string {
	switch s {
	case Synchronous:
		return "synchronous"
	case Asynchronous:
		return "asynchronous"
	case Strand:
		return "strand"
	case Pooled:
		return "pooled"
	default:
		return "unknown"
	}
}

// valid reports whether s names one of the four dispatch schemes.
func (s Scheme) valid() bool {
	return s >= Synchronous && s < schemeCount
}
