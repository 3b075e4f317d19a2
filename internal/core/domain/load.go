package domain

// FetchFailedMessage is the user-facing text shown when the collection cannot be fetched.
const FetchFailedMessage = "Failed to fetch articles. Please try again later."

// LoadStatus is the progress of the article collection fetch.
type LoadStatus int

const (
	// LoadLoading means the fetch has not settled yet.
	LoadLoading LoadStatus = iota
	// LoadError means the fetch failed. Terminal for the session.
	LoadError
	// LoadReady means the collection is available. Terminal for the session.
	LoadReady
)

// String returns the string representation of the status.
func (s LoadStatus) String() string {
	switch s {
	case LoadLoading:
		return "loading"
	case LoadError:
		return "error"
	case LoadReady:
		return "ready"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition can happen.
func (s LoadStatus) IsTerminal() bool {
	return s == LoadError || s == LoadReady
}

// LoadState pairs a status with its user-facing message.
type LoadState struct {
	Status LoadStatus

	// Message is set only when Status is LoadError.
	Message string
}

// Loading returns the initial state.
func Loading() LoadState {
	return LoadState{Status: LoadLoading}
}

// Ready returns the settled success state.
func Ready() LoadState {
	return LoadState{Status: LoadReady}
}

// Failed returns the settled error state with the fixed message.
func Failed() LoadState {
	return LoadState{Status: LoadError, Message: FetchFailedMessage}
}
