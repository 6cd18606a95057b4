package driver

// ProgressStatus is the state of one file in a directory run.
type ProgressStatus uint8

const (
	StatusQueued ProgressStatus = iota
	StatusWorking
	StatusDone
	StatusError // файл разобран, но есть ошибки
)

func (s ProgressStatus) String() string {
	switch s {
	case StatusWorking:
		return "parsing"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "queued"
	}
}

// ProgressEvent describes a status change of one file of a directory run.
// Done counts finished files at the moment of the event.
type ProgressEvent struct {
	Path   string
	Status ProgressStatus
	Done   int
	Total  int
	Errors int
}

// Finished reports whether the event closes its file.
func (e ProgressEvent) Finished() bool {
	return e.Status == StatusDone || e.Status == StatusError
}

// ProgressFunc receives ProgressEvents; it may be called from several goroutines.
type ProgressFunc func(ProgressEvent)
