package render

// Resources records GPU and window handles in acquisition order so they can
// be released once, in reverse, when the renderer terminates.
type Resources struct {
	entries  []resource
	released bool
}

type resource struct {
	name    string
	release func()
}

// Push records a handle that was just acquired.
func (r *Resources) Push(name string, release func()) {
	r.entries = append(r.entries, resource{name: name, release: release})
}

// Len returns the number of recorded handles.
func (r *Resources) Len() int {
	return len(r.entries)
}

// Release runs every release func in reverse acquisition order and returns
// the names released. Calls after the first are no-ops.
func (r *Resources) Release() []string {
	if r.released {
		return nil
	}
	r.released = true

	names := make([]string, 0, len(r.entries))
	for i := len(r.entries) - 1; i >= 0; i-- {
		entry := r.entries[i]
		if entry.release != nil {
			entry.release()
		}
		names = append(names, entry.name)
	}
	return names
}

// Released reports whether Release has run.
func (r *Resources) Released() bool {
	return r.released
}
