package host

// Op names a transition.
type Op string

const (
	OpAdd      Op = "add"
	OpRemove   Op = "remove"
	OpRename   Op = "rename"
	OpReset    Op = "reset"
	OpSchema   Op = "schema"
	OpUISchema Op = "ui-schema"
	OpValue    Op = "value"
	OpLoad     Op = "load"
)

// Event describes an installed transition.
type Event struct {
	Op       Op
	Field    string
	Snapshot Snapshot
}

// Observer is called synchronously after every transition.
type Observer func(Event)
