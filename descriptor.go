package clientenv

// OpKind distinguishes value-reporting operations from boolean probes.
type OpKind string

const (
	// OpKindReporter marks operations returning a human-readable string.
	OpKindReporter OpKind = "reporter"

	// OpKindBoolean marks operations returning a true/false answer.
	OpKindBoolean OpKind = "boolean"
)

// Operation identifiers exposed by the module. These are stable API surface:
// hosts address operations by ID, not by label.
const (
	OpOSName        = "os_name"
	OpOSDetails     = "os_details"
	OpBrowser       = "browser"
	OpUserAgent     = "user_agent"
	OpDateTime      = "datetime"
	OpTime          = "time"
	OpSupportsHints = "supports_client_hints"
)

// Operation describes one callable query of the module.
type Operation struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  OpKind `json:"kind"`
}

// Descriptor is the self-description payload a host runtime uses to discover
// the module and its callable operations. None of the operations accept
// parameters; each is a stateless query answered from the caller's ambient
// request data.
type Descriptor struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Operations []Operation `json:"operations"`
}

// NewDescriptor returns the module's default self-description with all seven
// operations.
func NewDescriptor() Descriptor {
	return Descriptor{
		ID:   "clientenv",
		Name: "Client Environment",
		Operations: []Operation{
			{ID: OpOSName, Label: "operating system", Kind: OpKindReporter},
			{ID: OpOSDetails, Label: "OS details", Kind: OpKindReporter},
			{ID: OpBrowser, Label: "browser", Kind: OpKindReporter},
			{ID: OpUserAgent, Label: "user agent", Kind: OpKindReporter},
			{ID: OpDateTime, Label: "date and time", Kind: OpKindReporter},
			{ID: OpTime, Label: "time", Kind: OpKindReporter},
			{ID: OpSupportsHints, Label: "supports client hints?", Kind: OpKindBoolean},
		},
	}
}

// Operation returns the descriptor entry for the given ID.
func (d Descriptor) Operation(id string) (Operation, bool) {
	for _, op := range d.Operations {
		if op.ID == id {
			return op, true
		}
	}
	return Operation{}, false
}
