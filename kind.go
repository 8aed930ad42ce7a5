package errtaxonomy

import (
	"fmt"
	"sync"
)

// Side labels which half of a conversation a kind blames.
// It is the leading segment of every class string.
type Side string

const (
	SideClient Side = "Client"
	SideServer Side = "Server"
)

// Kind is an immutable category descriptor shared by every error bound to it.
// Kinds are declared once, typically as package-level variables, and never
// change for the lifetime of the process.
type Kind struct {
	name        string
	messageCode string
	status      int
	description string
	side        Side
}

// Name returns the kind identifier, e.g. "IoError".
func (k Kind) Name() string { return k.name }

// MessageCode returns the stable, machine-matchable code, e.g. "Err-00001".
func (k Kind) MessageCode() string { return k.messageCode }

// Status returns the protocol-facing numeric status, e.g. 500.
func (k Kind) Status() int { return k.status }

// Description returns the human description used as the default message of
// every error bound to this kind.
func (k Kind) Description() string { return k.description }

// Side returns the declared side of the kind.
func (k Kind) Side() Side { return k.side }

// IsZero reports whether k is the zero Kind, i.e. never registered.
func (k Kind) IsZero() bool { return k.name == "" }

// KindSpec is one row of the declarative kind table passed to RegisterKinds.
type KindSpec struct {
	Name        string
	MessageCode string
	Status      int
	Description string

	// Side overrides the default derived from Status
	// (below 500 is Client, everything else Server).
	Side Side
}

var (
	kindMu sync.RWMutex
	kinds  = map[string]Kind{}
)

// NewKind declares and registers a single kind.
//
// Name and message code must be non-empty and the name must not collide with
// a previously registered kind; violations panic. Registration is meant to
// happen at package initialization, so a bad table stops the program before
// it serves anything.
func NewKind(name, messageCode string, status int, description string) Kind {
	return registerKind(KindSpec{
		Name:        name,
		MessageCode: messageCode,
		Status:      status,
		Description: description,
	})
}

// RegisterKinds declares a whole kind table at once and returns the
// registered kinds in table order.
func RegisterKinds(specs ...KindSpec) []Kind {
	out := make([]Kind, 0, len(specs))
	for _, spec := range specs {
		out = append(out, registerKind(spec))
	}
	return out
}

// KindByName looks up a registered kind by its identifier.
func KindByName(name string) (Kind, bool) {
	kindMu.RLock()
	defer kindMu.RUnlock()
	k, ok := kinds[name]
	return k, ok
}

func registerKind(spec KindSpec) Kind {
	if spec.Name == "" {
		panic("errtaxonomy: kind name must not be empty")
	}
	if spec.MessageCode == "" {
		panic(fmt.Sprintf("errtaxonomy: kind %q has an empty message code", spec.Name))
	}

	side := spec.Side
	if side == "" {
		side = sideForStatus(spec.Status)
	}

	k := Kind{
		name:        spec.Name,
		messageCode: spec.MessageCode,
		status:      spec.Status,
		description: spec.Description,
		side:        side,
	}

	kindMu.Lock()
	defer kindMu.Unlock()
	if _, exists := kinds[k.name]; exists {
		panic(fmt.Sprintf("errtaxonomy: duplicate kind %q", k.name))
	}
	kinds[k.name] = k
	return k
}

func sideForStatus(status int) Side {
	if status > 0 && status < 500 {
		return SideClient
	}
	return SideServer
}
