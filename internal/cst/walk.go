package cst

// Listener receives the enter/token/exit event sequence of a subtree in
// source order. Token is called for token and missing children alike.
type Listener interface {
	Enter(t *Tree, id NodeID)
	Token(t *Tree, c Child)
	Exit(t *Tree, id NodeID)
}

// ListenerFuncs adapts optional callbacks to Listener.
type ListenerFuncs struct {
	OnEnter func(t *Tree, id NodeID)
	OnToken func(t *Tree, c Child)
	OnExit  func(t *Tree, id NodeID)
}

func (l ListenerFuncs) Enter(t *Tree, id NodeID) {
	if l.OnEnter != nil {
		l.OnEnter(t, id)
	}
}

func (l ListenerFuncs) Token(t *Tree, c Child) {
	if l.OnToken != nil {
		l.OnToken(t, c)
	}
}

func (l ListenerFuncs) Exit(t *Tree, id NodeID) {
	if l.OnExit != nil {
		l.OnExit(t, id)
	}
}

// Walk visits id and its descendants depth first.
func Walk(t *Tree, id NodeID, l Listener) {
	n := t.Node(id)
	if n == nil || l == nil {
		return
	}
	l.Enter(t, id)
	for _, c := range n.Children {
		if c.Kind == ChildNode {
			Walk(t, c.Node, l)
			continue
		}
		l.Token(t, c)
	}
	l.Exit(t, id)
}

type EventKind uint8

const (
	EventEnter EventKind = iota
	EventToken
	EventExit
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventToken:
		return "token"
	case EventExit:
		return "exit"
	}
	return "?"
}

// Event is one step of a walk, as recorded by Events.
type Event struct {
	Kind  EventKind
	Node  NodeID
	Child Child
}

// Events flattens the walk of id into a slice.
func Events(t *Tree, id NodeID) []Event {
	var out []Event
	Walk(t, id, ListenerFuncs{
		OnEnter: func(_ *Tree, n NodeID) { out = append(out, Event{Kind: EventEnter, Node: n}) },
		OnToken: func(_ *Tree, c Child) { out = append(out, Event{Kind: EventToken, Child: c}) },
		OnExit:  func(_ *Tree, n NodeID) { out = append(out, Event{Kind: EventExit, Node: n}) },
	})
	return out
}
