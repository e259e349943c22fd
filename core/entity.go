package core

// Entity is a unique identifier for an entity.
// IDs are allocated monotonically and never reused within a session.
type Entity uint64

// InvalidEntity is the zero value; no live entity ever carries it.
const InvalidEntity Entity = 0
