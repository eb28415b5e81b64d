package models

// IdentityKind names the attribute an identity key was derived from.
type IdentityKind string

const (
	// IdentityKindUser keys quota by registered user ID.
	IdentityKindUser IdentityKind = "user"
	// IdentityKindSession keys quota by the client-supplied session identifier.
	IdentityKindSession IdentityKind = "session"
	// IdentityKindIP keys quota by the caller's source address.
	IdentityKindIP IdentityKind = "ip"
)

// IdentityKey is the value generation events are counted against.
type IdentityKey struct {
	Kind  IdentityKind
	Value string
}

// String renders the key as "kind:value", used in logs and span attributes.
func (k IdentityKey) String() string {
	return string(k.Kind) + ":" + k.Value
}

// IsZero reports whether the key carries no usable value.
func (k IdentityKey) IsZero() bool {
	return k.Kind == "" || k.Value == ""
}

// IdentityRequest is the raw identity material taken from an inbound request.
// Every field is optional.
type IdentityRequest struct {
	BearerToken string
	SessionID   string
	ClientIP    string
}

// Identity is the resolved caller descriptor used by the generation pipeline.
type Identity struct {
	Key          IdentityKey
	DailyLimit   int
	IsRegistered bool

	// UserID is set for registered identities only.
	UserID *int64

	// SessionID and IPAddress are recorded on generation events of
	// anonymous callers.
	SessionID string
	IPAddress string
}

// IdentityClass returns "registered" or "anonymous".
func (i Identity) IdentityClass() string {
	if i.IsRegistered {
		return "registered"
	}
	return "anonymous"
}
