package models

// IdentityKind tags who a session belongs to.
type IdentityKind string

const (
	Anonymous IdentityKind = ""
	UserKind  IdentityKind = "user"
	AdminKind IdentityKind = "admin"
)

// Identity is the resolved owner of a request's session. Exactly one realm
// is ever populated: a session row stores a single kind.
type Identity struct {
	Kind IdentityKind
	ID   int64
	Name string
}

func UserIdentity(id int64, name string) Identity {
	return Identity{Kind: UserKind, ID: id, Name: name}
}

func AdminIdentity(id int64) Identity {
	return Identity{Kind: AdminKind, ID: id}
}

func (i Identity) IsUser() bool  { return i.Kind == UserKind && i.ID > 0 }
func (i Identity) IsAdmin() bool { return i.Kind == AdminKind && i.ID > 0 }
func (i Identity) IsAnonymous() bool {
	return !i.IsUser() && !i.IsAdmin()
}
