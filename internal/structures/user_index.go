package structures

// UnknownUser is the name reported for messages whose author cannot be
// resolved through the user index.
const UnknownUser = "Unknown"

// UserIndex is a mapping of user ID to the resolved display name.
type UserIndex map[string]string

// NewUserIndex creates a UserIndex from the raw user records.  The display
// name falls back real_name -> name; users with neither resolve to
// [UnknownUser].
func NewUserIndex(users []Record) UserIndex {
	idx := make(UserIndex, len(users))
	for _, u := range users {
		id := u.String("id")
		if id == "" {
			continue
		}
		idx[id] = NVL(u.String("real_name"), u.String("name"), UnknownUser)
	}
	return idx
}

// DisplayName resolves the user id to a display name.  An empty or unknown
// id resolves to [UnknownUser]; a nil index resolves everything to
// [UnknownUser].
func (idx UserIndex) DisplayName(id string) string {
	if name, ok := idx[id]; ok {
		return name
	}
	return UnknownUser
}
