package model

// CollectionAccessSelection is the unit of grant exchanged at the mutation
// boundary. ID names either an organization user or a group depending on
// which list the selection travels in. It is never persisted as-is; the
// store translates it into CollectionUser or CollectionGroup rows.
//
// HidePasswords and Manage default to false when absent from the wire form.
type CollectionAccessSelection struct {
	ID            string `json:"id"`
	ReadOnly      bool   `json:"readOnly"`
	HidePasswords bool   `json:"hidePasswords,omitempty"`
	Manage        bool   `json:"manage,omitempty"`
}

// AnyManage reports whether at least one selection carries the manage flag.
// Used by the save path to enforce that a collection always keeps someone
// with can-manage permission.
func AnyManage(selections []CollectionAccessSelection) bool {
	for _, s := range selections {
		if s.Manage {
			return true
		}
	}
	return false
}
