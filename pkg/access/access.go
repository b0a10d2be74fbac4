package access

// Result is the resolved access for one (user, cipher) pair.
type Result struct {
	// Viewable means the cipher may be read at all.
	Viewable bool

	// Editable means the cipher may be modified. Editable implies
	// Viewable.
	Editable bool

	// PasswordsHidden means the cipher is viewable but every qualifying
	// path hides its sensitive sub-fields.
	PasswordsHidden bool
}

// Resolver computes the access a user holds on a cipher under one of the
// two permission models.
type Resolver interface {
	Resolve(ctx CipherContext) Result
}

// ForModel selects the strategy for the active permission model. The choice
// is made once at the operation's entry point; nothing downstream
// special-cases the model again.
func ForModel(flexible bool) Resolver {
	if flexible {
		return flexibleResolver{}
	}
	return legacyResolver{}
}

// resolvePersonal handles the unconditional owner path shared by both
// strategies. ok is false when the cipher is not a personal item and the
// organization rules apply instead.
func resolvePersonal(ctx CipherContext) (Result, bool) {
	if ctx.Cipher == nil {
		return Result{}, true
	}
	if !ctx.Cipher.Personal() {
		return Result{}, false
	}
	if ctx.Cipher.OwnedBy(ctx.UserID) {
		return Result{Viewable: true, Editable: true}, true
	}
	return Result{}, true
}

// grantPath is one qualifying route to a cipher: an access-all flag or an
// explicit grant. Both strategies reduce their inputs to paths and combine
// them identically: any edit-capable path wins over any read-only one, and
// passwords stay visible if any path shows them.
type grantPath struct {
	editable      bool
	hidePasswords bool
}

func combine(paths []grantPath) Result {
	if len(paths) == 0 {
		return Result{}
	}
	result := Result{Viewable: true, PasswordsHidden: true}
	for _, p := range paths {
		if p.editable {
			result.Editable = true
		}
		if !p.hidePasswords {
			result.PasswordsHidden = false
		}
	}
	return result
}
