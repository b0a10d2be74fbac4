package access

// legacyResolver implements the pre-migration model. Org-wide access-all
// flags on the membership or on any of the caller's groups short-cut every
// per-collection grant; explicit grants are honored alongside them.
type legacyResolver struct{}

var _ Resolver = legacyResolver{}

func (legacyResolver) Resolve(ctx CipherContext) Result {
	if result, done := resolvePersonal(ctx); done {
		return result
	}
	if !ctx.memberEligible() {
		return Result{}
	}

	var paths []grantPath

	// Access-all on the membership grants edit everywhere and never
	// hides passwords.
	if ctx.OrgUser.AccessAll {
		paths = append(paths, grantPath{editable: true})
	}

	for _, cu := range ctx.UserGrants {
		if !ctx.inCollections(cu.CollectionID) {
			continue
		}
		paths = append(paths, grantPath{
			editable:      !cu.ReadOnly || cu.Manage,
			hidePasswords: cu.HidePasswords && !cu.Manage,
		})
	}

	for _, g := range ctx.Groups {
		if g.AccessAll {
			paths = append(paths, grantPath{editable: true})
			continue
		}
		for _, cg := range g.Grants {
			if !ctx.inCollections(cg.CollectionID) {
				continue
			}
			paths = append(paths, grantPath{
				editable:      !cg.ReadOnly || cg.Manage,
				hidePasswords: cg.HidePasswords && !cg.Manage,
			})
		}
	}

	return combine(paths)
}
