package access

// flexibleResolver implements the per-collection model. Access-all flags
// are retired and never consulted; only explicit user or group grants on
// the cipher's collections count. Manage implies edit regardless of the
// read-only flag.
type flexibleResolver struct{}

var _ Resolver = flexibleResolver{}

func (flexibleResolver) Resolve(ctx CipherContext) Result {
	if result, done := resolvePersonal(ctx); done {
		return result
	}
	if !ctx.memberEligible() {
		return Result{}
	}

	var paths []grantPath

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
