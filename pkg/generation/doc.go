// Package generation models ordered catalogs of server-internals generations.
//
// A generation groups the Minecraft versions that share one internal
// addressing scheme. Generations of a catalog are declared oldest first and
// are ordered by that declaration. Every catalog starts with the sentinel NONE,
// which owns no versions and is what Lookup returns for any version the
// catalog does not explicitly declare.
//
// NONE cannot be ordered: IsBefore and friends return an error carrying
// errors.ErrCodeInvalidArgument when either operand is NONE, because a caller
// choosing an addressing scheme must not treat an unknown server as older or
// newer than a known one.
//
//	c := generation.MustNewCatalog("example",
//	    generation.Entry{Name: "v1_17_R1", Relocated: true, Versions: []version.Version{v1_17, v1_17_1}},
//	    generation.Entry{Name: "v1_18_R2", Relocated: true, Versions: []version.Version{v1_18_2}},
//	)
//	g := c.Lookup(version.MustParse("1.17.1")) // v1_17_R1
//	before, err := g.IsBefore(c.MustGet("v1_18_R2"))
package generation
