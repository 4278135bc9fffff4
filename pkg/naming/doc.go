// Package naming implements a naming-convention engine for pipeline
// asset names. Callers register tokens (vocabularies mapping full words
// to abbreviations, or numeric fields with padding) and rules (ordered,
// underscore-joined sequences of token names) on a Session, then solve
// concrete names from field values and parse names back into fields.
//
// A minimal round trip:
//
//	s := naming.NewSession()
//	side := s.AddToken("side",
//		naming.Opt{Key: "left", Abbr: "L"},
//		naming.Opt{Key: "right", Abbr: "R"},
//	)
//	side.SetDefault("left")
//	s.AddTokenNumber("version", "v", 3, "")
//	s.AddToken("name")
//	s.AddRule("asset", "name", "side", "version")
//
//	name, _ := s.Solve(naming.Values{"version": 25}, "hero")
//	// name == "hero_L_v025"
//	fields, _ := s.Parse(name)
//	// fields == Values{"name": "hero", "side": "left", "version": 25}
//
// Sessions persist to a directory of JSON files, one per token and rule
// plus a naming.conf recording the active rule; see Session.Save and
// Session.Load. The default directory is resolved from the NAMING_REPO
// environment variable or ~/.NXATools/naming.
//
// A Session is not safe for concurrent use without external
// synchronization.
package naming
