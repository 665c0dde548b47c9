// Package version keeps the set of known API versions ordered by the
// calendar date each one becomes effective.
//
// A version is identified by a short tag ("v1", "v2") that matches the last
// segment of the Go package declaring that version's handlers. An Index
// answers which version applies as of a date and walks the chain of older
// versions from there:
//
//	idx := version.NewIndex(
//	    version.Version{Effective: version.MustParseDate("2015-01-01"), Tag: "v1"},
//	    version.Version{Effective: version.MustParseDate("2015-03-01"), Tag: "v2"},
//	)
//	chain, err := idx.ChainAt(requested)
//	if err != nil {
//	    // version.ErrVersionNotSupported
//	}
//	for v := range chain {
//	    // v2, then v1
//	}
//
// Versions may also be loaded from YAML:
//
//	versions:
//	  - effective: 2015-01-01
//	    tag: v1
//	  - effective: 2015-03-01
//	    tag: v2
//
// Versions sharing an effective date keep their declaration order; the one
// declared last is treated as the newer of the two.
package version
