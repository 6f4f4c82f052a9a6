// Package version provides parsing and comparison of dotted numeric versions
// as reported by Minecraft servers.
//
// # Overview
//
// A Version is an immutable sequence of non-negative integer components such as
// "1.21" or "1.20.4". Any number of components is accepted, although servers in
// practice report two or three.
//
// The key property is padding-aware comparison: a missing trailing component
// compares as zero. For example:
//
//   - 1.21 equals 1.21.0
//   - 1.20 is older than 1.20.1
//   - 1.9 is older than 1.10
//
// Equal versions share the same Key, so Key is the value to use as a map key.
// String renders exactly the components a Version was built from, so
// Parse("1.21.0").String() is "1.21.0" while its Key is "1.21".
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.Parse("1.20.4")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.20.4
//
// Compare versions:
//
//	running := version.MustParse("1.21")
//	required := version.MustParse("1.20.5")
//	if running.EqualsOrNewer(required) {
//	    fmt.Println("Version requirement met")
//	}
//
// # Error Handling
//
// Parse always returns a *ParseError that wraps one of:
//
//   - ErrEmptyVersion: Input string is empty
//   - ErrMalformedDelimiter: Leading, trailing or consecutive separators
//   - ErrNonNumeric: Component contains non-digit characters (including "v" prefixes and whitespace)
//   - ErrNegativeComponent: Component is a negative number
//   - ErrComponentOverflow: Component does not fit in an int
//
// For constant initialization, use MustParse which panics on error:
//
//	var Newest = version.MustParse("1.21.4")
//
// Version ranges and constraints are deliberately not supported.
package version
