// Package format holds the textual form of leaf values.
//
// Both the sizing and the writing pass of package encode go through
// these functions, so a leaf is always measured with the routine that
// writes it.
//
//	n := format.IntLen(-42)                // 3
//	b := format.AppendFloat(nil, 1.1)      // "1.100000"
//
// # Related Packages
//
//   - github.com/signadot/jbuild/encode - serializes values to text
package format
