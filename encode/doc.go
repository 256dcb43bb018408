// Package encode serializes ir values to compact JSON-like text.
//
// Serialization takes two passes over the tree. The sizing pass computes
// the exact output length without writing anything; the writing pass
// then fills a buffer of exactly that length, so the output is never
// reallocated and never overallocated. Both passes visit values in the
// same order and format leaves with package format.
//
// # Usage
//
//	doc := ir.Array(ir.Null(), ir.FromInt(1), ir.FromFloat(1.1))
//
//	// allocate and write
//	out, err := encode.Stringify(doc) // [null,1,1.100000]
//
//	// write into a caller buffer
//	buf := make([]byte, encode.SerializedSize(doc))
//	n, err := encode.WriteInto(doc, buf)
//
//	// write to an io.Writer, in color
//	err = encode.Encode(doc, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// # Output
//
// No whitespace is inserted. Floats have exactly six fractional digits.
// Strings and keys are written between quotes as they are: nothing is
// escaped, so a string containing a quote or a control character does
// not produce valid JSON.
//
// # Errors
//
// Stringify and Encode fail with ErrAllocation when the buffer can not
// be obtained. WriteInto fails with ErrBufferTooSmall, without writing,
// when the caller buffer is shorter than SerializedSize. A nil value
// inside a tree is a programming error and panics with ir.ErrMalformed.
//
// # Related Packages
//
//   - github.com/signadot/jbuild/ir - value trees
//   - github.com/signadot/jbuild/format - leaf formatting rules
package encode
