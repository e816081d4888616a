// Package bytebuffer is the assertion entry point for byte sequences.
//
// A ByteBuffer is an immutable, content-compared wrapper around a private copy
// of a byte slice. Expectations may be given as raw bytes, another ByteBuffer,
// or a string encoded with a golang.org/x/text encoding (UTF-8 by default):
//
//	buf := bytebuffer.MustWrapString("test")
//	err := bytebuffer.AssertThat(buf).ContainsString("es")                    // nil
//	err = bytebuffer.AssertThat(buf).EqualsString("test", charmap.ISO8859_1)  // nil
//	err = bytebuffer.AssertThat(buf).Contains([]byte("xy"))                   // *assert.AssertionError
package bytebuffer
