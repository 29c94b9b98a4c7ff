package visit

import "crypto/rand"

// codeAlphabet excludes 0/O and 1/I so gate guards can read codes back over
// the phone without ambiguity.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CodeLength is the length of a visit request code.
const CodeLength = 6

// NewCode generates a short, human-typeable, uppercase request code. The
// random space (~1e9) is large enough that collisions are rare; the ledger
// still checks uniqueness at creation and regenerates on collision.
func NewCode() string {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// nothing sensible to do but panic like the runtime would.
		panic("visit: rand.Read: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}
