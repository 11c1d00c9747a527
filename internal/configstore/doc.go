// Package configstore owns the JSON configuration document.
//
// The document lives at config.json inside the data directory, UTF-8 and
// pretty-printed with 4-space indentation. It is a flat mapping; values
// are strings and numbers, and a sensitive field may hold an encrypted
// blob string produced by the secrets package instead of plaintext.
//
// Ensure writes the default document only when none exists. Update is a
// whole-document shallow merge: incoming keys overwrite, everything else
// is preserved, and a failed Load aborts the update rather than clobbering
// the file. There is no locking; concurrent writers are last-writer-wins.
package configstore
