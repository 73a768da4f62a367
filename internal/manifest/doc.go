// Package manifest builds the image asset manifest.
//
// A base directory holds digit-prefixed asset folders, each containing image
// files. Scanner discovers the folders and their images, Manifest keeps them
// in discovery order, and Builder serializes the result as indented JSON into
// the base directory. Ordering everywhere is plain byte-wise string order:
// folder "10" sorts before "2" and "A.png" before "a.png".
package manifest
