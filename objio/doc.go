// Package objio reads and writes the minimal subset of the Wavefront
// OBJ format this pipeline needs: vertex positions (v) and triangular
// faces (f) in both directions, plus per-vertex texture coordinates
// (vt), which Save writes and Load ignores. It is the
// mesh-file-I/O collaborator the pipeline's core assumes but leaves
// outside its own boundary.
//
// Why standard library only
//
//	No OBJ parsing library appears anywhere in this repository's
//	dependency surface, and the format itself is line-oriented text
//	trivially handled with bufio.Scanner and strconv; pulling in a
//	third-party parser for this would add a dependency without
//	replacing any real complexity.
package objio
