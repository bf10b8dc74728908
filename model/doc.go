// Package model defines the data types shared by the classification pipeline:
// text fragments with font and position metadata, the pages and documents that
// carry them, and the geometric primitives used for position-based filtering.
//
// Fragments are produced by an external extraction collaborator (see the
// extract package) and are immutable once created. A Document is the complete
// input for one classification run; nothing in this package persists across
// runs.
package model
