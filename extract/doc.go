// Package extract provides document sources: adapters that obtain text
// fragments with font and position metadata from external representations
// and hand them to the classification pipeline as a model.Document.
//
// Two sources are included. JSONFile reads the interchange format emitted by
// standalone extraction tools. PDF reads a PDF directly through pdfcpu's
// content-stream access; it is a best-effort source whose fidelity depends
// on how the PDF encodes its text.
package extract
