// Package htmlstrip provides a Stripper implementation for HTML and
// markup. It extracts readable text content, dropping tags and the
// contents of script and style elements, and decodes entities so the
// downstream rules see clean plain text.
package htmlstrip
