// Package reporting renders a quality report to JSON, Markdown, and
// optionally HTML, and persists the rendered files under the reports
// directory. Rendering is deterministic: map-backed sections are emitted in
// sorted key order, so identical reports produce byte-identical output.
package reporting
