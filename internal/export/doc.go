// Package export persists comparison results: summary and profile
// CSVs, a JSON document for downstream tooling, an SVG envelope chart,
// and a run store that lays those files out under timestamped run
// directories.
package export
