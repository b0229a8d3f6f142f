// Package status models the per-directory version-control snapshot that
// dirstatus persists.
//
// A snapshot is a Record: a canonical directory path, the checked-out branch
// and a count of files per porcelain status code. Raw status strings arrive
// in the "count code" grammar ("2 M|1 ??") and are rendered back in a
// deterministic, code-sorted display form ("1 ?? | 2 M ").
//
// Key pieces:
//   - Decode/Encode: the raw grammar codec
//   - Canonicalize: the path normalization applied to every store key
//   - Record/NewRecord: the persisted unit
package status
