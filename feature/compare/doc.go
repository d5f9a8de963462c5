// Package compare exposes the diff engine over HTTP.
//
// A client uploads the OLD and NEW CSV snapshots in one multipart request
// and receives the structured diff report as JSON. Rendering (HTML, CSV,
// text) stays with the report package and the CLI; this surface only carries
// the structured result.
//
// # HTTP Endpoints
//
//   - POST /compare : multipart fields "old" and "new" (CSV files), form
//     values "key" (primary-key column, defaults to the configured column)
//     and "cols" (optional comma-separated list restricting the
//     value-mismatch pass).
//
// Configuration faults (unknown key column) map to 400; unparsable inputs
// map to 422. Data-quality findings are never errors; they arrive inside a
// 200 response.
package compare
