// Parsers and formatters for the value encodings emitted by Slurm's
// accounting tools: byte sizes with binary suffixes, [DD-]HH:MM:SS duration
// strings, comma-separated TRES resource lists, and date strings.
//
// Accounting sources routinely emit partially-populated rows, so nothing in
// this package returns an error: unparseable input degrades to a zero or
// empty value and the aggregation layer substitutes the missing-data
// sentinel where appropriate.

package units

// Missing is the placeholder printed for any field no source contributed a
// value for.
const Missing = "--"
