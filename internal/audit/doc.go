// Package audit provides an audit trail for store operations.
//
// Each significant operation (init, config set, secret set, secret get)
// appends one JSON object per line to audit.jsonl in the data directory,
// recording a UTC timestamp, the install UUID, the operation name, and
// the field it touched.
//
// Logging is best-effort: a failure to append never fails the operation
// being audited, and secret values themselves are never written to the
// log.
package audit
