// Package buttondown sends notes to the Buttondown newsletter service as drafts.
//
// A Submitter performs exactly one request per call and reports a binary
// outcome to the user through a Notifier. Failures are never returned to the
// caller; they are logged for diagnostics and folded into the Result.
package buttondown
