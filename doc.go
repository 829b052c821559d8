// Package main is the entry point of notedraft, a command line tool that
// sends a note to the Buttondown newsletter service as a new draft.
//
//	notedraft settings set-key <api key>
//	notedraft send "Issue 12.md"
package main
