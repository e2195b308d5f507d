// Package annotator runs the resumable labelling loop.
//
// Each image after the resume cursor goes through
//
//	display -> await state -> quit
//	                       -> bad -> emit
//	                       -> happy/embarrassed -> await intensity -> await confidence -> emit
//
// and every emit appends exactly one row to the ledger. Invalid keystrokes
// are reported and asked for again with no limit.
package annotator
