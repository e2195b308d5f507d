// Package ledger persists annotations as an append-only CSV file.
//
// The first row is the header
//
//	image_index,state<X>,intensity<X>,confidence<X>
//
// where <X> is the annotator's initial. Every later row is one models.Row.
// Append opens, writes, syncs and closes the file for each row, so a crash
// loses at most the row being entered. Rows are never rewritten.
package ledger
