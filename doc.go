// Package bookscan plans which libraries to sign up, and which books each one
// scans, so that the total score of scanned books within a day budget is as
// high as a single greedy pass can make it.
//
// Two heuristics are available: best-score (pick the library with the best
// average score times achievable scans) and fastest (pick the library that
// signs up the quickest).  The root package exposes a Service façade:
//
//	srv, _ := bookscan.New(ctx, bookscan.WithInputURL("data"), bookscan.WithOutputURL("out"))
//	run, _ := srv.RunBatch(ctx, "a_example", "b_read_on")
//	for _, report := range run.Reports { ... }
//
// Instances and solutions are read and written through viant/afs, so any of
// its URL schemes may be used.
package bookscan
