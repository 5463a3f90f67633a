// Package allocator implements the greedy round loops that turn a book
// scanning instance into a solution.  It is the only package allowed to
// mutate a state.State: every round selects exactly one library, commits a
// subset of its books and advances the remaining day budget.
//
// Two heuristics share the same commit mechanics:
//
//   - BestScore ranks libraries by average remaining book score multiplied
//     by the number of books the library could still scan;
//   - Fastest activates the library with the shortest signup time first and
//     neutralises it afterwards so it never wins a later ranking.
package allocator
