// Package codec reads book scanning instances and writes solutions in the
// line-oriented text formats used by the Hash Code 2020 qualification round.
//
// Instances are tokenised with github.com/viant/parsly; any malformed,
// truncated or out-of-range input is reported as a *model.ParseError.
package codec
