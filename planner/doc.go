// Package planner produces Splits for delimited text files: contiguous,
// non-overlapping byte ranges each covering a fixed number of logical lines.
// Planning a single file is strictly sequential, since every logical line's
// byte range depends on where the previous one ended. Planning across files
// is embarrassingly parallel, which PlanParallel takes advantage of.
package planner
