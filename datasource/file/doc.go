// Package file provides a DataSource which enumerates delimited text files on
// disk via a glob pattern. Splits are planned per file, so it is favourable if
// individual files represent roughly equal-sized divisions of data.
package file
