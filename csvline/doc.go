// Package csvline provides quote-aware reading of delimited text. A logical
// line is a maximal run of bytes terminated by an unquoted newline - a raw
// newline inside a delimiter-quoted field is ordinary data and does not
// terminate the line. The LineReader reports the exact number of bytes
// consumed per logical line, which is what split planning is built on.
package csvline
