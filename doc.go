// Package csvsplit contains the core types of csvsplit, a library for planning
// byte-range splits of large delimited text files. A Split is a contiguous
// byte range of a file containing a whole number of logical lines, so that
// downstream parallel workers can each process a disjoint, self-consistent
// chunk of a file without looking outside their assigned range. This root
// package defines the value types and boundary interfaces employed both in
// regular use of the library and in its extension, and is an excellent
// overview of csvsplit's key concepts.
package csvsplit
