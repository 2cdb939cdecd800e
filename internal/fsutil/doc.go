// Package fsutil provides the whole-file read and write helpers the
// relabeling pipeline uses for its input and output tables.
package fsutil
