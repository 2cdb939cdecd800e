// Package cluster counts how many rows carry each cluster ID, ranks the IDs
// by that popularity, and rewrites rows with the new dense labels.
//
// All functions are pure: they take rows and return fresh values. Reporting
// is left to an optional Observer so callers decide where output goes.
package cluster
