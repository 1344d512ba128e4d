// Package types defines the shared value types for the stem planning
// engine: ordinal implant labels, anatomical sides, label mapping
// results, and the assembly configuration record exchanged between the
// planning surfaces and the session store.
package types
