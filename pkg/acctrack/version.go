// Package acctrack carries module-level metadata.
package acctrack

// Version is the current release version.
const Version = "0.1.0"
