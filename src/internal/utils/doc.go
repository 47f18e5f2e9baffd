// Package utils provides small filesystem helpers shared by the config and
// store packages: path resolution relative to a base directory and atomic
// whole-file replacement.
package utils
