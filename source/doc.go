// Package source provides cluster descriptions for schedulers running
// without a live membership feed.
package source
