// Package file is the seed catalog source: the JSON plant catalog the
// lifecycle manager feeds into a freshly created store, served from an
// embedded default or a configured file, with optional reload on file
// change.
package file
