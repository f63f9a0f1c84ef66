package file

import "errors"

// errEmbeddedWatch is returned by Watch when the source serves the
// embedded default catalog, which cannot change at runtime.
var errEmbeddedWatch = errors.New("embedded catalog cannot be watched")
