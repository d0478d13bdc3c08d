package item

import "errors"

// ErrNoAccessPoint indicates a shelf cell has no free orthogonal neighbour,
// so it cannot be picked from any stance.
var ErrNoAccessPoint = errors.New("item: shelf cell has no free access point")
