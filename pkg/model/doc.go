// Package model is an in-memory BIM document that plays the host
// application for the opening tool. It holds axis-aligned walls, box
// placeholder family instances and the openings cut into walls, and it
// implements opening.Host: wall picking, a spatial filter for intersecting
// instances, element geometry, opening creation, deletion and transactions.
//
// The document is not safe for concurrent use.
package model
