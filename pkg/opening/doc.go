// Package opening turns placeholder void instances that pierce a wall into
// rectangular wall openings.
//
// For each placeholder the Driver intersects the placeholder solid with the
// wall solid, picks the face of the intersection that does not touch the
// wall's interior side face, and reduces that face's outer loop to the two
// diagonal corners of the opening. The Batch runs the driver for every
// placeholder the host reports inside one host transaction.
//
// The host application is reached only through the interfaces in host.go.
package opening
