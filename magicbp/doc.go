// Package magicbp generates link magic numbers.
//
// A magic number is a 32-bit value a point-to-point link endpoint advertises
// to its peer. When an endpoint receives its own value back, the link loops
// onto itself.
//
// Values are read from the OS entropy device (/dev/urandom) when it can be
// opened. Otherwise a drand48 generator is used, seeded from the host ID, the
// current time and the process ID, which makes the seed unlikely to repeat
// across invocations on the same or different hosts.
//
// Most users only need the package level functions:
//
//	magic := magicbp.NextMagic()
//
// Magic numbers are not secrets. Use crypto/rand for anything that is.
package magicbp
