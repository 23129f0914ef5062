// Package magicgen implements the logic for magicgen binary.
//
// magicgen prints link magic numbers generated by magicbp.
//
// To use this library, create a package with main function as:
//
//	func main() {
//	  os.Exit(magicgen.Run())
//	}
package magicgen
