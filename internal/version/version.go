// ABOUTME: Version information for chordgame
// ABOUTME: Product name and release version for the startup log line
package version

// Version is overridden at build time with -ldflags "-X .../version.Version=..."
var Version = "0.1.0"

// Product is the program name shown in banners
const Product = "Chord Game"

// String returns "Product Version"
func String() string {
	return Product + " " + Version
}
