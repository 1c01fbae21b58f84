// Command flavorconf sets up one meson build directory per build flavor.
package main

import "github.com/cm4all/flavorconf/cmd/flavorconf/internal"

func main() {
	internal.Execute()
}
