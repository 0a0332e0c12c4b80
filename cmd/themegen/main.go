// Command themegen generates a customised block theme from the template tree
// in the working directory.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], newApp(os.Stdin, os.Stdout, os.Stderr)))
}
