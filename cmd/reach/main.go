/*
File    : reach/cmd/reach/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
