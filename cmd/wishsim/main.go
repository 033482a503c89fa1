// Package main provides wishsim, a local CLI for pulling on banners and estimating odds.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
