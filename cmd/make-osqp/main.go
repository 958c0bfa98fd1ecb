package main

import "github.com/jasonnicholson/osqp-matlab/cmd/make-osqp/internal"

func main() {
	internal.Execute()
}
