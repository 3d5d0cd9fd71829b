package main

import "github.com/jsphweid/pitchcurve/cmd"

func main() {
	cmd.Execute()
}
