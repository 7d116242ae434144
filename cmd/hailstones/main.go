package main

import (
	"log"
	"os"
)

func main() {
	count(os.Args[1:])
}

func printUsage() {
	log.Println("Usage:")
	log.Println("  hailstones [flags] <lower> <upper> <maxlength> <bucketsize>")
	log.Println("  hailstones 1 1000000 500 25")
	log.Println("  hailstones -workers 8 -stats -progress 1 100000000 1000 50")
	log.Println("  hailstones -table 0 -- -10 10 100 10")
	log.Println("Flags:")
	log.Println("  -workers N  parallel counting workers (default: number of CPUs)")
	log.Println("  -table N    precomputed length table entries, 0 disables (default: 1048576)")
	log.Println("  -progress   report counting progress on stderr")
	log.Println("  -stats      append total and timing lines to the report")
	log.Println("  -v          verbose logging on stderr")
}
