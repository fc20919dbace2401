/*
Package parbench compares serial and parallel 3x3 image convolution filters.

The source image is loaded into a Grid of RGB pixels, then blurred serially and
in parallel, sharpened and run through a horizontal Sobel edge detector. Only
the interior of the grid is filtered; the border rows and columns of every
result are copied from the source. The parallel filters split the interior rows
into contiguous bands, one per worker, so they produce exactly the same pixels
as their serial counterpart.

The package provides a command line interface, supporting various flags for the
input image, the output directory and the number of workers:

	$ convbench --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"

		"github.com/esimov/parbench"
	)

	func main() {
		src, err := parbench.LoadGrid("input.jpg")
		if err != nil {
			log.Fatal(err)
		}
		p := &parbench.Processor{Workers: 4}
		res, err := p.Filter(src)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("speedup: %.2f", res.Speedup())
	}
*/
package parbench
