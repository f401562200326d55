package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/stuarthighley/wadlevel"
)

func main() {
	verbose := flag.Bool("v", false, "log progress")
	levelName := flag.String("level", "", "only show this level")
	tree := flag.Bool("tree", false, "print the BSP tree")
	strict := flag.Bool("strict", false, "reject archives that are not IWAD or PWAD")
	flag.Parse()

	if *verbose {
		wadlevel.SetLogger(log.New(os.Stdout, "", log.LstdFlags))
	}

	var opts []wadlevel.Option
	if *strict {
		opts = append(opts, wadlevel.WithStrictIdentification())
	}

	// No argument opens the default archive
	b, err := wadlevel.Open(flag.Arg(0), opts...)
	if err != nil {
		log.Fatalln(err)
	}

	h := b.WAD().Header()
	fmt.Printf("%s: %d lumps, directory at %d\n", h.Identification, h.NumLumps, h.InfoTableOfs)

	names := b.LevelNames()
	if *levelName != "" {
		names = []string{*levelName}
	}
	for _, name := range names {
		l, err := b.Level(name)
		if err != nil {
			fmt.Println(err)
			continue
		}
		printLevel(l)
		if *tree {
			printTree(os.Stdout, l)
		}
	}
}

func printLevel(l *wadlevel.Level) {
	bounds := l.Bounds()
	fmt.Printf("%s: things %d, lines %d, sides %d, vertexes %d, segs %d, subsectors %d, nodes %d, sectors %d\n",
		l.Name(), len(l.Things()), len(l.LineDefs()), len(l.SideDefs()), len(l.Vertices()),
		len(l.Segments()), len(l.SubSectors()), len(l.Nodes()), len(l.Sectors()))
	fmt.Printf("  bounds: left %d, right %d, bottom %d, top %d\n", bounds.Left, bounds.Right, bounds.Bottom, bounds.Top)
}
