package main

import (
	"fmt"
	"io"

	"github.com/stuarthighley/wadlevel"
)

// Child indexes with this bit set refer to a subsector.
const subSectorBit = 0x8000

// printTree prints a level's BSP tree, root last in the NODES lump.
func printTree(w io.Writer, l *wadlevel.Level) {
	nodes := l.Nodes()
	subSectors := l.SubSectors()
	if len(nodes) == 0 {
		fmt.Fprintln(w, "- subsector 0")
		return
	}

	var printRecursive func(child uint16, prefix string, depth int)
	printRecursive = func(child uint16, prefix string, depth int) {
		if child&subSectorBit != 0 {
			i := int(child &^ subSectorBit)
			if i >= len(subSectors) {
				fmt.Fprintf(w, "%s- subsector %d (bad index)\n", prefix, i)
				return
			}
			s := subSectors[i]
			fmt.Fprintf(w, "%s- subsector %d: %d segs from %d\n", prefix, i, s.SegCount, s.FirstSeg)
			return
		}
		i := int(child)
		if i >= len(nodes) || depth > len(nodes) {
			fmt.Fprintf(w, "%s- node %d (bad index)\n", prefix, i)
			return
		}
		n := nodes[i]
		fmt.Fprintf(w, "%s- node %d: (%d,%d) d(%d,%d)\n", prefix, i, n.X, n.Y, n.DX, n.DY)
		printRecursive(uint16(n.RightChild), prefix+"   ", depth+1)
		printRecursive(uint16(n.LeftChild), prefix+"   ", depth+1)
	}

	printRecursive(uint16(len(nodes)-1), "", 0)
}
