package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/tavianator/bvh/bvh"
	"github.com/tavianator/bvh/types"
	"github.com/urfave/cli"
)

// Build a tree over a generated scene, trace rays through it and report
// structure and timing statistics.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	numShapes := ctx.Int("shapes")
	numRays := ctx.Int("rays")

	shapes := diagonalScene(numShapes)

	start := time.Now()
	tree := bvh.Build(shapes)
	buildTime := time.Since(start)

	ray := bvh.NewRay(types.XYZ(0, 0, 0), types.XYZ(1, 1, 1))

	// Time the raw tree walk; the candidate and exact hit counts are
	// identical for every iteration and reported from a single pass below.
	start = time.Now()
	for i := 0; i < numRays; i++ {
		tree.TraverseIndices(ray)
	}
	traceTime := time.Since(start)

	candidates := len(tree.TraverseIndices(ray))
	hits := len(tree.Traverse(ray, shapes))

	stats := tree.Stats()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Shapes", "Nodes", "Leafs", "Max depth", "Avg leaf", "Build time", "Trace time", "Candidates", "Hits"})
	table.Append([]string{
		fmt.Sprintf("%d", numShapes),
		fmt.Sprintf("%d", stats.Nodes),
		fmt.Sprintf("%d", stats.Leafs),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%2.1f", stats.AvgLeafShapes()),
		fmt.Sprintf("%s", buildTime),
		fmt.Sprintf("%s (%d rays)", traceTime, numRays),
		fmt.Sprintf("%d", candidates),
		fmt.Sprintf("%d", hits),
	})
	table.Render()

	logger.Noticef("bench statistics\n%s", buf.String())
	return nil
}
