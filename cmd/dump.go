package cmd

import (
	"os"

	"github.com/tavianator/bvh/bvh"
	"github.com/urfave/cli"
)

// Build a tree over a generated scene and print its structure.
func Dump(ctx *cli.Context) error {
	setupLogging(ctx)

	shapes := diagonalScene(ctx.Int("shapes"))
	tree := bvh.Build(shapes)
	tree.PrettyPrint(os.Stdout)
	return nil
}
