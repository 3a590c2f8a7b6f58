package main

import (
	"os"

	"github.com/tavianator/bvh/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bvh"
	app.Usage = "build and query bounding volume hierarchies"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "bench",
			Usage: "benchmark tree construction and traversal",
			Description: `
Generate a scene of axis-aligned cubes along the main diagonal, build a
bounding volume hierarchy over it using binned SAH partitioning and trace
rays through the tree, reporting structure and timing statistics.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "shapes",
					Value: 1000,
					Usage: "number of shapes in the generated scene",
				},
				cli.IntFlag{
					Name:  "rays",
					Value: 1024,
					Usage: "number of rays to trace",
				},
			},
			Action: cmd.Bench,
		},
		{
			Name:  "dump",
			Usage: "print the tree built over a generated scene",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "shapes",
					Value: 16,
					Usage: "number of shapes in the generated scene",
				},
			},
			Action: cmd.Dump,
		},
	}

	app.Run(os.Args)
}
