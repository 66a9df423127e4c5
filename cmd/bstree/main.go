package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:      "bstree",
		Usage:     "build a binary search tree from integer keys and inspect it",
		ArgsUsage: "<key>...",
		Version:   versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to an INI configuration file",
				EnvVars: []string{"BSTREE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "policy",
				Usage:   "duplicate key policy: reject, count or allow-equal-right",
				EnvVars: []string{"BSTREE_POLICY"},
			},
			&cli.IntFlag{
				Name:    "spacing",
				Usage:   "horizontal distance between a node and its children in the layout",
				EnvVars: []string{"BSTREE_SPACING"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (debug, info, warn, error)",
				EnvVars: []string{"BSTREE_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
	}
	app.Commands = []*cli.Command{
		cmdLayout,
		cmdRender,
		cmdDepth,
		cmdWalk,
		cmdSearch,
	}
	return app
}
