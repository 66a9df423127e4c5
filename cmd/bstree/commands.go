package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/segmentio/searchtree/compare"
	"github.com/segmentio/searchtree/container/tree"
	"github.com/segmentio/searchtree/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var buildFlags = []cli.Flag{
	&cli.IntSliceFlag{
		Name:  "remove",
		Usage: "key to remove after all keys are inserted (repeatable)",
	},
}

var cmdLayout = &cli.Command{
	Name:      "layout",
	Usage:     "print the tree one level per line",
	ArgsUsage: "<key>...",
	Flags:     buildFlags,
	Action: func(cctx *cli.Context) error {
		t, cfg, _, err := buildTree(cctx)
		if err != nil {
			return err
		}
		for line := range t.Layout(cfg.Spacing) {
			fmt.Fprintln(cctx.App.Writer, line)
		}
		return nil
	},
}

var cmdRender = &cli.Command{
	Name:      "render",
	Usage:     "print the tree as an indented hierarchy",
	ArgsUsage: "<key>...",
	Flags:     buildFlags,
	Action: func(cctx *cli.Context) error {
		t, _, _, err := buildTree(cctx)
		if err != nil {
			return err
		}
		fmt.Fprint(cctx.App.Writer, t.Render())
		return nil
	},
}

var cmdDepth = &cli.Command{
	Name:      "depth",
	Usage:     "print the number of edges on the longest path from the root",
	ArgsUsage: "<key>...",
	Flags:     buildFlags,
	Action: func(cctx *cli.Context) error {
		t, _, _, err := buildTree(cctx)
		if err != nil {
			return err
		}
		depth, err := t.Depth()
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, depth)
		return nil
	},
}

var cmdWalk = &cli.Command{
	Name:      "walk",
	Usage:     "print the keys of the tree in ascending order",
	ArgsUsage: "<key>...",
	Flags:     buildFlags,
	Action: func(cctx *cli.Context) error {
		t, _, _, err := buildTree(cctx)
		if err != nil {
			return err
		}
		for key := range t.All() {
			fmt.Fprintln(cctx.App.Writer, key)
		}
		return nil
	},
}

var cmdSearch = &cli.Command{
	Name:      "search",
	Usage:     "look up a key in the tree",
	ArgsUsage: "<key>...",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:     "key",
			Usage:    "key to search for",
			Required: true,
		},
	}, buildFlags...),
	Action: func(cctx *cli.Context) error {
		t, _, log, err := buildTree(cctx)
		if err != nil {
			return err
		}
		key := cctx.Int("key")
		if _, found := t.Search(key); !found {
			log.WithField("key", key).Debug("key not found")
			fmt.Fprintln(cctx.App.Writer, "not found")
			return nil
		}
		fmt.Fprintf(cctx.App.Writer, "found %d (occurrences: %d)\n", key, t.Occurrences(key))
		return nil
	},
}

// buildTree loads the configuration, applies the command line overrides, and
// returns a tree holding the keys passed as arguments minus the keys passed to
// --remove.
func buildTree(cctx *cli.Context) (*tree.Tree[int], config.Config, *logrus.Logger, error) {
	cfg, err := loadConfig(cctx)
	if err != nil {
		return nil, cfg, nil, err
	}

	log := logrus.New()
	log.SetOutput(cctx.App.ErrWriter)
	log.SetLevel(cfg.LogLevel)

	keys, err := parseKeys(cctx.Args().Slice())
	if err != nil {
		return nil, cfg, log, err
	}

	t := tree.New[int](compare.Function[int], cfg.Policy)
	for _, key := range keys {
		if err := t.Insert(key); err != nil {
			if errors.Is(err, tree.ErrDuplicateKey) {
				log.WithField("key", key).Warn("skipping duplicate key")
				continue
			}
			return nil, cfg, log, err
		}
		log.WithFields(logrus.Fields{"key": key, "len": t.Len()}).Debug("inserted")
	}

	for _, key := range cctx.IntSlice("remove") {
		if _, found := t.Remove(key); !found {
			log.WithField("key", key).Warn("key to remove not found")
			continue
		}
		log.WithFields(logrus.Fields{"key": key, "len": t.Len()}).Debug("removed")
	}

	log.WithFields(logrus.Fields{"policy": t.Policy(), "len": t.Len()}).Debug("tree built")
	return t, cfg, log, nil
}

func loadConfig(cctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return cfg, err
	}
	if cctx.IsSet("policy") {
		if err := cfg.SetPolicy(cctx.String("policy")); err != nil {
			return cfg, err
		}
	}
	if cctx.IsSet("spacing") {
		if err := cfg.SetSpacing(cctx.Int("spacing")); err != nil {
			return cfg, err
		}
	}
	if cctx.IsSet("log-level") {
		if err := cfg.SetLogLevel(cctx.String("log-level")); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %q", arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}
