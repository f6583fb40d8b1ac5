// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graphdef"
	"github.com/katalvlaran/lvpath/render"
)

var errNoEndpoint = errors.New("source and target are required: set --from/--to or source/target in the graph file")

type rootOptions struct {
	graphFile string
	from      string
	to        string
	strategy  string
	dot       bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:          "lvpath",
		Short:        "Find the minimum-weight path between two vertices",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoute(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.graphFile, "graph", "g", "", "YAML or JSON graph definition (default: built-in graph)")
	flags.StringVar(&opts.from, "from", "", "source vertex (default: source from the graph definition)")
	flags.StringVar(&opts.to, "to", "", "target vertex (default: target from the graph definition)")
	flags.StringVar(&opts.strategy, "strategy", dijkstra.StrategyScan.String(), "vertex selection strategy: scan or heap")
	flags.BoolVar(&opts.dot, "dot", false, "print a Graphviz DOT document instead of the path")

	cmd.AddCommand(newFixtureCmd())

	return cmd
}

func runRoute(cmd *cobra.Command, opts rootOptions) error {
	doc := graphdef.Fixture()
	if opts.graphFile != "" {
		var err error
		if doc, err = graphdef.Load(opts.graphFile); err != nil {
			return err
		}
	}

	from, to := opts.from, opts.to
	if from == "" {
		from = doc.Source
	}
	if to == "" {
		to = doc.Target
	}
	if from == "" || to == "" {
		return errNoEndpoint
	}

	strategy, err := dijkstra.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}

	g, err := doc.Graph()
	if err != nil {
		return err
	}

	p, err := dijkstra.ShortestPath(g, from, to, dijkstra.WithStrategy(strategy))
	if err != nil {
		return err
	}

	if opts.dot {
		out, err := render.DOT(g, p)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)

		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Result: %s\n", p)

	return nil
}

func newFixtureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixture",
		Short: "Print the built-in graph as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := graphdef.Fixture().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
