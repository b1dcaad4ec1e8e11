package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/CanDIG/ID3-Sickkids-Project/split"
	"github.com/spf13/cobra"
)

type countsCmdConfig struct {
	*rootCmdConfig
	input      string
	maxDBConns int
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func countsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &countsCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Summarize a genotype matrix",
		Long:  `Summarize a genotype matrix: how many individuals belong to each population and how many carry each variant.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			matrix, catalog, err := loadGenome(config.Context(), config.rootCmdConfig, config.input, config.maxDBConns)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			engine, err := split.NewEngine(matrix, catalog)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			dist := engine.TargetDistribution()
			fmt.Printf("%d individuals over %d populations:\n", dist.Total(), len(catalog.Universe()))
			for _, population := range catalog.Universe() {
				fmt.Printf("  %s: %d\n", population, dist[population])
			}
			variantCounts := engine.VariantCounts()
			variants := make([]string, 0, len(variantCounts))
			for v := range variantCounts {
				variants = append(variants, v)
			}
			sort.Strings(variants)
			fmt.Printf("%d of %d variants carried by at least one individual:\n", len(variants), matrix.NumVariants())
			for _, v := range variants {
				fmt.Printf("  %s: %d\n", v, variantCounts[v])
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.input), "input", "i", "", "path to a YAML (.yml) variant-ranges config or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the genotype matrix to summarize (required)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (ccc *countsCmdConfig) Validate() error {
	if ccc.input == "" {
		return fmt.Errorf("required input flag was not set")
	}
	return nil
}

func (ccc *countsCmdConfig) Context() context.Context {
	ccc.setContextAndCancelFunc()
	return ccc.ctx
}

func (ccc *countsCmdConfig) setContextAndCancelFunc() {
	if ccc.ctx == nil {
		ccc.ctx, ccc.cancelFunc = context.WithCancel(context.Background())
	}
}
