package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/mongogenome"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/sqlgenome"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/sqlgenome/pgadapter"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/sqlgenome/sqlite3adapter"
	"github.com/spf13/cobra"
	mgo "gopkg.in/mgo.v2"
)

type matrixCmdConfig struct {
	*rootCmdConfig
	input      string
	output     string
	maxDBConns int
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func matrixCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &matrixCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build and store genotype matrices",
		Long:  `Build a genotype matrix from VCF sources or a previously saved copy and dump it on a database, so that trees can be grown from it without parsing the VCF sources again.`,
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
			config.Logf("Loaded a matrix with %d individuals and %d variants", catalog.NumIndividuals(), matrix.NumVariants())
			err = config.save(matrix, catalog)
			if err != nil {
				fmt.Fprintf(os.Stderr, "saving matrix to %s: %v\n", config.output, err)
				os.Exit(3)
			}
			config.Logf("Done")
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.input), "input", "i", "", "path to a YAML (.yml) variant-ranges config or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the genotype matrix to load (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL to dump the matrix to (required)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	return cmd
}

func (mcc *matrixCmdConfig) Validate() error {
	if mcc.input == "" {
		return fmt.Errorf("required input flag was not set")
	}
	if mcc.output == "" {
		return fmt.Errorf("required output flag was not set")
	}
	if !strings.HasSuffix(mcc.output, ".db") && !strings.HasPrefix(mcc.output, "postgresql://") && !strings.HasPrefix(mcc.output, "mongodb://") {
		return fmt.Errorf("cannot tell the kind of output %q: expected a .db SQLite3 file, a postgresql:// URL or a mongodb:// URL", mcc.output)
	}
	return nil
}

func (mcc *matrixCmdConfig) save(m *genome.Matrix, c *genome.Catalog) error {
	switch {
	case strings.HasPrefix(mcc.output, "postgresql://"):
		mcc.Logf("Creating PostgreSQL adapter for url %s to dump the matrix...", mcc.output)
		adapter, err := pgadapter.New(mcc.output)
		if err != nil {
			return err
		}
		return sqlgenome.Save(mcc.Context(), adapter, m, c)
	case strings.HasPrefix(mcc.output, "mongodb://"):
		mcc.Logf("Connecting to MongoDB at %s to dump the matrix...", mcc.output)
		session, err := mgo.Dial(mcc.output)
		if err != nil {
			return fmt.Errorf("connecting to mongodb: %v", err)
		}
		defer session.Close()
		return mongogenome.Save(mcc.Context(), session, m, c)
	}
	mcc.Logf("Creating SQLite3 adapter for file %s to dump the matrix...", mcc.output)
	adapter, err := sqlite3adapter.New(mcc.output, mcc.maxDBConns)
	if err != nil {
		return err
	}
	return sqlgenome.Save(mcc.Context(), adapter, m, c)
}

func (mcc *matrixCmdConfig) Context() context.Context {
	mcc.setContextAndCancelFunc()
	return mcc.ctx
}

func (mcc *matrixCmdConfig) setContextAndCancelFunc() {
	if mcc.ctx == nil {
		mcc.ctx, mcc.cancelFunc = context.WithCancel(context.Background())
	}
}
