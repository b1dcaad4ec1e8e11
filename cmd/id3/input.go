package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/mongogenome"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/sqlgenome"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/sqlgenome/pgadapter"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/sqlgenome/sqlite3adapter"
	"github.com/CanDIG/ID3-Sickkids-Project/genome/vcfgenome"
	mgo "gopkg.in/mgo.v2"
)

/*
loadGenome takes a context, the root command config and an input
reference and returns the genotype matrix and ancestry catalog it
points to. The input may be a YAML variant-ranges config (.yml/.yaml)
to build them from VCF sources, a SQLite3 file (.db), a PostgreSQL
connection URL or a MongoDB connection URL holding a previously saved
matrix.
*/
func loadGenome(ctx context.Context, config *rootCmdConfig, input string, maxDBConns int) (*genome.Matrix, *genome.Catalog, error) {
	switch {
	case strings.HasSuffix(input, ".yml"), strings.HasSuffix(input, ".yaml"):
		config.Logf("Building genotype matrix from VCF sources in %s...", input)
		vrc, err := vcfgenome.ReadConfigFromFile(input)
		if err != nil {
			return nil, nil, err
		}
		return vcfgenome.Load(vrc)
	case strings.HasPrefix(input, "postgresql://"):
		config.Logf("Opening genotype matrix on PostgreSQL database...")
		adapter, err := pgadapter.New(input)
		if err != nil {
			return nil, nil, err
		}
		return sqlgenome.Open(ctx, adapter)
	case strings.HasPrefix(input, "mongodb://"):
		config.Logf("Opening genotype matrix on MongoDB database...")
		session, err := mgo.Dial(input)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to mongodb: %v", err)
		}
		defer session.Close()
		return mongogenome.Open(ctx, session)
	case strings.HasSuffix(input, ".db"):
		config.Logf("Opening genotype matrix on SQLite3 file %s...", input)
		adapter, err := sqlite3adapter.New(input, maxDBConns)
		if err != nil {
			return nil, nil, err
		}
		return sqlgenome.Open(ctx, adapter)
	}
	return nil, nil, fmt.Errorf("cannot tell the kind of input %q: expected a .yml/.yaml config, a .db SQLite3 file, a postgresql:// URL or a mongodb:// URL", input)
}
