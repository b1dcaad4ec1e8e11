package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	id3 "github.com/CanDIG/ID3-Sickkids-Project"
	"github.com/CanDIG/ID3-Sickkids-Project/genome"
	"github.com/CanDIG/ID3-Sickkids-Project/queue"
	taskjson "github.com/CanDIG/ID3-Sickkids-Project/queue/json"
	"github.com/CanDIG/ID3-Sickkids-Project/queue/redisq"
	"github.com/CanDIG/ID3-Sickkids-Project/split"
	"github.com/CanDIG/ID3-Sickkids-Project/tree"
	"github.com/spf13/cobra"
	redis "gopkg.in/redis.v5"
)

type growCmdConfig struct {
	*rootCmdConfig
	input         string
	pruneStrategy string
	workers       int
	queueURL      string
	queueID       string
	taskMaxRun    int
	maxDBConns    int
	selfTest      bool
	ctx           context.Context
	cancelFunc    context.CancelFunc
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a genotype matrix",
		Long:  `Grow a tree from a genotype matrix to predict the population of individuals from the variants they carry.`,
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
			pruner, err := pruningStrategy(config.pruneStrategy)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			nodeStore := tree.NewMemoryNodeStore()
			q, err := config.taskQueue(nodeStore)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Growing tree from a matrix with %d individuals and %d variants to predict their population...", catalog.NumIndividuals(), matrix.NumVariants())
			t, err := config.grow(engine, q, nodeStore, pruner)
			if err != nil {
				fmt.Fprintf(os.Stderr, "growing the tree: %v\n", err)
				os.Exit(6)
			}
			config.Logf("Done")
			fmt.Println(t)
			if config.selfTest {
				err = config.test(t, engine)
				if err != nil {
					fmt.Fprintf(os.Stderr, "testing the tree: %v\n", err)
					os.Exit(7)
				}
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.input), "input", "i", "", "path to a YAML (.yml) variant-ranges config or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with the genotype matrix to grow the tree from (required)")
	cmd.PersistentFlags().StringVarP(&(config.pruneStrategy), "prune", "p", "default", "pruning strategy to apply, the following are valid: default, minimum-score:[VALUE], none")
	cmd.PersistentFlags().IntVarP(&(config.workers), "workers", "w", 4, "number of concurrent workers branching out the tree")
	cmd.PersistentFlags().StringVar(&(config.queueURL), "queue", "", "redis URL to use as task queue, so that several processes can grow the tree together (defaults to an in-memory queue)")
	cmd.PersistentFlags().StringVar(&(config.queueID), "queue-id", "id3", "identifier namespacing the task queue keys on redis (only applies with the queue flag)")
	cmd.PersistentFlags().IntVar(&(config.taskMaxRun), "task-max-run", 300, "seconds a pulled task may run before it is requeued for another worker (only applies with the queue flag, 0 disables requeuing)")
	cmd.PersistentFlags().IntVar(&(config.maxDBConns), "max-db-conns", 0, "limit to DB connections opened at a time (defaults to 0: no limit)")
	cmd.PersistentFlags().BoolVar(&(config.selfTest), "self-test", false, "test the grown tree against the matrix it was grown from and report its success rate")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.input == "" {
		return fmt.Errorf("required input flag was not set")
	}
	if gcc.workers < 1 {
		return fmt.Errorf("workers flag must be at least 1")
	}
	if gcc.taskMaxRun < 0 {
		return fmt.Errorf("task-max-run flag cannot be negative")
	}
	return nil
}

func (gcc *growCmdConfig) grow(engine *split.Engine, q queue.Queue, nodeStore tree.NodeStore, pruner id3.Pruner) (*tree.Tree, error) {
	ctx := gcc.Context()
	t, err := id3.Seed(ctx, engine, q, nodeStore)
	if err != nil {
		return nil, err
	}
	scorer := id3.InformationGain()
	var wg sync.WaitGroup
	errs := make(chan error, gcc.workers)
	for i := 0; i < gcc.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- id3.Work(ctx, t, engine, q, scorer, pruner, 200*time.Millisecond)
		}()
	}
	err = queue.WaitFor(ctx, q)
	if err != nil {
		gcc.ContextCancelFunc()()
		wg.Wait()
		return nil, err
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			return nil, err
		}
	}
	err = q.Stop(ctx)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (gcc *growCmdConfig) test(t *tree.Tree, engine *split.Engine) error {
	matrix := engine.Matrix()
	catalog := engine.Catalog()
	samples := make([]genome.Sample, 0, matrix.NumRows())
	populations := make([]string, 0, matrix.NumRows())
	for i := 0; i < matrix.NumRows(); i++ {
		samples = append(samples, matrix.RowSample(i))
		populations = append(populations, catalog.Population(i))
	}
	gcc.Logf("Testing tree against the %d individuals it was grown from...", len(samples))
	successRate, errorCount, err := t.Test(gcc.Context(), samples, populations)
	if err != nil {
		return err
	}
	fmt.Printf("%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
	return nil
}

func (gcc *growCmdConfig) taskQueue(nodeStore tree.NodeStore) (queue.Queue, error) {
	if gcc.queueURL == "" {
		return queue.New(), nil
	}
	gcc.Logf("Connecting to redis at %s for the task queue...", gcc.queueURL)
	opts, err := redis.ParseURL(gcc.queueURL)
	if err != nil {
		return nil, fmt.Errorf("parsing queue redis URL: %v", err)
	}
	client := redis.NewClient(opts)
	taskMaxRun := time.Duration(gcc.taskMaxRun) * time.Second
	return redisq.New(gcc.queueID, client, taskMaxRun, 10*time.Second, taskjson.New(nodeStore)), nil
}

func (gcc *growCmdConfig) Context() context.Context {
	gcc.setContextAndCancelFunc()
	return gcc.ctx
}

func (gcc *growCmdConfig) ContextCancelFunc() context.CancelFunc {
	gcc.setContextAndCancelFunc()
	return gcc.cancelFunc
}

func (gcc *growCmdConfig) setContextAndCancelFunc() {
	if gcc.ctx == nil {
		gcc.ctx, gcc.cancelFunc = context.WithCancel(context.Background())
	}
}

func pruningStrategy(ps string) (id3.Pruner, error) {
	parsedPS := strings.Split(ps, ":")
	ps = parsedPS[0]
	psParams := parsedPS[1:]
	switch ps {
	case "default":
		return id3.DefaultPruner(), nil
	case "none":
		return id3.NoPruner(), nil
	case "minimum-score":
		if len(psParams) == 0 {
			return nil, fmt.Errorf("minimum-score pruning strategy requires a threshold parameter")
		}
		minimum, err := strconv.ParseFloat(psParams[0], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing minimum-score parameter: %v", err)
		}
		return id3.FixedScorePruner(minimum), nil
	}
	return nil, fmt.Errorf("unknown pruning strategy %s", ps)
}
