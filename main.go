package main

import (
	"encoding/csv"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nettoyeur/Basic/index"
	"github.com/nettoyeur/Basic/index/bunt"
	"github.com/nettoyeur/Basic/index/gbtree"
	"github.com/nettoyeur/Basic/index/listindex"
	"github.com/nettoyeur/Basic/index/lsm"
	"github.com/nettoyeur/Basic/index/twothree"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}
}

func NewLogger(c LogConfig) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	var zc zap.Config
	switch c.Format {
	case "json":
		zc = zap.NewProductionConfig()
	case "console", "":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, errors.Newf("unknown log format %q", c.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func run(cfg *Config, log *zap.Logger) error {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return errors.Wrap(err, "create results file")
	}
	defer f.Close()

	s := &Suite{
		w:   csv.NewWriter(f),
		log: log,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
	}
	if err := s.w.Write(csvHeader); err != nil {
		return err
	}

	for _, name := range cfg.Structures {
		configs := []int{0}
		if name == StructGBTree {
			configs = cfg.Degrees
		}
		for _, conf := range configs {
			idx, err := newIndex(name, conf, cfg, log)
			if err != nil {
				return err
			}
			err = s.Run(name, conf, idx, cfg.Scale)
			if cerr := idx.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return errors.Wrapf(err, "%s (config %d)", name, conf)
			}
		}
	}

	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return errors.Wrap(err, "write results")
	}
	log.Info("benchmark complete", zap.String("results", cfg.Output), zap.Int("rows", len(s.results)))

	if cfg.Chart != "" {
		if err := WriteChart(cfg.Chart, s.results); err != nil {
			return err
		}
		log.Info("chart written", zap.String("path", cfg.Chart))
	}
	if cfg.DOT != "" {
		if err := writeSampleDOT(cfg.DOT, 64); err != nil {
			return err
		}
		log.Info("tree exported", zap.String("path", cfg.DOT), zap.String("render", "dot -Tpng "+cfg.DOT))
	}
	return nil
}

func newIndex(name string, conf int, cfg *Config, log *zap.Logger) (index.Index, error) {
	switch name {
	case StructTwoThree:
		return twothree.NewIndex(), nil
	case StructGBTree:
		return gbtree.New(conf), nil
	case StructList:
		return listindex.NewListIndex(), nil
	case StructLSM:
		return lsm.Open(cfg.LSMDir, log.Named("pebble").Sugar())
	case StructBunt:
		return bunt.Open()
	}
	return nil, errors.Newf("unknown structure %q", name)
}

// writeSampleDOT exports a small 2-3 tree so its shape can be inspected.
func writeSampleDOT(path string, n int) error {
	t := twothree.New[int, int]()
	for k := range n {
		if err := t.Put(k, k); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create dot file")
	}
	defer f.Close()
	return t.WriteDOT(f)
}

type Suite struct {
	w       *csv.Writer
	log     *zap.Logger
	rng     *rand.Rand
	results []BenchResult
}

func (s *Suite) record(res BenchResult) error {
	s.results = append(s.results, res)
	return Record(s.w, res)
}

// Run loads n sequential keys into idx and then times the mixed workloads.
func (s *Suite) Run(name string, conf int, idx index.Index, n int) error {
	confStr := ""
	if conf > 0 {
		confStr = strconv.Itoa(conf)
	}
	log := s.log.With(zap.String("structure", name), zap.String("config", confStr))
	log.Info("testing")

	// 1. Pure Insert (Initial Load)
	start := time.Now()
	for k := 0; k < n; k++ {
		if err := idx.Insert(int64(k), []byte("v")); err != nil {
			return errors.Wrapf(err, "load key %d", k)
		}
	}
	insertLatency := time.Since(start).Nanoseconds() / int64(n)

	// Measure memory after load but before workloads.
	stats := GetDetailedMem()
	if err := s.record(BenchResult{
		Name:      name,
		Config:    confStr,
		Operation: "Footprint_SteadyState",
		LatencyNs: insertLatency,
		MemMB:     stats.AllocMB,
		Objects:   stats.HeapObjects,
	}); err != nil {
		return err
	}
	log.Debug("loaded", zap.Int("keys", n), zap.Int64("ns_per_op", insertLatency), zap.Uint64("alloc_mb", stats.AllocMB))

	for _, wl := range []struct {
		op    string
		wType WorkloadType
		ops   int
	}{
		{"Workload_OLTP", OLTP, n / 2},
		{"Workload_OLAP", OLAP, n / 2},
		{"Workload_Range", Reporting, 100},
	} {
		start = time.Now()
		if err := ExecuteWorkload(idx, wl.wType, wl.ops, s.rng); err != nil {
			return err
		}
		latency := time.Since(start).Nanoseconds() / int64(wl.ops)
		if err := s.record(BenchResult{name, confStr, wl.op, latency, GetDetailedMem().AllocMB, 0}); err != nil {
			return err
		}
		log.Debug("workload done", zap.String("workload", string(wl.wType)), zap.Int64("ns_per_op", latency))
	}
	return nil
}
