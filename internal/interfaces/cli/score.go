package cli

import (
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/turtacn/dockscore/internal/config"
	"github.com/turtacn/dockscore/internal/infrastructure/monitoring/logging"
	prom "github.com/turtacn/dockscore/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/dockscore/internal/scoring"
	"github.com/turtacn/dockscore/pkg/errors"
	"github.com/turtacn/dockscore/pkg/progress"
)

// ScoreOptions are the flags of the score command.
type ScoreOptions struct {
	Input       string
	Progress    bool
	MetricsFile string
	Workers     int
	Watch       bool
}

// ScoreReport is the output of the score command.
type ScoreReport struct {
	*scoring.BatchResult
}

func (r ScoreReport) TableHeaders() []string {
	return []string{"POSE", "INTERMOLECULAR", "SCORE", "PAIRS", "PRUNED"}
}

func (r ScoreReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		rows = append(rows, []string{
			res.PoseID,
			formatFloat(res.Intermolecular),
			formatFloat(res.Score),
			strconv.Itoa(res.PairsEvaluated),
			strconv.Itoa(res.PairsPruned),
		})
	}
	return rows
}

// readPoses decodes a JSON array of poses from path, or from in when path is
// "-".
func readPoses(path string, in io.Reader) ([]scoring.Pose, error) {
	r := in
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeNotFound, "cannot open pose file").WithDetail(path)
		}
		defer f.Close()
		r = f
	}

	var poses []scoring.Pose
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&poses); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "cannot decode poses").WithDetail(path)
	}
	return poses, nil
}

func newScoreCmd() *cobra.Command {
	opts := &ScoreOptions{}

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a JSON batch of poses",
		Long: "Score a JSON array of poses.  Each pose carries its atom pairs with distances\n" +
			"and the ligand statistics used by conformation-independent terms.",
		Example: "  dockscore score --input poses.json --progress\n" +
			"  cat poses.json | dockscore score --input - -o json\n" +
			"  dockscore score --input poses.json --config weights.yaml --watch",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			return runScore(cmd, cliCtx, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Input, "input", "i", "", "pose file (JSON array), or - for stdin")
	f.BoolVar(&opts.Progress, "progress", false, "draw a progress bar on stderr")
	f.StringVar(&opts.MetricsFile, "metrics-file", "", "write Prometheus metrics to this textfile after scoring")
	f.IntVar(&opts.Workers, "workers", 0, "scoring goroutines (default from config)")
	f.BoolVar(&opts.Watch, "watch", false, "keep running and rescore whenever the config file changes")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runScore(cmd *cobra.Command, cliCtx *CLIContext, opts *ScoreOptions) error {
	if opts.Watch && cliCtx.ConfigPath == "" {
		return errors.InvalidParam("--watch needs a config file")
	}

	poses, err := readPoses(opts.Input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if err := scoreOnce(cmd, cliCtx, opts, poses); err != nil || !opts.Watch {
		return err
	}
	return watchAndRescore(cmd, cliCtx, opts, poses)
}

// watchAndRescore rescores poses with every valid revision of the config file
// until the command context ends.  Failed rescoring is logged and the watch
// goes on.
func watchAndRescore(cmd *cobra.Command, cliCtx *CLIContext, opts *ScoreOptions, poses []scoring.Pose) error {
	ctx := cmd.Context()
	log := cliCtx.Logger.Named("watch")
	updates := make(chan *config.Config)

	config.Watch(cliCtx.ConfigPath, func(cfg *config.Config, e fsnotify.Event) {
		log.Info("config changed", logging.String("path", e.Name), logging.String("op", e.Op.String()))
		select {
		case updates <- cfg:
		case <-ctx.Done():
		}
	}, func(err error) {
		log.Warn("config change rejected", logging.Err(err))
	})
	log.Info("watching config", logging.String("path", cliCtx.ConfigPath))

	for {
		select {
		case <-ctx.Done():
			log.Info("watch stopped")
			return nil
		case cfg := <-updates:
			next := *cliCtx
			next.Config = cfg
			if err := scoreOnce(cmd, &next, opts, poses); err != nil {
				log.Error("rescoring failed", logging.String("code", string(errors.GetCode(err))), logging.Err(err))
			}
		}
	}
}

func scoreOnce(cmd *cobra.Command, cliCtx *CLIContext, opts *ScoreOptions, poses []scoring.Pose) error {
	cfg := cliCtx.Config
	log := cliCtx.Logger.Named("score")

	var (
		collector prom.MetricsCollector
		metrics   *prom.ScoringMetrics
		evOpts    []scoring.Option
		err       error
	)
	metricsFile := opts.MetricsFile
	if metricsFile == "" {
		metricsFile = cfg.Metrics.TextfilePath
	}
	if cfg.Metrics.Enabled || metricsFile != "" {
		collector, err = prom.NewMetricsCollector(prom.CollectorConfig{
			Namespace: cfg.Metrics.Namespace,
			Subsystem: cfg.Metrics.Subsystem,
		}, log)
		if err != nil {
			return err
		}
		metrics = prom.NewScoringMetrics(collector)
		evOpts = append(evOpts, scoring.WithMetrics(metrics))
	}
	if opts.Workers > 0 {
		evOpts = append(evOpts, scoring.WithWorkers(opts.Workers))
	}

	ev, err := buildEvaluator(cliCtx, evOpts...)
	if err != nil {
		return err
	}
	reg := ev.Registry()
	prom.RecordTerms(metrics, reg.NumPairwise(), reg.NumConfIndependent(), len(reg.Inactive()))

	var prog scoring.Progress
	var bar *progress.Reporter
	if opts.Progress || cfg.Scoring.Progress {
		bar = progress.New(cmd.ErrOrStderr(), uint64(len(poses)))
		prog = bar
	}

	batch, err := ev.ScoreBatch(cmd.Context(), poses, prog)
	if bar != nil {
		_ = bar.Close()
	}
	if collector != nil && metricsFile != "" {
		if werr := collector.WriteTextfile(metricsFile); werr != nil {
			log.Warn("metrics textfile not written", logging.String("path", metricsFile), logging.Err(werr))
		}
	}
	if err != nil {
		return err
	}
	return PrintResult(cmd, ScoreReport{batch})
}

//Personal.AI order the ending
