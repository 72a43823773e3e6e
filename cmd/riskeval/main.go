package main

import (
	"flag"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"creditcore/eval"
	"creditcore/internal/data"
	"creditcore/learn"
	"creditcore/selection"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	samples := flag.Int("samples", 2000, "number of synthetic applications")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	run := uuid.New().String()
	logger := log.With().Str("run", run).Logger()

	x, y, names, err := data.Portfolio(*samples, *seed)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not generate portfolio")
	}
	defaults := 0
	for _, label := range y {
		defaults += label
	}
	logger.Info().Int("samples", len(y)).Int("defaults", defaults).Msg("portfolio ready")

	methods := []selection.Method{
		selection.MethodTreeImportance,
		selection.MethodLasso,
		selection.MethodWoeIV,
		selection.MethodBoruta,
		selection.MethodShap,
	}
	for _, method := range methods {
		result, err := selection.Select(x, y, names, selection.Request{Method: method, Seed: *seed})
		if err != nil {
			logger.Error().Err(err).Str("method", string(method)).Msg("selection failed")
			continue
		}
		top := result.FeatureScores[0]
		logger.Info().
			Str("method", string(method)).
			Int("selected", result.NSelected).
			Int("total", result.NTotal).
			Str("top_feature", top.Feature).
			Float64("top_score", top.Score).
			Msg("selection done")
	}

	forest := learn.NewForest(100, *seed)
	if err := forest.Fit(x, y); err != nil {
		logger.Fatal().Err(err).Msg("could not train forest")
	}
	proba, err := forest.PredictProba(x)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not score portfolio")
	}

	metrics, err := eval.Evaluate(y, proba, eval.DefaultConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("could not evaluate model")
	}
	logger.Info().
		Float64("threshold", metrics.Threshold.Threshold).
		Float64("youden_j", metrics.Threshold.YoudenJ).
		Float64("roc_auc", metrics.ROCAUC).
		Float64("accuracy", metrics.Accuracy).
		Float64("f1", metrics.F1).
		Msg("evaluation done")
}
