package eval

// ModelMetrics is the comprehensive evaluation bundle a training workflow
// consumes per trained model. Calibration is nil when its computation failed
// or was not requested.
type ModelMetrics struct {
	Accuracy    float64
	Precision   float64
	Recall      float64
	F1          float64
	ROCAUC      float64
	Threshold   ThresholdResult
	ROC         ROCCurve
	Confusion   ConfusionMatrix
	Calibration *CalibrationCurve
}

// Config drives Evaluate. A nil Threshold requests the Youden-optimal one.
type Config struct {
	Threshold       *float64
	Calibration     bool
	CalibrationBins int
}

// DefaultConfig searches for the optimal threshold and requests a 10-bin
// calibration curve.
func DefaultConfig() Config {
	return Config{Calibration: true, CalibrationBins: 10}
}

// Evaluate combines the threshold engine and the evaluation primitives into
// one metrics bundle. Accuracy, precision, recall and F1 are recomputed from
// predictions at the resolved threshold, independent of the ThresholdResult
// internals. A calibration failure is the one soft spot: it is swallowed and
// the field left nil.
func Evaluate(labels []int, proba []float64, cfg Config) (ModelMetrics, error) {
	curve, err := ROC(labels, proba)
	if err != nil {
		return ModelMetrics{}, err
	}

	var result ThresholdResult
	if cfg.Threshold == nil {
		result, err = FindOptimalThreshold(labels, proba)
	} else {
		result, err = EvaluateThreshold(labels, proba, *cfg.Threshold)
	}
	if err != nil {
		return ModelMetrics{}, err
	}

	predictions := predict(proba, result.Threshold)
	cm, err := NewConfusionMatrix(labels, predictions)
	if err != nil {
		return ModelMetrics{}, err
	}

	precision := ratio(cm.TruePositives, cm.TruePositives+cm.FalsePositives)
	recall := ratio(cm.TruePositives, cm.TruePositives+cm.FalseNegatives)

	metrics := ModelMetrics{
		Accuracy:  ratio(cm.TruePositives+cm.TrueNegatives, len(labels)),
		Precision: precision,
		Recall:    recall,
		F1:        f1(precision, recall),
		ROCAUC:    AUC(curve),
		Threshold: result,
		ROC:       curve,
		Confusion: cm,
	}

	if cfg.Calibration {
		bins := cfg.CalibrationBins
		if bins <= 0 {
			bins = 10
		}
		if calibration, err := Calibration(labels, proba, bins); err == nil {
			metrics.Calibration = &calibration
		}
	}

	return metrics, nil
}
