package risk

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ArtifactSchemaVersion guards against loading artifacts written by an
// incompatible build.
const ArtifactSchemaVersion = 1

// ErrArtifactSchema is returned when a persisted artifact does not match the
// expected schema.
var ErrArtifactSchema = errors.New("model artifact schema mismatch")

// Artifact bundles the trained classifier and its fitted scaler. It is
// written exactly once during train-or-load and shared read-only across all
// inference calls afterwards.
type Artifact struct {
	SchemaVersion int
	Forest        *Forest
	Scaler        *Scaler
	TrainedAt     time.Time
}

// NewArtifact wraps a trained forest and fitted scaler.
func NewArtifact(forest *Forest, scaler *Scaler) *Artifact {
	return &Artifact{
		SchemaVersion: ArtifactSchemaVersion,
		Forest:        forest,
		Scaler:        scaler,
		TrainedAt:     time.Now().UTC(),
	}
}

// Score runs scaler transform and classifier inference on a feature vector.
func (a *Artifact) Score(v FeatureVector) float64 {
	var scorer Scorer = a.Forest
	return scorer.Predict(a.Scaler.Transform(v[:]))
}

// Save persists the artifact to path. The parent directory is created if
// needed; the write goes through a temp file and rename so a crashed save
// never leaves a truncated artifact behind.
func (a *Artifact) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating model directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "artifact-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(a); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing artifact: %w", err)
	}

	return nil
}

// LoadArtifact reads a persisted artifact from path and validates it.
func LoadArtifact(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening artifact: %w", err)
	}
	defer f.Close()

	var a Artifact
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return nil, fmt.Errorf("decoding artifact: %w", err)
	}

	if a.SchemaVersion != ArtifactSchemaVersion || a.Forest == nil || a.Scaler == nil {
		return nil, ErrArtifactSchema
	}
	if len(a.Forest.Trees) == 0 || len(a.Scaler.Mean) != FeatureCount {
		return nil, ErrArtifactSchema
	}

	return &a, nil
}
