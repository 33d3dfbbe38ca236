// Package trace implements the optional right-stick trace recorder
// (A3): a flag-gated, one-row-per-commit Parquet dump used for offline
// tuning of the smoothing constants in internal/config. It is built on
// the same columnar-encoding dependency this program already links for
// bulk telemetry, repurposed here from a video-session record format to
// a short numeric schema.
package trace

import (
	"fmt"
	"sync"
	"time"

	localsource "github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/clemenscodes/joymouse/internal/model"
)

// Row is one right-stick commit, flattened for columnar storage.
type Row struct {
	TimestampEpoch float64 `parquet:"name=timestamp_epoch, type=DOUBLE"`
	RawSpeed       float64 `parquet:"name=raw_speed, type=DOUBLE"`
	NormSpeed      float64 `parquet:"name=norm_speed, type=DOUBLE"`
	Motion         string  `parquet:"name=motion, type=BYTE_ARRAY, convertedtype=UTF8"`
	AngleDeg       float64 `parquet:"name=angle_deg, type=DOUBLE"`
	HasAngle       bool    `parquet:"name=has_angle, type=BOOLEAN"`
	X              float64 `parquet:"name=x, type=DOUBLE"`
	Y              float64 `parquet:"name=y, type=DOUBLE"`
}

// Recorder appends one Row per right-stick commit to a Parquet file. It
// implements controller.CommitMirror.
type Recorder struct {
	mu sync.Mutex
	fw *localsource.LocalFile
	pw *writer.ParquetWriter
}

// NewRecorder creates (or truncates) the Parquet file at path with a
// fixed row-group size appropriate for this program's low event rate.
func NewRecorder(path string) (*Recorder, error) {
	fw, err := localsource.NewLocalFileWriter(path)
	if err != nil {
		return nil, fmt.Errorf("trace: opening %s: %w", path, err)
	}
	pw, err := writer.NewParquetWriter(fw, new(Row), 2)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("trace: creating writer: %w", err)
	}
	pw.RowGroupSize = 8 * 1024 * 1024
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	return &Recorder{fw: fw, pw: pw}, nil
}

// MirrorCommit writes one row. It is best-effort: a write failure is
// swallowed here, matching the spec's side-channel error policy; the
// caller never learns of it from this method's signature.
func (r *Recorder) MirrorCommit(pos model.Vector, motion model.Motion, angleDeg float64, hasAngle bool, rawSpeed, normSpeed float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := Row{
		TimestampEpoch: float64(time.Now().UnixNano()) / 1e9,
		RawSpeed:       rawSpeed,
		NormSpeed:      normSpeed,
		Motion:         motion.String(),
		AngleDeg:       angleDeg,
		HasAngle:       hasAngle,
		X:              pos.X,
		Y:              pos.Y,
	}
	_ = r.pw.Write(row)
}

// Close flushes the row group and closes the underlying file.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.pw.WriteStop(); err != nil {
		r.fw.Close()
		return fmt.Errorf("trace: finalising parquet: %w", err)
	}
	return r.fw.Close()
}
