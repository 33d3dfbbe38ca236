// Package session implements the one-shot session diagnostics banner
// (A4): a run UUID plus best-effort host/GPU/OS description, logged
// once at startup using the same host-introspection dependency this
// program already links.
package session

import (
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"github.com/jaypipes/ghw"
)

// Banner is the one-shot startup diagnostics record.
type Banner struct {
	RunID   string
	OS      string
	Arch    string
	GPU     string
	NumCPU  int
}

// Collect builds a Banner, generating a fresh run UUID and probing the
// host for GPU information. GPU detection failures are tolerated: the
// field is left as "unknown" rather than aborting startup, since this
// banner is diagnostic only.
func Collect() Banner {
	b := Banner{
		RunID:  uuid.NewString(),
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		GPU:    "unknown",
		NumCPU: runtime.NumCPU(),
	}

	gpuInfo, err := ghw.GPU()
	if err == nil && len(gpuInfo.GraphicsCards) > 0 {
		card := gpuInfo.GraphicsCards[0]
		if card.DeviceInfo != nil && card.DeviceInfo.Product != nil {
			vendor := "unknown vendor"
			if card.DeviceInfo.Vendor != nil {
				vendor = card.DeviceInfo.Vendor.Name
			}
			b.GPU = fmt.Sprintf("%s (%s)", card.DeviceInfo.Product.Name, vendor)
		}
	}
	return b
}

// Line renders the banner as the single log line written at startup.
func (b Banner) Line() string {
	return fmt.Sprintf("run=%s os=%s/%s cpus=%d gpu=%s", b.RunID, b.OS, b.Arch, b.NumCPU, b.GPU)
}
