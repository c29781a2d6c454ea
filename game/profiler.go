package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"sparkpool/particle"
)

// ErrProfiling is returned when a capture is already running or on cooldown.
var ErrProfiling = errors.New("profile capture unavailable")

// Profiler captures a CPU profile and execution trace on demand
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	captureDuration time.Duration
	profilesDir     string
}

// NewProfiler creates a new profiler writing into dir
func NewProfiler(dir string) *Profiler {
	return &Profiler{
		captureCooldown: 10 * time.Second,
		captureDuration: 5 * time.Second,
		profilesDir:     dir,
	}
}

// CaptureProfile starts a background capture. It returns ErrProfiling when a
// capture is running or the cooldown has not elapsed.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return fmt.Errorf("%w: already profiling", ErrProfiling)
	}
	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("%w: on cooldown (last capture %v ago)", ErrProfiling, since.Round(time.Second))
	}
	if err := os.MkdirAll(p.profilesDir, 0o755); err != nil {
		return fmt.Errorf("create profiles dir: %w", err)
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("%s-%s", reason, time.Now().Format("20060102-150405"))

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".cpu.prof", pprof.StartCPUProfile, pprof.StopCPUProfile); err != nil {
				particle.Logger().Warn("cpu profile failed", "err", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.capture(baseName+".trace", trace.Start, trace.Stop); err != nil {
				particle.Logger().Warn("trace failed", "err", err)
			}
		}()
		wg.Wait()

		particle.Logger().Info("profile captured",
			"dir", p.profilesDir, "name", baseName, "duration", p.captureDuration)
	}()

	return nil
}

func (p *Profiler) capture(name string, start func(io.Writer) error, stop func()) error {
	path := filepath.Join(p.profilesDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := start(f); err != nil {
		return fmt.Errorf("start %s: %w", path, err)
	}
	time.Sleep(p.captureDuration)
	stop()
	return nil
}
