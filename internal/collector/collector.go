// Package collector polls the platform on a configurable interval, keeps a
// fixed-capacity sample window per sensor, and publishes summarized
// snapshots for the UI.
package collector

import (
	"log"
	"sync"
	"time"

	"github.com/googlesky/sentop/internal/model"
	"github.com/googlesky/sentop/internal/platform"
	"github.com/googlesky/sentop/internal/sampler"
)

// rateAlpha is the EMA smoothing factor for derived network rates.
const rateAlpha = 0.4

// sensorWindow pairs one sensor's sample buffer with its display metadata.
// stores counts Store calls since the last reset, which lets the window
// contents be read back in chronological order through the buffer's
// modulo-wrapped accessor.
type sensorWindow struct {
	label  string
	kind   model.SensorKind
	unit   model.Unit
	buf    *sampler.Buffer[float64]
	stores int
}

// Collector owns the collection loop. All window state is guarded by mu:
// the loop goroutine stores samples, while the UI goroutine may call
// SetInterval and ResetWindows concurrently.
type Collector struct {
	platform platform.Platform
	window   int

	mu       sync.Mutex
	interval time.Duration
	windows  map[string]*sensorWindow
	order    []string // window insertion order, for stable display
	ifPrev   map[string]model.InterfaceStats
	prevTick time.Time
	rxRate   *EMA
	txRate   *EMA

	snapCh   chan model.Snapshot
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a Collector polling p every interval, keeping window samples
// per sensor.
func New(p platform.Platform, interval time.Duration, window int) *Collector {
	if window < 1 {
		window = 1
	}
	return &Collector{
		platform: p,
		window:   window,
		interval: interval,
		windows:  make(map[string]*sensorWindow),
		ifPrev:   make(map[string]model.InterfaceStats),
		rxRate:   NewEMA(rateAlpha),
		txRate:   NewEMA(rateAlpha),
		snapCh:   make(chan model.Snapshot, 1),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the collection loop and returns the snapshot channel. The
// channel is closed when Stop is called.
func (c *Collector) Start() <-chan model.Snapshot {
	go c.run()
	return c.snapCh
}

// Stop terminates the collection loop. Idempotent.
func (c *Collector) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopCh)
	})
}

// SetInterval changes the polling interval, taking effect after the tick in
// flight.
func (c *Collector) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.interval = d
	c.mu.Unlock()
}

// ResetWindows clears every sample window, restarting warm-up. The buffers
// keep their storage; only the logical view resets.
func (c *Collector) ResetWindows() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, w := range c.windows {
		w.buf.Clear()
		w.stores = 0
	}
	c.rxRate.Reset()
	c.txRate.Reset()
}

func (c *Collector) run() {
	defer close(c.snapCh)

	// Collect immediately so the UI has data at startup.
	c.tick(time.Now())

	for {
		c.mu.Lock()
		interval := c.interval
		c.mu.Unlock()

		select {
		case <-c.stopCh:
			return
		case now := <-time.After(interval):
			c.tick(now)
		}
	}
}

func (c *Collector) tick(now time.Time) {
	readings, ifaces, err := c.platform.Collect()
	if err != nil {
		log.Printf("sentop: collect failed: %v", err)
		return
	}

	snap := c.ingest(readings, ifaces, now)

	select {
	case c.snapCh <- snap:
	case <-c.stopCh:
	}
}

// ingest stores one collection cycle into the sample windows and builds the
// resulting snapshot.
func (c *Collector) ingest(readings []model.Reading, ifaces []model.InterfaceStats, now time.Time) model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range readings {
		c.store(r.ID, r.Label, r.Kind, r.Unit, r.Value)
	}

	if rx, tx, ok := c.netRates(ifaces, now); ok {
		c.store("net:rx", "Net RX", model.KindNetRate, model.UnitBytesPerSec, c.rxRate.Update(rx))
		c.store("net:tx", "Net TX", model.KindNetRate, model.UnitBytesPerSec, c.txRate.Update(tx))
	}
	c.prevTick = now

	snap := model.Snapshot{
		Taken:      now,
		Interfaces: ifaces,
	}
	for _, id := range c.order {
		snap.Sensors = append(snap.Sensors, c.buildStats(id))
	}
	return snap
}

// store appends one sample to a sensor's window, creating the window on the
// sensor's first appearance. Callers must hold mu.
func (c *Collector) store(id, label string, kind model.SensorKind, unit model.Unit, value float64) {
	w, ok := c.windows[id]
	if !ok {
		w = &sensorWindow{
			label: label,
			kind:  kind,
			unit:  unit,
			buf:   sampler.New[float64](c.window),
		}
		c.windows[id] = w
		c.order = append(c.order, id)
	}
	w.buf.Store(value)
	w.stores++
}

// netRates derives aggregate receive/transmit rates in bytes per second from
// consecutive interface counter snapshots. ok is false on the first cycle
// and whenever a counter went backwards (interface reset or re-creation).
func (c *Collector) netRates(ifaces []model.InterfaceStats, now time.Time) (rx, tx float64, ok bool) {
	prev := c.ifPrev
	c.ifPrev = make(map[string]model.InterfaceStats, len(ifaces))

	elapsed := now.Sub(c.prevTick).Seconds()
	primed := !c.prevTick.IsZero() && elapsed > 0

	var rxDelta, txDelta uint64
	var matched bool
	for _, cur := range ifaces {
		c.ifPrev[cur.Name] = cur
		p, seen := prev[cur.Name]
		if !seen || cur.BytesRecv < p.BytesRecv || cur.BytesSent < p.BytesSent {
			continue
		}
		rxDelta += cur.BytesRecv - p.BytesRecv
		txDelta += cur.BytesSent - p.BytesSent
		matched = true
	}

	if !primed || !matched {
		return 0, 0, false
	}
	return float64(rxDelta) / elapsed, float64(txDelta) / elapsed, true
}

// buildStats summarizes one window. Samples are reconstructed oldest first:
// the buffer itself never promises recency order, but knowing the total
// store count lets the wrapped accessor walk the slots chronologically.
// Callers must hold mu.
func (c *Collector) buildStats(id string) model.SensorStats {
	w := c.windows[id]

	count := w.buf.Len()
	samples := make([]float64, count)
	for i := 0; i < count; i++ {
		samples[i] = w.buf.At(w.stores - count + i)
	}

	return model.SensorStats{
		ID:      id,
		Label:   w.label,
		Kind:    w.kind,
		Unit:    w.unit,
		Latest:  w.buf.Latest(),
		Average: w.buf.Average(),
		Lowest:  w.buf.Lowest(),
		Highest: w.buf.Highest(),
		Count:   count,
		Window:  w.buf.Cap(),
		Ready:   w.buf.Ready(),
		Samples: samples,
	}
}
