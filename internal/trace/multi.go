package trace

import "errors"

// MultiTracer fans events out to several tracers; trace mode "both" pairs a
// stream with a ring.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

// NewMultiTracer drops nil and disabled tracers.
func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	live := make([]Tracer, 0, len(tracers))
	for _, tr := range tracers {
		if tr != nil && tr.Enabled() {
			live = append(live, tr)
		}
	}
	return &MultiTracer{tracers: live, level: level}
}

func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		tr.Emit(ev)
	}
}

func (t *MultiTracer) Flush() error {
	errs := make([]error, 0, len(t.tracers))
	for _, tr := range t.tracers {
		errs = append(errs, tr.Flush())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Close() error {
	errs := make([]error, 0, len(t.tracers))
	for _, tr := range t.tracers {
		errs = append(errs, tr.Close())
	}
	return errors.Join(errs...)
}

func (t *MultiTracer) Level() Level { return t.level }
func (t *MultiTracer) Enabled() bool { return t.level > LevelOff }
