package utils

import (
	"time"
)

type Stopwatch struct {
	name   string
	starts map[string]time.Time
	totals map[string]time.Duration
	order  []string
}

func MakeStopwatch(name string) Stopwatch {
	return Stopwatch{
		name:   name,
		starts: make(map[string]time.Time),
		totals: make(map[string]time.Duration),
	}
}

func (watch *Stopwatch) Start(label string) {
	watch.starts[label] = time.Now()
}

func (watch *Stopwatch) Stop(label string) {
	start, ok := watch.starts[label]
	if !ok {
		return
	}

	if _, seen := watch.totals[label]; !seen {
		watch.order = append(watch.order, label)
	}

	watch.totals[label] += time.Now().Sub(start)
	delete(watch.starts, label)
}

func (watch Stopwatch) String() string {
	res := watch.name + ":"
	for _, label := range watch.order {
		res += " " + label + "=" + watch.totals[label].String()
	}

	return res
}
