package parsing

import "github.com/golang/glog"

// Trace logs entry and outcome of p under -v=2. Useful when a deeply
// nested grammar backtracks somewhere unexpected.
func Trace[T Token, O any](name string, p Parser[T, O]) Parser[T, O] {
	return ParseFunc[T, O](func(s Stream[T]) (O, error) {
		if glog.V(2) {
			glog.Infof("%s: parse at offset %d", name, s.Offset())
		}
		o, err := Apply(p, s)
		if glog.V(2) {
			if err == nil {
				glog.Infof("%s: matched, now at offset %d", name, s.Offset())
			} else {
				glog.Infof("%s: %v", name, err)
			}
		}
		return o, err
	})
}
