// Package dedupe collapses concurrent identical reads into one. Only one
// call runs per key on a group while other callers wait for its result.
// Each owner keeps its own singleflight.Group so keys never cross owners.
package dedupe

import "golang.org/x/sync/singleflight"

// Do runs fn once per key among the concurrent callers sharing g and hands
// every caller the same typed result.
func Do[T any](g *singleflight.Group, key string, fn func() (T, error)) (T, error) {
	v, err, _ := g.Do(key, func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
