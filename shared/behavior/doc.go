// Package behavior holds the per-tick decision logic for enemies and cameras.
// Everything here is a pure function over explicit state plus a tick delta.
// It must have zero dependencies on ebiten or donburi so the headless runner
// and the tests can use it directly.
package behavior
