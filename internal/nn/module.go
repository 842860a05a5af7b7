// Package nn implements a fully-connected feed-forward network trained by
// per-case momentum gradient descent.
//
// This package provides:
//   - Network: layer activations, weights, biases and momentum buffers
//   - Activation: a transform and its derivative (Identity, Sigmoid, Tanh, ReLU)
//   - A fixed cross-entropy loss used by Error, DError and Backward
//
// Every numeric primitive comes from internal/matrix; the network only
// combines them.
package nn

// noCopy may be added to structs which must not be copied after first use.
// go vet's copylocks check reports copies of values containing it.
type noCopy struct{}

// Lock is a no-op used by the copylocks checker.
func (*noCopy) Lock() {}

// Unlock is a no-op used by the copylocks checker.
func (*noCopy) Unlock() {}
