// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsvcube

import (
	"log/slog"
	"slices"

	"cogentcore.org/hsvcube/colors"
)

// UserDataKey is the user data key under which [Assign] stores
// each handle's [Sample].
const UserDataKey = "HSV"

// Handle is a visual object that samples are assigned to.
// The layout never creates or destroys handles, it only decorates them.
// *xyz.Solid implements Handle.
type Handle interface {
	SetUserData(key string, v any)
}

// Binding pairs a handle with the sample assigned to it.
type Binding[H any] struct {

	// Index is the position of the handle in the pool.
	Index int

	// Handle is the pool handle at Index.
	Handle H

	// Sample is the sample bound to the handle.
	Sample Sample
}

// SortSamples sorts the samples in place in ascending color order,
// as defined by [colors.Compare]. The sort is stable: samples with
// equal colors keep their generation order.
func SortSamples(samples []Sample) {
	slices.SortStableFunc(samples, func(a, b Sample) int {
		return colors.Compare(a.Color, b.Color)
	})
}

// Bind returns the bindings of a color-sorted copy of samples onto
// the pool by position: pool[i] gets the i-th sample in color order.
// If the pool is shorter than samples, the trailing samples are
// dropped; if it is longer, the trailing handles get no binding.
// Neither the pool nor samples are modified.
func Bind[H any](pool []H, samples []Sample) []Binding[H] {
	sorted := slices.Clone(samples)
	SortSamples(sorted)
	n := min(len(pool), len(sorted))
	if len(pool) < len(sorted) {
		slog.Debug("hsvcube: pool shorter than samples, truncating", "pool", len(pool), "samples", len(sorted))
	}
	bs := make([]Binding[H], n)
	for i := 0; i < n; i++ {
		bs[i] = Binding[H]{Index: i, Handle: pool[i], Sample: sorted[i]}
	}
	return bs
}

// Assign stores each sample of [Bind] on its handle under [UserDataKey].
// Handles beyond the number of samples are left untouched.
// Assigning the same samples to the same pool again yields
// identical bindings.
func Assign[H Handle](pool []H, samples []Sample) {
	for _, b := range Bind(pool, samples) {
		b.Handle.SetUserData(UserDataKey, b.Sample)
	}
}
