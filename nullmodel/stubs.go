// SPDX-License-Identifier: MIT
// Package: graphsig/nullmodel
//
// stubs.go — shared stub-pairing and double-edge-swap machinery for the
// degree-preserving families (FixedDegreeSequence, FixedInOutDegrees).
//
// Model:
//   - Stub matching: each node index appears once per degree unit in a stub
//     list; a shuffled list is read off pairwise. A pairing is valid when it
//     creates no loop and no duplicate edge; invalid pairings are discarded
//     and reshuffled within a bounded retry budget (never an unbounded loop).
//   - Double-edge swaps: after a valid pairing, an optional Markov chain of
//     swap attempts ((u1,v1),(u2,v2) → (u1,v2),(u2,v1)) further mixes the
//     realization. Stub matching alone is a heuristic sampler with known
//     residual correlation (high-degree nodes are slightly over-connected);
//     the swap chain reduces — but does not provably remove — that bias.
//     See doc.go for the uniformity statement.
package nullmodel

// arc is a node-index pair; ordered for directed families, canonical
// (u ≤ v) for undirected ones.
type arc [2]int

// canonicalArc normalizes an undirected pair to u ≤ v.
func canonicalArc(u, v int) arc {
	if u > v {
		u, v = v, u
	}

	return arc{u, v}
}

// collectPairs reads a shuffled stub list off pairwise and validates the
// pairing: no loops, no duplicates (directed: no duplicate arcs).
// Returns (pairs, seen, true) on success; (nil, nil, false) on a collision,
// signalling the caller to reshuffle.
// Complexity: O(len(stubs)).
func collectPairs(stubs []int, directed bool) ([]arc, map[arc]struct{}, bool) {
	pairs := make([]arc, 0, len(stubs)/2)
	seen := make(map[arc]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return nil, nil, false // loop: degree-preserving families are simple
		}
		key := arc{u, v}
		if !directed {
			key = canonicalArc(u, v)
		}
		if _, dup := seen[key]; dup {
			return nil, nil, false
		}
		seen[key] = struct{}{}
		pairs = append(pairs, key)
	}

	return pairs, seen, true
}

// matchStubs pairs outStubs[k] with inStubs[k] (the directed variant of
// collectPairs); the caller shuffles inStubs beforehand.
func matchStubs(outStubs, inStubs []int) ([]arc, map[arc]struct{}, bool) {
	pairs := make([]arc, 0, len(outStubs))
	seen := make(map[arc]struct{}, len(outStubs))
	for k := range outStubs {
		u, v := outStubs[k], inStubs[k]
		if u == v {
			return nil, nil, false
		}
		key := arc{u, v}
		if _, dup := seen[key]; dup {
			return nil, nil, false
		}
		seen[key] = struct{}{}
		pairs = append(pairs, key)
	}

	return pairs, seen, true
}

// applySwaps runs `swaps` double-edge-swap attempts over the pairing.
// Each attempt picks two edges and proposes (u1,v1),(u2,v2) → (u1,v2),(u2,v1);
// proposals creating a loop or a duplicate are rejected, so the degree
// sequence is preserved exactly throughout the chain.
// Complexity: O(swaps) expected; the seen-set keeps each attempt O(1).
func applySwaps(pairs []arc, seen map[arc]struct{}, swaps int, rng randSource, directed bool) {
	if len(pairs) < 2 {
		return
	}
	for s := 0; s < swaps; s++ {
		a := rng.Intn(len(pairs))
		b := rng.Intn(len(pairs))
		if a == b {
			continue
		}
		u1, v1 := pairs[a][0], pairs[a][1]
		u2, v2 := pairs[b][0], pairs[b][1]
		if u1 == v2 || u2 == v1 {
			continue // proposal would create a loop
		}

		k1, k2 := arc{u1, v2}, arc{u2, v1}
		if !directed {
			k1 = canonicalArc(u1, v2)
			k2 = canonicalArc(u2, v1)
		}
		if k1 == k2 {
			continue
		}
		// Remove the old keys first so self-collisions are not false dups.
		delete(seen, pairs[a])
		delete(seen, pairs[b])
		if _, dup := seen[k1]; dup {
			seen[pairs[a]] = struct{}{}
			seen[pairs[b]] = struct{}{}
			continue
		}
		if _, dup := seen[k2]; dup {
			seen[pairs[a]] = struct{}{}
			seen[pairs[b]] = struct{}{}
			continue
		}
		seen[k1] = struct{}{}
		seen[k2] = struct{}{}
		pairs[a] = k1
		pairs[b] = k2
	}
}

// randSource is the minimal RNG surface applySwaps needs; *rand.Rand
// satisfies it, and tests may substitute a scripted source.
type randSource interface {
	Intn(n int) int
}
