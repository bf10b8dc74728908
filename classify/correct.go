package classify

// CorrectHierarchy enforces monotonic outline depth over candidates already
// in document order: a heading may be at most one level deeper than the
// deepest level seen so far, so an outline can never jump from H1 straight
// to H3. Deeper candidates are clamped upward, never dropped. The input
// slice is modified in place and returned.
func CorrectHierarchy(candidates []HeadingCandidate) []HeadingCandidate {
	if len(candidates) == 0 {
		return candidates
	}

	maxSeen := HeadingLevel(0)
	for i := range candidates {
		limit := maxSeen + 1
		if candidates[i].Level > limit {
			candidates[i].Level = limit
		}
		if candidates[i].Level > maxSeen {
			maxSeen = candidates[i].Level
		}
	}
	return candidates
}
