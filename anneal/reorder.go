package anneal

// reorder mutates d.order in place per the configured Reorder
// strategy, using the previous iteration's accepted tour lengths where
// the strategy needs them.
func (d *Driver) reorder() {
	n := len(d.order)
	if n < 2 {
		return
	}
	switch d.params.Reorder {
	case ReorderNo:
	case ReorderSwap2Random:
		i := d.rng.Intn(n)
		j := d.rng.Intn(n)
		d.order[i], d.order[j] = d.order[j], d.order[i]
	case ReorderRandomReorder:
		d.rng.Shuffle(n, func(i, j int) { d.order[i], d.order[j] = d.order[j], d.order[i] })
	case ReorderSwap2MostLeast:
		// minVal/maxVal are vehicle ids, reused directly as positions
		// into d.order, matching the original's literal index reuse.
		minVal, maxVal := d.order[0], d.order[0]
		minLen, maxLen := len(d.solution[d.order[0]]), len(d.solution[d.order[0]])
		for _, v := range d.order[1:] {
			l := len(d.solution[v])
			if l < minLen {
				minLen = l
				minVal = v
			}
			if l >= maxLen {
				maxLen = l
				maxVal = v
			}
		}
		d.order[minVal], d.order[maxVal] = d.order[maxVal], d.order[minVal]
	}
}
