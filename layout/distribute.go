package layout

// DistItem is one entry in a primary-axis distribution.
type DistItem struct {
	Base   int // Size already claimed along the axis
	Weight int // Share of leftover space; 0 never grows
}

// Distribute splits the space left after bases and gaps among weighted
// items in proportion to their weight, returning the extra pixels for each
// item in order.
//
// Shares are floored; the whole pixels recovered from the fractional parts
// go one each to the first weighted items. Non-weighted items always get 0
// and the sum of extras never exceeds the leftover space.
func Distribute(available, gaps int, items []DistItem) []int {
	extra := make([]int, len(items))

	space := available - gaps
	totalWeight := 0
	for _, it := range items {
		space -= it.Base
		if it.Weight > 0 {
			totalWeight += it.Weight
		}
	}
	if space <= 0 || totalWeight == 0 {
		return extra
	}

	// Integer arithmetic keeps the shares exact: share = space*w/total with
	// the remainder numerators summed separately.
	remainder := 0
	for i, it := range items {
		if it.Weight <= 0 {
			continue
		}
		n := space * it.Weight
		extra[i] = n / totalWeight
		remainder += n % totalWeight
	}

	// round(remainder/totalWeight), half away from zero.
	leftover := (2*remainder + totalWeight) / (2 * totalWeight)
	for i, it := range items {
		if leftover == 0 {
			break
		}
		if it.Weight > 0 {
			extra[i]++
			leftover--
		}
	}

	debugLog("distribute: space=%d weight=%d extra=%v", space, totalWeight, extra)
	return extra
}
