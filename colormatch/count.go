package colormatch

// CountUnique returns the number of distinct colors across the catalog,
// compared by canonical lowercase hex.
func CountUnique(c *Catalog) int {
	if c == nil {
		return 0
	}
	seen := make(map[string]struct{})
	for _, g := range c.gradients {
		for _, color := range g.Colors {
			seen[color.Hex()] = struct{}{}
		}
	}
	return len(seen)
}
