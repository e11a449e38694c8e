package chart

// UnreferencedFiles returns the names that no declaration points at, in the
// order given. Names are compared exactly as written in the chart.
func (d *Document) UnreferencedFiles(names []string) []string {
	declared := make(map[string]bool, d.keysounds.Len())
	for _, k := range d.keysounds.All() {
		declared[k.File] = true
	}

	var res []string
	for _, name := range names {
		if !declared[name] {
			res = append(res, name)
		}
	}
	return res
}
