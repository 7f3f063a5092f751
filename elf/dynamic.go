package elf

// DynamicEntry is a view over one tag/value pair of a DYNAMIC section.
type DynamicEntry struct {
	view  view
	index int
}

// Dynamic extracts the entries of a DYNAMIC section, terminating DT_NULL
// entry included.
func (s *Section) Dynamic() ([]*DynamicEntry, error) {
	if err := checkKind(s, DynamicRecord); err != nil {
		return nil, err
	}
	return records(s, dynamicFields, func(v view, i int) *DynamicEntry {
		return &DynamicEntry{view: v, index: i}
	})
}

func (d *DynamicEntry) Index() int {
	return d.index
}

func (d *DynamicEntry) Tag() DynamicTag {
	return DynamicTag(d.view.read(dynamicLayout.tag))
}

func (d *DynamicEntry) Value() uint64 {
	return d.view.read(dynamicLayout.value)
}

func (d *DynamicEntry) SetTag(v DynamicTag) error {
	return d.view.write(dynamicLayout.tag, uint64(v))
}

func (d *DynamicEntry) SetValue(v uint64) error {
	return d.view.write(dynamicLayout.value, v)
}
