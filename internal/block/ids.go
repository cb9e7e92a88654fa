package block

// Block IDs are server-owned: assigned on write, stripped by clients
// before resubmission. During editing a block has no identity beyond
// its array position.

// WithIDs returns a copy of the list in which every block missing an ID
// gets one from newID. Unknown blocks are left untouched.
func (l List) WithIDs(newID func() string) List {
	out := make(List, len(l))
	for i, b := range l {
		out[i] = withID(b, newID)
	}
	return out
}

func withID(b Block, newID func() string) Block {
	switch v := b.(type) {
	case Text:
		if v.ID == "" {
			v.ID = newID()
		}
		return v
	case FullImage:
		if v.ID == "" {
			v.ID = newID()
		}
		return v
	case SideBySideImage:
		if v.ID == "" {
			v.ID = newID()
		}
		return v
	case TextAndSideImage:
		if v.ID == "" {
			v.ID = newID()
		}
		return v
	case ThreeGridLayout:
		if v.ID == "" {
			v.ID = newID()
		}
		return v
	}
	return b
}

// StripIDs returns a copy of the list with every server-assigned block
// ID cleared, for resubmission in an update payload.
func (l List) StripIDs() List {
	out := make(List, len(l))
	for i, b := range l {
		out[i] = stripID(b)
	}
	return out
}

func stripID(b Block) Block {
	switch v := b.(type) {
	case Text:
		v.ID = ""
		return v
	case FullImage:
		v.ID = ""
		return v
	case SideBySideImage:
		v.ID = ""
		return v
	case TextAndSideImage:
		v.ID = ""
		return v
	case ThreeGridLayout:
		v.ID = ""
		return v
	}
	return b
}
