package domain

// Calendar is the ordered sequence of all slots for the current horizon
type Calendar struct {
	Slots []*Slot
}

// NewCalendar wraps slots that are already ordered by ID
func NewCalendar(slots []*Slot) *Calendar {
	return &Calendar{Slots: slots}
}

// Len returns the total number of slots
func (c *Calendar) Len() int {
	return len(c.Slots)
}

// IndexOf returns the position of the slot with the given ID or -1
func (c *Calendar) IndexOf(id int64) int {
	// IDs are contiguous starting at 1, so try the direct position first
	if i := int(id - 1); i >= 0 && i < len(c.Slots) && c.Slots[i].ID == id {
		return i
	}
	for i, s := range c.Slots {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// SlotByID returns the slot with the given ID or nil
func (c *Calendar) SlotByID(id int64) *Slot {
	if i := c.IndexOf(id); i >= 0 {
		return c.Slots[i]
	}
	return nil
}

// Clone returns a deep copy of the calendar
func (c *Calendar) Clone() *Calendar {
	slots := make([]*Slot, len(c.Slots))
	for i, s := range c.Slots {
		cp := *s
		slots[i] = &cp
	}
	return &Calendar{Slots: slots}
}

// AvailableCount returns the number of slots satisfying the availability invariant
func (c *Calendar) AvailableCount() int {
	n := 0
	for _, s := range c.Slots {
		if s.IsAvailable() {
			n++
		}
	}
	return n
}
