package config

import "github.com/synthfront/qsynth/internal/config/store"

// Widget is a top-level window whose geometry is remembered.
type Widget interface {
	ObjectName() string
	Pos() (x, y int)
	Size() (width, height int)
	IsVisible() bool
	Move(x, y int)
	Resize(width, height int)
	AdjustSize()
	Show()
	Hide()
}

// ComboBox is an editable combo box whose entries are remembered.
type ComboBox interface {
	ObjectName() string
	CurrentText() string
	Items() []string
	SetItems(items []string)
}

// LoadComboBoxHistory replaces the combo box entries with its stored
// history, keeping at most limit entries. A combo box with no stored
// history keeps its entries.
func (o *Options) LoadComboBoxHistory(cb ComboBox, limit int) {
	sc := o.store.Group("/History").Group(cb.ObjectName())
	if len(sc.ChildKeys()) == 0 {
		return
	}

	var items []string
	for i := 1; i <= limit; i++ {
		item := sc.String(store.ListKey("Item", i), "")
		if item == "" {
			break
		}
		items = append(items, item)
	}
	cb.SetItems(items)
}

// SaveComboBoxHistory moves the current text to the front of the combo box
// entries, drops the oldest ones beyond limit and stores the result.
func (o *Options) SaveComboBoxHistory(cb ComboBox, limit int) {
	current := cb.CurrentText()

	var items []string
	for _, item := range cb.Items() {
		if item != current {
			items = append(items, item)
		}
	}
	for len(items) > 0 && len(items) >= limit {
		items = items[:len(items)-1]
	}
	items = append([]string{current}, items...)
	cb.SetItems(items)

	// Empty entries would end the stored list early.
	stored := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			stored = append(stored, item)
		}
	}
	o.store.Group("/History").Group(cb.ObjectName()).WriteList("Item", stored)
}

// LoadWidgetGeometry restores a widget's position, size and visibility.
// A stored position or size with a non-positive component is ignored;
// without a size the widget sizes itself. A minimized application keeps
// the widget hidden.
func (o *Options) LoadWidgetGeometry(w Widget, minimized bool) {
	sc := o.store.Group("/Geometry").Group(w.ObjectName())

	x, y := sc.Int("x", -1), sc.Int("y", -1)
	width, height := sc.Int("width", -1), sc.Int("height", -1)
	visible := sc.Bool("visible", false)

	if x > 0 && y > 0 {
		w.Move(x, y)
	}
	if width > 0 && height > 0 {
		w.Resize(width, height)
	} else {
		w.AdjustSize()
	}
	if visible && !minimized {
		w.Show()
	} else {
		w.Hide()
	}
}

// SaveWidgetGeometry stores a widget's position, size and visibility.
func (o *Options) SaveWidgetGeometry(w Widget, minimized bool) {
	sc := o.store.Group("/Geometry").Group(w.ObjectName())

	x, y := w.Pos()
	width, height := w.Size()
	sc.SetValue("x", x)
	sc.SetValue("y", y)
	sc.SetValue("width", width)
	sc.SetValue("height", height)
	sc.SetValue("visible", w.IsVisible() && !minimized)
}
