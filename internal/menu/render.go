package menu

// Sink paints the two visible lines of the display.
type Sink interface {
	Render(primary, secondary string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(primary, secondary string)

func (f SinkFunc) Render(primary, secondary string) { f(primary, secondary) }

// Frame returns the labels shown while item is selected: its own title and
// the title of the sibling a forward step would reach.
func Frame(item *Item) (string, string) {
	if item == nil {
		return "", ""
	}
	if item.next == nil {
		return item.Title, item.Title
	}
	return item.Title, item.next.Title
}
