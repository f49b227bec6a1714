package component

// Controls is the logical button state polled once per tick
type Controls struct {
	Up    bool
	Left  bool
	Right bool
}
