package model

// PreviewRow describes one corpus line for the list command.
type PreviewRow struct {
	Number   int // 1-based
	Words    int
	Eligible int
	Hidden   int
	Display  Line
}
