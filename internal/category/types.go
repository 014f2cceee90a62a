package category

// AddOutput returns the category set after an add. The added category becomes
// the active one.
type AddOutput struct {
	Categories []string
	Active     string
}
