package cli

type Prompter interface {
	Confirm(label string, defaultYes bool) (bool, error)
}
