// Package nav abstracts client-side route changes so controllers stay
// testable without a real UI shell.
package nav

// Route targets used by the auth controllers.
const (
	DashboardPath = "/dashboard"
	SignInPath    = "/auth/sign-in"
)

// Navigator performs route changes. Push adds a history entry; Replace
// swaps the current one so back cannot return to it.
type Navigator interface {
	Push(path string)
	Replace(path string)
}

// Recorder is a test double that records every navigation.
type Recorder struct {
	Pushed   []string
	Replaced []string
}

func (r *Recorder) Push(path string)    { r.Pushed = append(r.Pushed, path) }
func (r *Recorder) Replace(path string) { r.Replaced = append(r.Replaced, path) }
