package moderation

import "context"

// step is one locally committed write of a multi-step action.
type step struct {
	name string
	run  func(ctx context.Context) error
}

// runSteps runs steps in order and stops at the first failure. A failure
// of the first step is returned as is since nothing was written; later
// failures come back as *PartialCompletionError.
func runSteps(ctx context.Context, steps ...step) error {
	done := make([]string, 0, len(steps))
	for _, st := range steps {
		if err := st.run(ctx); err != nil {
			if len(done) == 0 {
				return err
			}
			return &PartialCompletionError{Completed: done, Failed: st.name, Err: err}
		}
		done = append(done, st.name)
	}
	return nil
}
