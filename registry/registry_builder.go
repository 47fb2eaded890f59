package registry

// RegistryOption is a functional option used to configure a Registry during construction.
type RegistryOption func(*registry)

// WithTickWorkers sets the number of worker goroutines used for the parallel
// lifetime advance in Tick. Defaults to NumCPU-1 (minimum 1).
//
// Parameters:
//   - workers: the worker count (values < 1 are ignored)
//
// Returns:
//   - RegistryOption: a function that sets the tick worker count
func WithTickWorkers(workers int) RegistryOption {
	return func(r *registry) {
		if workers >= 1 {
			r.tickWorkers = workers
		}
	}
}
