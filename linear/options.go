package linear

// Option is a function that configures Ridge
type Option func(*Ridge)

// WithLearningRate sets the gradient-descent step size
func WithLearningRate(alpha float64) Option {
	return func(r *Ridge) {
		r.learningRate = alpha
	}
}

// WithMomentum sets the heavy-ball momentum coefficient
func WithMomentum(beta float64) Option {
	return func(r *Ridge) {
		r.momentum = beta
	}
}

// WithMaxIter sets the fixed number of gradient-descent iterations
func WithMaxIter(n int) Option {
	return func(r *Ridge) {
		r.maxIter = n
	}
}
