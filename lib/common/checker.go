package common

// Checker holds the state a list of check functions share; each function
// reads and fills it through the concrete checker type.
type Checker interface {
	GetFuncs() []CheckerFunc
}

// CheckerDeferFunc is called after every check function with its index and
// result.
type CheckerDeferFunc func(index int, checker Checker, err error)

var DefaultDeferFunc CheckerDeferFunc = func(int, Checker, error) {}

type CheckerFunc func(Checker, ...interface{}) error

type DefaultChecker struct {
	Funcs []CheckerFunc
}

func (c *DefaultChecker) GetFuncs() []CheckerFunc {
	return c.Funcs
}

// RunChecker runs the functions in order and stops at the first error.
func RunChecker(checker Checker, deferFunc CheckerDeferFunc, args ...interface{}) error {
	if deferFunc == nil {
		deferFunc = DefaultDeferFunc
	}

	for i, f := range checker.GetFuncs() {
		err := f(checker, args...)
		deferFunc(i, checker, err)
		if err != nil {
			return err
		}
	}

	return nil
}
