package command

type Request struct {
	Command string
	Params  []any
}

type Result struct {
	Request Request
	Output  string
	Err     error
}

// ExecuteBatch runs every request in order and keeps going after failures.
func (c *Controller) ExecuteBatch(requests []Request) []Result {
	results := make([]Result, 0, len(requests))
	for _, req := range requests {
		output, err := c.Execute(req.Command, req.Params...)
		results = append(results, Result{
			Request: req,
			Output:  output,
			Err:     err,
		})
	}
	return results
}

func (r Result) Failed() bool {
	return r.Err != nil
}
