package harness

// Evaluation records what the evaluator produced for one case.
type Evaluation struct {
	Seq  int    `json:"seq"`
	Expr string `json:"expr"`

	// Kind and Text are set when evaluation succeeded.
	Kind string `json:"kind,omitempty"`
	Text string `json:"text,omitempty"`

	// Error is the error class and Message its text when evaluation failed.
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Failed reports whether the evaluation produced an error.
func (e Evaluation) Failed() bool {
	return e.Error != ""
}

// Result is the outcome of running a scenario.
type Result struct {
	// Pass is true if every case matched.
	Pass bool `json:"pass"`

	// Trace holds one Evaluation per case, in order.
	Trace []Evaluation `json:"trace"`

	// Errors describes each mismatch. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result with an empty trace.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []Evaluation{},
		Errors: []string{},
	}
}

// AddError records a mismatch and marks the result failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddEvaluation appends e to the trace.
func (r *Result) AddEvaluation(e Evaluation) {
	r.Trace = append(r.Trace, e)
}
