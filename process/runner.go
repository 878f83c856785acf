// Package process implements starting and supervising external
// compiler processes.
package process

import (
	"os/exec"
)

const (
	maxNumberOfWorkers = 4
)

// CreateCMD creates the command which compiles one generated document.
type CreateCMD interface {
	CreateCMD(inputPath string) *exec.Cmd
}

// Runner starts and supervises external compiler runs with bounded
// concurrency.
type Runner struct {
	workerTokens chan bool
}

// Result of one external compiler run.
type Result struct {
	StdOut string
	StdErr string
	Errors []string
}

// Ok reports whether the run finished without errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// NewRunner creates a Runner which is ready to run new jobs.
func NewRunner() Runner {
	runner := Runner{
		workerTokens: make(chan bool, maxNumberOfWorkers),
	}

	for i := 0; i < maxNumberOfWorkers; i++ {
		runner.workerTokens <- true
	}

	return runner
}

// Run a new job. Blocks until a worker token is available.
func (r *Runner) Run(createCMD CreateCMD, inputPath string) Result {
	<-r.workerTokens
	defer func() { r.workerTokens <- true }()
	return runProcess(createCMD, inputPath, maxJobDuration)
}
