package process

import (
	"bytes"
	"fmt"
	"os/exec"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	maxJobDuration = 1000 * time.Second
)

func runProcess(
	createCMD CreateCMD, inputPath string, maxJobDuration time.Duration,
) Result {
	result := Result{Errors: []string{}}

	cmd := createCMD.CreateCMD(inputPath)
	log.Debugf("cmd to run: %s", cmd.Path)

	stdout, stderr, err := runCmdAndWaitForResults(cmd, maxJobDuration)
	result.StdOut = stdout
	result.StdErr = stderr
	if err != nil {
		err = fmt.Errorf("run %s error: %s", cmd.Path, err)
		log.Error(err.Error())
		result.Errors = append(result.Errors, err.Error())
	}

	return result
}

func runCmdAndWaitForResults(
	cmd *exec.Cmd, maxJobDuration time.Duration,
) (stdout string, stderr string, err error) {
	processFinished := make(chan error)

	stdoutBuff := &bytes.Buffer{}
	stderrBuff := &bytes.Buffer{}
	cmd.Stdout = stdoutBuff
	cmd.Stderr = stderrBuff

	err = cmd.Start()
	if err != nil {
		return "", "", err
	}

	go func() {
		processFinished <- cmd.Wait()
	}()

	select {
	case err = <-processFinished:
	case <-time.After(maxJobDuration):
		err = fmt.Errorf("%s command timeout expired", cmd.Path)
		_ = cmd.Process.Kill()
	}

	stdout = stdoutBuff.String()
	stderr = stderrBuff.String()
	return stdout, stderr, err
}
