package exec_test

import (
	"context"
	"io"
	"runtime"

	pkgerrors "github.com/pkg/errors"

	"github.com/TKChattoraj/bitcoin-first/internal/errors"
	"github.com/TKChattoraj/bitcoin-first/internal/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// trueCommand & falseCommand return platform-appropriate short-lived processes.
func trueCommand() exec.CommandConfig {
	if runtime.GOOS == "windows" {
		return exec.CommandConfig{Name: "cmd.exe", Args: []string{"/c", "exit 0"}}
	}

	return exec.CommandConfig{Name: "true"}
}

func falseCommand() exec.CommandConfig {
	if runtime.GOOS == "windows" {
		return exec.CommandConfig{Name: "cmd.exe", Args: []string{"/c", "exit 1"}}
	}

	return exec.CommandConfig{Name: "false"}
}

var _ = Describe("Local", func() {
	var (
		ctx    context.Context
		runner exec.Local
	)

	BeforeEach(func() {
		ctx = context.Background()
		runner = exec.Local{}
	})

	Describe("NewCommand", func() {
		It("constructs a startable command", func() {
			cmd, err := runner.NewCommand(ctx, trueCommand())
			Expect(err).ToNot(HaveOccurred())

			Expect(cmd.Start()).To(Succeed())
			Expect(cmd.Wait()).To(Succeed())
		})

		It("exposes all three standard streams as pipes", func() {
			cmd, err := runner.NewCommand(ctx, trueCommand())
			Expect(err).ToNot(HaveOccurred())

			stdin, err := cmd.StdinPipe()
			Expect(err).ToNot(HaveOccurred())

			stdout, err := cmd.StdoutPipe()
			Expect(err).ToNot(HaveOccurred())

			stderr, err := cmd.StderrPipe()
			Expect(err).ToNot(HaveOccurred())

			Expect(cmd.Start()).To(Succeed())
			Expect(stdin.Close()).To(Succeed())

			_, err = io.ReadAll(stdout)
			Expect(err).ToNot(HaveOccurred())
			_, err = io.ReadAll(stderr)
			Expect(err).ToNot(HaveOccurred())

			Expect(cmd.Wait()).To(Succeed())
		})

		It("applies environment overrides", func() {
			if runtime.GOOS == "windows" {
				Skip("this spec relies on POSIX shell utilities")
			}

			cmd, err := runner.NewCommand(ctx, exec.CommandConfig{
				Name: "sh",
				Args: []string{"-c", "echo $RUNJSON_TEST_ENV"},
				Env:  []string{"RUNJSON_TEST_ENV=some value"},
			})
			Expect(err).ToNot(HaveOccurred())

			stdout, err := cmd.StdoutPipe()
			Expect(err).ToNot(HaveOccurred())

			Expect(cmd.Start()).To(Succeed())

			data, err := io.ReadAll(stdout)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmd.Wait()).To(Succeed())

			Expect(string(data)).To(Equal("some value\n"))
		})

		It("reports a missing executable on Start", func() {
			cmd, err := runner.NewCommand(ctx, exec.CommandConfig{Name: "invalid_command"})
			Expect(err).ToNot(HaveOccurred())

			startErr := cmd.Start()
			Expect(startErr).To(HaveOccurred())
			Expect(startErr.Error()).To(ContainSubstring("file"))
		})
	})

	Describe("GetExitStatusFromError", func() {
		It("extracts the exit code of a failed process", func() {
			cmd, err := runner.NewCommand(ctx, falseCommand())
			Expect(err).ToNot(HaveOccurred())

			Expect(cmd.Start()).To(Succeed())
			waitErr := cmd.Wait()
			Expect(waitErr).To(HaveOccurred())

			code, err := runner.GetExitStatusFromError(waitErr)
			Expect(err).ToNot(HaveOccurred())
			Expect(code).To(Equal(1))
		})

		It("returns an internal error for other error types", func() {
			_, err := runner.GetExitStatusFromError(pkgerrors.New("some error"))

			_, ok := errors.AsInternalError(err)
			Expect(ok).To(Equal(true))
		})
	})
})
