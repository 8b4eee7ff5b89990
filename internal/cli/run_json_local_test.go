package cli_test

import (
	"context"
	"runtime"
	"strings"

	"go.uber.org/zap/zaptest"

	"github.com/TKChattoraj/bitcoin-first/internal/cli"
	"github.com/TKChattoraj/bitcoin-first/internal/errors"
	"github.com/TKChattoraj/bitcoin-first/internal/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// requireUnixTools skips specs whose commands rely on POSIX quoting rules. The quoting behavior of cmd.exe differs
// enough that these would have to be rewritten, not just re-quoted.
func requireUnixTools() {
	if runtime.GOOS == "windows" {
		Skip("this spec relies on POSIX shell utilities")
	}
}

var _ = Describe("RunCommandParseJSON against local processes", func() {
	var (
		ctx     context.Context
		service cli.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		service = cli.Service{
			Log:        zaptest.NewLogger(GinkgoT()).Sugar(),
			TaskRunner: exec.Local{},
		}
	})

	It("parses the JSON document a process prints", func() {
		requireUnixTools()

		document, err := service.RunCommandParseJSON(ctx, `echo '{"success": true}'`, nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(document).To(HaveKeyWithValue("success", true))
	})

	It("reports a nonexistent executable as a spawn error", func() {
		_, err := service.RunCommandParseJSON(ctx, "invalid_command", nil)

		spawnErr, ok := errors.AsSpawnError(err)
		Expect(ok).To(Equal(true))
		Expect(spawnErr.Error()).To(ContainSubstring("file"))
	})

	It("reports a silent non-zero exit by its exit code", func() {
		commandLine := "false"
		if runtime.GOOS == "windows" {
			commandLine = `cmd.exe /c "exit 1"`
		}

		_, err := service.RunCommandParseJSON(ctx, commandLine, nil)

		commandErr, ok := errors.AsCommandError(err)
		Expect(ok).To(Equal(true))
		Expect(commandErr.Code).To(Equal(1))
		Expect(commandErr.Error()).To(ContainSubstring("returned 1"))
	})

	It("reports a diagnostic printed to stderr", func() {
		requireUnixTools()

		_, err := service.RunCommandParseJSON(ctx, "ls nosuchfile", nil)

		commandErr, ok := errors.AsCommandError(err)
		Expect(ok).To(Equal(true))
		Expect(commandErr.Error()).To(HavePrefix("RunCommandParseJSON error: "))
		Expect(commandErr.Error()).To(ContainSubstring("nosuchfile"))
		Expect(commandErr.Stderr).ToNot(BeEmpty())
	})

	It("reports unparsable output as a parse error", func() {
		requireUnixTools()

		_, err := service.RunCommandParseJSON(ctx, `echo "{"`, nil)

		parseErr, ok := errors.AsParseError(err)
		Expect(ok).To(Equal(true))
		Expect(parseErr.Output).To(Equal("{"))
	})

	It("treats a process that only prints a newline as a missing document", func() {
		requireUnixTools()

		document, err := service.RunCommandParseJSON(ctx, `echo ""`, nil)

		Expect(err).ToNot(HaveOccurred())
		Expect(document).To(BeNil())
	})

	It("delivers an input payload to the child's standard input", func() {
		requireUnixTools()

		payload := `{"success": true}`
		document, err := service.RunCommandParseJSON(ctx, "cat", &payload)

		Expect(err).ToNot(HaveOccurred())
		Expect(document).To(HaveKeyWithValue("success", true))
	})

	It("does not deadlock when payload & output exceed the OS pipe buffers", func() {
		requireUnixTools()

		payload := strings.Repeat("0123456789abcdef", 65536) // 1MiB, far beyond the usual 64KiB pipe buffer

		result, err := service.RunCommand(ctx, "cat", &payload)

		Expect(err).ToNot(HaveOccurred())
		Expect(result.ExitCode).To(Equal(0))
		Expect(result.Stdout).To(Equal(payload))
	})

	It("yields equal results when run twice", func() {
		requireUnixTools()

		first, firstErr := service.RunCommandParseJSON(ctx, `echo '{"n": 1}'`, nil)
		second, secondErr := service.RunCommandParseJSON(ctx, `echo '{"n": 1}'`, nil)

		Expect(firstErr).ToNot(HaveOccurred())
		Expect(secondErr).ToNot(HaveOccurred())
		Expect(first).To(Equal(second))
	})
})
