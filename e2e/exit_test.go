//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithFixtures(t, tf, []string{"exit-repo"})

	// Wait for TUI to initialize and render
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("folio"), "Should show folio title")

	// Set up exit monitoring before sending 'q'
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	t.Logf("Sending 'q' to quit application...")
	tf.Quit()

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "Process should exit cleanly")
		return
	case <-time.After(1500 * time.Millisecond):
		// If 'q' didn't work within 1.5 seconds, use Ctrl+C
		t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
		tf.SendCtrlC()
	}

	select {
	case exitErr := <-done:
		t.Logf("Process exited with Ctrl+C (exit code: %v)", exitErr)
	case <-time.After(750 * time.Millisecond):
		t.Error("Application did not exit within total timeout")
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
	}
}

func TestExitWhileRepositoriesLoad(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	// The fake API fails, so the home view degrades instead of hanging
	startWithFixtures(t, tf, nil)

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.OutputContainsPlain("Could not load repositories for octocat", 5*time.Second), "failed load should be reported in place")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	tf.SendCtrlC()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after ctrl+c")
	}
}
