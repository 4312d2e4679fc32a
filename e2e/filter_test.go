//go:build e2e && unix

package main

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBlogSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithFixtures(t, tf, []string{"repo"}, "--page", "blog")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.OutputContainsPlain("Gamma tools", 5*time.Second), "articles should be listed")

	require.NoError(t, tf.SendKeys(KeySearch))
	require.True(t, tf.SeePlain("Search:"), "search prompt should appear")
	require.NoError(t, tf.Type("beta"))
	require.NoError(t, tf.Enter())

	require.True(t, tf.OutputContainsPlain("[Search: beta]", 3*time.Second), "search indicator should appear")

	// Only changed lines are repainted, so the excluded rows must not show
	// up after the indicator
	require.True(t, tf.SeePlain("Beta design"))
	require.NotContains(t, lastFrame(tf.SnapshotPlain(), "[Search: beta]"), "Alpha notes")

	// No match shows the filtered-empty message, not the empty-collection one
	require.NoError(t, tf.SendKeys(KeySearch))
	require.NoError(t, tf.Type("zzz"))
	require.True(t, tf.OutputContainsPlain("No articles match your filters.", 3*time.Second))
	require.NotContains(t, tf.SnapshotPlain(), "No articles yet")

	tf.Quit()
}

func TestBlogTagCycling(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	startWithFixtures(t, tf, []string{"repo"}, "--page", "blog")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.OutputContainsPlain("Alpha notes", 5*time.Second))

	require.NoError(t, tf.SendKeys(KeyNextTag))
	require.True(t, tf.OutputContainsPlain("[Tag: go]", 3*time.Second), "first tag in first-seen order is selected")

	// Gamma moves up into the row Beta used to occupy
	frame := lastFrame(tf.SnapshotPlain(), "[Tag: go]")
	require.Contains(t, frame, "Gamma tools")
	require.NotContains(t, frame, "Beta design")

	tf.Quit()
}

func lastFrame(s, marker string) string {
	if i := strings.LastIndex(s, marker); i >= 0 {
		return s[i:]
	}
	return s
}
