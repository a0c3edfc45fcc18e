package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMapHasNoClashes(t *testing.T) {
	k := DefaultKeyMap()

	seen := make(map[string]string)
	for _, group := range k.FullHelp() {
		for _, b := range group {
			// Drop shares keys with Grab and Open; it is only live while
			// a grab is in progress.
			if b.Help().Desc == k.Drop.Help().Desc {
				continue
			}
			for _, s := range b.Keys() {
				prev, dup := seen[s]
				assert.False(t, dup, "key %q bound to both %q and %q", s, prev, b.Help().Desc)
				seen[s] = b.Help().Desc
			}
		}
	}
}

func TestViewsAreNumbered(t *testing.T) {
	views := DefaultKeyMap().Views()
	require.Len(t, views, 8)
	for i, b := range views {
		assert.Equal(t, []string{string(rune('1' + i))}, b.Keys())
	}
}

func TestShortHelpIsSubsetOfFullHelp(t *testing.T) {
	k := DefaultKeyMap()
	var all []key.Binding
	for _, g := range k.FullHelp() {
		all = append(all, g...)
	}
	for _, b := range k.ShortHelp() {
		found := false
		for _, f := range all {
			if f.Help() == b.Help() {
				found = true
				break
			}
		}
		assert.True(t, found, "short help %q missing from full help", b.Help().Key)
	}
}
