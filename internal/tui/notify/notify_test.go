// ABOUTME: Tests for the transient notification banner
// ABOUTME: Covers show, expiry, and stale-timer behavior

package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowMakesVisible(t *testing.T) {
	m := New()
	assert.False(t, m.Visible())

	cmd := m.Show("Added to cart", KindSuccess)
	require.NotNil(t, cmd)
	assert.True(t, m.Visible())
	assert.Equal(t, "Added to cart", m.Text())
}

func TestExpiryHides(t *testing.T) {
	m := New()
	m.Show("Added to cart", KindSuccess)

	m.Update(ExpiredMsg{ID: 1})
	assert.False(t, m.Visible())
	assert.Equal(t, "", m.Text())
}

func TestStaleExpiryIgnored(t *testing.T) {
	m := New()
	m.Show("first", KindInfo)
	m.Show("second", KindInfo)

	// Expiry timer from the first notification fires after it was replaced.
	m.Update(ExpiredMsg{ID: 1})
	assert.True(t, m.Visible())
	assert.Equal(t, "second", m.Text())

	m.Update(ExpiredMsg{ID: 2})
	assert.False(t, m.Visible())
}

func TestViewRendersText(t *testing.T) {
	m := New()
	m.Show("Could not reach server", KindError)
	assert.True(t, strings.Contains(m.View(), "Could not reach server"))

	m.Update(ExpiredMsg{ID: 1})
	assert.Equal(t, "", m.View())
}
