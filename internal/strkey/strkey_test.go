package strkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixSuccessor(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		want    string
		bounded bool
	}{
		{name: "simple", prefix: "ab", want: "ac", bounded: true},
		{name: "single", prefix: "a", want: "b", bounded: true},
		{name: "trailing max byte", prefix: "a\xff", want: "b", bounded: true},
		{name: "multiple trailing max bytes", prefix: "a\xff\xff", want: "b", bounded: true},
		{name: "empty is unbounded", prefix: "", bounded: false},
		{name: "all max bytes is unbounded", prefix: "\xff\xff", bounded: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, bounded := PrefixSuccessor(tt.prefix)
			assert.Equal(t, tt.bounded, bounded)
			if tt.bounded {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPrefixSuccessorOrdersAfterAllPrefixed(t *testing.T) {
	prefixes := []string{"a", "ab", "zz", "m\xfe"}
	for _, p := range prefixes {
		succ, bounded := PrefixSuccessor(p)
		if !bounded {
			continue
		}
		assert.Greater(t, succ, p)
		assert.Greater(t, succ, p+"anything")
		assert.Greater(t, succ, p+"\xff\xff\xff")
	}
}
