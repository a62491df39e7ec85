// SPDX-License-Identifier: MPL-2.0

package runtime

import (
	"slices"
	"testing"
)

func TestMergeEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		host      []string
		overrides map[string]string
		want      []string
	}{
		{
			name: "no overrides keeps host",
			host: []string{"HOME=/home/u", "PATH=/bin"},
			want: []string{"HOME=/home/u", "PATH=/bin"},
		},
		{
			name:      "override keeps position",
			host:      []string{"A=1", "B=2", "C=3"},
			overrides: map[string]string{"B": "two"},
			want:      []string{"A=1", "B=two", "C=3"},
		},
		{
			name:      "new names appended sorted",
			host:      []string{"A=1"},
			overrides: map[string]string{"Z": "z", "M": "m"},
			want:      []string{"A=1", "M=m", "Z=z"},
		},
		{
			name:      "duplicate host names collapse once overridden",
			host:      []string{"X=old", "Y=y", "X=older"},
			overrides: map[string]string{"X": "new"},
			want:      []string{"X=new", "Y=y"},
		},
		{
			name:      "entries without separator survive",
			host:      []string{"weird", "A=1"},
			overrides: map[string]string{"A": "2"},
			want:      []string{"weird", "A=2"},
		},
		{
			name:      "values containing equals are matched by name",
			host:      []string{"OPTS=a=b"},
			overrides: map[string]string{"OPTS": "c"},
			want:      []string{"OPTS=c"},
		},
		{
			name:      "empty host",
			overrides: map[string]string{"GREETING": "hi"},
			want:      []string{"GREETING=hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MergeEnv(tt.host, tt.overrides)
			if !slices.Equal(got, tt.want) {
				t.Errorf("MergeEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMergeEnv_DoesNotMutateHost(t *testing.T) {
	t.Parallel()

	host := []string{"A=1", "B=2"}
	_ = MergeEnv(host, map[string]string{"A": "changed"})
	if host[0] != "A=1" {
		t.Errorf("host slice was modified: %v", host)
	}
}
