package distro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		dir         string
		defaultDist string
		want        string
	}{
		{name: "wsl$ share", dir: `\\wsl$\Ubuntu\home\me\repo`, want: "Ubuntu"},
		{name: "wsl.localhost share", dir: `\\wsl.localhost\Debian\srv\repo`, want: "Debian"},
		{name: "share root", dir: `\\wsl$\Ubuntu-22.04`, want: "Ubuntu-22.04"},
		{name: "host is case insensitive", dir: `\\WSL.LOCALHOST\Alpine\x`, want: "Alpine"},
		{name: "forward slashes", dir: `//wsl$/Ubuntu/home`, want: "Ubuntu"},
		{name: "share beats default", dir: `\\wsl$\Ubuntu\x`, defaultDist: "Debian", want: "Ubuntu"},
		{name: "drive path uses default", dir: `C:\Users\me\repo`, defaultDist: "Debian", want: "Debian"},
		{name: "other UNC host uses default", dir: `\\server\share\repo`, defaultDist: "Debian", want: "Debian"},
		{name: "no default", dir: `C:\repo`, want: ""},
		{name: "missing name", dir: `\\wsl$\`, defaultDist: "Debian", want: "Debian"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.dir, tt.defaultDist).Name)
		})
	}
}

func TestTarget(t *testing.T) {
	assert.True(t, Target{}.IsDefault())
	assert.Nil(t, Target{}.Args())
	assert.Equal(t, "(default)", Target{}.String())

	ubuntu := Target{Name: "Ubuntu"}
	assert.False(t, ubuntu.IsDefault())
	assert.Equal(t, []string{"-d", "Ubuntu"}, ubuntu.Args())
	assert.Equal(t, "Ubuntu", ubuntu.String())
}
