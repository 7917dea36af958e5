//go:build !windows && !darwin

package launcher

func DefaultOpener() Opener {
	return commandOpener("xdg-open")
}
